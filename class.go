package rainflow

import "math"

// classOf maps a sample value to an integer class index, per class_offset
// and class_width. Values outside [class_offset, class_offset+class_width*
// classCount) are not rejected here; callers that need the clamped index
// (used at cycle-counting time, not at filter time) should use clampClass.
func classOf(v, classOffset, classWidth float64) int {
	return int(math.Floor((v - classOffset) / classWidth))
}

// clampClass pins idx to classCount-1 whenever it falls outside
// [0, classCount), matching the original's unsigned-cast QUANTIZE macro:
// a negative index is just as "outside the window" as one too large, and
// both pin to the last class, never to 0.
func clampClass(idx, classCount int) int {
	if idx < 0 || idx >= classCount {
		return classCount - 1
	}
	return idx
}

