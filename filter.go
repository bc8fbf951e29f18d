package rainflow

// feedSample runs one sample through the combined hysteresis + peak-valley
// turning-point filter (the reference's phase 1 / phase 2), appending
// confirmed turning points to the residue and invoking the four-point
// detector whenever a new point is confirmed.
func (c *Context) feedSample(v float64) error {
	c.internalPos++

	var cls int
	if c.classCount > 0 {
		cls = classOf(v, c.classOffset, c.classWidth)
	}
	tp := turningPoint{value: v, cls: cls, pos: c.internalPos}

	if c.state == StateInit {
		// first sample ever seen: seed the extrema tracker.
		c.extremaMin = tp
		c.extremaMax = tp
		c.state = StateBusy
		return nil
	}

	if !c.residue.hasInterim() {
		return c.feedPhase1(tp)
	}
	return c.feedPhase2(tp)
}

// feedPhase1 tracks running min/max until the first swing exceeding
// hysteresis is seen, at which point the earlier extremum becomes the first
// confirmed turning point and the current sample becomes the interim point.
func (c *Context) feedPhase1(tp turningPoint) error {
	isFallingSlope := -1 // -1: neither a new low nor a new high
	switch {
	case tp.value < c.extremaMin.value:
		c.extremaMin = tp
		isFallingSlope = 1
	case tp.value > c.extremaMax.value:
		c.extremaMax = tp
		isFallingSlope = 0
	}

	if isFallingSlope < 0 || c.extremaMax.value-c.extremaMin.value <= c.hysteresis {
		return nil
	}

	var first turningPoint
	var slope int
	if isFallingSlope == 1 {
		first = c.extremaMax
		slope = -1
	} else {
		first = c.extremaMin
		slope = 1
	}

	if err := c.residue.append(first); err != nil {
		return c.fail(err.(*Error))
	}
	c.slope = slope
	c.residue.setInterim(tp)
	c.state = StateBusyInterim

	return c.afterConfirm()
}

// feedPhase2 is the steady-state filter: the interim point either extends
// (slope continues) or is confirmed (a reversal exceeding hysteresis is
// seen), becoming a real turning point while the current sample becomes the
// new interim point.
func (c *Context) feedPhase2(tp turningPoint) error {
	interim := c.residue.interimPoint()
	delta := tp.value - interim.value

	s := 1
	if delta < 0 {
		s = -1
	}
	absDelta := delta
	if absDelta < 0 {
		absDelta = -absDelta
	}

	if s == c.slope {
		// a sample that exactly repeats the current interim's value leaves
		// the interim (and its pos) untouched, matching the reference's
		// "if (residue[cnt].value != pt->value)" guard.
		if tp.value != interim.value {
			c.residue.setInterim(tp)
		}
		return nil
	}

	if absDelta <= c.hysteresis {
		return nil
	}

	c.residue.promoteInterim()
	c.slope = s
	c.residue.setInterim(tp)

	return c.afterConfirm()
}

// afterConfirm runs after any turning point becomes confirmed. With no
// class configuration there is nothing to quantize into cycles, so the
// residue is kept bounded by simply dropping its oldest point; otherwise the
// four-point detector is run over the residue tail.
func (c *Context) afterConfirm() error {
	if c.classCount == 0 {
		c.residue.dropOldest()
		return nil
	}
	return c.runDetector()
}
