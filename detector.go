package rainflow

// runDetector applies the four-point closure rule to the tail of the
// residue, repeatedly, until fewer than four confirmed points remain or the
// closure test fails. It is only meaningful when classCount > 0: without
// classes there is nothing to quantize into a cycle.
func (c *Context) runDetector() error {
	for c.residue.len() >= 4 {
		idx := c.residue.len() - 4
		a := c.residue.get(idx)
		b := c.residue.get(idx + 1)
		cPt := c.residue.get(idx + 2)
		d := c.residue.get(idx + 3)

		bLo, bHi := sorted2(b.value, cPt.value)
		aLo, aHi := sorted2(a.value, d.value)

		if !(aLo <= bLo && bHi <= aHi) {
			break
		}

		if err := c.countCycle(b, cPt); err != nil {
			return c.fail(err.(*Error))
		}
		c.residue.removeRange(idx+1, 2)
	}
	return nil
}

// countCycle runs the counter sinks (rainflow matrix + pseudo-damage) for
// one closed cycle from -> to.
func (c *Context) countCycle(from, to turningPoint) error {
	cf, ct := from.cls, to.cls
	if c.classCount > 0 {
		cf = clampClass(cf, c.classCount)
		ct = clampClass(ct, c.classCount)
	}
	if cf == ct {
		return nil
	}

	// curr_inc: the four-point detector only closes full cycles.
	inc := FullInc

	if c.flags.has(CountDamage) {
		lo, hi := sorted2(cf, ct)
		sa := c.classWidth * float64(hi-lo) / 2
		c.damage += c.wohler.damage(sa) * float64(inc) / float64(FullInc)
	}

	if c.flags.has(CountRFM) && c.matrix != nil {
		if err := c.matrix.add(cf, ct, inc); err != nil {
			return err
		}
	}

	return nil
}

