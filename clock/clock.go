// Package clock supplies the elapsed time for each simulation tick.
package clock

// Clock returns the seconds elapsed since the previous tick.
type Clock interface {
	Tick() float64
}

// Fixed advances by the same step every tick.
type Fixed struct {
	Step float64
}

// Tick returns the fixed step, or zero when the step is negative.
func (c Fixed) Tick() float64 {
	if c.Step < 0 {
		return 0
	}
	return c.Step
}

// Func adapts a frame-time source, clamping to [0, Max].
// A zero Max disables the upper clamp.
type Func struct {
	Source func() float64
	Max    float64
}

// Tick samples the source once.
func (c Func) Tick() float64 {
	dt := c.Source()
	if dt < 0 {
		return 0
	}
	if c.Max > 0 && dt > c.Max {
		return c.Max
	}
	return dt
}
