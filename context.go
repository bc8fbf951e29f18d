package rainflow

// State is one state of the Context lifecycle state machine.
type State int

const (
	StateInit0 State = iota
	StateInit
	StateBusy
	StateBusyInterim
	StateFinalize
	StateFinished
	StateError
)

func (s State) String() string {
	switch s {
	case StateInit0:
		return "init0"
	case StateInit:
		return "init"
	case StateBusy:
		return "busy"
	case StateBusyInterim:
		return "busy_interim"
	case StateFinalize:
		return "finalize"
	case StateFinished:
		return "finished"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// ResidualMethod selects how Finalize treats the unresolved residue. Only
// NONE and IGNORE are implemented; both leave the residue untouched.
type ResidualMethod int

const (
	ResidualNone ResidualMethod = iota
	ResidualIgnore
)

// TurningPoint is the externally-visible view of one residue entry.
type TurningPoint struct {
	Value float64
	Class int
	Pos   int64
}

// Option configures a Context at construction time, before Init.
type Option func(*Context)

// WithLogger attaches a structured logger for lifecycle events (Init,
// Finalize, Deinit, errors), each tagged with the current state. Other
// state changes are not logged, and the logger is never consulted on the
// per-sample Feed path.
func WithLogger(l Logger) Option {
	return func(c *Context) { c.logger = l }
}

// WithAllocator overrides the allocation hook used by Init to size the
// residue buffer and rainflow matrix.
func WithAllocator(a Allocator) Option {
	return func(c *Context) { c.alloc = a }
}

// Context is the streaming rainflow cycle-counting engine. It is not safe
// for concurrent use.
type Context struct {
	state  State
	err    *Error
	logger Logger
	alloc  Allocator

	classCount              int
	classWidth, classOffset float64
	hysteresis              float64
	flags                   Flags
	wohler                  Wohler

	residue *residueBuffer
	matrix  *rfm
	damage  float64

	internalPos int64

	extremaMin, extremaMax turningPoint
	slope                  int
}

// NewContext constructs an unallocated Context, in state INIT0. Call Init
// to allocate and move it to state INIT.
func NewContext(opts ...Option) *Context {
	c := &Context{state: StateInit0, wohler: DefaultWohler()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Init validates parameters, allocates the residue buffer and (if
// CountRFM is set and classCount > 0) the rainflow matrix, and moves the
// Context to state INIT. classCount must be in [0, 512]; classWidth must
// be > 0 when classCount > 0; hysteresis must be >= 0.
func (c *Context) Init(classCount int, classWidth, classOffset, hysteresis float64, flags Flags) error {
	if c.state != StateInit0 {
		return c.fail(errState("Init called in state %s, want init0", c.state))
	}
	if classCount < 0 || classCount > 512 {
		return c.fail(errInvalidArgument("class_count must be in [0,512], got %d", classCount))
	}
	if classCount > 0 && classWidth <= 0 {
		return c.fail(errInvalidArgument("class_width must be > 0 when class_count > 0, got %v", classWidth))
	}
	if hysteresis < 0 {
		return c.fail(errInvalidArgument("hysteresis must be >= 0, got %v", hysteresis))
	}

	residueCap := 3
	if rc := 2 * classCount; rc > residueCap {
		residueCap = rc
	}

	residueSlice, err := c.alloc.residue(residueCap + 1)
	if err != nil {
		return c.fail(errAlloc("residue allocation failed: %v", err))
	}

	var matrix *rfm
	if flags.has(CountRFM) && classCount > 0 {
		counts, err := c.alloc.matrix(classCount * classCount)
		if err != nil {
			return c.fail(errAlloc("matrix allocation failed: %v", err))
		}
		matrix = newRFM(counts, classCount)
	}

	c.classCount = classCount
	c.classWidth = classWidth
	c.classOffset = classOffset
	c.hysteresis = hysteresis
	c.flags = flags
	c.residue = newResidueBuffer(residueSlice)
	c.matrix = matrix
	c.damage = 0
	c.internalPos = 0
	c.extremaMin, c.extremaMax = turningPoint{}, turningPoint{}
	c.slope = 0
	c.state = StateInit

	c.logEvent("init", "class_count", classCount, "flags", flags)
	return nil
}

// SetWohler overrides the default Wohler curve parameters. It must be
// called before the first Feed; changing the curve mid-stream is not
// supported.
func (c *Context) SetWohler(sd, nd, k float64) error {
	w := Wohler{SD: sd, ND: nd, K: k}
	if err := w.validate(); err != nil {
		return c.fail(err.(*Error))
	}
	if c.internalPos > 0 {
		return c.fail(errState("SetWohler must be called before the first Feed"))
	}
	c.wohler = w
	return nil
}

// Feed processes samples one at a time through the turning-point filter
// and four-point detector, updating the residue, rainflow matrix, and
// pseudo-damage accumulator in place.
func (c *Context) Feed(samples []float64) error {
	switch c.state {
	case StateInit, StateBusy, StateBusyInterim:
	default:
		return c.fail(errState("feed called in state %s", c.state))
	}

	for _, v := range samples {
		if err := c.feedSample(v); err != nil {
			return err
		}
	}
	return nil
}

// Finalize promotes any live interim point to a confirmed turning point,
// runs the four-point detector once more, and moves the Context to state
// FINISHED. Only ResidualNone and ResidualIgnore are supported; both leave
// the residue as-is.
func (c *Context) Finalize(method ResidualMethod) error {
	switch c.state {
	case StateInit, StateBusy, StateBusyInterim:
	default:
		return c.fail(errState("finalize called in state %s", c.state))
	}
	if method != ResidualNone && method != ResidualIgnore {
		return c.fail(errInvalidArgument("unsupported residual method %d", method))
	}

	c.state = StateFinalize

	if c.residue.hasInterim() {
		c.residue.promoteInterim()
		if c.classCount > 0 {
			if err := c.runDetector(); err != nil {
				return err
			}
		}
	}

	c.state = StateFinished
	c.logEvent("finalize", "residue_len", c.residue.len())
	return nil
}

// Deinit releases the residue buffer and rainflow matrix, returning the
// Context to state INIT0.
func (c *Context) Deinit() error {
	c.residue = nil
	c.matrix = nil
	c.err = nil
	c.state = StateInit0
	c.logEvent("deinit")
	return nil
}

// State returns the Context's current lifecycle state.
func (c *Context) State() State {
	return c.state
}

// Err returns the last sticky error recorded on the Context, or nil.
func (c *Context) Err() error {
	if c.err == nil {
		return nil
	}
	return c.err
}

// PseudoDamage returns the accumulated pseudo-damage value.
func (c *Context) PseudoDamage() float64 {
	return c.damage
}

// Residue returns a snapshot of the current unresolved turning points,
// including a live interim point if one exists.
func (c *Context) Residue() []TurningPoint {
	if c.residue == nil {
		return nil
	}
	n := c.residue.len()
	if c.residue.hasInterim() {
		n++
	}
	out := make([]TurningPoint, n)
	for i := 0; i < c.residue.len(); i++ {
		tp := c.residue.get(i)
		out[i] = TurningPoint{Value: tp.value, Class: tp.cls, Pos: tp.pos}
	}
	if c.residue.hasInterim() {
		tp := c.residue.interimPoint()
		out[n-1] = TurningPoint{Value: tp.value, Class: tp.cls, Pos: tp.pos}
	}
	return out
}

// RFM returns a copy of the rainflow matrix, row-major, class_count x
// class_count, or nil if CountRFM was not set or class_count is 0.
func (c *Context) RFM() []uint64 {
	if c.matrix == nil {
		return nil
	}
	out := make([]uint64, len(c.matrix.counts))
	copy(out, c.matrix.counts)
	return out
}

// ClassCount returns the number of classes the Context was initialized
// with.
func (c *Context) ClassCount() int {
	return c.classCount
}

func (c *Context) fail(err *Error) error {
	c.err = err
	if err.Kind == KindOverflow || err.Kind == KindAlloc {
		c.state = StateError
	}
	c.logErr(err)
	return err
}
