package rainflow

import "github.com/joeycumines/logiface"

// Logger is the structured logger used for optional lifecycle event
// logging: Init, Finalize, Deinit, and errors, each tagged with the current
// state. It is never consulted on the per-sample Feed hot path. Wire in a concrete
// logiface backend (e.g. github.com/joeycumines/stumpy) via WithLogger; the
// zero value (nil) disables all logging at no cost.
type Logger = *logiface.Logger[logiface.Event]

func (c *Context) logEvent(msg string, kv ...any) {
	if c.logger == nil {
		return
	}
	b := c.logger.Info().Str("state", c.state.String())
	for i := 0; i+1 < len(kv); i += 2 {
		key, _ := kv[i].(string)
		if key == "" {
			continue
		}
		b = b.Any(key, kv[i+1])
	}
	b.Log(msg)
}

func (c *Context) logErr(err *Error) {
	if c.logger == nil {
		return
	}
	c.logger.Err().Str("state", c.state.String()).Err(err).Log("rainflow error")
}
