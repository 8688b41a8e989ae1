package envconf

import (
	"fmt"

	"go.uber.org/zap"
)

const (
	ansiRed   = "\x1b[31m"
	ansiReset = "\x1b[0m"
)

// validate enforces presence of a required key. Hard-fail mode returns a
// ValidationError; soft mode writes one diagnostic line and returns nil.
func (s *Schema) validate(key string, required bool, description string) error {
	c := s.cfg
	if !required {
		return nil
	}
	if _, ok := c.lookup(key); ok {
		return nil
	}

	verr := &ValidationError{Key: key, Description: description}
	if c.opts.HardFail {
		return verr
	}

	msg := fmt.Sprintf("[%s] %s", c.opts.Tag, verr.Error())
	if c.opts.Sink.IsInteractive() {
		msg = ansiRed + msg + ansiReset
	}
	if _, err := fmt.Fprint(c.opts.Sink, msg+"\n"); err != nil {
		c.logger.Warn("diagnostic sink write failed", zap.Error(err))
	}
	c.logger.Warn("required configuration key missing", zap.String("key", key))
	return nil
}
