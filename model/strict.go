package model

import (
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// warningCollector is a logrus.Hook that records every Warn-level log line
// (the line still reaches the configured output), so StrictMode (spec §9
// open question, SPEC_FULL.md §C.3) can promote "useless field"-style
// warnings into a returned error.
type warningCollector struct {
	mu       sync.Mutex
	messages []string
}

func (c *warningCollector) Levels() []logrus.Level { return []logrus.Level{logrus.WarnLevel} }

func (c *warningCollector) Fire(entry *logrus.Entry) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, entry.Message)
	return nil
}

func (c *warningCollector) hasWarnings() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.messages) > 0
}

// ErrStrictWarnings is returned by Assemble in strict mode when any
// condition that would otherwise only log a warning occurred.
type ErrStrictWarnings struct{ Messages []string }

func (e *ErrStrictWarnings) Error() string {
	return fmt.Sprintf("model: %d warning(s) promoted to errors by strict mode: %s",
		len(e.Messages), strings.Join(e.Messages, "; "))
}

// strictLogger returns a logger that behaves identically to base but also
// feeds every Warn-level entry into collector, by cloning base's
// formatter/level/output/hooks onto a fresh *logrus.Logger and attaching
// the collector as an additional hook. base's own hooks still run.
func strictLogger(base *logrus.Logger, collector *warningCollector) *logrus.Logger {
	clone := &logrus.Logger{
		Out:          base.Out,
		Formatter:    base.Formatter,
		Level:        base.Level,
		Hooks:        make(logrus.LevelHooks),
		ReportCaller: base.ReportCaller,
		ExitFunc:     base.ExitFunc,
	}
	for level, hooks := range base.Hooks {
		clone.Hooks[level] = append([]logrus.Hook{}, hooks...)
	}
	clone.AddHook(collector)
	return clone
}
