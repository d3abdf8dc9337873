package logging

import "github.com/rs/zerolog"

type HasLogger interface {
	Log() *zerolog.Logger
}

type SetLogging interface {
	SetLogging(*Logging) *Logging
}

// Logging holds the root logger given by SetLogger and the logger derived from
// it by f. Without any logger set, it logs nothing.
type Logging struct {
	l    zerolog.Logger
	root zerolog.Logger
	f    func(zerolog.Context) zerolog.Context
}

func NewLogging(f func(zerolog.Context) zerolog.Context) *Logging {
	nop := zerolog.Nop()

	return &Logging{
		l:    nop,
		root: nop,
		f:    f,
	}
}

// NewModuleLogging adds the "module" field to every event.
func NewModuleLogging(module string) *Logging {
	return NewLogging(func(c zerolog.Context) zerolog.Context {
		return c.Str("module", module)
	})
}

func (lg *Logging) Log() *zerolog.Logger {
	return &lg.l
}

func (lg *Logging) SetLogger(l zerolog.Logger) *Logging {
	lg.root = l
	lg.l = l

	if lg.f != nil {
		lg.l = lg.f(l.With()).Logger()
	}

	return lg
}

// SetLogging shares the root logger of l, not the fields l added.
func (lg *Logging) SetLogging(l *Logging) *Logging {
	return lg.SetLogger(l.root)
}

// IsTraceLog is true when trace events are written, so callers can skip
// building them.
func (lg *Logging) IsTraceLog() bool {
	return lg.l.GetLevel() <= zerolog.TraceLevel && zerolog.GlobalLevel() <= zerolog.TraceLevel
}
