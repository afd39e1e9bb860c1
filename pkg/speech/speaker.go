// Package speech defines the spoken-announcement collaborator used by the
// composition editor. The engine never synthesizes audio itself; it hands
// the resulting label to whatever Speaker the host wires in.
package speech

import "log/slog"

// Speaker announces a label after a completed edit. Calls are
// fire-and-forget: a failing Speaker must not affect the edit's success.
type Speaker interface {
	Speak(text string) error
}

// Nop is a Speaker that discards every announcement.
type Nop struct{}

// Speak implements Speaker.
func (Nop) Speak(string) error { return nil }

// Logged is a Speaker that records announcements on a logger, useful as a
// stand-in when no synthesizer is attached.
type Logged struct {
	Logger *slog.Logger
}

// Speak implements Speaker.
func (l Logged) Speak(text string) error {
	logger := l.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("speak", "text", text)
	return nil
}

// Func adapts a plain function to the Speaker interface.
type Func func(text string) error

// Speak implements Speaker.
func (f Func) Speak(text string) error { return f(text) }
