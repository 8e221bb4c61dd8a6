package srp

import (
	"fmt"
	"sync/atomic"
)

// MessageType classifies a diagnostic raised by the pipeline.
type MessageType int

const (
	MessageError MessageType = iota
	MessageWarning
	MessageInfo
)

// MessageSeverity indicates how serious a diagnostic is.
type MessageSeverity int

const (
	SeverityHigh MessageSeverity = iota
	SeverityMedium
	SeverityLow
)

// MessageCallback receives pipeline diagnostics: OOB buffer access, dropped
// vertices, failed texture loads. Enum values are not validated, so an
// unknown value produces no message. userParam is whatever was passed to
// SetMessageCallback, returned unchanged.
type MessageCallback func(typ MessageType, severity MessageSeverity, source, text string, userParam any)

type messageState struct {
	cb        MessageCallback
	userParam any
}

var messagePtr atomic.Pointer[messageState]

// SetMessageCallback registers the callback invoked for render-time
// diagnostics. This is a rendering-contract mechanism distinct from
// [SetLogger]: it is how a caller observes why a draw call silently
// no-opped or a texture failed to load, not an operability log. Pass a nil
// callback to stop receiving diagnostics.
func SetMessageCallback(cb MessageCallback, userParam any) {
	messagePtr.Store(&messageState{cb: cb, userParam: userParam})
}

func notify(typ MessageType, severity MessageSeverity, source, format string, args ...any) {
	s := messagePtr.Load()
	if s == nil || s.cb == nil {
		return
	}
	s.cb(typ, severity, source, fmt.Sprintf(format, args...), s.userParam)
}
