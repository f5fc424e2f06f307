package infra

import (
	"errors"
	"log/slog"

	"miccheck-web/internal/pkg/errs"
)

type UpstreamErrorKind string

// UpstreamError describes a failed call to the booking backend.
// Message carries the backend's own human-readable explanation when one was provided.
type UpstreamError struct {
	Kind    UpstreamErrorKind
	Status  int
	Message string
	msg     string
	err     error // wrapped low-level error
}

func (e UpstreamError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e UpstreamError) Unwrap() error {
	return e.err
}

func WrapUpstreamErr(slogger *slog.Logger, kind UpstreamErrorKind, msg string, status int, err error) error {
	return newUpstreamErr(slogger, UpstreamError{Kind: kind, Status: status, msg: msg, err: err})
}

// RejectedWithMessage records a non-2xx answer that explained itself.
func RejectedWithMessage(slogger *slog.Logger, msg string, status int, message string) error {
	return newUpstreamErr(slogger, UpstreamError{Kind: KindRejected, Status: status, Message: message, msg: msg})
}

func newUpstreamErr(slogger *slog.Logger, e UpstreamError) error {
	kind, msg, status, err := e.Kind, e.msg, e.Status, e.err
	logArgs := []any{
		slog.String("kind", string(kind)),
		slog.Int("status", status),
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
	}
	if e.Message != "" {
		logArgs = append(logArgs, slog.String("upstream_message", e.Message))
	}

	slogger.Error("Booking backend error: "+msg, logArgs...)

	if err != nil {
		e.err = errs.Wrap(err, msg)
	}

	return errs.Mark(e, kind.sentinel())
}

func IsKind(err error, kind UpstreamErrorKind) bool {
	var e UpstreamError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// UpstreamMessage returns the backend-provided message of an UpstreamError, if any.
func UpstreamMessage(err error) string {
	var e UpstreamError
	if errors.As(err, &e) {
		return e.Message
	}
	return ""
}

func (k UpstreamErrorKind) sentinel() error {
	switch k {
	case KindUnavailable:
		return errs.ErrUpstreamUnavailable
	case KindRejected:
		return errs.ErrUpstreamRejected
	default:
		return errs.ErrUpstreamDecode
	}
}

// Infrastructure-specific error kinds
const (
	KindUnavailable UpstreamErrorKind = "UNAVAILABLE"
	KindRejected    UpstreamErrorKind = "REJECTED"
	KindDecode      UpstreamErrorKind = "DECODE"
)
