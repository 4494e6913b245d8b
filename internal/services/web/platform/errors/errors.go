// Package errors defines web typed application errors.
package errors

import (
	stderrors "errors"
	"net/http"
	"strings"
)

// Kind classifies application failures for consistent HTTP mapping.
type Kind string

const (
	KindUnknown      Kind = "unknown"
	KindInvalidInput Kind = "invalid_input"
	KindUnauthorized Kind = "unauthorized"
	KindForbidden    Kind = "forbidden"
	KindUnavailable  Kind = "unavailable"
	KindNotFound     Kind = "not_found"
	KindConflict     Kind = "conflict"
	// KindUpstream is a non-success answer from the advertiser API.
	KindUpstream Kind = "upstream"
	// KindMalformed is an advertiser API answer that could not be decoded.
	KindMalformed Kind = "malformed"
)

// Error is a typed web application failure.
//
// Server marks Message as text produced by the advertiser API, which is shown
// to the user verbatim.
type Error struct {
	Kind    Kind
	Key     string
	Message string
	Server  bool
}

// Error renders the human-readable message.
func (e Error) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return e.Message
}

// E builds a typed Error.
func E(kind Kind, message string) error {
	return Error{Kind: kind, Message: message}
}

// EK builds a typed Error with a localization key.
func EK(kind Kind, key string, message string) error {
	return Error{Kind: kind, Key: strings.TrimSpace(key), Message: message}
}

// Server builds a typed Error carrying a server-provided message.
func Server(kind Kind, key string, message string) error {
	return Error{Kind: kind, Key: strings.TrimSpace(key), Message: strings.TrimSpace(message), Server: true}
}

// KindOf returns the error kind, or KindUnknown for untyped errors.
func KindOf(err error) Kind {
	var appErr Error
	if !stderrors.As(err, &appErr) {
		return KindUnknown
	}
	return appErr.Kind
}

// IsKind reports whether err carries kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// LocalizationKey returns the structured localization key when available.
func LocalizationKey(err error) string {
	if err == nil {
		return ""
	}
	var appErr Error
	if !stderrors.As(err, &appErr) {
		return ""
	}
	return strings.TrimSpace(appErr.Key)
}

// ServerMessage returns the advertiser API message carried by err.
func ServerMessage(err error) (string, bool) {
	var appErr Error
	if err == nil || !stderrors.As(err, &appErr) || !appErr.Server {
		return "", false
	}
	message := strings.TrimSpace(appErr.Message)
	return message, message != ""
}

// HTTPStatus maps an error to an HTTP status code.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var appErr Error
	if !stderrors.As(err, &appErr) {
		return http.StatusInternalServerError
	}
	switch appErr.Kind {
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindUnavailable:
		return http.StatusServiceUnavailable
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindUpstream, KindMalformed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
