package advapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	apperrors "github.com/adreach/console/internal/services/web/platform/errors"
)

// Localization keys attached to client failures.
const (
	KeyUnavailable = "error.api_unavailable"
	KeyUpstream    = "error.api_failed"
	KeyMalformed   = "error.api_malformed"
	KeyExpired     = "error.session_expired"
)

// envelope is the response wrapper every endpoint shares.
type envelope struct {
	Status  *bool           `json:"status"`
	Message json.RawMessage `json:"message"`
	Data    json.RawMessage `json:"data"`
	User    json.RawMessage `json:"user"`
	OTP     json.RawMessage `json:"Otp"`
}

// messageText returns message when it is a JSON string.
func (e envelope) messageText() string {
	return rawString(e.Message)
}

func rawString(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '"' {
		if len(raw) > 0 && (raw[0] >= '0' && raw[0] <= '9') {
			return string(raw)
		}
		return ""
	}
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return ""
	}
	return strings.TrimSpace(value)
}

// decodeEnvelope turns a raw response into an envelope or a typed failure.
func decodeEnvelope(statusCode int, body []byte) (envelope, error) {
	var env envelope
	decodeErr := json.Unmarshal(body, &env)

	if statusCode < 200 || statusCode > 299 {
		message := ""
		if decodeErr == nil {
			message = env.messageText()
		}
		return envelope{}, statusError(statusCode, message)
	}
	if decodeErr != nil {
		return envelope{}, apperrors.EK(apperrors.KindMalformed, KeyMalformed, fmt.Sprintf("decode response: %v", decodeErr))
	}
	if env.Status != nil && !*env.Status {
		return envelope{}, apperrors.Server(apperrors.KindUpstream, KeyUpstream, env.messageText())
	}
	return env, nil
}

func statusError(statusCode int, message string) error {
	kind := apperrors.KindUpstream
	key := KeyUpstream
	switch statusCode {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		kind = apperrors.KindInvalidInput
	case http.StatusUnauthorized, http.StatusForbidden:
		kind = apperrors.KindUnauthorized
		key = KeyExpired
	case http.StatusNotFound:
		kind = apperrors.KindNotFound
	case http.StatusConflict:
		kind = apperrors.KindConflict
	}
	return apperrors.Server(kind, key, message)
}

func transportError(err error) error {
	return apperrors.EK(apperrors.KindUnavailable, KeyUnavailable, fmt.Sprintf("advertiser api unreachable: %v", err))
}

func decodeData(raw json.RawMessage, target any) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return apperrors.EK(apperrors.KindMalformed, KeyMalformed, "response data is missing")
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return apperrors.EK(apperrors.KindMalformed, KeyMalformed, fmt.Sprintf("decode response data: %v", err))
	}
	return nil
}

// IsSessionExpired reports whether err means the upstream rejected the stored credentials.
func IsSessionExpired(err error) bool {
	return apperrors.IsKind(err, apperrors.KindUnauthorized)
}
