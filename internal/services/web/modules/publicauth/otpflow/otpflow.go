// Package otpflow models the phone and one-time-password login as a pure
// state machine. Handlers feed it events and perform the returned effect.
package otpflow

import (
	"regexp"
	"strings"
	"time"
)

// ResendDelay is the wait between two OTP requests for one pending login.
const ResendDelay = 30 * time.Second

// Warning and notice keys emitted by the reducer.
const (
	KeyInvalidPhone = "auth.warning.phone"
	KeyInvalidOTP   = "auth.warning.otp"
	KeyNoPending    = "auth.warning.expired"
	KeyResendWait   = "auth.info.resend_wait"
)

var (
	phonePattern = regexp.MustCompile(`^[0-9]{10}$`)
	otpPattern   = regexp.MustCompile(`^[0-9]{6}$`)
)

// Step is the visible stage of the login.
type Step int

const (
	StepPhone Step = iota
	StepOTP
	StepAuthenticated
)

func (s Step) String() string {
	switch s {
	case StepPhone:
		return "phone"
	case StepOTP:
		return "otp"
	case StepAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// State is the login progress of one browser.
type State struct {
	Step     Step
	Phone    string
	ResendAt time.Time
}

// EventKind enumerates reducer inputs.
type EventKind int

const (
	EventSubmitPhone EventKind = iota + 1
	EventOTPSent
	EventSubmitOTP
	EventVerified
	EventResend
	EventChangePhone
)

// Event is one input to Transition.
type Event struct {
	Kind  EventKind
	Phone string
	OTP   string
	At    time.Time
}

// EffectKind tells the caller what to do after a transition.
type EffectKind int

const (
	EffectNone EffectKind = iota
	// EffectRequestOTP asks the API to send a code to Effect.Phone.
	EffectRequestOTP
	// EffectVerifyOTP exchanges Effect.Phone and Effect.OTP for a session.
	EffectVerifyOTP
	// EffectReject re-renders the current step with Effect.Key.
	EffectReject
	// EffectWait re-renders the OTP step with the remaining countdown.
	EffectWait
)

// Effect is the side effect requested by a transition.
type Effect struct {
	Kind  EffectKind
	Phone string
	OTP   string
	Key   string
	Wait  time.Duration
}

// ValidPhone reports whether phone is exactly ten digits.
func ValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// ValidOTP reports whether otp is exactly six digits.
func ValidOTP(otp string) bool {
	return otpPattern.MatchString(otp)
}

// Transition applies event to state.
func Transition(state State, event Event) (State, Effect) {
	switch event.Kind {
	case EventSubmitPhone:
		phone := strings.TrimSpace(event.Phone)
		next := State{Step: StepPhone, Phone: phone}
		if !ValidPhone(phone) {
			return next, Effect{Kind: EffectReject, Key: KeyInvalidPhone}
		}
		return next, Effect{Kind: EffectRequestOTP, Phone: phone}

	case EventOTPSent:
		if state.Phone == "" {
			return state, Effect{Kind: EffectReject, Key: KeyNoPending}
		}
		return State{Step: StepOTP, Phone: state.Phone, ResendAt: event.At.Add(ResendDelay)}, Effect{}

	case EventSubmitOTP:
		if state.Step != StepOTP {
			return State{Step: StepPhone, Phone: state.Phone}, Effect{Kind: EffectReject, Key: KeyNoPending}
		}
		otp := strings.TrimSpace(event.OTP)
		if !ValidOTP(otp) {
			return state, Effect{Kind: EffectReject, Key: KeyInvalidOTP}
		}
		return state, Effect{Kind: EffectVerifyOTP, Phone: state.Phone, OTP: otp}

	case EventVerified:
		if state.Step != StepOTP {
			return state, Effect{Kind: EffectReject, Key: KeyNoPending}
		}
		return State{Step: StepAuthenticated, Phone: state.Phone}, Effect{}

	case EventResend:
		if state.Step != StepOTP {
			return State{Step: StepPhone, Phone: state.Phone}, Effect{Kind: EffectReject, Key: KeyNoPending}
		}
		if remaining := state.ResendAt.Sub(event.At); remaining > 0 {
			return state, Effect{Kind: EffectWait, Key: KeyResendWait, Wait: remaining}
		}
		return state, Effect{Kind: EffectRequestOTP, Phone: state.Phone}

	case EventChangePhone:
		return State{Step: StepPhone, Phone: state.Phone}, Effect{}
	}
	return state, Effect{}
}

// ResendIn returns the whole seconds left before a resend is allowed.
func ResendIn(state State, now time.Time) int {
	if state.Step != StepOTP {
		return 0
	}
	remaining := state.ResendAt.Sub(now)
	if remaining <= 0 {
		return 0
	}
	seconds := int(remaining / time.Second)
	if remaining%time.Second != 0 {
		seconds++
	}
	return seconds
}
