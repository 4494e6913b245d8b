package otpflow

import (
	"testing"
	"time"
)

func TestValidPhoneAndOTP(t *testing.T) {
	t.Parallel()

	phones := map[string]bool{
		"9876543210":  true,
		"987654321":   false,
		"98765432101": false,
		"98765abcde":  false,
		"":            false,
		"+919876543":  false,
	}
	for phone, want := range phones {
		if got := ValidPhone(phone); got != want {
			t.Fatalf("ValidPhone(%q) = %v, want %v", phone, got, want)
		}
	}
	otps := map[string]bool{
		"123456":  true,
		"12345":   false,
		"1234567": false,
		"12a456":  false,
	}
	for otp, want := range otps {
		if got := ValidOTP(otp); got != want {
			t.Fatalf("ValidOTP(%q) = %v, want %v", otp, got, want)
		}
	}
}

func TestTransitionSubmitPhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		phone     string
		wantKind  EffectKind
		wantKey   string
		wantPhone string
	}{
		{name: "valid", phone: " 9876543210 ", wantKind: EffectRequestOTP, wantPhone: "9876543210"},
		{name: "short", phone: "98765", wantKind: EffectReject, wantKey: KeyInvalidPhone},
		{name: "letters", phone: "98765abcde", wantKind: EffectReject, wantKey: KeyInvalidPhone},
	}
	for _, tc := range tests {
		state, effect := Transition(State{}, Event{Kind: EventSubmitPhone, Phone: tc.phone})
		if effect.Kind != tc.wantKind || effect.Key != tc.wantKey || effect.Phone != tc.wantPhone {
			t.Fatalf("%s: effect = %+v", tc.name, effect)
		}
		if state.Step != StepPhone {
			t.Fatalf("%s: step = %v, want phone", tc.name, state.Step)
		}
	}
}

func TestTransitionFullLogin(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	state, effect := Transition(State{}, Event{Kind: EventSubmitPhone, Phone: "9876543210"})
	if effect.Kind != EffectRequestOTP {
		t.Fatalf("submit phone effect = %+v", effect)
	}
	state, _ = Transition(state, Event{Kind: EventOTPSent, At: now})
	if state.Step != StepOTP || !state.ResendAt.Equal(now.Add(ResendDelay)) {
		t.Fatalf("state after send = %+v", state)
	}

	_, effect = Transition(state, Event{Kind: EventSubmitOTP, OTP: "12"})
	if effect.Kind != EffectReject || effect.Key != KeyInvalidOTP {
		t.Fatalf("short otp effect = %+v", effect)
	}
	state, effect = Transition(state, Event{Kind: EventSubmitOTP, OTP: "123456"})
	if effect.Kind != EffectVerifyOTP || effect.Phone != "9876543210" || effect.OTP != "123456" {
		t.Fatalf("verify effect = %+v", effect)
	}
	state, _ = Transition(state, Event{Kind: EventVerified})
	if state.Step != StepAuthenticated {
		t.Fatalf("step = %v, want authenticated", state.Step)
	}
}

func TestTransitionResendIsGatedByCountdown(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	state := State{Step: StepOTP, Phone: "9876543210", ResendAt: now.Add(ResendDelay)}

	_, effect := Transition(state, Event{Kind: EventResend, At: now.Add(10 * time.Second)})
	if effect.Kind != EffectWait || effect.Wait != 20*time.Second || effect.Key != KeyResendWait {
		t.Fatalf("early resend effect = %+v", effect)
	}
	_, effect = Transition(state, Event{Kind: EventResend, At: now.Add(ResendDelay)})
	if effect.Kind != EffectRequestOTP || effect.Phone != "9876543210" {
		t.Fatalf("resend effect = %+v", effect)
	}
}

func TestTransitionWithoutPendingLogin(t *testing.T) {
	t.Parallel()

	for _, kind := range []EventKind{EventSubmitOTP, EventResend, EventVerified} {
		_, effect := Transition(State{}, Event{Kind: kind, OTP: "123456"})
		if effect.Kind != EffectReject || effect.Key != KeyNoPending {
			t.Fatalf("event %d effect = %+v", kind, effect)
		}
	}
}

func TestTransitionChangePhoneKeepsNumber(t *testing.T) {
	t.Parallel()

	state, effect := Transition(State{Step: StepOTP, Phone: "9876543210"}, Event{Kind: EventChangePhone})
	if state.Step != StepPhone || state.Phone != "9876543210" || effect.Kind != EffectNone {
		t.Fatalf("state = %+v effect = %+v", state, effect)
	}
}

func TestResendInRoundsUp(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	state := State{Step: StepOTP, ResendAt: now.Add(29500 * time.Millisecond)}
	if got := ResendIn(state, now); got != 30 {
		t.Fatalf("ResendIn = %d, want 30", got)
	}
	if got := ResendIn(state, now.Add(time.Minute)); got != 0 {
		t.Fatalf("ResendIn after deadline = %d, want 0", got)
	}
	if got := ResendIn(State{Step: StepPhone}, now); got != 0 {
		t.Fatalf("ResendIn on phone step = %d, want 0", got)
	}
}
