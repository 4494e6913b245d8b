package i18n

import (
	"testing"

	"golang.org/x/text/language"
)

func TestParseTag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{in: "en-US", want: "en-US", ok: true},
		{in: "hi", want: "hi-IN", ok: true},
		{in: "hi-IN", want: "hi-IN", ok: true},
		{in: "", ok: false},
		{in: "not a tag!", ok: false},
	}
	for _, tc := range tests {
		got, ok := ParseTag(tc.in)
		if ok != tc.ok {
			t.Fatalf("ParseTag(%q) ok = %v, want %v", tc.in, ok, tc.ok)
		}
		if ok && got.String() != tc.want {
			t.Fatalf("ParseTag(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMatchTagsFallsBackToDefault(t *testing.T) {
	t.Parallel()

	if got := MatchTags(nil); got != DefaultTag() {
		t.Fatalf("MatchTags(nil) = %v", got)
	}
	got := MatchTags([]language.Tag{language.MustParse("hi-IN"), language.MustParse("en")})
	if got.String() != "hi-IN" {
		t.Fatalf("MatchTags(hi-IN,en) = %v", got)
	}
}
