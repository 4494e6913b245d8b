// Package i18n defines the locales the console supports.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

var (
	tagEnglish = language.MustParse("en-US")
	tagHindi   = language.MustParse("hi-IN")

	supportedTags = []language.Tag{tagEnglish, tagHindi}
	matcher       = language.NewMatcher(supportedTags)
)

// SupportedTags returns the supported locales, default first.
func SupportedTags() []language.Tag {
	out := make([]language.Tag, len(supportedTags))
	copy(out, supportedTags)
	return out
}

// DefaultTag returns the fallback locale.
func DefaultTag() language.Tag {
	return tagEnglish
}

// ParseTag parses value and maps it onto a supported locale.
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return language.Tag{}, false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return language.Tag{}, false
	}
	_, idx, confidence := matcher.Match(tag)
	if confidence == language.No {
		return language.Tag{}, false
	}
	return supportedTags[idx], true
}

// MatchTags picks the best supported locale for preference-ordered tags.
func MatchTags(tags []language.Tag) language.Tag {
	if len(tags) == 0 {
		return DefaultTag()
	}
	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return DefaultTag()
	}
	return supportedTags[idx]
}
