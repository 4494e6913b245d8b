package templates

import (
	sharedi18n "github.com/adreach/console/internal/services/shared/i18nhttp"
	"golang.org/x/text/language"
)

// LanguageOption represents a supported language option in the UI.
type LanguageOption struct {
	sharedi18n.LanguageOption
	URL string
}

// LanguageOptions returns supported language options with active selection.
func LanguageOptions(page PageContext) []LanguageOption {
	options := sharedi18n.BuildLanguageOptions(sharedi18n.Supported(), page.Lang, func(tag language.Tag) string {
		return T(page.Loc, sharedi18n.LanguageKeyLabel(tag))
	})
	out := make([]LanguageOption, 0, len(options))
	for _, option := range options {
		out = append(out, LanguageOption{
			LanguageOption: option,
			URL:            sharedi18n.LanguageURL(page.CurrentPath, page.CurrentQuery, option.Tag),
		})
	}
	return out
}

// normalizeTag coerces unknown tags to the default supported language.
func normalizeTag(value string) language.Tag {
	return sharedi18n.NormalizeTag(value)
}
