// Package i18n resolves request localizers for web rendering.
package i18n

import (
	"net/http"
	"strings"

	platformi18n "github.com/adreach/console/internal/platform/i18n"
	"github.com/adreach/console/internal/services/shared/i18nhttp"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Localizer provides translated strings for a request.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// ResolveTag returns the request language, preferring the module resolver.
func ResolveTag(r *http.Request, resolveLanguage func(*http.Request) string) language.Tag {
	if resolveLanguage != nil {
		if tag, ok := platformi18n.ParseTag(resolveLanguage(r)); ok {
			return tag
		}
	}
	tag, _ := i18nhttp.ResolveTag(r)
	return tag
}

// ResolveLocalizer returns a printer and language string for the request. A
// language chosen through the query string is persisted as a cookie.
func ResolveLocalizer(w http.ResponseWriter, r *http.Request, resolveLanguage func(*http.Request) string) (*message.Printer, string) {
	tag, persist := i18nhttp.ResolveTag(r)
	if resolveLanguage != nil {
		if resolved, ok := platformi18n.ParseTag(resolveLanguage(r)); ok {
			tag = resolved
		}
	}
	if persist {
		i18nhttp.SetLanguageCookie(w, tag)
	}
	return i18nhttp.Printer(tag), tag.String()
}

// Text translates key, returning fallback when the catalog has no entry.
func Text(loc Localizer, key string, fallback string) string {
	key = strings.TrimSpace(key)
	if loc == nil || key == "" {
		return fallback
	}
	value := strings.TrimSpace(loc.Sprintf(key))
	if value == "" || value == key {
		return fallback
	}
	return value
}
