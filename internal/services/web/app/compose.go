package app

import (
	"fmt"
	"net/http"
	"strings"

	module "github.com/adreach/console/internal/services/web/module"
	"github.com/adreach/console/internal/services/web/platform/httpx"
	"github.com/adreach/console/internal/services/web/platform/requestmeta"
	"github.com/adreach/console/internal/services/web/platform/sessioncookie"
	"github.com/adreach/console/internal/services/web/routepath"
	"github.com/go-chi/chi/v5"
)

const (
	defaultLoginPath = routepath.Login
	defaultHomePath  = routepath.Dashboard
)

// ComposeInput carries module groups and shared composition contracts.
type ComposeInput struct {
	Authenticated       func(*http.Request) bool
	PublicModules       []module.Module
	ProtectedModules    []module.Module
	RequestSchemePolicy requestmeta.SchemePolicy
}

// Compose builds a root router from module groups. The root path and every
// path no module owns redirect to the dashboard or the login page depending
// on the session flag.
func Compose(input ComposeInput) (chi.Router, error) {
	root := chi.NewRouter()
	if input.Authenticated == nil {
		input.Authenticated = func(*http.Request) bool { return false }
	}
	seen := make(map[string]string)

	for _, feature := range input.PublicModules {
		if feature == nil {
			return nil, fmt.Errorf("public module is nil")
		}
		if err := mountModule(root, feature, seen, nil); err != nil {
			return nil, err
		}
	}

	protect := wrapProtectedModule(input.Authenticated, input.RequestSchemePolicy)
	for _, feature := range input.ProtectedModules {
		if feature == nil {
			return nil, fmt.Errorf("protected module is nil")
		}
		if err := mountModule(root, feature, seen, protect); err != nil {
			return nil, err
		}
	}

	fallback := redirectByAuth(input.Authenticated)
	root.Get(routepath.Root, fallback)
	root.NotFound(fallback)
	return root, nil
}

func mountModule(root chi.Router, feature module.Module, seen map[string]string, wrap func(http.Handler) http.Handler) error {
	mount, prefix, err := resolveMount(feature)
	if err != nil {
		return err
	}
	alias := slashlessPrefixAlias(prefix)
	for _, pattern := range []string{prefix, alias} {
		if pattern == "" {
			continue
		}
		if previous, ok := seen[pattern]; ok {
			return fmt.Errorf("module %q duplicates prefix %q owned by module %q", feature.ID(), pattern, previous)
		}
		seen[pattern] = feature.ID()
	}

	handler := mount.Handler
	if wrap != nil {
		handler = wrap(handler)
	}
	// Module muxes route on the full request path, so chi only dispatches.
	root.Handle(prefix+"*", handler)
	if alias != "" {
		root.Handle(alias, handler)
	}
	return nil
}

func resolveMount(feature module.Module) (module.Mount, string, error) {
	if feature == nil {
		return module.Mount{}, "", fmt.Errorf("module is nil")
	}
	mount, err := feature.Mount()
	if err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: %w", feature.ID(), err)
	}
	prefix := mount.Prefix
	if err := validatePrefix(prefix); err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q has invalid prefix %q: %w", feature.ID(), mount.Prefix, err)
	}
	if prefix == routepath.Root {
		return module.Mount{}, "", fmt.Errorf("mount module %q: root prefix is reserved", feature.ID())
	}
	if mount.Handler == nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: handler is required", feature.ID())
	}
	return mount, prefix, nil
}

func validatePrefix(prefix string) error {
	if prefix == "" {
		return fmt.Errorf("prefix is required")
	}
	if strings.TrimSpace(prefix) != prefix {
		return fmt.Errorf("prefix must not include surrounding whitespace")
	}
	if !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("prefix must begin with /")
	}
	if !strings.HasSuffix(prefix, "/") {
		return fmt.Errorf("prefix must end with /")
	}
	if strings.ContainsAny(prefix, "{}*") {
		return fmt.Errorf("prefix must be a literal path")
	}
	return nil
}

func slashlessPrefixAlias(prefix string) string {
	return strings.TrimSuffix(prefix, "/")
}

func redirectByAuth(authenticated func(*http.Request) bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if authenticated(r) {
			httpx.WriteRedirect(w, r, defaultHomePath)
			return
		}
		httpx.WriteRedirect(w, r, defaultLoginPath)
	}
}

func requireAuth(authenticated func(*http.Request) bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if next == nil {
			return http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !authenticated(r) {
				httpx.WriteRedirect(w, r, defaultLoginPath)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func wrapProtectedModule(authenticated func(*http.Request) bool, policy requestmeta.SchemePolicy) func(http.Handler) http.Handler {
	authWrap := requireAuth(authenticated)
	csrfWrap := requireCookieSessionSameOrigin(policy)
	return func(next http.Handler) http.Handler {
		return authWrap(csrfWrap(next))
	}
}

func requireCookieSessionSameOrigin(policy requestmeta.SchemePolicy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !isMutationMethod(r) || !hasSessionCookie(r) {
				next.ServeHTTP(w, r)
				return
			}
			if !requestmeta.HasSameOriginProofWithPolicy(r, policy) {
				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func isMutationMethod(r *http.Request) bool {
	if r == nil {
		return false
	}
	switch r.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	default:
		return false
	}
}

func hasSessionCookie(r *http.Request) bool {
	_, ok := sessioncookie.Session.Read(r)
	return ok
}
