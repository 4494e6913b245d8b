package app

import (
	"fmt"
	"net/http"
	"strings"

	module "github.com/adreach/console/internal/services/web/module"
	"github.com/adreach/console/internal/services/web/platform/httpx"
	"github.com/adreach/console/internal/services/web/routepath"
)

// BuildRootHandler composes the module groups and adds the static and health
// routes.
func BuildRootHandler(cfg Config) (http.Handler, error) {
	root, err := Compose(ComposeInput{
		Authenticated:       cfg.Authenticated,
		PublicModules:       cfg.PublicModules,
		ProtectedModules:    cfg.ProtectedModules,
		RequestSchemePolicy: cfg.SchemePolicy,
	})
	if err != nil {
		return nil, err
	}
	if cfg.Static != nil {
		root.Handle(routepath.StaticPrefix+"*", http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(cfg.Static))))
	}
	modules := make([]module.Module, 0, len(cfg.PublicModules)+len(cfg.ProtectedModules))
	modules = append(modules, cfg.PublicModules...)
	modules = append(modules, cfg.ProtectedModules...)
	root.Get(routepath.Health, healthHandler(modules))
	return root, nil
}

// healthReport is the JSON form of the health route.
type healthReport struct {
	Status  string            `json:"status"`
	Modules map[string]string `json:"modules"`
}

// healthHandler answers 200 while the process serves traffic and lists the
// modules that report their own availability. Clients asking for JSON get a
// healthReport, everyone else plain text.
func healthHandler(modules []module.Module) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ids := make([]string, 0, len(modules))
		states := make(map[string]string, len(modules))
		for _, feature := range modules {
			reporter, ok := feature.(module.HealthReporter)
			if !ok {
				continue
			}
			state := "healthy"
			if !reporter.Healthy() {
				state = "degraded"
			}
			ids = append(ids, feature.ID())
			states[feature.ID()] = state
		}
		w.Header().Set("Cache-Control", "no-store")
		if strings.Contains(r.Header.Get("Accept"), "application/json") {
			_ = httpx.WriteJSON(w, http.StatusOK, healthReport{Status: "ok", Modules: states})
			return
		}
		var report strings.Builder
		report.WriteString("ok\n")
		for _, id := range ids {
			fmt.Fprintf(&report, "%s: %s\n", id, states[id])
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(report.String()))
	}
}
