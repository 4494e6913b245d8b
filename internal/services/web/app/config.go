package app

import (
	"io/fs"
	"net/http"

	module "github.com/adreach/console/internal/services/web/module"
	"github.com/adreach/console/internal/services/web/platform/requestmeta"
)

// Config captures the composition inputs for the web root handler.
type Config struct {
	// Authenticated reports whether a request carries the session flag.
	Authenticated    func(*http.Request) bool
	PublicModules    []module.Module
	ProtectedModules []module.Module
	SchemePolicy     requestmeta.SchemePolicy
	// Static is served under /static/ when set.
	Static fs.FS
}
