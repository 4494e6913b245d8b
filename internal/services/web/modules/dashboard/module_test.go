package dashboard

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	module "github.com/adreach/console/internal/services/web/module"
	apperrors "github.com/adreach/console/internal/services/web/platform/errors"
	"github.com/adreach/console/internal/services/web/platform/modulehandler"
	"github.com/adreach/console/internal/services/web/routepath"
)

func serve(t *testing.T, m Module, method string, target string) *httptest.ResponseRecorder {
	t.Helper()
	mount, err := m.Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != routepath.DashboardPrefix {
		t.Fatalf("prefix = %q", mount.Prefix)
	}
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, httptest.NewRequest(method, target, nil))
	return rr
}

func TestDashboardRendersAnalytics(t *testing.T) {
	t.Parallel()

	gateway := newPopulatedFakeGateway()
	rr := serve(t, New(WithGateway(gateway), WithBase(modulehandler.NewTestBase())), http.MethodGet, routepath.Dashboard)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	for _, marker := range []string{"Spring Launch", "2026-02", `badge badge-success`, `name="startDate"`, `name="status"`} {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing %q: %q", marker, body)
		}
	}
	if strings.Contains(body, `class="chips"`) {
		t.Fatal("no filters means no chips")
	}
	if gateway.lastFilter.Query().Encode() != "" {
		t.Fatalf("filter query = %q, want empty", gateway.lastFilter.Query().Encode())
	}
}

func TestDashboardForwardsFiltersAndShowsChips(t *testing.T) {
	t.Parallel()

	gateway := newPopulatedFakeGateway()
	rr := serve(t, New(WithGateway(gateway), WithBase(modulehandler.NewTestBase())), http.MethodGet, "/dashboard?status=active&status=paused&type=cpi&sortOrder=asc")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if got := gateway.lastFilter.Statuses; len(got) != 2 || got[0] != "active" || got[1] != "paused" {
		t.Fatalf("statuses = %v", got)
	}
	if gateway.lastFilter.Type != "cpi" || gateway.lastFilter.SortOrder != "asc" {
		t.Fatalf("filter = %+v", gateway.lastFilter)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `class="chips"`) || !strings.Contains(body, `value="cpi" selected`) {
		t.Fatalf("body missing active filter markers: %q", body)
	}
}

func TestDashboardLoadFailureRendersRetry(t *testing.T) {
	t.Parallel()

	gateway := &fakeGateway{err: apperrors.EK(apperrors.KindUnavailable, "error.api_unavailable", "dial tcp: refused")}
	rr := serve(t, New(WithGateway(gateway), WithBase(modulehandler.NewTestBase())), http.MethodGet, "/dashboard?type=cpi")
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusServiceUnavailable)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `id="app-error-state"`) || !strings.Contains(body, `href="/dashboard?type=cpi"`) {
		t.Fatalf("body missing retry state: %q", body)
	}
}

func TestDashboardExpiresRejectedSession(t *testing.T) {
	t.Parallel()

	expired := false
	base := modulehandler.NewBase(module.Dependencies{
		ExpireSession: func(w http.ResponseWriter, r *http.Request) {
			expired = true
			http.Redirect(w, r, routepath.Login, http.StatusFound)
		},
	})
	gateway := &fakeGateway{err: apperrors.Server(apperrors.KindUnauthorized, "error.session_expired", "Unauthorized")}
	rr := serve(t, New(WithGateway(gateway), WithBase(base)), http.MethodGet, routepath.Dashboard)
	if !expired || rr.Code != http.StatusFound || rr.Header().Get("Location") != routepath.Login {
		t.Fatalf("expired = %v response = %d %q", expired, rr.Code, rr.Header().Get("Location"))
	}
}

func TestSectionsRenderPlaceholders(t *testing.T) {
	t.Parallel()

	m := New(WithGateway(newPopulatedFakeGateway()), WithBase(modulehandler.NewTestBase()))
	for _, section := range routepath.Sections {
		rr := serve(t, m, http.MethodGet, routepath.Section(section))
		if rr.Code != http.StatusOK {
			t.Fatalf("section %s: status = %d", section, rr.Code)
		}
	}
	for _, target := range []string{"/dashboard/unknown", "/dashboard/users/extra"} {
		rr := serve(t, m, http.MethodGet, target)
		if rr.Code != http.StatusNotFound {
			t.Fatalf("%s: status = %d, want %d", target, rr.Code, http.StatusNotFound)
		}
	}
}

func TestModuleHealth(t *testing.T) {
	t.Parallel()

	if New().Healthy() {
		t.Fatal("module without gateway must be unhealthy")
	}
	if New(WithGateway(NewAPIGateway(nil))).Healthy() {
		t.Fatal("unavailable gateway must be unhealthy")
	}
	if !New(WithGateway(newPopulatedFakeGateway())).Healthy() {
		t.Fatal("configured gateway must be healthy")
	}
	rr := serve(t, New(WithBase(modulehandler.NewTestBase())), http.MethodGet, routepath.Dashboard)
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("degraded status = %d, want %d", rr.Code, http.StatusServiceUnavailable)
	}
}
