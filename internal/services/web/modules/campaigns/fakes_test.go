package campaigns

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"net/url"
	"strings"
	"sync"

	"github.com/adreach/console/internal/services/web/integration/advapi"
	module "github.com/adreach/console/internal/services/web/module"
	apperrors "github.com/adreach/console/internal/services/web/platform/errors"
	"github.com/adreach/console/internal/services/web/platform/modulehandler"
)

// fakeGateway records campaign calls and returns canned answers.
type fakeGateway struct {
	mu        sync.Mutex
	campaigns []advapi.Campaign
	plans     []advapi.Plan
	profile   advapi.User
	listErr   error
	plansErr  error
	createErr error
	renameErr error
	created   []advapi.NewCampaign
	renamed   []string
	planCalls int
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		campaigns: []advapi.Campaign{{
			ID: "camp-1", Name: "Spring Launch", Type: "cpi", Status: "active", PackageName: "com.example.app",
			BudgetTotal: 10000, BudgetSpent: 2500, Target: 1000, InstallsCount: 250, CampDay: 7,
		}},
		plans: []advapi.Plan{
			{ID: "plan-1", PlanType: "Starter", PlanAmount: 999, Installs: 100},
			{ID: "plan-2", PlanType: "Growth", PlanAmount: 4999, Installs: 600},
		},
		profile: advapi.User{ID: "adv-from-profile", Name: "Asha"},
	}
}

func (f *fakeGateway) ListCampaigns(context.Context) ([]advapi.Campaign, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.campaigns, f.listErr
}

func (f *fakeGateway) LoadCampaign(_ context.Context, campaignID string) (advapi.Campaign, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, campaign := range f.campaigns {
		if campaign.ID == campaignID {
			return campaign, nil
		}
	}
	return advapi.Campaign{}, errNotFound()
}

func (f *fakeGateway) RenameCampaign(_ context.Context, campaignID string, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.renamed = append(f.renamed, campaignID+":"+name)
	return f.renameErr
}

func (f *fakeGateway) ListPlans(context.Context) ([]advapi.Plan, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.planCalls++
	return f.plans, f.plansErr
}

func (f *fakeGateway) CreateCampaign(_ context.Context, input advapi.NewCampaign) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, input)
	return f.createErr
}

func (f *fakeGateway) LoadProfile(context.Context) (advapi.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.profile, nil
}

// campaignHarness serves both campaign surfaces for one signed-in session.
type campaignHarness struct {
	list         http.Handler
	details      http.Handler
	gateway      *fakeGateway
	advertiserID string
	expired      int
}

func newCampaignHarness(gateway *fakeGateway, advertiserID string) *campaignHarness {
	h := &campaignHarness{gateway: gateway, advertiserID: advertiserID}
	base := modulehandler.NewBase(module.Dependencies{
		ResolveUserID: func(*http.Request) string { return h.advertiserID },
		ExpireSession: func(w http.ResponseWriter, r *http.Request) {
			h.expired++
			http.Redirect(w, r, "/login", http.StatusFound)
		},
	})
	list, err := New(WithGateway(gateway), WithBase(base)).Mount()
	if err != nil {
		panic(err)
	}
	details, err := NewDetails(WithGateway(gateway), WithBase(base)).Mount()
	if err != nil {
		panic(err)
	}
	h.list = list.Handler
	h.details = details.Handler
	return h
}

func (h *campaignHarness) serve(req *http.Request) *httptest.ResponseRecorder {
	req.AddCookie(&http.Cookie{Name: "adv_session", Value: "sess-1"})
	rr := httptest.NewRecorder()
	if strings.HasPrefix(req.URL.Path, "/dashboard/campaigns-details") {
		h.details.ServeHTTP(rr, req)
	} else {
		h.list.ServeHTTP(rr, req)
	}
	return rr
}

func (h *campaignHarness) get(target string) *httptest.ResponseRecorder {
	return h.serve(httptest.NewRequest(http.MethodGet, target, nil))
}

func (h *campaignHarness) postForm(target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return h.serve(req)
}

// logoUpload is one file part of a multipart details submission.
type logoUpload struct {
	name        string
	contentType string
	data        []byte
}

func (h *campaignHarness) postDetails(target string, fields map[string]string, logo *logoUpload) *httptest.ResponseRecorder {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for key, value := range fields {
		_ = writer.WriteField(key, value)
	}
	if logo != nil {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="appLogo"; filename="`+logo.name+`"`)
		header.Set("Content-Type", logo.contentType)
		part, _ := writer.CreatePart(header)
		_, _ = part.Write(logo.data)
	}
	_ = writer.Close()
	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return h.serve(req)
}

func validDetails() map[string]string {
	return map[string]string{
		"name":        "Summer Push",
		"type":        "cpi",
		"packageName": "com.example.summer",
		"campDay":     "10",
	}
}

func pngUpload() *logoUpload {
	return &logoUpload{name: "logo.png", contentType: "image/png", data: []byte("\x89PNG\r\n\x1a\nlogo")}
}

func errNotFound() error {
	return apperrors.Server(apperrors.KindNotFound, advapi.KeyUpstream, "Campaign not found")
}
