package campaigns

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/adreach/console/internal/services/web/integration/advapi"
	"github.com/adreach/console/internal/services/web/modules/campaigns/wizard"
	apperrors "github.com/adreach/console/internal/services/web/platform/errors"
	"github.com/adreach/console/internal/services/web/platform/flash"
	"github.com/adreach/console/internal/services/web/platform/httpx"
	"github.com/adreach/console/internal/services/web/platform/sessioncookie"
	"github.com/adreach/console/internal/services/web/platform/weberror"
	"github.com/adreach/console/internal/services/web/routepath"
	webtemplates "github.com/adreach/console/internal/services/web/templates"
)

// maxDetailsBody leaves room for an oversized logo so the form still parses
// and the field error can be shown next to the kept values.
const maxDetailsBody = 2*wizard.MaxLogoBytes + 1<<20

// draftKey keys wizard drafts by the session handle.
func (h handlers) draftKey(r *http.Request) string {
	if id, ok := sessioncookie.Session.Read(r); ok {
		return id
	}
	return h.RequestUserID(r)
}

func (h handlers) handleWizard(w http.ResponseWriter, r *http.Request, advertiserID string) {
	key := h.draftKey(r)
	state := h.service.draft(key)
	if planID := strings.TrimSpace(r.URL.Query().Get(routepath.PlanQueryKey)); planID != "" {
		state, _, _ = h.service.apply(httpx.RequestContext(r), key, wizard.Event{Kind: wizard.EventPreselect, PlanID: planID})
	}
	h.renderDetails(w, r, http.StatusOK, h.detailsView(advertiserID, state.Draft, nil, ""))
}

func (h handlers) handleWizardDetails(w http.ResponseWriter, r *http.Request, advertiserID string) {
	input, err := readDetails(w, r)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if !errors.As(err, &tooLarge) {
			h.WriteError(w, r, apperrors.E(apperrors.KindInvalidInput, "parse campaign form: "+err.Error()))
			return
		}
		errs := wizard.FieldErrors{wizard.FieldAppLogo: wizard.KeyLogoTooLarge}
		h.renderDetails(w, r, http.StatusBadRequest, h.detailsView(advertiserID, draftFromInput(input), errs, ""))
		return
	}
	state, effect, callErr := h.service.apply(httpx.RequestContext(r), h.draftKey(r), wizard.Event{Kind: wizard.EventSubmitDetails, Input: input})
	if callErr != nil {
		if advapi.IsSessionExpired(callErr) {
			h.WriteError(w, r, callErr)
			return
		}
		loc, _ := h.PageLocalizer(r)
		h.renderDetails(w, r, failureStatus(callErr), h.detailsView(advertiserID, state.Draft, nil, weberror.PublicMessage(loc, callErr)))
		return
	}
	if effect.Kind == wizard.EffectReject {
		h.renderDetails(w, r, http.StatusBadRequest, h.detailsView(advertiserID, state.Draft, effect.Errors, ""))
		return
	}
	h.WriteRedirect(w, r, routepath.CampaignNewPlan(advertiserID))
}

func (h handlers) handleWizardPlan(w http.ResponseWriter, r *http.Request, advertiserID string) {
	state := h.service.draft(h.draftKey(r))
	if state.Step != wizard.StepPlan || !state.Draft.Complete() {
		h.WriteRedirect(w, r, routepath.CampaignNew(advertiserID))
		return
	}
	h.renderPlan(w, r, http.StatusOK, h.planView(advertiserID, state, "", ""))
}

func (h handlers) handleWizardSubmit(w http.ResponseWriter, r *http.Request, advertiserID string) {
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, apperrors.E(apperrors.KindInvalidInput, "parse plan form: "+err.Error()))
		return
	}
	state, effect, callErr := h.service.apply(httpx.RequestContext(r), h.draftKey(r), wizard.Event{Kind: wizard.EventSelectPlan, PlanID: r.FormValue(wizard.FieldPlanID)})
	if callErr != nil {
		if advapi.IsSessionExpired(callErr) {
			h.WriteError(w, r, callErr)
			return
		}
		loc, _ := h.PageLocalizer(r)
		h.renderPlan(w, r, failureStatus(callErr), h.planView(advertiserID, state, "", weberror.PublicMessage(loc, callErr)))
		return
	}
	switch {
	case effect.Kind == wizard.EffectReject && effect.Key == wizard.KeyIncomplete:
		h.WriteNoticeRedirect(w, r, flash.Notice{Kind: flash.KindWarning, Key: wizard.KeyIncomplete}, routepath.CampaignNew(advertiserID))
	case effect.Kind == wizard.EffectReject:
		h.renderPlan(w, r, http.StatusBadRequest, h.planView(advertiserID, state, effect.Key, ""))
	default:
		h.WriteNoticeRedirect(w, r, flash.NoticeSuccess(keyCreated), routepath.CampaignList(advertiserID))
	}
}

func (h handlers) handleWizardBack(w http.ResponseWriter, r *http.Request, advertiserID string) {
	_, _, _ = h.service.apply(httpx.RequestContext(r), h.draftKey(r), wizard.Event{Kind: wizard.EventBack})
	h.WriteRedirect(w, r, routepath.CampaignNew(advertiserID))
}

func (h handlers) handleWizardCancel(w http.ResponseWriter, r *http.Request, advertiserID string) {
	_, _, _ = h.service.apply(httpx.RequestContext(r), h.draftKey(r), wizard.Event{Kind: wizard.EventCancel})
	h.WriteRedirect(w, r, routepath.CampaignList(advertiserID))
}

// readDetails parses the multipart step-one form. An oversized body is
// reported as an error; an oversized file inside the limit is left to the
// reducer.
func readDetails(w http.ResponseWriter, r *http.Request) (wizard.Input, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxDetailsBody)
	if err := r.ParseMultipartForm(wizard.MaxLogoBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return wizard.Input{}, err
	}
	input := wizard.Input{
		Name:        r.FormValue(wizard.FieldName),
		Type:        r.FormValue(wizard.FieldType),
		PackageName: r.FormValue(wizard.FieldPackageName),
		CampDay:     r.FormValue(wizard.FieldCampDay),
	}
	file, header, err := r.FormFile(wizard.FieldAppLogo)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return input, nil
		}
		return input, err
	}
	defer file.Close()
	input.Logo = wizard.Logo{
		Name:        header.Filename,
		ContentType: strings.TrimSpace(header.Header.Get("Content-Type")),
		Size:        header.Size,
	}
	if header.Size > wizard.MaxLogoBytes {
		return input, nil
	}
	data, err := io.ReadAll(io.LimitReader(file, wizard.MaxLogoBytes+1))
	if err != nil {
		return input, err
	}
	input.Logo.Data = data
	if input.Logo.ContentType == "" || input.Logo.ContentType == "application/octet-stream" {
		input.Logo.ContentType = http.DetectContentType(data)
	}
	return input, nil
}

func draftFromInput(input wizard.Input) wizard.Draft {
	days, _ := strconv.Atoi(strings.TrimSpace(input.CampDay))
	return wizard.Draft{
		Name:        strings.TrimSpace(input.Name),
		Type:        strings.ToLower(strings.TrimSpace(input.Type)),
		PackageName: strings.TrimSpace(input.PackageName),
		CampDay:     days,
	}
}

func (h handlers) detailsView(advertiserID string, draft wizard.Draft, errs wizard.FieldErrors, message string) webtemplates.WizardDetailsView {
	kind := draft.Type
	if kind == "" {
		kind = wizard.DefaultType
	}
	campDay := ""
	switch {
	case draft.CampDay > 0:
		campDay = strconv.Itoa(draft.CampDay)
	case errs[wizard.FieldCampDay] == "":
		campDay = strconv.Itoa(wizard.DefaultCampDay)
	}
	view := webtemplates.WizardDetailsView{
		Action:        routepath.CampaignNew(advertiserID),
		CancelAction:  routepath.CampaignNewCancel(advertiserID),
		Name:          draft.Name,
		Type:          kind,
		PackageName:   draft.PackageName,
		CampDay:       campDay,
		LogoName:      draft.Logo.Name,
		FieldErrors:   errs,
		ServerMessage: message,
	}
	for _, option := range advapi.CampaignTypes {
		view.Types = append(view.Types, webtemplates.Option{Value: option, Label: strings.ToUpper(option), Selected: option == kind})
	}
	return view
}

func (h handlers) planView(advertiserID string, state wizard.State, warningKey string, message string) webtemplates.WizardPlanView {
	view := webtemplates.WizardPlanView{
		Action:        routepath.CampaignNewPlan(advertiserID),
		BackAction:    routepath.CampaignNewBack(advertiserID),
		CancelAction:  routepath.CampaignNewCancel(advertiserID),
		Name:          state.Draft.Name,
		Type:          strings.ToUpper(state.Draft.Type),
		PackageName:   state.Draft.PackageName,
		CampDay:       strconv.Itoa(state.Draft.CampDay),
		LogoName:      state.Draft.Logo.Name,
		WarningKey:    warningKey,
		ServerMessage: message,
	}
	for _, plan := range state.Plans {
		view.Plans = append(view.Plans, webtemplates.PlanRow{
			ID:       plan.ID,
			Type:     plan.PlanType,
			Amount:   plan.PlanAmount.Float(),
			Installs: plan.Installs.Float(),
			Selected: plan.ID == state.PlanID,
		})
	}
	return view
}

func (h handlers) renderDetails(w http.ResponseWriter, r *http.Request, status int, view webtemplates.WizardDetailsView) {
	loc, _ := h.PageLocalizer(r)
	h.WritePage(w, r, webtemplates.T(loc, "wizard.heading"), status, webtemplates.WizardDetailsPage(view, loc))
}

func (h handlers) renderPlan(w http.ResponseWriter, r *http.Request, status int, view webtemplates.WizardPlanView) {
	loc, _ := h.PageLocalizer(r)
	h.WritePage(w, r, webtemplates.T(loc, "wizard.heading"), status, webtemplates.WizardPlanPage(view, loc))
}
