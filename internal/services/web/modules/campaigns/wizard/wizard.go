// Package wizard models the two-step campaign creation form as a pure
// reducer. Handlers feed it events and perform the returned effect.
package wizard

import (
	"slices"
	"strconv"
	"strings"

	"github.com/adreach/console/internal/services/web/integration/advapi"
)

const (
	// MaxLogoBytes is the largest accepted app logo upload.
	MaxLogoBytes = 5 << 20
	// DefaultCampDay is the campaign duration used when the field is blank.
	DefaultCampDay = 7
	// DefaultType is the campaign type used when the field is blank.
	DefaultType = "cpi"
)

// Form field names shared by the reducer, handlers and templates.
const (
	FieldName        = "name"
	FieldType        = "type"
	FieldPackageName = "packageName"
	FieldCampDay     = "campDay"
	FieldAppLogo     = "appLogo"
	FieldPlanID      = "planId"
)

// Field error and warning keys emitted by the reducer.
const (
	KeyNameRequired    = "wizard.error.name"
	KeyTypeInvalid     = "wizard.error.type"
	KeyPackageRequired = "wizard.error.package_name"
	KeyCampDayInvalid  = "wizard.error.camp_day"
	KeyLogoRequired    = "wizard.error.logo_required"
	KeyLogoTooLarge    = "wizard.error.logo_size"
	KeyLogoNotImage    = "wizard.error.logo_type"
	KeySelectPlan      = "wizard.warning.select_plan"
	KeyIncomplete      = "wizard.warning.incomplete"
)

// Step is the visible wizard stage.
type Step int

const (
	StepDetails Step = iota
	StepPlan
)

func (s Step) String() string {
	switch s {
	case StepDetails:
		return "details"
	case StepPlan:
		return "plan"
	default:
		return "unknown"
	}
}

// Logo is an uploaded app logo.
type Logo struct {
	Name        string
	ContentType string
	Size        int64
	Data        []byte
}

// Empty reports whether no file was uploaded.
func (l Logo) Empty() bool {
	return l.Size == 0 && len(l.Data) == 0
}

// Draft is a validated set of step-one values.
type Draft struct {
	Name        string
	Type        string
	PackageName string
	CampDay     int
	Logo        Logo
}

// Complete reports whether every step-one field is present.
func (d Draft) Complete() bool {
	return d.Name != "" && advapi.IsCampaignType(d.Type) && d.PackageName != "" && d.CampDay > 0 && !d.Logo.Empty()
}

// NewCampaign converts the draft into the create request for planID.
func (d Draft) NewCampaign(planID string) advapi.NewCampaign {
	return advapi.NewCampaign{
		PlanID:      planID,
		Name:        d.Name,
		Type:        d.Type,
		PackageName: d.PackageName,
		CampDay:     d.CampDay,
		Logo: advapi.LogoFile{
			Name:        d.Logo.Name,
			ContentType: d.Logo.ContentType,
			Data:        d.Logo.Data,
		},
	}
}

// Input is the raw step-one form submission. Logo is empty when no file was
// chosen.
type Input struct {
	Name        string
	Type        string
	PackageName string
	CampDay     string
	Logo        Logo
}

// FieldErrors maps form field names to localization keys.
type FieldErrors map[string]string

// State is the wizard progress of one session.
type State struct {
	Step   Step
	Draft  Draft
	Plans  []advapi.Plan
	PlanID string
}

// EventKind enumerates reducer inputs.
type EventKind int

const (
	EventSubmitDetails EventKind = iota + 1
	EventPlansLoaded
	EventPlansFailed
	EventPreselect
	EventSelectPlan
	EventCreated
	EventCreateFailed
	EventBack
	EventCancel
)

// Event is one input to Transition.
type Event struct {
	Kind   EventKind
	Input  Input
	Plans  []advapi.Plan
	PlanID string
}

// EffectKind tells the caller what to do after a transition.
type EffectKind int

const (
	EffectNone EffectKind = iota
	// EffectReject re-renders the current step with Effect.Errors or Effect.Key.
	EffectReject
	// EffectLoadPlans fetches the plan list for step two.
	EffectLoadPlans
	// EffectCreate submits Effect.Draft under Effect.PlanID.
	EffectCreate
	// EffectReset discards the stored draft.
	EffectReset
)

// Effect is the side effect requested by a transition.
type Effect struct {
	Kind   EffectKind
	Errors FieldErrors
	Key    string
	Draft  Draft
	PlanID string
}

// ParseDetails validates a step-one submission. A missing upload keeps the
// logo of the previous draft.
func ParseDetails(input Input, previous Draft) (Draft, FieldErrors) {
	errs := FieldErrors{}
	draft := Draft{
		Name:        strings.TrimSpace(input.Name),
		Type:        strings.ToLower(strings.TrimSpace(input.Type)),
		PackageName: strings.TrimSpace(input.PackageName),
		CampDay:     DefaultCampDay,
	}
	if draft.Name == "" {
		errs[FieldName] = KeyNameRequired
	}
	if draft.Type == "" {
		draft.Type = DefaultType
	}
	if !advapi.IsCampaignType(draft.Type) {
		errs[FieldType] = KeyTypeInvalid
	}
	if draft.PackageName == "" {
		errs[FieldPackageName] = KeyPackageRequired
	}
	if raw := strings.TrimSpace(input.CampDay); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil || days <= 0 {
			errs[FieldCampDay] = KeyCampDayInvalid
			days = 0
		}
		draft.CampDay = days
	}
	switch logo := input.Logo; {
	case logo.Empty() && previous.Logo.Empty():
		errs[FieldAppLogo] = KeyLogoRequired
	case logo.Empty():
		draft.Logo = previous.Logo
	case logo.Size > MaxLogoBytes || int64(len(logo.Data)) > MaxLogoBytes:
		errs[FieldAppLogo] = KeyLogoTooLarge
	case !strings.HasPrefix(strings.ToLower(strings.TrimSpace(logo.ContentType)), "image/"):
		errs[FieldAppLogo] = KeyLogoNotImage
	default:
		draft.Logo = logo
	}
	if len(errs) == 0 {
		return draft, nil
	}
	return draft, errs
}

// HasPlan reports whether planID is one of the fetched plans.
func (s State) HasPlan(planID string) bool {
	return planID != "" && slices.ContainsFunc(s.Plans, func(plan advapi.Plan) bool { return plan.ID == planID })
}

// Transition applies event to state.
func Transition(state State, event Event) (State, Effect) {
	switch event.Kind {
	case EventSubmitDetails:
		draft, errs := ParseDetails(event.Input, state.Draft)
		next := State{Step: StepDetails, Draft: draft, PlanID: state.PlanID}
		if errs != nil {
			return next, Effect{Kind: EffectReject, Errors: errs}
		}
		return next, Effect{Kind: EffectLoadPlans}

	case EventPlansLoaded:
		if !state.Draft.Complete() {
			return State{Step: StepDetails, Draft: state.Draft}, Effect{Kind: EffectReject, Key: KeyIncomplete}
		}
		next := State{Step: StepPlan, Draft: state.Draft, Plans: event.Plans}
		if next.HasPlan(state.PlanID) {
			next.PlanID = state.PlanID
		}
		return next, Effect{}

	case EventPlansFailed:
		return State{Step: StepDetails, Draft: state.Draft, PlanID: state.PlanID}, Effect{}

	case EventPreselect:
		state.PlanID = strings.TrimSpace(event.PlanID)
		return state, Effect{}

	case EventSelectPlan:
		if state.Step != StepPlan || !state.Draft.Complete() {
			return State{Step: StepDetails, Draft: state.Draft}, Effect{Kind: EffectReject, Key: KeyIncomplete}
		}
		planID := strings.TrimSpace(event.PlanID)
		if !state.HasPlan(planID) {
			state.PlanID = ""
			return state, Effect{Kind: EffectReject, Key: KeySelectPlan}
		}
		state.PlanID = planID
		return state, Effect{Kind: EffectCreate, Draft: state.Draft, PlanID: planID}

	case EventCreated, EventCancel:
		return State{}, Effect{Kind: EffectReset}

	case EventCreateFailed:
		return state, Effect{}

	case EventBack:
		state.Step = StepDetails
		return state, Effect{}
	}
	return state, Effect{}
}
