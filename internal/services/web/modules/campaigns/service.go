package campaigns

import (
	"context"
	"strings"
	"time"

	"github.com/adreach/console/internal/services/web/integration/advapi"
	"github.com/adreach/console/internal/services/web/modules/campaigns/wizard"
	apperrors "github.com/adreach/console/internal/services/web/platform/errors"
	"github.com/adreach/console/internal/services/web/platform/ttlstore"
)

// DraftTTL bounds how long an abandoned wizard draft is kept.
const DraftTTL = 30 * time.Minute

const keyNameRequired = "campaigns.warning.name_required"

type service struct {
	gateway CampaignGateway
	drafts  *ttlstore.Store[wizard.State]
}

func newService(gateway CampaignGateway) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway, drafts: ttlstore.New[wizard.State](DraftTTL)}
}

func (s service) listCampaigns(ctx context.Context) ([]advapi.Campaign, error) {
	return s.gateway.ListCampaigns(ctx)
}

func (s service) loadCampaign(ctx context.Context, campaignID string) (advapi.Campaign, error) {
	return s.gateway.LoadCampaign(ctx, campaignID)
}

// advertiserID returns known when set, otherwise the id from the profile.
func (s service) advertiserID(ctx context.Context, known string) (string, error) {
	if known = strings.TrimSpace(known); known != "" {
		return known, nil
	}
	user, err := s.gateway.LoadProfile(ctx)
	if err != nil {
		return "", err
	}
	if id := strings.TrimSpace(user.ID); id != "" {
		return id, nil
	}
	return "", apperrors.EK(apperrors.KindMalformed, advapi.KeyMalformed, "profile has no advertiser id")
}

// rename rejects blank names without calling the API.
func (s service) rename(ctx context.Context, campaignID string, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return apperrors.EK(apperrors.KindInvalidInput, keyNameRequired, "campaign name is required")
	}
	return s.gateway.RenameCampaign(ctx, campaignID, name)
}

func (s service) draft(key string) wizard.State {
	state, _ := s.drafts.Get(key)
	return state
}

// apply runs one wizard event, performs the requested upstream call and
// stores the resulting state. The returned error is the upstream failure.
func (s service) apply(ctx context.Context, key string, event wizard.Event) (wizard.State, wizard.Effect, error) {
	next, effect := wizard.Transition(s.draft(key), event)
	var callErr error
	switch effect.Kind {
	case wizard.EffectLoadPlans:
		plans, err := s.gateway.ListPlans(ctx)
		if err != nil {
			callErr = err
			next, effect = wizard.Transition(next, wizard.Event{Kind: wizard.EventPlansFailed})
			break
		}
		next, effect = wizard.Transition(next, wizard.Event{Kind: wizard.EventPlansLoaded, Plans: plans})
	case wizard.EffectCreate:
		if err := s.gateway.CreateCampaign(ctx, effect.Draft.NewCampaign(effect.PlanID)); err != nil {
			callErr = err
			next, effect = wizard.Transition(next, wizard.Event{Kind: wizard.EventCreateFailed})
			break
		}
		next, effect = wizard.Transition(next, wizard.Event{Kind: wizard.EventCreated})
	}
	if effect.Kind == wizard.EffectReset {
		s.drafts.Delete(key)
	} else {
		s.drafts.Put(key, next)
	}
	return next, effect, callErr
}
