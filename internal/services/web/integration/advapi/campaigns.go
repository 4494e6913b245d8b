package advapi

import (
	"bytes"
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	apperrors "github.com/adreach/console/internal/services/web/platform/errors"
	"github.com/go-resty/resty/v2"
)

// Campaign endpoint paths.
const (
	PathCampaigns      = "/adv/campaign/getAll"
	PathPlans          = "/adv/campaign/get/plans"
	PathCampaignPrefix = "/adv/campaign/get/"
	PathCreatePrefix   = "/adv/campaign/create/"
	PathUpdatePrefix   = "/adv/campaign/update/"
)

// Campaigns lists the advertiser's campaigns.
func (s *Session) Campaigns(ctx context.Context) ([]Campaign, error) {
	env, err := s.do(ctx, call{name: "list_campaigns", method: http.MethodGet, path: PathCampaigns}, nil)
	if err != nil {
		return nil, err
	}
	var campaigns []Campaign
	if err := decodeData(env.Data, &campaigns); err != nil {
		return nil, err
	}
	return campaigns, nil
}

// Plans lists the purchasable plans.
func (s *Session) Plans(ctx context.Context) ([]Plan, error) {
	env, err := s.do(ctx, call{name: "list_plans", method: http.MethodGet, path: PathPlans}, nil)
	if err != nil {
		return nil, err
	}
	var plans []Plan
	if err := decodeData(env.Data, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

// Campaign loads one campaign.
func (s *Session) Campaign(ctx context.Context, id string) (Campaign, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Campaign{}, apperrors.E(apperrors.KindInvalidInput, "campaign id is required")
	}
	env, err := s.do(ctx, call{name: "get_campaign", method: http.MethodGet, path: PathCampaignPrefix + url.PathEscape(id)}, nil)
	if err != nil {
		return Campaign{}, err
	}
	var campaign Campaign
	if err := decodeData(env.Data, &campaign); err != nil {
		return Campaign{}, err
	}
	return campaign, nil
}

// CreateCampaign submits a multipart campaign creation for the chosen plan.
func (s *Session) CreateCampaign(ctx context.Context, input NewCampaign) error {
	planID := strings.TrimSpace(input.PlanID)
	if planID == "" {
		return apperrors.E(apperrors.KindInvalidInput, "plan id is required")
	}
	if len(input.Logo.Data) == 0 {
		return apperrors.E(apperrors.KindInvalidInput, "app logo is required")
	}
	contentType := strings.TrimSpace(input.Logo.ContentType)
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	fileName := strings.TrimSpace(input.Logo.Name)
	if fileName == "" {
		fileName = "logo"
	}
	_, err := s.do(ctx, call{name: "create_campaign", method: http.MethodPost, path: PathCreatePrefix + url.PathEscape(planID)}, func(r *resty.Request) *resty.Request {
		return r.
			SetMultipartFormData(map[string]string{
				"name":        input.Name,
				"type":        input.Type,
				"packageName": input.PackageName,
				"campDay":     strconv.Itoa(input.CampDay),
			}).
			SetMultipartField("appLogo", fileName, contentType, bytes.NewReader(input.Logo.Data))
	})
	return err
}

// RenameCampaign changes a campaign name.
func (s *Session) RenameCampaign(ctx context.Context, id string, name string) error {
	id = strings.TrimSpace(id)
	name = strings.TrimSpace(name)
	if id == "" || name == "" {
		return apperrors.E(apperrors.KindInvalidInput, "campaign id and name are required")
	}
	_, err := s.do(ctx, call{name: "rename_campaign", method: http.MethodPut, path: PathUpdatePrefix + url.PathEscape(id)}, func(r *resty.Request) *resty.Request {
		return r.SetBody(map[string]string{"name": name})
	})
	return err
}
