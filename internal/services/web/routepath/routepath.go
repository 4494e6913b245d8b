// Package routepath stores canonical HTTP paths for web modules.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root             = "/"
	Health           = "/up"
	StaticPrefix     = "/static/"
	Login            = "/login"
	LoginPrefix      = "/login/"
	LoginOTP         = "/login/otp"
	LoginVerify      = "/login/verify"
	LoginResend      = "/login/resend"
	LoginChangePhone = "/login/change-phone"
	Logout           = "/logout"

	Dashboard       = "/dashboard"
	DashboardPrefix = "/dashboard/"
	PlanList        = "/dashboard/plan-list"
	SectionPattern  = DashboardPrefix + "{section}"

	Campaigns                = "/dashboard/campaigns"
	CampaignsPrefix          = "/dashboard/campaigns/"
	CampaignListPattern      = CampaignsPrefix + "{advertiserID}"
	CampaignNewPattern       = CampaignsPrefix + "{advertiserID}/new"
	CampaignNewPlanPattern   = CampaignsPrefix + "{advertiserID}/new/plan"
	CampaignNewBackPattern   = CampaignsPrefix + "{advertiserID}/new/back"
	CampaignNewCancelPattern = CampaignsPrefix + "{advertiserID}/new/cancel"
	CampaignDetailsRoot      = "/dashboard/campaigns-details"
	CampaignDetailsPrefix    = CampaignDetailsRoot + "/"
	CampaignDetailsPattern   = CampaignDetailsPrefix + "{campaignID}"
	CampaignRenamePattern    = CampaignDetailsPrefix + "{campaignID}/rename"

	Profile       = "/profile-page"
	ProfilePrefix = "/profile-page/"
	ProfileName   = "/profile-page/name"
	ProfileWallet = "/profile-page/wallet"

	// PlanQueryKey preselects a plan when opening the campaign wizard.
	PlanQueryKey = "plan"
)

// Sections lists the placeholder dashboard sections.
var Sections = []string{"users", "products", "analytics", "messages", "settings"}

// Section returns the placeholder page route for one dashboard section.
func Section(name string) string {
	return DashboardPrefix + escapeSegment(name)
}

// CampaignList returns the campaign list route for one advertiser.
func CampaignList(advertiserID string) string {
	return CampaignsPrefix + escapeSegment(advertiserID)
}

// CampaignNew returns the campaign wizard route.
func CampaignNew(advertiserID string) string {
	return CampaignList(advertiserID) + "/new"
}

// CampaignNewWithPlan returns the wizard route with a preselected plan.
func CampaignNewWithPlan(advertiserID string, planID string) string {
	planID = strings.TrimSpace(planID)
	if planID == "" {
		return CampaignNew(advertiserID)
	}
	return CampaignNew(advertiserID) + "?" + url.Values{PlanQueryKey: []string{planID}}.Encode()
}

// CampaignNewPlan returns the wizard plan step route.
func CampaignNewPlan(advertiserID string) string {
	return CampaignNew(advertiserID) + "/plan"
}

// CampaignNewBack returns the wizard back action route.
func CampaignNewBack(advertiserID string) string {
	return CampaignNew(advertiserID) + "/back"
}

// CampaignNewCancel returns the wizard cancel action route.
func CampaignNewCancel(advertiserID string) string {
	return CampaignNew(advertiserID) + "/cancel"
}

// CampaignDetails returns the detail route for one campaign.
func CampaignDetails(campaignID string) string {
	return CampaignDetailsPrefix + escapeSegment(campaignID)
}

// CampaignRename returns the rename action route for one campaign.
func CampaignRename(campaignID string) string {
	return CampaignDetails(campaignID) + "/rename"
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}
