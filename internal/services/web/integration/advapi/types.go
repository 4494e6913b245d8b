package advapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Number decodes JSON numbers that the API sometimes sends as strings.
type Number float64

// UnmarshalJSON accepts 12, 12.5, "12", "" and null.
func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*n = 0
		return nil
	}
	if data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			*n = 0
			return nil
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("parse number %q: %w", raw, err)
		}
		*n = Number(value)
		return nil
	}
	var value float64
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	*n = Number(value)
	return nil
}

// Float returns n as float64.
func (n Number) Float() float64 { return float64(n) }

// Int returns n truncated to an int.
func (n Number) Int() int { return int(n) }

// User is the advertiser account returned by OTP verification and the profile endpoint.
type User struct {
	ID        string `json:"_id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`
	Wallet    Number `json:"wallet"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// OTPChallenge is the answer to a login request.
type OTPChallenge struct {
	Message string
	// OTP is echoed by development deployments of the API.
	OTP string
}

// Plan is a purchasable campaign package.
type Plan struct {
	ID         string `json:"_id"`
	PlanType   string `json:"planType"`
	PlanAmount Number `json:"planAmount"`
	Installs   Number `json:"installs"`
}

// Campaign is one advertiser campaign.
type Campaign struct {
	ID             string `json:"_id"`
	Name           string `json:"name"`
	Type           string `json:"type"`
	PackageName    string `json:"packageName"`
	AppLogo        string `json:"appLogo"`
	BudgetTotal    Number `json:"budgetTotal"`
	BudgetSpent    Number `json:"budgetSpent"`
	Target         Number `json:"target"`
	InstallsCount  Number `json:"installsCount"`
	ReviewCount    Number `json:"reviewCount"`
	CostPerInstall Number `json:"costPerInstall"`
	Status         string `json:"status"`
	CampDay        Number `json:"campDay"`
	CreatedAt      string `json:"createdAt"`
	UpdatedAt      string `json:"updatedAt"`
}

// LogoFile is an uploaded app logo.
type LogoFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// NewCampaign is the payload of a campaign creation.
type NewCampaign struct {
	PlanID      string
	Name        string
	Type        string
	PackageName string
	CampDay     int
	Logo        LogoFile
}

// AnalyticsFilter narrows the analytics report. Zero fields are omitted.
type AnalyticsFilter struct {
	StartDate string
	EndDate   string
	Statuses  []string
	Type      string
	MinBudget string
	MaxBudget string
	SortOrder string
}

// AnalyticsSummary aggregates all campaigns in the report.
type AnalyticsSummary struct {
	TotalCampaigns     Number `json:"totalCampaigns"`
	TotalBudget        Number `json:"totalBudget"`
	TotalSpent         Number `json:"totalSpent"`
	BudgetUtilization  Number `json:"budgetUtilization"`
	ActiveCampaigns    Number `json:"activeCampaigns"`
	CompletedCampaigns Number `json:"completedCampaigns"`
	PausedCampaigns    Number `json:"pausedCampaigns"`
	PendingCampaigns   Number `json:"pendingCampaigns"`
	TotalInstalls      Number `json:"totalInstalls"`
	AverageCTR         Number `json:"averageCTR"`
	AverageCPC         Number `json:"averageCPC"`
}

// CampaignPerformance is one campaign row of the report.
type CampaignPerformance struct {
	Name              string `json:"name"`
	Type              string `json:"type"`
	Status            string `json:"status"`
	BudgetTotal       Number `json:"budgetTotal"`
	BudgetSpent       Number `json:"budgetSpent"`
	BudgetUtilization Number `json:"budgetUtilization"`
	InstallsCount     Number `json:"installsCount"`
	CTR               Number `json:"ctr"`
}

// MonthlyPerformance is one month of the report series.
type MonthlyPerformance struct {
	Month         string `json:"month"`
	TotalSpent    Number `json:"totalSpent"`
	TotalInstalls Number `json:"totalInstalls"`
	TotalClicks   Number `json:"totalClicks"`
}

// StatusCount counts campaigns in one status.
type StatusCount struct {
	Status string `json:"status"`
	Count  Number `json:"count"`
}

// TypePerformance aggregates budget per campaign type.
type TypePerformance struct {
	Type        string `json:"type"`
	TotalBudget Number `json:"totalBudget"`
	TotalSpent  Number `json:"totalSpent"`
}

// Analytics is the full analytics report.
type Analytics struct {
	Summary            AnalyticsSummary      `json:"summary"`
	Campaigns          []CampaignPerformance `json:"campaigns"`
	MonthlyPerformance []MonthlyPerformance  `json:"monthlyPerformance"`
	StatusDistribution []StatusCount         `json:"statusDistribution"`
	PerformanceByType  []TypePerformance     `json:"performanceByType"`
}

// CampaignTypes lists the campaign types the API accepts, default first.
var CampaignTypes = []string{"cpi", "install", "review", "cpc", "cpm", "cpa"}

// CampaignStatuses lists the lifecycle states the API reports.
var CampaignStatuses = []string{"pending", "active", "approved", "completed", "paused"}

// IsCampaignType reports whether value is a known campaign type.
func IsCampaignType(value string) bool {
	return slices.Contains(CampaignTypes, value)
}

// IsCampaignStatus reports whether value is a known campaign status.
func IsCampaignStatus(value string) bool {
	return slices.Contains(CampaignStatuses, value)
}
