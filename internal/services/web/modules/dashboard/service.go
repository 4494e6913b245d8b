package dashboard

import (
	"context"

	"github.com/adreach/console/internal/services/web/integration/advapi"
	webtemplates "github.com/adreach/console/internal/services/web/templates"
)

type service struct {
	gateway AnalyticsGateway
}

func newService(gateway AnalyticsGateway) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway}
}

func (s service) loadAnalytics(ctx context.Context, filter advapi.AnalyticsFilter) (advapi.Analytics, error) {
	return s.gateway.LoadAnalytics(ctx, filter)
}

// dashboardView projects the analytics report onto the page view.
func dashboardView(report advapi.Analytics, loc webtemplates.Localizer) webtemplates.DashboardView {
	summary := report.Summary
	view := webtemplates.DashboardView{
		Summary: []webtemplates.SummaryStat{
			{LabelKey: "dashboard.summary.total_campaigns", Value: webtemplates.FormatNumber(loc, summary.TotalCampaigns.Float())},
			{LabelKey: "dashboard.summary.total_budget", Value: webtemplates.FormatINR(loc, summary.TotalBudget.Float())},
			{LabelKey: "dashboard.summary.total_spent", Value: webtemplates.FormatINR(loc, summary.TotalSpent.Float())},
			{LabelKey: "dashboard.summary.budget_utilization", Value: webtemplates.FormatPercent(loc, summary.BudgetUtilization.Float())},
			{LabelKey: "dashboard.summary.active", Value: webtemplates.FormatNumber(loc, summary.ActiveCampaigns.Float())},
			{LabelKey: "dashboard.summary.completed", Value: webtemplates.FormatNumber(loc, summary.CompletedCampaigns.Float())},
			{LabelKey: "dashboard.summary.paused", Value: webtemplates.FormatNumber(loc, summary.PausedCampaigns.Float())},
			{LabelKey: "dashboard.summary.pending", Value: webtemplates.FormatNumber(loc, summary.PendingCampaigns.Float())},
			{LabelKey: "dashboard.summary.total_installs", Value: webtemplates.FormatNumber(loc, summary.TotalInstalls.Float())},
			{LabelKey: "dashboard.summary.average_ctr", Value: webtemplates.FormatPercent(loc, summary.AverageCTR.Float())},
			{LabelKey: "dashboard.summary.average_cpc", Value: webtemplates.FormatINR(loc, summary.AverageCPC.Float())},
		},
	}
	for _, row := range report.Campaigns {
		view.Campaigns = append(view.Campaigns, webtemplates.AnalyticsCampaignRow{
			Name:              row.Name,
			Type:              row.Type,
			Status:            row.Status,
			BudgetTotal:       row.BudgetTotal.Float(),
			BudgetSpent:       row.BudgetSpent.Float(),
			BudgetUtilization: row.BudgetUtilization.Float(),
			Installs:          row.InstallsCount.Float(),
			CTR:               row.CTR.Float(),
		})
	}
	for _, row := range report.MonthlyPerformance {
		view.Monthly = append(view.Monthly, webtemplates.MonthlyRow{
			Month:    row.Month,
			Spent:    row.TotalSpent.Float(),
			Installs: row.TotalInstalls.Float(),
			Clicks:   row.TotalClicks.Float(),
		})
	}
	for _, row := range report.StatusDistribution {
		view.Statuses = append(view.Statuses, webtemplates.StatusRow{Status: row.Status, Count: row.Count.Float()})
	}
	for _, row := range report.PerformanceByType {
		view.Types = append(view.Types, webtemplates.TypeRow{Type: row.Type, Budget: row.TotalBudget.Float(), Spent: row.TotalSpent.Float()})
	}
	return view
}
