package dashboard

import (
	"context"

	"github.com/adreach/console/internal/services/web/integration/advapi"
)

// fakeGateway implements AnalyticsGateway with a canned report and call recording.
type fakeGateway struct {
	report     advapi.Analytics
	err        error
	lastFilter advapi.AnalyticsFilter
	calls      int
}

func newPopulatedFakeGateway() *fakeGateway {
	return &fakeGateway{report: advapi.Analytics{
		Summary: advapi.AnalyticsSummary{
			TotalCampaigns:    3,
			TotalBudget:       15000,
			TotalSpent:        4500,
			BudgetUtilization: 30,
			ActiveCampaigns:   2,
			TotalInstalls:     820,
			AverageCTR:        2.5,
		},
		Campaigns: []advapi.CampaignPerformance{{
			Name: "Spring Launch", Type: "cpi", Status: "active",
			BudgetTotal: 10000, BudgetSpent: 4000, BudgetUtilization: 40, InstallsCount: 700, CTR: 3.1,
		}},
		MonthlyPerformance: []advapi.MonthlyPerformance{{Month: "2026-02", TotalSpent: 4500, TotalInstalls: 820, TotalClicks: 9100}},
		StatusDistribution: []advapi.StatusCount{{Status: "active", Count: 2}, {Status: "paused", Count: 1}},
		PerformanceByType:  []advapi.TypePerformance{{Type: "cpi", TotalBudget: 10000, TotalSpent: 4000}},
	}}
}

func (f *fakeGateway) LoadAnalytics(_ context.Context, filter advapi.AnalyticsFilter) (advapi.Analytics, error) {
	f.calls++
	f.lastFilter = filter
	if f.err != nil {
		return advapi.Analytics{}, f.err
	}
	return f.report, nil
}
