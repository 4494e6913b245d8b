package dashboard

import (
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/adreach/console/internal/services/web/integration/advapi"
	webtemplates "github.com/adreach/console/internal/services/web/templates"
)

// Query keys of the dashboard filter form.
const (
	queryStartDate = "startDate"
	queryEndDate   = "endDate"
	queryStatus    = "status"
	queryType      = "type"
	queryMinBudget = "minBudget"
	queryMaxBudget = "maxBudget"
	querySortOrder = "sortOrder"
)

var sortOrders = []string{"asc", "desc"}

// parseFilter keeps only well-formed filter values. Anything else is dropped
// so that an empty form sends no query parameters upstream.
func parseFilter(query url.Values) advapi.AnalyticsFilter {
	filter := advapi.AnalyticsFilter{
		StartDate: dateValue(query.Get(queryStartDate)),
		EndDate:   dateValue(query.Get(queryEndDate)),
		MinBudget: budgetValue(query.Get(queryMinBudget)),
		MaxBudget: budgetValue(query.Get(queryMaxBudget)),
	}
	for _, status := range query[queryStatus] {
		status = strings.ToLower(strings.TrimSpace(status))
		if advapi.IsCampaignStatus(status) && !slices.Contains(filter.Statuses, status) {
			filter.Statuses = append(filter.Statuses, status)
		}
	}
	if kind := strings.ToLower(strings.TrimSpace(query.Get(queryType))); advapi.IsCampaignType(kind) {
		filter.Type = kind
	}
	if order := strings.ToLower(strings.TrimSpace(query.Get(querySortOrder))); slices.Contains(sortOrders, order) {
		filter.SortOrder = order
	}
	return filter
}

func dateValue(raw string) string {
	raw = strings.TrimSpace(raw)
	if _, err := time.Parse(time.DateOnly, raw); err != nil {
		return ""
	}
	return raw
}

func budgetValue(raw string) string {
	raw = strings.TrimSpace(raw)
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || value < 0 {
		return ""
	}
	return raw
}

func filterView(filter advapi.AnalyticsFilter, loc webtemplates.Localizer) webtemplates.DashboardFilters {
	view := webtemplates.DashboardFilters{
		StartDate: filter.StartDate,
		EndDate:   filter.EndDate,
		MinBudget: filter.MinBudget,
		MaxBudget: filter.MaxBudget,
	}
	for _, status := range advapi.CampaignStatuses {
		view.Statuses = append(view.Statuses, webtemplates.Option{
			Value:    status,
			Label:    webtemplates.T(loc, "campaigns.status."+status),
			Selected: slices.Contains(filter.Statuses, status),
		})
	}
	for _, kind := range advapi.CampaignTypes {
		view.Types = append(view.Types, webtemplates.Option{
			Value:    kind,
			Label:    strings.ToUpper(kind),
			Selected: filter.Type == kind,
		})
	}
	for _, order := range sortOrders {
		view.SortOrder = append(view.SortOrder, webtemplates.Option{
			Value:    order,
			Label:    webtemplates.T(loc, "dashboard.sort."+order),
			Selected: filter.SortOrder == order,
		})
	}
	return view
}

// filterChips lists the active filters in form order.
func filterChips(filter advapi.AnalyticsFilter, loc webtemplates.Localizer) []webtemplates.FilterChip {
	var chips []webtemplates.FilterChip
	add := func(labelKey string, value string) {
		if value == "" {
			return
		}
		chips = append(chips, webtemplates.FilterChip{Label: webtemplates.T(loc, labelKey), Value: value})
	}
	add("dashboard.filter.start_date", filter.StartDate)
	add("dashboard.filter.end_date", filter.EndDate)
	for _, status := range filter.Statuses {
		add("dashboard.filter.status", webtemplates.T(loc, "campaigns.status."+status))
	}
	add("dashboard.filter.type", strings.ToUpper(filter.Type))
	add("dashboard.filter.min_budget", filter.MinBudget)
	add("dashboard.filter.max_budget", filter.MaxBudget)
	if filter.SortOrder != "" {
		add("dashboard.filter.sort", webtemplates.T(loc, "dashboard.sort."+filter.SortOrder))
	}
	return chips
}
