package advapi

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
)

// PathAnalytics is the analytics report endpoint.
const PathAnalytics = "/adv/campaign/analytics"

// Query encodes the non-empty filter fields. Statuses use the status[] key.
func (f AnalyticsFilter) Query() url.Values {
	values := url.Values{}
	set := func(key, value string) {
		if value = strings.TrimSpace(value); value != "" {
			values.Set(key, value)
		}
	}
	set("startDate", f.StartDate)
	set("endDate", f.EndDate)
	for _, status := range f.Statuses {
		if status = strings.TrimSpace(status); status != "" {
			values.Add("status[]", status)
		}
	}
	set("type", f.Type)
	set("minBudget", f.MinBudget)
	set("maxBudget", f.MaxBudget)
	set("sortOrder", f.SortOrder)
	return values
}

// Analytics loads the analytics report.
func (s *Session) Analytics(ctx context.Context, filter AnalyticsFilter) (Analytics, error) {
	query := filter.Query()
	env, err := s.do(ctx, call{name: "analytics", method: http.MethodGet, path: PathAnalytics}, func(r *resty.Request) *resty.Request {
		if len(query) == 0 {
			return r
		}
		return r.SetQueryParamsFromValues(query)
	})
	if err != nil {
		return Analytics{}, err
	}
	var report Analytics
	if err := decodeData(env.Data, &report); err != nil {
		return Analytics{}, err
	}
	return report, nil
}
