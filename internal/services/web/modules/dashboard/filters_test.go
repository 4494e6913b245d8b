package dashboard

import (
	"net/url"
	"reflect"
	"testing"

	"github.com/adreach/console/internal/services/web/integration/advapi"
)

func TestParseFilterWithoutValuesSendsNoQuery(t *testing.T) {
	t.Parallel()

	filter := parseFilter(url.Values{})
	if !reflect.DeepEqual(filter, advapi.AnalyticsFilter{}) {
		t.Fatalf("filter = %+v, want zero", filter)
	}
	if got := filter.Query(); len(got) != 0 {
		t.Fatalf("query = %v, want empty", got)
	}
	if chips := filterChips(filter, nil); len(chips) != 0 {
		t.Fatalf("chips = %+v, want none", chips)
	}
}

func TestParseFilterKeepsWellFormedValues(t *testing.T) {
	t.Parallel()

	query := url.Values{
		"startDate": {"2026-01-01"},
		"endDate":   {"not-a-date"},
		"status":    {"active", "PAUSED", "active", "archived"},
		"type":      {"cpi"},
		"minBudget": {"100"},
		"maxBudget": {"-5"},
		"sortOrder": {"desc"},
	}
	want := advapi.AnalyticsFilter{
		StartDate: "2026-01-01",
		Statuses:  []string{"active", "paused"},
		Type:      "cpi",
		MinBudget: "100",
		SortOrder: "desc",
	}
	if got := parseFilter(query); !reflect.DeepEqual(got, want) {
		t.Fatalf("filter = %+v, want %+v", got, want)
	}
}

func TestParseFilterRejectsUnknownTypeAndSort(t *testing.T) {
	t.Parallel()

	filter := parseFilter(url.Values{"type": {"banner"}, "sortOrder": {"random"}})
	if filter.Type != "" || filter.SortOrder != "" {
		t.Fatalf("filter = %+v, want type and sort dropped", filter)
	}
}

func TestFilterChipsListActiveFilters(t *testing.T) {
	t.Parallel()

	chips := filterChips(advapi.AnalyticsFilter{StartDate: "2026-01-01", Statuses: []string{"active"}, Type: "cpc"}, nil)
	if len(chips) != 3 {
		t.Fatalf("chips = %+v, want 3", chips)
	}
	if chips[0].Value != "2026-01-01" || chips[2].Value != "CPC" {
		t.Fatalf("chips = %+v", chips)
	}
}

func TestFilterViewMarksSelections(t *testing.T) {
	t.Parallel()

	view := filterView(advapi.AnalyticsFilter{Statuses: []string{"paused"}, Type: "review", SortOrder: "asc"}, nil)
	selected := func(options []string, values []bool) map[string]bool {
		out := map[string]bool{}
		for idx, option := range options {
			out[option] = values[idx]
		}
		return out
	}
	var statusValues []string
	var statusSelected []bool
	for _, option := range view.Statuses {
		statusValues = append(statusValues, option.Value)
		statusSelected = append(statusSelected, option.Selected)
	}
	statuses := selected(statusValues, statusSelected)
	if !statuses["paused"] || statuses["active"] {
		t.Fatalf("statuses = %+v", view.Statuses)
	}
	for _, option := range view.Types {
		if option.Selected != (option.Value == "review") {
			t.Fatalf("type option %+v", option)
		}
	}
	for _, option := range view.SortOrder {
		if option.Selected != (option.Value == "asc") {
			t.Fatalf("sort option %+v", option)
		}
	}
}
