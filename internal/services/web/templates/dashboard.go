package templates

import "github.com/a-h/templ"

// Option is one select or checkbox choice.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// FilterChip is one active analytics filter.
type FilterChip struct {
	Label string
	Value string
}

// DashboardFilters holds the analytics filter form values.
type DashboardFilters struct {
	StartDate string
	EndDate   string
	Statuses  []Option
	Types     []Option
	MinBudget string
	MaxBudget string
	SortOrder []Option
}

// SummaryStat is one headline analytics number.
type SummaryStat struct {
	LabelKey string
	Value    string
}

// AnalyticsCampaignRow is one campaign in the analytics report.
type AnalyticsCampaignRow struct {
	Name              string
	Type              string
	Status            string
	BudgetTotal       float64
	BudgetSpent       float64
	BudgetUtilization float64
	Installs          float64
	CTR               float64
}

// MonthlyRow is one month of spend and installs.
type MonthlyRow struct {
	Month    string
	Spent    float64
	Installs float64
	Clicks   float64
}

// StatusRow counts campaigns per status.
type StatusRow struct {
	Status string
	Count  float64
}

// TypeRow is spend per campaign type.
type TypeRow struct {
	Type   string
	Budget float64
	Spent  float64
}

// DashboardView is the analytics dashboard page.
type DashboardView struct {
	Action    string
	ResetURL  string
	Filters   DashboardFilters
	Chips     []FilterChip
	Summary   []SummaryStat
	Campaigns []AnalyticsCampaignRow
	Monthly   []MonthlyRow
	Statuses  []StatusRow
	Types     []TypeRow
}

// DashboardPage renders the analytics dashboard.
func DashboardPage(view DashboardView, loc Localizer) templ.Component {
	return render("dashboard", loc, view)
}

// SectionView is a placeholder dashboard section.
type SectionView struct {
	Section  string
	TitleKey string
}

// SectionPage renders a placeholder section.
func SectionPage(view SectionView, loc Localizer) templ.Component {
	return render("section", loc, view)
}
