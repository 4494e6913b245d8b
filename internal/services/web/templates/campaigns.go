package templates

import "github.com/a-h/templ"

// PlanRow is one purchasable plan.
type PlanRow struct {
	ID        string
	Type      string
	Amount    float64
	Installs  float64
	WizardURL string
	Selected  bool
}

// PlanListView is the plan list page.
type PlanListView struct {
	Plans []PlanRow
}

// PlanListPage renders the plan table.
func PlanListPage(view PlanListView, loc Localizer) templ.Component {
	return render("plan_list", loc, view)
}

// CampaignRow is one campaign in the list.
type CampaignRow struct {
	ID            string
	Name          string
	Type          string
	Status        string
	PackageName   string
	AppLogo       string
	BudgetTotal   float64
	BudgetSpent   float64
	BudgetPercent float64
	DetailURL     string
}

// CampaignListView is the campaign list page.
type CampaignListView struct {
	Campaigns  []CampaignRow
	NewURL     string
	RefreshURL string
}

// CampaignListPage renders the campaign table.
func CampaignListPage(view CampaignListView, loc Localizer) templ.Component {
	return render("campaign_list", loc, view)
}

// CampaignDetailView is one campaign with its rename form.
type CampaignDetailView struct {
	Campaign       CampaignRow
	PackageName    string
	Target         float64
	Installs       float64
	InstallPercent float64
	Reviews        float64
	CostPerInstall float64
	CampDay        float64
	CreatedAt      string
	UpdatedAt      string
	RenameAction   string
	NameValue      string
	WarningKey     string
	ServerMessage  string
	BackURL        string
}

// CampaignDetailPage renders campaign details.
func CampaignDetailPage(view CampaignDetailView, loc Localizer) templ.Component {
	return render("campaign_detail", loc, view)
}

// WizardDetailsView is step one of the campaign wizard.
type WizardDetailsView struct {
	Action       string
	CancelAction string
	Name         string
	Type         string
	PackageName  string
	CampDay      string
	LogoName     string
	Types        []Option
	// FieldErrors maps form fields to localization keys.
	FieldErrors   map[string]string
	ServerMessage string
}

// WizardDetailsPage renders the campaign details step.
func WizardDetailsPage(view WizardDetailsView, loc Localizer) templ.Component {
	return render("wizard_details", loc, view)
}

// WizardPlanView is step two of the campaign wizard.
type WizardPlanView struct {
	Action        string
	BackAction    string
	CancelAction  string
	Name          string
	Type          string
	PackageName   string
	CampDay       string
	LogoName      string
	Plans         []PlanRow
	WarningKey    string
	ServerMessage string
}

// WizardPlanPage renders the plan selection step.
func WizardPlanPage(view WizardPlanView, loc Localizer) templ.Component {
	return render("wizard_plan", loc, view)
}
