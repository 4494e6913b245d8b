package routepath

import "testing"

func TestTopLevelRouteConstants(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		Root:          "/",
		Login:         "/login",
		Logout:        "/logout",
		Health:        "/up",
		Dashboard:     "/dashboard",
		PlanList:      "/dashboard/plan-list",
		Campaigns:     "/dashboard/campaigns",
		Profile:       "/profile-page",
		ProfileWallet: "/profile-page/wallet",
	}
	for got, want := range tests {
		if got != want {
			t.Fatalf("route = %q, want %q", got, want)
		}
	}
}

func TestCampaignRouteBuilders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		got  string
		want string
	}{
		{name: "list", got: CampaignList(" adv-1 "), want: "/dashboard/campaigns/adv-1"},
		{name: "new", got: CampaignNew("adv-1"), want: "/dashboard/campaigns/adv-1/new"},
		{name: "new with plan", got: CampaignNewWithPlan("adv-1", "plan-9"), want: "/dashboard/campaigns/adv-1/new?plan=plan-9"},
		{name: "new with blank plan", got: CampaignNewWithPlan("adv-1", " "), want: "/dashboard/campaigns/adv-1/new"},
		{name: "plan step", got: CampaignNewPlan("adv-1"), want: "/dashboard/campaigns/adv-1/new/plan"},
		{name: "back", got: CampaignNewBack("adv-1"), want: "/dashboard/campaigns/adv-1/new/back"},
		{name: "cancel", got: CampaignNewCancel("adv-1"), want: "/dashboard/campaigns/adv-1/new/cancel"},
		{name: "details", got: CampaignDetails("c 1"), want: "/dashboard/campaigns-details/c%201"},
		{name: "rename", got: CampaignRename("c1"), want: "/dashboard/campaigns-details/c1/rename"},
		{name: "section", got: Section("users"), want: "/dashboard/users"},
	}
	for _, tc := range tests {
		if tc.got != tc.want {
			t.Fatalf("%s = %q, want %q", tc.name, tc.got, tc.want)
		}
	}
}
