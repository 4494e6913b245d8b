package templates

import (
	"strings"

	"github.com/adreach/console/internal/services/web/routepath"
)

// PageContext provides shared layout context for pages.
type PageContext struct {
	Lang         string
	Loc          Localizer
	CurrentPath  string
	CurrentQuery string
	Viewer       ViewerChrome
}

// ViewerChrome is the signed-in advertiser shown in the app shell.
type ViewerChrome struct {
	AdvertiserID string
	DisplayName  string
	Phone        string
}

// NavItem is one app shell navigation link.
type NavItem struct {
	Label  string
	URL    string
	Active bool
}

func navItems(page PageContext) []NavItem {
	items := []NavItem{
		{Label: T(page.Loc, "core.nav.dashboard"), URL: routepath.Dashboard},
		{Label: T(page.Loc, "core.nav.plans"), URL: routepath.PlanList},
		{Label: T(page.Loc, "core.nav.campaigns"), URL: campaignsURL(page.Viewer.AdvertiserID)},
		{Label: T(page.Loc, "core.nav.profile"), URL: routepath.Profile},
	}
	for _, section := range routepath.Sections {
		items = append(items, NavItem{Label: T(page.Loc, "core.nav."+section), URL: routepath.Section(section)})
	}
	for idx := range items {
		items[idx].Active = isActivePath(page.CurrentPath, items[idx].URL)
	}
	return items
}

func campaignsURL(advertiserID string) string {
	if strings.TrimSpace(advertiserID) == "" {
		return routepath.Campaigns
	}
	return routepath.CampaignList(advertiserID)
}

func isActivePath(current string, target string) bool {
	current = strings.TrimSpace(current)
	if current == "" || target == "" {
		return false
	}
	if current == target {
		return true
	}
	if target == routepath.Dashboard {
		return false
	}
	if strings.HasPrefix(target, routepath.CampaignsPrefix) || target == routepath.Campaigns {
		return strings.HasPrefix(current, routepath.CampaignsPrefix) || strings.HasPrefix(current, routepath.CampaignDetailsPrefix)
	}
	return strings.HasPrefix(current, target+"/")
}
