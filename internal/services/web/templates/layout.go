package templates

import "github.com/a-h/templ"

type layoutData struct {
	LayoutOptions
	Nav       []NavItem
	Languages []LanguageOption
}

func newLayoutData(options LayoutOptions) layoutData {
	page := options.page()
	if options.AppName == "" {
		options.AppName = T(options.Loc, "core.app_name")
	}
	return layoutData{
		LayoutOptions: options,
		Nav:           navItems(page),
		Languages:     LanguageOptions(page),
	}
}

// AppLayout renders the authenticated app shell around its children.
func AppLayout(options LayoutOptions) templ.Component {
	return render("app_layout", options.Loc, newLayoutData(options))
}

// AppMainContent renders only the main region, for HTMX swaps.
func AppMainContent(options LayoutOptions) templ.Component {
	return render("app_main", options.Loc, newLayoutData(options))
}

// PublicLayout renders the unauthenticated shell around its children.
func PublicLayout(options LayoutOptions) templ.Component {
	return render("public_layout", options.Loc, newLayoutData(options))
}
