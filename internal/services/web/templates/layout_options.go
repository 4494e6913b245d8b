package templates

// AppToast is a one-time notice rendered by the app shell.
type AppToast struct {
	Kind    string
	Message string
}

// LayoutOptions configures the app and public shells.
type LayoutOptions struct {
	Title        string
	Lang         string
	AppName      string
	Loc          Localizer
	CurrentPath  string
	CurrentQuery string
	Viewer       ViewerChrome
	Toast        *AppToast
}

func (o LayoutOptions) page() PageContext {
	return PageContext{
		Lang:         o.Lang,
		Loc:          o.Loc,
		CurrentPath:  o.CurrentPath,
		CurrentQuery: o.CurrentQuery,
		Viewer:       o.Viewer,
	}
}
