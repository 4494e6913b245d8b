package templates

import "github.com/a-h/templ"

// ProfileView is the advertiser profile page.
type ProfileView struct {
	Name          string
	Phone         string
	Role          string
	Wallet        float64
	CreatedAt     string
	UpdatedAt     string
	NameAction    string
	WalletAction  string
	NameValue     string
	AmountValue   string
	NameWarning   string
	WalletWarning string
	// ServerMessage is advertiser API text from a failed update.
	ServerMessage string
}

// ProfilePage renders the profile card and its forms.
func ProfilePage(view ProfileView, loc Localizer) templ.Component {
	return render("profile", loc, view)
}
