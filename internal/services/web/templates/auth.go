package templates

import "github.com/a-h/templ"

// Login steps.
const (
	LoginStepPhone = "phone"
	LoginStepOTP   = "otp"
)

// LoginView is the OTP login page state.
type LoginView struct {
	Step string
	// Phone is the submitted or pending phone number.
	Phone string
	// OTP prefills the code input.
	OTP string
	// WarningKey is a localization key for a local validation failure.
	WarningKey string
	// InfoKey is a localization key for an informational notice.
	InfoKey string
	// ServerMessage is advertiser API text shown verbatim.
	ServerMessage     string
	ResendAvailableIn int
	PhoneAction       string
	VerifyAction      string
	ResendAction      string
	ChangePhoneAction string
}

// LoginPage renders the login card for the current step.
func LoginPage(view LoginView, loc Localizer) templ.Component {
	return render("login", loc, view)
}
