package templates

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/adreach/console/internal/services/web/routepath"
)

const (
	appErrorPageTitleNotFoundKey   = "errors.page_title_not_found"
	appErrorPageTitleServerErrKey  = "errors.page_title_server_error"
	appErrorHeadingNotFoundKey     = "errors.title_not_found"
	appErrorHeadingServerErrKey    = "errors.title_server_error"
	appErrorMessageNotFoundKey     = "errors.message_not_found"
	appErrorMessageServerErrKey    = "errors.message_server_error"
	appErrorBackToDashboardTextKey = "errors.action_back_to_dashboard"
)

// ErrorStateView is an inline failure with an optional retry link.
type ErrorStateView struct {
	Heading    string
	Message    string
	RetryURL   string
	ActionURL  string
	ActionText string
}

// AppErrorPageTitle returns the browser page title for app error pages.
func AppErrorPageTitle(statusCode int, loc Localizer) string {
	if normalizeAppErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, appErrorPageTitleNotFoundKey)
	}
	return T(loc, appErrorPageTitleServerErrKey)
}

// AppErrorState renders the app shell body for a failed request.
func AppErrorState(statusCode int, loc Localizer) templ.Component {
	return ErrorState(ErrorStateView{
		Heading:    appErrorHeading(statusCode, loc),
		Message:    appErrorMessage(statusCode, loc),
		ActionURL:  routepath.Dashboard,
		ActionText: T(loc, appErrorBackToDashboardTextKey),
	}, loc)
}

// LoadErrorState renders a failed page load with a retry link to the same page.
func LoadErrorState(message string, retryURL string, loc Localizer) templ.Component {
	return ErrorState(ErrorStateView{
		Heading:  T(loc, "errors.load_failed"),
		Message:  message,
		RetryURL: retryURL,
	}, loc)
}

// ErrorState renders an error panel.
func ErrorState(view ErrorStateView, loc Localizer) templ.Component {
	return render("error_state", loc, view)
}

func appErrorHeading(statusCode int, loc Localizer) string {
	if normalizeAppErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, appErrorHeadingNotFoundKey)
	}
	return T(loc, appErrorHeadingServerErrKey)
}

func appErrorMessage(statusCode int, loc Localizer) string {
	if normalizeAppErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, appErrorMessageNotFoundKey)
	}
	return T(loc, appErrorMessageServerErrKey)
}

func normalizeAppErrorStatus(statusCode int) int {
	if statusCode == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
