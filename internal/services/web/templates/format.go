package templates

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/number"
)

// BudgetPercent returns spent as a share of total, capped at 100.
func BudgetPercent(spent float64, total float64) float64 {
	return cappedPercent(spent, total)
}

// InstallPercent returns installs as a share of target, capped at 100.
func InstallPercent(installs float64, target float64) float64 {
	return cappedPercent(installs, target)
}

func cappedPercent(part float64, whole float64) float64 {
	if whole <= 0 || part <= 0 || math.IsNaN(part) || math.IsNaN(whole) {
		return 0
	}
	return math.Min(100, part/whole*100)
}

// StatusTone maps a campaign status onto a badge tone.
func StatusTone(status string) string {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "active", "approved":
		return "success"
	case "pending":
		return "warning"
	case "completed":
		return "info"
	case "paused":
		return "muted"
	default:
		return "neutral"
	}
}

// FormatINR renders amount in rupees for the localizer's language.
func FormatINR(loc Localizer, amount float64) string {
	if loc == nil {
		return "₹" + strconv.FormatFloat(amount, 'f', 2, 64)
	}
	return loc.Sprintf("%v%v",
		currency.NarrowSymbol(currency.INR),
		number.Decimal(amount, number.MinFractionDigits(2), number.MaxFractionDigits(2)),
	)
}

// FormatNumber renders value with at most two fraction digits.
func FormatNumber(loc Localizer, value float64) string {
	if loc == nil {
		return strconv.FormatFloat(value, 'f', -1, 64)
	}
	return loc.Sprintf("%v", number.Decimal(value, number.MaxFractionDigits(2)))
}

// FormatPercent renders a 0-100 value as a percentage.
func FormatPercent(loc Localizer, value float64) string {
	return fmt.Sprintf("%s%%", FormatNumber(loc, value))
}

// FormatDate renders an API timestamp as a calendar date. Unparseable values
// are returned unchanged.
func FormatDate(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed.Format("02 Jan 2006")
		}
	}
	return raw
}
