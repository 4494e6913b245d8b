package profile

import (
	"context"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/adreach/console/internal/services/web/integration/advapi"
	apperrors "github.com/adreach/console/internal/services/web/platform/errors"
)

// MinNameLength is the shortest accepted advertiser name.
const MinNameLength = 3

// Warning keys for locally rejected updates.
const (
	keyNameRequired  = "profile.warning.name_required"
	keyNameShort     = "profile.warning.name_short"
	keyAmountInvalid = "profile.warning.amount_invalid"
	keyAmountLow     = "profile.warning.amount_positive"
)

type service struct {
	gateway ProfileGateway
}

func newService(gateway ProfileGateway) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway}
}

func (s service) load(ctx context.Context) (advapi.User, error) {
	return s.gateway.LoadProfile(ctx)
}

// updateName validates name locally and returns the trimmed value it sent.
func (s service) updateName(ctx context.Context, raw string) (string, error) {
	name := strings.TrimSpace(raw)
	switch {
	case name == "":
		return name, apperrors.EK(apperrors.KindInvalidInput, keyNameRequired, "name is required")
	case utf8.RuneCountInString(name) < MinNameLength:
		return name, apperrors.EK(apperrors.KindInvalidInput, keyNameShort, "name is too short")
	}
	return name, s.gateway.UpdateName(ctx, name)
}

func (s service) recharge(ctx context.Context, raw string) error {
	amount, err := parseAmount(raw)
	if err != nil {
		return err
	}
	return s.gateway.RechargeWallet(ctx, amount)
}

// parseAmount accepts a finite positive rupee amount.
func parseAmount(raw string) (float64, error) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, apperrors.EK(apperrors.KindInvalidInput, keyAmountInvalid, "amount is not a number")
	}
	if amount <= 0 {
		return 0, apperrors.EK(apperrors.KindInvalidInput, keyAmountLow, "amount must be positive")
	}
	return amount, nil
}

// localWarning returns the warning key of a locally rejected update.
func localWarning(err error) (string, bool) {
	switch key := apperrors.LocalizationKey(err); key {
	case keyNameRequired, keyNameShort, keyAmountInvalid, keyAmountLow:
		return key, true
	}
	return "", false
}
