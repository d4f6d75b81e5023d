package usecase

import (
	"pullup-club/pkg/errutil"
	"pullup-club/pkg/money"
	"pullup-club/services/earnings/internal/entity"
)

// CheckPayout reports whether amountCents can be drawn from balance. The
// returned error carries the available and requested amounts in dollars.
func CheckPayout(balance entity.Balance, amountCents int64) error {
	available := balance.AvailableCents()
	if amountCents > available {
		return errutil.New(errutil.KindInsufficientBalance, "requested amount exceeds available balance",
			errutil.WithField("available", money.Dollars(available)),
			errutil.WithField("requested", money.Dollars(amountCents)),
		)
	}
	return nil
}
