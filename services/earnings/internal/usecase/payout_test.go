package usecase

import (
	"encoding/json"
	"testing"

	"pullup-club/pkg/errutil"
	"pullup-club/services/earnings/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckPayout(t *testing.T) {
	tests := []struct {
		name      string
		balance   entity.Balance
		amount    int64
		wantErr   bool
		available json.Number
	}{
		{name: "exact balance", balance: entity.Balance{EarnedCents: 5000}, amount: 5000},
		{name: "over balance", balance: entity.Balance{EarnedCents: 5000}, amount: 6000, wantErr: true, available: "50.00"},
		{name: "paid reduces available", balance: entity.Balance{EarnedCents: 5000, PaidCents: 2000}, amount: 3001, wantErr: true, available: "30.00"},
		{name: "pending reserves balance", balance: entity.Balance{EarnedCents: 5000, PendingCents: 3000}, amount: 3000, wantErr: true, available: "20.00"},
		{name: "empty ledger", balance: entity.Balance{}, amount: 1, wantErr: true, available: "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckPayout(tt.balance, tt.amount)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			var appErr *errutil.Error
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, errutil.KindInsufficientBalance, appErr.Kind)
			assert.Equal(t, tt.available, appErr.Fields["available"])
		})
	}
}

func TestBalance_AvailableNeverNegative(t *testing.T) {
	assert.Equal(t, int64(0), entity.Balance{EarnedCents: 100, PaidCents: 100, PendingCents: 50}.AvailableCents())
}
