package accounting

import (
	"testing"

	"github.com/SscSPs/bizbooks/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalBalance(t *testing.T) {
	debit := domain.MoneyFromInt(700)
	credit := domain.MoneyFromInt(200)

	tests := []struct {
		categoryType domain.AccountCategoryType
		want         string
	}{
		{domain.Asset, "500.00"},
		{domain.Expense, "500.00"},
		{domain.Liability, "-500.00"},
		{domain.Equity, "-500.00"},
		{domain.Revenue, "-500.00"},
	}
	for _, tt := range tests {
		t.Run(string(tt.categoryType), func(t *testing.T) {
			got, err := NormalBalance(tt.categoryType, debit, credit)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}

	_, err := NormalBalance("INCOME", debit, credit)
	assert.Error(t, err)
}

func TestNormalBalance_NoItemsIsZero(t *testing.T) {
	for _, ct := range domain.AllCategoryTypes {
		got, err := NormalBalance(ct, domain.ZeroMoney(), domain.ZeroMoney())
		require.NoError(t, err)
		assert.True(t, got.IsZero())
	}
}

func TestSignedAmount(t *testing.T) {
	debit := domain.JournalItem{AccountID: "a", Type: domain.Debit, Amount: domain.MoneyFromInt(50)}
	credit := domain.JournalItem{AccountID: "a", Type: domain.Credit, Amount: domain.MoneyFromInt(50)}

	got, err := SignedAmount(debit, domain.Asset)
	require.NoError(t, err)
	assert.Equal(t, "50.00", got.String())

	got, err = SignedAmount(credit, domain.Asset)
	require.NoError(t, err)
	assert.Equal(t, "-50.00", got.String())

	got, err = SignedAmount(credit, domain.Revenue)
	require.NoError(t, err)
	assert.Equal(t, "50.00", got.String())
}

func TestTrialBalanceColumns(t *testing.T) {
	d, c := TrialBalanceColumns(domain.Asset, domain.MoneyFromInt(100))
	assert.Equal(t, "100.00", d.String())
	assert.True(t, c.IsZero())

	d, c = TrialBalanceColumns(domain.Liability, domain.MoneyFromInt(100))
	assert.True(t, d.IsZero())
	assert.Equal(t, "100.00", c.String())

	// overdrawn bank account shows on the credit side
	d, c = TrialBalanceColumns(domain.Asset, domain.MoneyFromInt(-40))
	assert.True(t, d.IsZero())
	assert.Equal(t, "40.00", c.String())

	assert.True(t, IsDebitNormal(domain.Expense))
	assert.False(t, IsDebitNormal(domain.Equity))
}
