package accounting

import (
	"fmt"

	"github.com/SscSPs/bizbooks/internal/core/domain"
)

// NormalBalance turns raw debit and credit totals into an account's balance
// using its category's sign convention:
//
//	ASSET, EXPENSE                -> debit - credit
//	LIABILITY, EQUITY, REVENUE    -> credit - debit
//
// Every balance in the application goes through this function.
func NormalBalance(categoryType domain.AccountCategoryType, debit, credit domain.Money) (domain.Money, error) {
	switch categoryType {
	case domain.Asset, domain.Expense:
		return debit.Sub(credit), nil
	case domain.Liability, domain.Equity, domain.Revenue:
		return credit.Sub(debit), nil
	default:
		return domain.ZeroMoney(), fmt.Errorf("unknown account category type '%s'", categoryType)
	}
}

// SignedAmount is the effect of a single item on its account's balance.
func SignedAmount(item domain.JournalItem, categoryType domain.AccountCategoryType) (domain.Money, error) {
	if item.Type == domain.Debit {
		return NormalBalance(categoryType, item.Amount, domain.ZeroMoney())
	}
	return NormalBalance(categoryType, domain.ZeroMoney(), item.Amount)
}

// IsDebitNormal reports whether a debit increases accounts of this type.
func IsDebitNormal(categoryType domain.AccountCategoryType) bool {
	bal, err := NormalBalance(categoryType, domain.MoneyFromInt(1), domain.ZeroMoney())
	return err == nil && bal.IsPositive()
}

// TrialBalanceColumns places a balance in the debit or credit column of a trial balance.
// A debit-normal account with a positive balance lands in the debit column; a negative
// balance flips to the other side.
func TrialBalanceColumns(categoryType domain.AccountCategoryType, balance domain.Money) (debit, credit domain.Money) {
	debitSide := IsDebitNormal(categoryType)
	if balance.IsNegative() {
		debitSide = !debitSide
	}
	if debitSide {
		return balance.Abs(), domain.ZeroMoney()
	}
	return domain.ZeroMoney(), balance.Abs()
}
