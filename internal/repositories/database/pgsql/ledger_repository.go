package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/bizbooks/internal/core/domain"
	portsrepo "github.com/SscSPs/bizbooks/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// PgxLedgerRepository aggregates posted journal items. It never writes.
type PgxLedgerRepository struct {
	BaseRepository
}

var _ portsrepo.LedgerReader = (*PgxLedgerRepository)(nil)

// SumPostedItems totals an account's posted debits and credits up to asOf.
func (r *PgxLedgerRepository) SumPostedItems(ctx context.Context, businessID, accountID string, asOf *time.Time) (domain.Money, domain.Money, error) {
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN ji.item_type = 'DEBIT' THEN ji.amount END), 0) AS total_debit,
			COALESCE(SUM(CASE WHEN ji.item_type = 'CREDIT' THEN ji.amount END), 0) AS total_credit
		FROM journal_items ji
		JOIN journal_entries je ON je.entry_id = ji.entry_id
		WHERE je.business_id = $1
			AND ji.account_id = $2
			AND je.status = 'POSTED'
			AND ($3::date IS NULL OR je.entry_date <= $3::date)
	`
	var debit, credit decimal.Decimal
	if err := r.DB.QueryRow(ctx, query, businessID, accountID, asOf).Scan(&debit, &credit); err != nil {
		return domain.ZeroMoney(), domain.ZeroMoney(), mapError(err, "error summing items of account %s", accountID)
	}
	return domain.NewMoney(debit), domain.NewMoney(credit), nil
}

// AccountTotals returns one row per account of the business, including accounts
// with no posted items in range.
func (r *PgxLedgerRepository) AccountTotals(ctx context.Context, businessID string, from, to *time.Time) ([]domain.AccountTotals, error) {
	query := `
		SELECT
			a.account_id,
			a.code,
			a.name,
			a.category_type,
			COALESCE(SUM(CASE WHEN p.item_type = 'DEBIT' THEN p.amount END), 0) AS total_debit,
			COALESCE(SUM(CASE WHEN p.item_type = 'CREDIT' THEN p.amount END), 0) AS total_credit
		FROM accounts a
		LEFT JOIN (
			SELECT ji.account_id, ji.item_type, ji.amount
			FROM journal_items ji
			JOIN journal_entries je ON je.entry_id = ji.entry_id
			WHERE je.business_id = $1
				AND je.status = 'POSTED'
				AND ($2::date IS NULL OR je.entry_date >= $2::date)
				AND ($3::date IS NULL OR je.entry_date <= $3::date)
		) p ON p.account_id = a.account_id
		WHERE a.business_id = $1
		GROUP BY a.account_id, a.code, a.name, a.category_type
		ORDER BY a.code
	`
	rows, err := r.DB.Query(ctx, query, businessID, from, to)
	if err != nil {
		return nil, mapError(err, "error querying account totals")
	}
	defer rows.Close()

	result := []domain.AccountTotals{}
	for rows.Next() {
		var row domain.AccountTotals
		var categoryType string
		var debit, credit decimal.Decimal
		if err := rows.Scan(&row.AccountID, &row.Code, &row.Name, &categoryType, &debit, &credit); err != nil {
			return nil, mapError(err, "error scanning account totals row")
		}
		row.CategoryType = domain.AccountCategoryType(categoryType)
		row.Debit = domain.NewMoney(debit)
		row.Credit = domain.NewMoney(credit)
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "error iterating account totals rows")
	}
	return result, nil
}

// ListPostedLines lists one account's posted items oldest first.
func (r *PgxLedgerRepository) ListPostedLines(ctx context.Context, businessID, accountID string, from, to *time.Time) ([]domain.PostedLine, error) {
	query := `
		SELECT je.entry_id, je.reference_number, je.entry_date, je.narration, je.created_at,
			ji.item_id, ji.item_type, ji.amount, ji.description
		FROM journal_items ji
		JOIN journal_entries je ON je.entry_id = ji.entry_id
		WHERE je.business_id = $1
			AND ji.account_id = $2
			AND je.status = 'POSTED'
			AND ($3::date IS NULL OR je.entry_date >= $3::date)
			AND ($4::date IS NULL OR je.entry_date <= $4::date)
		ORDER BY je.entry_date, je.created_at, je.entry_id, ji.line_no
	`
	rows, err := r.DB.Query(ctx, query, businessID, accountID, from, to)
	if err != nil {
		return nil, mapError(err, "error querying ledger lines of account %s", accountID)
	}
	defer rows.Close()

	lines := []domain.PostedLine{}
	for rows.Next() {
		var l domain.PostedLine
		var itemType string
		var amount decimal.Decimal
		if err := rows.Scan(&l.EntryID, &l.ReferenceNumber, &l.EntryDate, &l.Narration, &l.CreatedAt,
			&l.ItemID, &itemType, &amount, &l.Description); err != nil {
			return nil, mapError(err, "error scanning ledger line")
		}
		l.Type = domain.ItemType(itemType)
		l.Amount = domain.NewMoney(amount)
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "error iterating ledger lines")
	}
	return lines, nil
}

// AccountHasItems reports whether any entry, whatever its status, references the account.
func (r *PgxLedgerRepository) AccountHasItems(ctx context.Context, businessID, accountID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM journal_items ji
			JOIN journal_entries je ON je.entry_id = ji.entry_id
			WHERE je.business_id = $1 AND ji.account_id = $2
		);
	`
	var exists bool
	if err := r.DB.QueryRow(ctx, query, businessID, accountID).Scan(&exists); err != nil {
		return false, mapError(err, "error checking items of account %s", accountID)
	}
	return exists, nil
}
