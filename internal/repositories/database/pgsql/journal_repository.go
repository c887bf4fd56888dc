package pgsql

import (
	"context"
	"strconv"
	"time"

	"github.com/SscSPs/bizbooks/internal/apperrors"
	"github.com/SscSPs/bizbooks/internal/core/domain"
	portsrepo "github.com/SscSPs/bizbooks/internal/core/ports/repositories"
	"github.com/SscSPs/bizbooks/internal/models"
	"github.com/SscSPs/bizbooks/internal/utils/mapping"
	"github.com/SscSPs/bizbooks/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
)

// PgxJournalRepository stores journal entries and their items.
type PgxJournalRepository struct {
	BaseRepository
}

var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

const entryColumns = `entry_id, business_id, financial_year_id, reference_number, entry_date, narration, status, source,
	created_at, created_by, last_updated_at, last_updated_by`

func scanEntry(row rowScanner) (models.JournalEntry, error) {
	var m models.JournalEntry
	err := row.Scan(&m.EntryID, &m.BusinessID, &m.FinancialYearID, &m.ReferenceNumber, &m.EntryDate,
		&m.Narration, &m.Status, &m.Source, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy)
	return m, err
}

// SaveEntry inserts the entry header and all items atomically.
func (r *PgxJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry) error {
	m := mapping.ToModelJournalEntry(entry)

	return r.inTx(ctx, func(tx pgx.Tx) error {
		entryQuery := `INSERT INTO journal_entries (` + entryColumns + `)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);`
		_, err := tx.Exec(ctx, entryQuery, m.EntryID, m.BusinessID, m.FinancialYearID, m.ReferenceNumber,
			m.EntryDate, m.Narration, m.Status, m.Source, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
		if err != nil {
			return mapError(err, "journal entry with reference %s", m.ReferenceNumber)
		}

		batch := &pgx.Batch{}
		itemQuery := `
			INSERT INTO journal_items (item_id, entry_id, line_no, account_id, item_type, amount, description)
			VALUES ($1, $2, $3, $4, $5, $6, $7);
		`
		for i, item := range m.Items {
			batch.Queue(itemQuery, item.ItemID, m.EntryID, i+1, item.AccountID, item.ItemType, item.Amount, item.Description)
		}
		br := tx.SendBatch(ctx, batch)
		if err := br.Close(); err != nil {
			return mapError(err, "failed to insert items of journal entry %s", m.EntryID)
		}
		return nil
	})
}

func (r *PgxJournalRepository) findEntry(ctx context.Context, businessID, entryID string, forUpdate bool) (*domain.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE business_id = $1 AND entry_id = $2`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	m, err := scanEntry(r.DB.QueryRow(ctx, query, businessID, entryID))
	if err != nil {
		return nil, mapError(err, "journal entry %s", entryID)
	}

	items, err := r.findItems(ctx, []string{m.EntryID})
	if err != nil {
		return nil, err
	}
	m.Items = items[m.EntryID]
	e := mapping.ToDomainJournalEntry(m)
	return &e, nil
}

// FindEntryByID retrieves an entry with its items.
func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, businessID, entryID string) (*domain.JournalEntry, error) {
	return r.findEntry(ctx, businessID, entryID, false)
}

// FindEntryByIDForUpdate retrieves an entry and holds a row lock on it.
func (r *PgxJournalRepository) FindEntryByIDForUpdate(ctx context.Context, businessID, entryID string) (*domain.JournalEntry, error) {
	return r.findEntry(ctx, businessID, entryID, true)
}

// findItems loads items for the given entries, grouped by entry id and in line order.
func (r *PgxJournalRepository) findItems(ctx context.Context, entryIDs []string) (map[string][]models.JournalItem, error) {
	result := make(map[string][]models.JournalItem, len(entryIDs))
	if len(entryIDs) == 0 {
		return result, nil
	}
	query := `
		SELECT item_id, entry_id, account_id, item_type, amount, description
		FROM journal_items
		WHERE entry_id = ANY($1)
		ORDER BY entry_id, line_no;
	`
	rows, err := r.DB.Query(ctx, query, entryIDs)
	if err != nil {
		return nil, mapError(err, "failed to query journal items")
	}
	defer rows.Close()

	for rows.Next() {
		var it models.JournalItem
		if err := rows.Scan(&it.ItemID, &it.EntryID, &it.AccountID, &it.ItemType, &it.Amount, &it.Description); err != nil {
			return nil, mapError(err, "failed to scan journal item")
		}
		result[it.EntryID] = append(result[it.EntryID], it)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "error iterating journal items")
	}
	return result, nil
}

// ListEntries retrieves entries newest first. One extra row is fetched to
// decide whether a next page exists.
func (r *PgxJournalRepository) ListEntries(ctx context.Context, businessID string, filter portsrepo.JournalListFilter) ([]domain.JournalEntry, *string, error) {
	limit := pagination.ClampLimit(filter.Limit)
	fetchLimit := limit + 1

	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE business_id = $1`
	args := []any{businessID}

	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		query += ` AND status = $` + strconv.Itoa(len(args))
	}
	if filter.NextToken != nil && *filter.NextToken != "" {
		cursor, err := pagination.DecodeToken(*filter.NextToken)
		if err != nil {
			return nil, nil, apperrors.NewValidationError("invalid nextToken: %v", err)
		}
		args = append(args, cursor.EntryDate, cursor.CreatedAt, cursor.EntryID)
		n := len(args)
		query += ` AND (entry_date, created_at, entry_id) < ($` + strconv.Itoa(n-2) + `::date, $` + strconv.Itoa(n-1) + `, $` + strconv.Itoa(n) + `)`
	}
	args = append(args, fetchLimit)
	query += ` ORDER BY entry_date DESC, created_at DESC, entry_id DESC LIMIT $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, mapError(err, "failed to query journal entries for business %s", businessID)
	}
	defer rows.Close()

	modelEntries := make([]models.JournalEntry, 0, fetchLimit)
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			return nil, nil, mapError(err, "failed to scan journal entry")
		}
		modelEntries = append(modelEntries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, mapError(err, "error iterating journal entries")
	}

	var nextToken *string
	if len(modelEntries) > limit {
		last := modelEntries[limit-1]
		token := pagination.EncodeToken(last.EntryDate, last.CreatedAt, last.EntryID)
		nextToken = &token
		modelEntries = modelEntries[:limit]
	}

	ids := make([]string, len(modelEntries))
	for i, m := range modelEntries {
		ids[i] = m.EntryID
	}
	items, err := r.findItems(ctx, ids)
	if err != nil {
		return nil, nil, err
	}

	entries := make([]domain.JournalEntry, len(modelEntries))
	for i, m := range modelEntries {
		m.Items = items[m.EntryID]
		entries[i] = mapping.ToDomainJournalEntry(m)
	}
	return entries, nextToken, nil
}

// ReferenceExists reports whether the reference number is taken in the business.
func (r *PgxJournalRepository) ReferenceExists(ctx context.Context, businessID, referenceNumber string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM journal_entries WHERE business_id = $1 AND reference_number = $2);`
	if err := r.DB.QueryRow(ctx, query, businessID, referenceNumber).Scan(&exists); err != nil {
		return false, mapError(err, "failed to check reference %s", referenceNumber)
	}
	return exists, nil
}

// UpdateEntryStatus changes only the status and update stamps.
func (r *PgxJournalRepository) UpdateEntryStatus(ctx context.Context, businessID, entryID string, status domain.JournalStatus, userID string, now time.Time) error {
	query := `
		UPDATE journal_entries
		SET status = $3, last_updated_at = $4, last_updated_by = $5
		WHERE business_id = $1 AND entry_id = $2;
	`
	tag, err := r.DB.Exec(ctx, query, businessID, entryID, string(status), now, userID)
	if err != nil {
		return mapError(err, "failed to update status of journal entry %s", entryID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("journal entry", entryID)
	}
	return nil
}

// DeleteEntry removes the entry and its items together.
func (r *PgxJournalRepository) DeleteEntry(ctx context.Context, businessID, entryID string) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		itemsQuery := `
			DELETE FROM journal_items
			WHERE entry_id IN (SELECT entry_id FROM journal_entries WHERE business_id = $1 AND entry_id = $2);
		`
		if _, err := tx.Exec(ctx, itemsQuery, businessID, entryID); err != nil {
			return mapError(err, "failed to delete items of journal entry %s", entryID)
		}
		tag, err := tx.Exec(ctx, `DELETE FROM journal_entries WHERE business_id = $1 AND entry_id = $2;`, businessID, entryID)
		if err != nil {
			return mapError(err, "failed to delete journal entry %s", entryID)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.NewNotFoundError("journal entry", entryID)
		}
		return nil
	})
}
