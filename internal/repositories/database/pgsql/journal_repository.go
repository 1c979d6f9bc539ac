package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hisakata/kakeibo/internal/apperrors"
	"github.com/hisakata/kakeibo/internal/core/domain"
	portsrepo "github.com/hisakata/kakeibo/internal/core/ports/repositories"
)

type PgxJournalRepository struct {
	BaseRepository
}

func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepository {
	return &PgxJournalRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.JournalRepository = (*PgxJournalRepository)(nil)

const journalColumns = `journal_id, owner_id, journal_date, description, source_type, source_image_ref, created_at, last_updated_at`

func scanJournal(row pgx.Row) (domain.Journal, error) {
	var journal domain.Journal
	err := row.Scan(
		&journal.JournalID,
		&journal.OwnerID,
		&journal.JournalDate,
		&journal.Description,
		&journal.SourceType,
		&journal.SourceImageRef,
		&journal.CreatedAt,
		&journal.LastUpdatedAt,
	)
	return journal, err
}

func scanEntry(row pgx.Row) (domain.JournalEntry, error) {
	var entry domain.JournalEntry
	err := row.Scan(
		&entry.EntryID,
		&entry.JournalID,
		&entry.AccountID,
		&entry.DebitAmount,
		&entry.CreditAmount,
	)
	return entry, err
}

// SaveJournal inserts the journal header and all its entries in one
// transaction; either everything lands or nothing does.
func (r *PgxJournalRepository) SaveJournal(ctx context.Context, journal domain.Journal, entries []domain.JournalEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	journalQuery := `
		INSERT INTO journals (journal_id, owner_id, journal_date, description, source_type, source_image_ref, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err = tx.Exec(ctx, journalQuery,
		journal.JournalID,
		journal.OwnerID,
		journal.JournalDate,
		journal.Description,
		journal.SourceType,
		journal.SourceImageRef,
		journal.CreatedAt,
		journal.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save journal %s: %w", journal.JournalID, err)
	}

	entryQuery := `
		INSERT INTO journal_entries (entry_id, journal_id, account_id, debit_amount, credit_amount)
		VALUES ($1, $2, $3, $4, $5);
	`
	batch := &pgx.Batch{}
	for _, entry := range entries {
		batch.Queue(entryQuery,
			entry.EntryID,
			entry.JournalID,
			entry.AccountID,
			entry.DebitAmount,
			entry.CreditAmount,
		)
	}

	results := tx.SendBatch(ctx, batch)
	for range entries {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			return fmt.Errorf("failed to save journal entries for %s: %w", journal.JournalID, err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("failed to close entry batch: %w", err)
	}

	return r.Commit(ctx, tx)
}

// FindJournalByID retrieves one journal header scoped to its owner.
func (r *PgxJournalRepository) FindJournalByID(ctx context.Context, ownerID, journalID string) (*domain.Journal, error) {
	query := `SELECT ` + journalColumns + ` FROM journals WHERE owner_id = $1 AND journal_id = $2;`

	journal, err := scanJournal(r.Pool.QueryRow(ctx, query, ownerID, journalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find journal %s: %w", journalID, err)
	}
	return &journal, nil
}

// FindEntriesByJournalID retrieves the entries of one journal.
func (r *PgxJournalRepository) FindEntriesByJournalID(ctx context.Context, journalID string) ([]domain.JournalEntry, error) {
	query := `
		SELECT entry_id, journal_id, account_id, debit_amount, credit_amount
		FROM journal_entries
		WHERE journal_id = $1
		ORDER BY debit_amount DESC, entry_id;
	`
	rows, err := r.Pool.Query(ctx, query, journalID)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries for journal %s: %w", journalID, err)
	}
	defer rows.Close()

	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.JournalEntry, error) {
		return scanEntry(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan entries: %w", err)
	}
	if entries == nil {
		entries = []domain.JournalEntry{}
	}
	return entries, nil
}

// ListJournalsByOwner retrieves journal headers newest first.
func (r *PgxJournalRepository) ListJournalsByOwner(ctx context.Context, ownerID string, limit int, offset int) ([]domain.Journal, error) {
	query := `
		SELECT ` + journalColumns + `
		FROM journals
		WHERE owner_id = $1
		ORDER BY journal_date DESC, created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, ownerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query journals: %w", err)
	}
	defer rows.Close()

	journals, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Journal, error) {
		return scanJournal(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan journals: %w", err)
	}
	if journals == nil {
		journals = []domain.Journal{}
	}
	return journals, nil
}

// ListEntriesByOwner retrieves every entry of every journal the owner has.
// Feeds the trial balance fold.
func (r *PgxJournalRepository) ListEntriesByOwner(ctx context.Context, ownerID string) ([]domain.JournalEntry, error) {
	query := `
		SELECT e.entry_id, e.journal_id, e.account_id, e.debit_amount, e.credit_amount
		FROM journal_entries e
		JOIN journals j ON j.journal_id = e.journal_id
		WHERE j.owner_id = $1;
	`
	rows, err := r.Pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.JournalEntry, error) {
		return scanEntry(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan entries: %w", err)
	}
	if entries == nil {
		entries = []domain.JournalEntry{}
	}
	return entries, nil
}

// DeleteJournal removes one journal; entries go with it via ON DELETE CASCADE.
func (r *PgxJournalRepository) DeleteJournal(ctx context.Context, ownerID, journalID string) error {
	query := `DELETE FROM journals WHERE owner_id = $1 AND journal_id = $2;`

	tag, err := r.Pool.Exec(ctx, query, ownerID, journalID)
	if err != nil {
		return fmt.Errorf("failed to delete journal %s: %w", journalID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
