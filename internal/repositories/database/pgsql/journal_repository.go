package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/agrisage/farm_management_app/internal/apperrors"
	"github.com/agrisage/farm_management_app/internal/core/domain"
	portsrepo "github.com/agrisage/farm_management_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxJournalRepository persists journal entries with their line sets. Lines
// are replaced wholesale on update; an entry and its lines always change
// together inside one transaction.
type PgxJournalRepository struct {
	BaseRepository
}

func newPgxJournalRepository(db *pgxpool.Pool) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

const journalColumns = `entry_id, workspace_id, entry_date, description, currency_code, category, created_at, created_by, last_updated_at, last_updated_by`

func scanJournalEntry(row pgx.Row) (*domain.JournalEntry, error) {
	var e domain.JournalEntry
	err := row.Scan(
		&e.EntryID,
		&e.WorkspaceID,
		&e.EntryDate,
		&e.Description,
		&e.CurrencyCode,
		&e.Category,
		&e.CreatedAt,
		&e.CreatedBy,
		&e.LastUpdatedAt,
		&e.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *PgxJournalRepository) insertEntryTx(ctx context.Context, tx pgx.Tx, entry domain.JournalEntry) error {
	query := `
		INSERT INTO journal_entries (` + journalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := tx.Exec(ctx, query,
		entry.EntryID,
		entry.WorkspaceID,
		entry.EntryDate,
		entry.Description,
		entry.CurrencyCode,
		entry.Category,
		entry.CreatedAt,
		entry.CreatedBy,
		entry.LastUpdatedAt,
		entry.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save journal entry: %w", mapWriteError(err))
	}
	return r.insertLinesTx(ctx, tx, entry)
}

func (r *PgxJournalRepository) insertLinesTx(ctx context.Context, tx pgx.Tx, entry domain.JournalEntry) error {
	query := `
		INSERT INTO journal_lines (entry_id, line_index, account_id, line_type, amount, plot_id, season_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	for i, line := range entry.Lines {
		_, err := tx.Exec(ctx, query,
			entry.EntryID,
			i,
			line.AccountID,
			line.LineType,
			line.Amount,
			line.PlotID,
			line.SeasonID,
		)
		if err != nil {
			return fmt.Errorf("failed to save journal line: %w", mapWriteError(err))
		}
	}
	return nil
}

func (r *PgxJournalRepository) loadLines(ctx context.Context, entryIDs []string) (map[string][]domain.JournalLine, error) {
	query := `
		SELECT entry_id, account_id, line_type, amount, plot_id, season_id
		FROM journal_lines
		WHERE entry_id = ANY($1)
		ORDER BY entry_id, line_index;
	`
	rows, err := r.Pool.Query(ctx, query, entryIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal lines: %w", err)
	}
	defer rows.Close()

	lines := map[string][]domain.JournalLine{}
	for rows.Next() {
		var entryID string
		var line domain.JournalLine
		err := rows.Scan(&entryID, &line.AccountID, &line.LineType, &line.Amount, &line.PlotID, &line.SeasonID)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journal line row: %w", err)
		}
		lines[entryID] = append(lines[entryID], line)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating journal line rows: %w", rows.Err())
	}
	return lines, nil
}

func (r *PgxJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := r.insertEntryTx(ctx, tx, entry); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// SaveEntries persists a batch atomically; used by bulk import.
func (r *PgxJournalRepository) SaveEntries(ctx context.Context, entries []domain.JournalEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	for _, entry := range entries {
		if err := r.insertEntryTx(ctx, tx, entry); err != nil {
			return err
		}
	}
	return r.Commit(ctx, tx)
}

func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, workspaceID, entryID string) (*domain.JournalEntry, error) {
	query := `SELECT ` + journalColumns + ` FROM journal_entries WHERE workspace_id = $1 AND entry_id = $2;`
	entry, err := scanJournalEntry(r.Pool.QueryRow(ctx, query, workspaceID, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find journal entry by ID %s: %w", entryID, err)
	}

	lines, err := r.loadLines(ctx, []string{entry.EntryID})
	if err != nil {
		return nil, err
	}
	entry.Lines = lines[entry.EntryID]
	return entry, nil
}

func (r *PgxJournalRepository) ListEntriesByWorkspace(ctx context.Context, workspaceID string) ([]domain.JournalEntry, error) {
	query := `SELECT ` + journalColumns + ` FROM journal_entries WHERE workspace_id = $1 ORDER BY entry_date DESC, entry_id;`
	rows, err := r.Pool.Query(ctx, query, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.JournalEntry{}
	entryIDs := []string{}
	for rows.Next() {
		entry, err := scanJournalEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journal entry row: %w", err)
		}
		entries = append(entries, *entry)
		entryIDs = append(entryIDs, entry.EntryID)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating journal entry rows: %w", rows.Err())
	}

	if len(entryIDs) == 0 {
		return entries, nil
	}
	lines, err := r.loadLines(ctx, entryIDs)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		entries[i].Lines = lines[entries[i].EntryID]
	}
	return entries, nil
}

// UpdateEntry replaces the entry row and its full line set.
func (r *PgxJournalRepository) UpdateEntry(ctx context.Context, entry domain.JournalEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE journal_entries
		SET entry_date = $1, description = $2, currency_code = $3, category = $4,
		    last_updated_at = $5, last_updated_by = $6
		WHERE workspace_id = $7 AND entry_id = $8;
	`
	cmdTag, err := tx.Exec(ctx, query,
		entry.EntryDate,
		entry.Description,
		entry.CurrencyCode,
		entry.Category,
		entry.LastUpdatedAt,
		entry.LastUpdatedBy,
		entry.WorkspaceID,
		entry.EntryID,
	)
	if err != nil {
		return fmt.Errorf("failed to update journal entry: %w", mapWriteError(err))
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("journal entry not found: %w", apperrors.ErrNotFound)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM journal_lines WHERE entry_id = $1;`, entry.EntryID); err != nil {
		return fmt.Errorf("failed to clear journal lines: %w", err)
	}
	if err := r.insertLinesTx(ctx, tx, entry); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

func (r *PgxJournalRepository) DeleteEntry(ctx context.Context, workspaceID, entryID string) error {
	// journal_lines rows go with the entry via ON DELETE CASCADE
	query := `DELETE FROM journal_entries WHERE workspace_id = $1 AND entry_id = $2;`
	cmdTag, err := r.Pool.Exec(ctx, query, workspaceID, entryID)
	if err != nil {
		return fmt.Errorf("failed to delete journal entry: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("journal entry not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
