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
	"github.com/shopspring/decimal"
)

type PgxInventoryRepository struct {
	db *pgxpool.Pool
}

func newPgxInventoryRepository(db *pgxpool.Pool) portsrepo.InventoryRepositoryFacade {
	return &PgxInventoryRepository{db: db}
}

var _ portsrepo.InventoryRepositoryFacade = (*PgxInventoryRepository)(nil)

const inventoryColumns = `inventory_id, workspace_id, name, category, quantity, unit, supplier, purchase_date, cost_per_unit, reorder_point`

func scanInventoryItem(row pgx.Row) (*domain.InventoryItem, error) {
	var i domain.InventoryItem
	err := row.Scan(
		&i.InventoryID,
		&i.WorkspaceID,
		&i.Name,
		&i.Category,
		&i.Quantity,
		&i.Unit,
		&i.Supplier,
		&i.PurchaseDate,
		&i.CostPerUnit,
		&i.ReorderPoint,
	)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *PgxInventoryRepository) SaveItem(ctx context.Context, item domain.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (` + inventoryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.db.Exec(ctx, query,
		item.InventoryID,
		item.WorkspaceID,
		item.Name,
		item.Category,
		item.Quantity,
		item.Unit,
		item.Supplier,
		item.PurchaseDate,
		item.CostPerUnit,
		item.ReorderPoint,
	)
	if err != nil {
		return fmt.Errorf("failed to save inventory item: %w", mapWriteError(err))
	}
	return nil
}

func (r *PgxInventoryRepository) FindItemByID(ctx context.Context, workspaceID, itemID string) (*domain.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items WHERE workspace_id = $1 AND inventory_id = $2;`
	item, err := scanInventoryItem(r.db.QueryRow(ctx, query, workspaceID, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find inventory item by ID %s: %w", itemID, err)
	}
	return item, nil
}

func (r *PgxInventoryRepository) ListItemsByWorkspace(ctx context.Context, workspaceID string) ([]domain.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items WHERE workspace_id = $1 ORDER BY name;`
	rows, err := r.db.Query(ctx, query, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query inventory items: %w", err)
	}
	defer rows.Close()

	items := []domain.InventoryItem{}
	for rows.Next() {
		item, err := scanInventoryItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inventory row: %w", err)
		}
		items = append(items, *item)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating inventory rows: %w", rows.Err())
	}
	return items, nil
}

func (r *PgxInventoryRepository) UpdateItem(ctx context.Context, item domain.InventoryItem) error {
	query := `
		UPDATE inventory_items
		SET name = $1, category = $2, quantity = $3, unit = $4, supplier = $5,
		    purchase_date = $6, cost_per_unit = $7, reorder_point = $8
		WHERE workspace_id = $9 AND inventory_id = $10;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		item.Name,
		item.Category,
		item.Quantity,
		item.Unit,
		item.Supplier,
		item.PurchaseDate,
		item.CostPerUnit,
		item.ReorderPoint,
		item.WorkspaceID,
		item.InventoryID,
	)
	if err != nil {
		return fmt.Errorf("failed to update inventory item: %w", mapWriteError(err))
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("inventory item not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxInventoryRepository) DeleteItem(ctx context.Context, workspaceID, itemID string) error {
	query := `DELETE FROM inventory_items WHERE workspace_id = $1 AND inventory_id = $2;`
	cmdTag, err := r.db.Exec(ctx, query, workspaceID, itemID)
	if err != nil {
		return fmt.Errorf("failed to delete inventory item: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("inventory item not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

// AdjustQuantity atomically adds delta (may be negative) to the item's
// quantity. Callers validate available stock before drawing down.
func (r *PgxInventoryRepository) AdjustQuantity(ctx context.Context, workspaceID, itemID string, delta decimal.Decimal) error {
	query := `
		UPDATE inventory_items SET quantity = quantity + $1
		WHERE workspace_id = $2 AND inventory_id = $3;
	`
	cmdTag, err := r.db.Exec(ctx, query, delta, workspaceID, itemID)
	if err != nil {
		return fmt.Errorf("failed to adjust inventory quantity: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("inventory item not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
