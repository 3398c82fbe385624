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

type PgxSupplierRepository struct {
	db *pgxpool.Pool
}

func newPgxSupplierRepository(db *pgxpool.Pool) portsrepo.SupplierRepositoryFacade {
	return &PgxSupplierRepository{db: db}
}

var _ portsrepo.SupplierRepositoryFacade = (*PgxSupplierRepository)(nil)

const supplierColumns = `supplier_id, workspace_id, name, contact, phone, email, notes, created_at, created_by, last_updated_at, last_updated_by`

func scanSupplier(row pgx.Row) (*domain.Supplier, error) {
	var s domain.Supplier
	err := row.Scan(
		&s.SupplierID,
		&s.WorkspaceID,
		&s.Name,
		&s.Contact,
		&s.Phone,
		&s.Email,
		&s.Notes,
		&s.CreatedAt,
		&s.CreatedBy,
		&s.LastUpdatedAt,
		&s.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *PgxSupplierRepository) SaveSupplier(ctx context.Context, supplier domain.Supplier) error {
	query := `
		INSERT INTO suppliers (` + supplierColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.db.Exec(ctx, query,
		supplier.SupplierID,
		supplier.WorkspaceID,
		supplier.Name,
		supplier.Contact,
		supplier.Phone,
		supplier.Email,
		supplier.Notes,
		supplier.CreatedAt,
		supplier.CreatedBy,
		supplier.LastUpdatedAt,
		supplier.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save supplier: %w", mapWriteError(err))
	}
	return nil
}

func (r *PgxSupplierRepository) FindSupplierByID(ctx context.Context, workspaceID, supplierID string) (*domain.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE workspace_id = $1 AND supplier_id = $2;`
	supplier, err := scanSupplier(r.db.QueryRow(ctx, query, workspaceID, supplierID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find supplier by ID %s: %w", supplierID, err)
	}
	return supplier, nil
}

func (r *PgxSupplierRepository) ListSuppliersByWorkspace(ctx context.Context, workspaceID string) ([]domain.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE workspace_id = $1 ORDER BY name;`
	rows, err := r.db.Query(ctx, query, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query suppliers: %w", err)
	}
	defer rows.Close()

	suppliers := []domain.Supplier{}
	for rows.Next() {
		supplier, err := scanSupplier(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan supplier row: %w", err)
		}
		suppliers = append(suppliers, *supplier)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating supplier rows: %w", rows.Err())
	}
	return suppliers, nil
}

func (r *PgxSupplierRepository) UpdateSupplier(ctx context.Context, supplier domain.Supplier) error {
	query := `
		UPDATE suppliers
		SET name = $1, contact = $2, phone = $3, email = $4, notes = $5,
		    last_updated_at = $6, last_updated_by = $7
		WHERE workspace_id = $8 AND supplier_id = $9;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		supplier.Name,
		supplier.Contact,
		supplier.Phone,
		supplier.Email,
		supplier.Notes,
		supplier.LastUpdatedAt,
		supplier.LastUpdatedBy,
		supplier.WorkspaceID,
		supplier.SupplierID,
	)
	if err != nil {
		return fmt.Errorf("failed to update supplier: %w", mapWriteError(err))
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("supplier not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxSupplierRepository) DeleteSupplier(ctx context.Context, workspaceID, supplierID string) error {
	query := `DELETE FROM suppliers WHERE workspace_id = $1 AND supplier_id = $2;`
	cmdTag, err := r.db.Exec(ctx, query, workspaceID, supplierID)
	if err != nil {
		return fmt.Errorf("failed to delete supplier: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("supplier not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

type PgxCustomerRepository struct {
	db *pgxpool.Pool
}

func newPgxCustomerRepository(db *pgxpool.Pool) portsrepo.CustomerRepositoryFacade {
	return &PgxCustomerRepository{db: db}
}

var _ portsrepo.CustomerRepositoryFacade = (*PgxCustomerRepository)(nil)

const customerColumns = `customer_id, workspace_id, name, contact, phone, email, created_at, created_by, last_updated_at, last_updated_by`

func scanCustomer(row pgx.Row) (*domain.Customer, error) {
	var c domain.Customer
	err := row.Scan(
		&c.CustomerID,
		&c.WorkspaceID,
		&c.Name,
		&c.Contact,
		&c.Phone,
		&c.Email,
		&c.CreatedAt,
		&c.CreatedBy,
		&c.LastUpdatedAt,
		&c.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PgxCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	query := `
		INSERT INTO customers (` + customerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.db.Exec(ctx, query,
		customer.CustomerID,
		customer.WorkspaceID,
		customer.Name,
		customer.Contact,
		customer.Phone,
		customer.Email,
		customer.CreatedAt,
		customer.CreatedBy,
		customer.LastUpdatedAt,
		customer.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save customer: %w", mapWriteError(err))
	}
	return nil
}

func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, workspaceID, customerID string) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE workspace_id = $1 AND customer_id = $2;`
	customer, err := scanCustomer(r.db.QueryRow(ctx, query, workspaceID, customerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find customer by ID %s: %w", customerID, err)
	}
	return customer, nil
}

func (r *PgxCustomerRepository) ListCustomersByWorkspace(ctx context.Context, workspaceID string) ([]domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE workspace_id = $1 ORDER BY name;`
	rows, err := r.db.Query(ctx, query, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	customers := []domain.Customer{}
	for rows.Next() {
		customer, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer row: %w", err)
		}
		customers = append(customers, *customer)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating customer rows: %w", rows.Err())
	}
	return customers, nil
}

func (r *PgxCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	query := `
		UPDATE customers
		SET name = $1, contact = $2, phone = $3, email = $4,
		    last_updated_at = $5, last_updated_by = $6
		WHERE workspace_id = $7 AND customer_id = $8;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		customer.Name,
		customer.Contact,
		customer.Phone,
		customer.Email,
		customer.LastUpdatedAt,
		customer.LastUpdatedBy,
		customer.WorkspaceID,
		customer.CustomerID,
	)
	if err != nil {
		return fmt.Errorf("failed to update customer: %w", mapWriteError(err))
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("customer not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxCustomerRepository) DeleteCustomer(ctx context.Context, workspaceID, customerID string) error {
	query := `DELETE FROM customers WHERE workspace_id = $1 AND customer_id = $2;`
	cmdTag, err := r.db.Exec(ctx, query, workspaceID, customerID)
	if err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("customer not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

type PgxHarvestRepository struct {
	db *pgxpool.Pool
}

func newPgxHarvestRepository(db *pgxpool.Pool) portsrepo.HarvestRepositoryFacade {
	return &PgxHarvestRepository{db: db}
}

var _ portsrepo.HarvestRepositoryFacade = (*PgxHarvestRepository)(nil)

const harvestColumns = `harvest_id, workspace_id, plot_id, season_id, crop, quantity, unit, harvest_date, quantity_remaining, created_at, created_by, last_updated_at, last_updated_by`

func scanHarvest(row pgx.Row) (*domain.Harvest, error) {
	var h domain.Harvest
	err := row.Scan(
		&h.HarvestID,
		&h.WorkspaceID,
		&h.PlotID,
		&h.SeasonID,
		&h.Crop,
		&h.Quantity,
		&h.Unit,
		&h.HarvestDate,
		&h.QuantityRemaining,
		&h.CreatedAt,
		&h.CreatedBy,
		&h.LastUpdatedAt,
		&h.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *PgxHarvestRepository) SaveHarvest(ctx context.Context, harvest domain.Harvest) error {
	query := `
		INSERT INTO harvests (` + harvestColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.db.Exec(ctx, query,
		harvest.HarvestID,
		harvest.WorkspaceID,
		harvest.PlotID,
		harvest.SeasonID,
		harvest.Crop,
		harvest.Quantity,
		harvest.Unit,
		harvest.HarvestDate,
		harvest.QuantityRemaining,
		harvest.CreatedAt,
		harvest.CreatedBy,
		harvest.LastUpdatedAt,
		harvest.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save harvest: %w", mapWriteError(err))
	}
	return nil
}

func (r *PgxHarvestRepository) FindHarvestByID(ctx context.Context, workspaceID, harvestID string) (*domain.Harvest, error) {
	query := `SELECT ` + harvestColumns + ` FROM harvests WHERE workspace_id = $1 AND harvest_id = $2;`
	harvest, err := scanHarvest(r.db.QueryRow(ctx, query, workspaceID, harvestID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find harvest by ID %s: %w", harvestID, err)
	}
	return harvest, nil
}

func (r *PgxHarvestRepository) ListHarvestsByWorkspace(ctx context.Context, workspaceID string) ([]domain.Harvest, error) {
	query := `SELECT ` + harvestColumns + ` FROM harvests WHERE workspace_id = $1 ORDER BY harvest_date DESC;`
	rows, err := r.db.Query(ctx, query, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query harvests: %w", err)
	}
	defer rows.Close()

	harvests := []domain.Harvest{}
	for rows.Next() {
		harvest, err := scanHarvest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan harvest row: %w", err)
		}
		harvests = append(harvests, *harvest)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating harvest rows: %w", rows.Err())
	}
	return harvests, nil
}

func (r *PgxHarvestRepository) UpdateHarvest(ctx context.Context, harvest domain.Harvest) error {
	query := `
		UPDATE harvests
		SET plot_id = $1, season_id = $2, crop = $3, quantity = $4, unit = $5,
		    harvest_date = $6, quantity_remaining = $7, last_updated_at = $8, last_updated_by = $9
		WHERE workspace_id = $10 AND harvest_id = $11;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		harvest.PlotID,
		harvest.SeasonID,
		harvest.Crop,
		harvest.Quantity,
		harvest.Unit,
		harvest.HarvestDate,
		harvest.QuantityRemaining,
		harvest.LastUpdatedAt,
		harvest.LastUpdatedBy,
		harvest.WorkspaceID,
		harvest.HarvestID,
	)
	if err != nil {
		return fmt.Errorf("failed to update harvest: %w", mapWriteError(err))
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("harvest not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxHarvestRepository) DeleteHarvest(ctx context.Context, workspaceID, harvestID string) error {
	query := `DELETE FROM harvests WHERE workspace_id = $1 AND harvest_id = $2;`
	cmdTag, err := r.db.Exec(ctx, query, workspaceID, harvestID)
	if err != nil {
		return fmt.Errorf("failed to delete harvest: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("harvest not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

// AdjustRemaining atomically adds delta (negative when selling) to a harvest
// lot's remaining quantity. Callers validate available quantity first.
func (r *PgxHarvestRepository) AdjustRemaining(ctx context.Context, workspaceID, harvestID string, delta decimal.Decimal) error {
	query := `
		UPDATE harvests SET quantity_remaining = quantity_remaining + $1
		WHERE workspace_id = $2 AND harvest_id = $3;
	`
	cmdTag, err := r.db.Exec(ctx, query, delta, workspaceID, harvestID)
	if err != nil {
		return fmt.Errorf("failed to adjust harvest remaining quantity: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("harvest not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

type PgxSaleRepository struct {
	db *pgxpool.Pool
}

func newPgxSaleRepository(db *pgxpool.Pool) portsrepo.SaleRepositoryFacade {
	return &PgxSaleRepository{db: db}
}

var _ portsrepo.SaleRepositoryFacade = (*PgxSaleRepository)(nil)

const saleColumns = `sale_id, workspace_id, customer_id, harvest_id, quantity, unit_price, sale_date, invoice_number, journal_entry_id, created_at, created_by, last_updated_at, last_updated_by`

func scanSale(row pgx.Row) (*domain.Sale, error) {
	var s domain.Sale
	err := row.Scan(
		&s.SaleID,
		&s.WorkspaceID,
		&s.CustomerID,
		&s.HarvestID,
		&s.Quantity,
		&s.UnitPrice,
		&s.SaleDate,
		&s.InvoiceNumber,
		&s.JournalEntryID,
		&s.CreatedAt,
		&s.CreatedBy,
		&s.LastUpdatedAt,
		&s.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *PgxSaleRepository) SaveSale(ctx context.Context, sale domain.Sale) error {
	query := `
		INSERT INTO sales (` + saleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.db.Exec(ctx, query,
		sale.SaleID,
		sale.WorkspaceID,
		sale.CustomerID,
		sale.HarvestID,
		sale.Quantity,
		sale.UnitPrice,
		sale.SaleDate,
		sale.InvoiceNumber,
		sale.JournalEntryID,
		sale.CreatedAt,
		sale.CreatedBy,
		sale.LastUpdatedAt,
		sale.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save sale: %w", mapWriteError(err))
	}
	return nil
}

func (r *PgxSaleRepository) FindSaleByID(ctx context.Context, workspaceID, saleID string) (*domain.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE workspace_id = $1 AND sale_id = $2;`
	sale, err := scanSale(r.db.QueryRow(ctx, query, workspaceID, saleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find sale by ID %s: %w", saleID, err)
	}
	return sale, nil
}

func (r *PgxSaleRepository) ListSalesByWorkspace(ctx context.Context, workspaceID string) ([]domain.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE workspace_id = $1 ORDER BY sale_date DESC, invoice_number DESC;`
	rows, err := r.db.Query(ctx, query, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales: %w", err)
	}
	defer rows.Close()

	sales := []domain.Sale{}
	for rows.Next() {
		sale, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sale row: %w", err)
		}
		sales = append(sales, *sale)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating sale rows: %w", rows.Err())
	}
	return sales, nil
}

func (r *PgxSaleRepository) UpdateSale(ctx context.Context, sale domain.Sale) error {
	query := `
		UPDATE sales
		SET customer_id = $1, harvest_id = $2, quantity = $3, unit_price = $4,
		    sale_date = $5, invoice_number = $6, journal_entry_id = $7,
		    last_updated_at = $8, last_updated_by = $9
		WHERE workspace_id = $10 AND sale_id = $11;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		sale.CustomerID,
		sale.HarvestID,
		sale.Quantity,
		sale.UnitPrice,
		sale.SaleDate,
		sale.InvoiceNumber,
		sale.JournalEntryID,
		sale.LastUpdatedAt,
		sale.LastUpdatedBy,
		sale.WorkspaceID,
		sale.SaleID,
	)
	if err != nil {
		return fmt.Errorf("failed to update sale: %w", mapWriteError(err))
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("sale not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxSaleRepository) DeleteSale(ctx context.Context, workspaceID, saleID string) error {
	query := `DELETE FROM sales WHERE workspace_id = $1 AND sale_id = $2;`
	cmdTag, err := r.db.Exec(ctx, query, workspaceID, saleID)
	if err != nil {
		return fmt.Errorf("failed to delete sale: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("sale not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

// CountSalesByWorkspace backs sequential invoice numbering.
func (r *PgxSaleRepository) CountSalesByWorkspace(ctx context.Context, workspaceID string) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT count(*) FROM sales WHERE workspace_id = $1;`, workspaceID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count sales: %w", err)
	}
	return count, nil
}
