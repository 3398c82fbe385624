package pgsql

import (
	portsrepo "github.com/agrisage/farm_management_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:        newPgxUserRepository(dbPool),
		WorkspaceRepo:   newPgxWorkspaceRepository(dbPool),
		AccountRepo:     newPgxAccountRepository(dbPool),
		JournalRepo:     newPgxJournalRepository(dbPool),
		PlotRepo:        newPgxPlotRepository(dbPool),
		SeasonRepo:      newPgxSeasonRepository(dbPool),
		TaskRepo:        newPgxTaskRepository(dbPool),
		EmployeeRepo:    newPgxEmployeeRepository(dbPool),
		TimesheetRepo:   newPgxTimesheetRepository(dbPool),
		InventoryRepo:   newPgxInventoryRepository(dbPool),
		FarmerRepo:      newPgxFarmerRepository(dbPool),
		InteractionRepo: newPgxInteractionRepository(dbPool),
		KnowledgeRepo:   newPgxKnowledgeBaseRepository(dbPool),
		SupplierRepo:    newPgxSupplierRepository(dbPool),
		CustomerRepo:    newPgxCustomerRepository(dbPool),
		HarvestRepo:     newPgxHarvestRepository(dbPool),
		SaleRepo:        newPgxSaleRepository(dbPool),
		AuditLogRepo:    newPgxAuditLogRepository(dbPool),
		PlatformRepo:    newPgxPlatformConfigRepository(dbPool),
		ActivityRepo:    newPgxWorkspaceActivityRepository(dbPool),
	}
}
