package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	UserRepo        UserRepositoryFacade
	WorkspaceRepo   WorkspaceRepositoryFacade
	AccountRepo     AccountRepositoryFacade
	JournalRepo     JournalRepositoryFacade
	PlotRepo        PlotRepositoryFacade
	SeasonRepo      SeasonRepositoryFacade
	TaskRepo        TaskRepositoryFacade
	EmployeeRepo    EmployeeRepositoryFacade
	TimesheetRepo   TimesheetRepositoryFacade
	InventoryRepo   InventoryRepositoryFacade
	FarmerRepo      FarmerRepositoryFacade
	InteractionRepo InteractionRepositoryFacade
	KnowledgeRepo   KnowledgeBaseRepositoryFacade
	SupplierRepo    SupplierRepositoryFacade
	CustomerRepo    CustomerRepositoryFacade
	HarvestRepo     HarvestRepositoryFacade
	SaleRepo        SaleRepositoryFacade
	AuditLogRepo    AuditLogRepositoryFacade
	PlatformRepo    PlatformConfigRepositoryFacade
	ActivityRepo    WorkspaceActivityRepositoryFacade
}
