package services

import (
	portsrepo "github.com/agrisage/farm_management_app/internal/core/ports/repositories"
	portssvc "github.com/agrisage/farm_management_app/internal/core/ports/services"
	"github.com/agrisage/farm_management_app/pkg/config"
)

// NewServiceContainer wires every service against the repository provider.
// The workspace service is built first because it is the feature authorizer
// for everything else.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	userSvc := NewUserService(repos.UserRepo)
	workspaceSvc := NewWorkspaceService(repos.WorkspaceRepo, repos.UserRepo)

	return &portssvc.ServiceContainer{
		User:        userSvc,
		Token:       NewTokenService(cfg, userSvc),
		GoogleOAuth: NewGoogleOAuthService(cfg),
		Workspace:   workspaceSvc,
		Account: NewAccountService(repos.AccountRepo, repos.JournalRepo,
			WithAccountAuthorizer(workspaceSvc)),
		Journal: NewJournalService(repos.JournalRepo,
			WithJournalAuthorizer(workspaceSvc)),
		Reporting: NewReportingService(repos.AccountRepo, repos.JournalRepo,
			WithReportingAuthorizer(workspaceSvc)),
		Farm: NewFarmService(repos.PlotRepo, repos.SeasonRepo, repos.TaskRepo, repos.InventoryRepo,
			WithFarmAuthorizer(workspaceSvc)),
		HR: NewHRService(repos.EmployeeRepo, repos.TimesheetRepo,
			WithHRAuthorizer(workspaceSvc)),
		Inventory: NewInventoryService(repos.InventoryRepo,
			WithInventoryAuthorizer(workspaceSvc)),
		AEO: NewAEOService(repos.FarmerRepo, repos.InteractionRepo, repos.KnowledgeRepo,
			WithAEOAuthorizer(workspaceSvc)),
		Trade: NewTradeService(repos.SupplierRepo, repos.CustomerRepo, repos.HarvestRepo, repos.SaleRepo, repos.JournalRepo,
			WithTradeAuthorizer(workspaceSvc),
			WithTradeActivityRecorder(repos.ActivityRepo)),
		Platform: NewPlatformService(repos.UserRepo, repos.WorkspaceRepo, repos.PlatformRepo, repos.AuditLogRepo, repos.ActivityRepo,
			WithPlatformAuthorizer(workspaceSvc)),
	}
}
