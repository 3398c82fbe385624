package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	User        UserSvcFacade
	Token       TokenSvcFacade
	GoogleOAuth GoogleOAuthSvcFacade
	Workspace   WorkspaceSvcFacade
	Account     AccountSvcFacade
	Journal     JournalSvcFacade
	Reporting   ReportingSvcFacade
	Farm        FarmSvcFacade
	HR          HRSvcFacade
	Inventory   InventorySvcFacade
	AEO         AEOSvcFacade
	Trade       TradeSvcFacade
	Platform    PlatformSvcFacade
}
