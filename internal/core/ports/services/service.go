package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Article            ArticleSvcFacade
	Category           CategorySvcFacade
	Tag                TagSvcFacade
	Account            AccountSvcFacade
	Reporting          ReportingService
	Assistant          AssistantSvc
	Image              ImageSvc
	TokenService       TokenSvcFacade
	GoogleOAuthHandler GoogleOAuthHandlerSvcFacade
}
