package services

import (
	"github.com/SscSPs/news_management_app/internal/assistant"
	"github.com/SscSPs/news_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/news_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/news_management_app/internal/core/ports/services"
	"github.com/SscSPs/news_management_app/internal/imagestore"
	"github.com/SscSPs/news_management_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, caches ListingCaches, images *imagestore.Store) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Categories and tags first; articles reference them.
	container.Category = NewCategoryService(repos.CategoryRepo, WithListingCache(caches.Categories))
	container.Tag = NewTagService(repos.TagRepo, WithListingCache(caches.Tags))
	container.Article = NewArticleService(
		repos.ArticleRepo,
		repos.CategoryRepo,
		repos.TagRepo,
		WithListingCache(caches.Articles),
	)

	container.Account = NewAccountService(repos.AccountRepo)
	container.Reporting = NewReportingService(repos.ReportingRepo, container.Article, repos.CategoryRepo, repos.AccountRepo)

	llm := assistant.NewClient(assistant.Config{
		APIKey:  cfg.GroqAPIKey,
		Model:   cfg.GroqModel,
		BaseURL: cfg.GroqBaseURL,
		Timeout: cfg.AITimeout,
	})
	container.Assistant = NewAssistantService(llm, container.Category, repos.ReportingRepo)
	container.Image = NewImageService(images)

	container.TokenService = NewTokenService(cfg)
	container.GoogleOAuthHandler = NewGoogleOAuthHandlerService(cfg)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.ArticleSvcFacade  = (*articleService)(nil)
	_ portssvc.CategorySvcFacade = (*categoryService)(nil)
	_ portssvc.TagSvcFacade      = (*tagService)(nil)
	_ portssvc.AccountSvcFacade  = (*accountService)(nil)
	_ portssvc.ReportingService  = (*reportingService)(nil)
	_ portssvc.AssistantSvc      = (*assistantService)(nil)
	_ portssvc.ImageSvc          = (*imageService)(nil)
	_ Completer                  = (*assistant.Client)(nil)
	_ domain.WorkflowEntity      = (*domain.Article)(nil)
)
