package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	ArticleRepo   ArticleRepositoryFacade
	CategoryRepo  CategoryRepositoryFacade
	TagRepo       TagRepositoryFacade
	AccountRepo   AccountRepositoryFacade
	ReportingRepo ReportingRepository
}
