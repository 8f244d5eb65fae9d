package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/SscSPs/news_management_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ArticleRepo:   newPgxArticleRepository(dbPool),
		CategoryRepo:  newPgxCategoryRepository(dbPool),
		TagRepo:       newPgxTagRepository(dbPool),
		AccountRepo:   newPgxAccountRepository(dbPool),
		ReportingRepo: newReportingRepository(dbPool),
	}
}
