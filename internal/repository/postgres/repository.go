package postgres

import (
	"context"

	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const MAX_LIMIT = 50

func maxLimit(limit *int) {
	if *limit > MAX_LIMIT {
		*limit = MAX_LIMIT
	}
}

type Blog interface {
	Create(ctx context.Context, blog model.Blog) (*model.Blog, error)
	FindByIDAndOwner(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*model.Blog, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID, limit int, offset int) ([]*model.Blog, error)
	FindPublicByOrganization(ctx context.Context, organizationID string) ([]*model.Blog, error)
	UpdateByIDAndOwner(ctx context.Context, id uuid.UUID, ownerID uuid.UUID, updates map[string]interface{}) (*model.Blog, error)
}

type UserCache interface {
	Create(ctx context.Context, cachedUser model.CachedUser) error
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.CachedUser, error)
}

type PostgresRepository struct {
	Blog
	UserCache
}

func New(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{
		Blog: newBlogRepo(db),
		UserCache: newUserCacheRepo(db),
	}
}
