package service

import (
	"context"

	"github.com/BloggingApp/blog-service/internal/dto"
	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/BloggingApp/blog-service/internal/rabbitmq"
	"github.com/BloggingApp/blog-service/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const MAX_LIMIT = 50

func maxLimit(limit *int) {
	if *limit > MAX_LIMIT {
		*limit = MAX_LIMIT
	}
}

type Blog interface {
	Create(ctx context.Context, caller *model.Caller, input dto.CreateBlogRequest) (*model.Blog, error)
	FindOwned(ctx context.Context, caller *model.Caller, limit int, offset int) (*dto.BlogsPage, error)
	FindPublic(ctx context.Context, organizationID string) ([]*model.Blog, error)
	Update(ctx context.Context, caller *model.Caller, input dto.UpdateBlogRequest) (*model.Blog, error)
}

type UserCache interface {
	CreateOrGet(ctx context.Context, id uuid.UUID, accessToken string) (*model.CachedUser, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.CachedUser, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	StartConsumeUpdates(ctx context.Context)
}

type Service struct {
	Blog
	UserCache
}

func New(logger *zap.Logger, repo *repository.Repository, rabbitmq *rabbitmq.MQConn) *Service {
	return &Service{
		Blog: newBlogService(logger, repo),
		UserCache: newUserCacheService(logger, repo, rabbitmq),
	}
}

func (s *Service) StartConsumeAll(ctx context.Context) {
	go s.UserCache.StartConsumeUpdates(ctx)
}
