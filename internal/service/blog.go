package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/BloggingApp/blog-service/internal/dto"
	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/BloggingApp/blog-service/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

const (
	MAX_TITLE_LEN    = 255
	MAX_SUBTITLE_LEN = 500

	uniqueViolationCode = "23505"
)

type blogService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newBlogService(logger *zap.Logger, repo *repository.Repository) Blog {
	return &blogService{
		logger: logger,
		repo: repo,
	}
}

func validateCreateBlogRequest(input dto.CreateBlogRequest) []string {
	var violations []string

	if strings.TrimSpace(input.Title) == "" {
		violations = append(violations, "Title is required")
	}
	if utf8.RuneCountInString(input.Title) > MAX_TITLE_LEN {
		violations = append(violations, "Title must be less than "+strconv.Itoa(MAX_TITLE_LEN)+" characters")
	}
	if input.Subtitle != nil && utf8.RuneCountInString(*input.Subtitle) > MAX_SUBTITLE_LEN {
		violations = append(violations, "Subtitle must be less than "+strconv.Itoa(MAX_SUBTITLE_LEN)+" characters")
	}
	if strings.TrimSpace(input.Content) == "" {
		violations = append(violations, "Content is required")
	}
	if input.Status != nil && !model.IsValidStatus(*input.Status) {
		violations = append(violations, "Status must be either draft or published")
	}

	return violations
}

// ownerName builds the denormalized author name stored on each blog:
// "first last", falling back to the username, then the email, then a
// literal placeholder.
func ownerName(user model.CachedUser) string {
	var first, last string
	if user.FirstName != nil {
		first = *user.FirstName
	}
	if user.LastName != nil {
		last = *user.LastName
	}

	fullName := strings.TrimSpace(first + " " + last)
	if fullName != "" {
		return fullName
	}
	if user.Username != "" {
		return user.Username
	}
	if user.Email != nil && *user.Email != "" {
		return *user.Email
	}

	return "Unknown User"
}

func (s *blogService) Create(ctx context.Context, caller *model.Caller, input dto.CreateBlogRequest) (*model.Blog, error) {
	if caller == nil {
		return nil, ErrUnauthenticated
	}

	if violations := validateCreateBlogRequest(input); len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}

	status := model.STATUS_DRAFT
	if input.Status != nil {
		status = *input.Status
	}

	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	blog := model.Blog{
		Title: strings.TrimSpace(input.Title),
		Content: strings.TrimSpace(input.Content),
		Tags: tags,
		Status: status,
		OwnerName: ownerName(caller.User),
		OwnerID: caller.User.ID,
		OrganizationID: input.OrganizationID,
		OrganizationName: input.OrganizationName,
		IsPublic: input.IsPublic != nil && *input.IsPublic,
	}

	if input.Subtitle != nil {
		subtitle := strings.TrimSpace(*input.Subtitle)
		if subtitle != "" {
			blog.Subtitle = &subtitle
		}
	}

	if blog.OrganizationID == nil {
		blog.OrganizationID = caller.OrganizationID
		if blog.OrganizationName == nil {
			blog.OrganizationName = caller.OrganizationName
		}
	}

	if status == model.STATUS_PUBLISHED {
		now := time.Now()
		blog.PublishedAt = &now
	}

	createdBlog, err := s.repo.Postgres.Blog.Create(ctx, blog)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, ErrBlogTitleTaken
		}

		s.logger.Sugar().Errorf("failed to create user(%s) blog: %s", blog.OwnerID.String(), err.Error())
		return nil, ErrInternal
	}

	return createdBlog, nil
}

func (s *blogService) FindOwned(ctx context.Context, caller *model.Caller, limit int, offset int) (*dto.BlogsPage, error) {
	if caller == nil {
		return nil, ErrUnauthenticated
	}

	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}
	maxLimit(&limit)

	blogs, err := s.repo.Postgres.Blog.FindByOwner(ctx, caller.User.ID, limit, offset)
	if err != nil && err != pgx.ErrNoRows {
		s.logger.Sugar().Errorf("failed to find owner(%s) blogs: %s", caller.User.ID.String(), err.Error())
		return nil, ErrInternal
	}

	if blogs == nil {
		blogs = []*model.Blog{}
	}

	return &dto.BlogsPage{
		Blogs: blogs,
		Pagination: dto.Pagination{
			Limit: limit,
			Offset: offset,
			HasMore: len(blogs) == limit,
		},
	}, nil
}

func (s *blogService) FindPublic(ctx context.Context, organizationID string) ([]*model.Blog, error) {
	if strings.TrimSpace(organizationID) == "" {
		return nil, &ValidationError{Violations: []string{"Organization ID is required"}}
	}

	blogs, err := s.repo.Postgres.Blog.FindPublicByOrganization(ctx, organizationID)
	if err != nil && err != pgx.ErrNoRows {
		s.logger.Sugar().Errorf("failed to find organization(%s) public blogs: %s", organizationID, err.Error())
		return nil, ErrInternal
	}

	if blogs == nil {
		blogs = []*model.Blog{}
	}

	return blogs, nil
}

func (s *blogService) Update(ctx context.Context, caller *model.Caller, input dto.UpdateBlogRequest) (*model.Blog, error) {
	if caller == nil {
		return nil, ErrUnauthenticated
	}

	var violations []string

	var blogID uuid.UUID
	if strings.TrimSpace(input.BlogID) == "" {
		violations = append(violations, "Blog ID is required")
	} else {
		parsed, err := uuid.Parse(input.BlogID)
		if err != nil {
			violations = append(violations, "Blog ID must be a valid UUID")
		} else {
			blogID = parsed
		}
	}

	if input.Status != nil && !model.IsValidStatus(*input.Status) {
		violations = append(violations, "Status must be either draft or published")
	}

	if len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}

	updates := make(map[string]interface{})

	if input.Status != nil {
		updates["status"] = *input.Status
		if *input.Status == model.STATUS_PUBLISHED {
			updates["published_at"] = time.Now()
		} else {
			updates["published_at"] = nil
		}
		updates["updated_at"] = time.Now()
	}

	if input.IsPublic != nil {
		updates["is_public"] = *input.IsPublic
		updates["updated_at"] = time.Now()
	}

	updatedBlog, err := s.repo.Postgres.Blog.UpdateByIDAndOwner(ctx, blogID, caller.User.ID, updates)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrBlogNotFound
		}

		s.logger.Sugar().Errorf("failed to update blog(%s) for user(%s): %s", blogID.String(), caller.User.ID.String(), err.Error())
		return nil, ErrInternal
	}

	return updatedBlog, nil
}
