package postgres

import (
	"context"
	"strconv"
	"time"

	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const blogColumns = "id, title, subtitle, content, tags, status, owner_name, owner_id, organization_id, organization_name, is_public, published_at, created_at, updated_at"

type blogRepo struct {
	db *pgxpool.Pool
}

func newBlogRepo(db *pgxpool.Pool) Blog {
	return &blogRepo{
		db: db,
	}
}

type blogScanner interface {
	Scan(dest ...any) error
}

func scanBlog(row blogScanner) (*model.Blog, error) {
	var blog model.Blog
	if err := row.Scan(
		&blog.ID,
		&blog.Title,
		&blog.Subtitle,
		&blog.Content,
		&blog.Tags,
		&blog.Status,
		&blog.OwnerName,
		&blog.OwnerID,
		&blog.OrganizationID,
		&blog.OrganizationName,
		&blog.IsPublic,
		&blog.PublishedAt,
		&blog.CreatedAt,
		&blog.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &blog, nil
}

func (r *blogRepo) Create(ctx context.Context, blog model.Blog) (*model.Blog, error) {
	now := time.Now()
	blog.CreatedAt = now
	blog.UpdatedAt = now
	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO blogs(title, subtitle, content, tags, status, owner_name, owner_id, organization_id, organization_name, is_public, published_at, created_at, updated_at)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id`,
		blog.Title,
		blog.Subtitle,
		blog.Content,
		blog.Tags,
		blog.Status,
		blog.OwnerName,
		blog.OwnerID,
		blog.OrganizationID,
		blog.OrganizationName,
		blog.IsPublic,
		blog.PublishedAt,
		blog.CreatedAt,
		blog.UpdatedAt,
	).Scan(&blog.ID); err != nil {
		return nil, err
	}

	return &blog, nil
}

func (r *blogRepo) FindByIDAndOwner(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*model.Blog, error) {
	row := r.db.QueryRow(
		ctx,
		"SELECT "+blogColumns+" FROM blogs WHERE id = $1 AND owner_id = $2",
		id,
		ownerID,
	)

	return scanBlog(row)
}

func (r *blogRepo) FindByOwner(ctx context.Context, ownerID uuid.UUID, limit int, offset int) ([]*model.Blog, error) {
	maxLimit(&limit)

	rows, err := r.db.Query(
		ctx,
		`SELECT `+blogColumns+`
		FROM blogs
		WHERE owner_id = $1
		ORDER BY created_at DESC
		LIMIT $2
		OFFSET $3`,
		ownerID,
		limit,
		offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var blogs []*model.Blog
	for rows.Next() {
		blog, err := scanBlog(rows)
		if err != nil {
			return nil, err
		}
		blogs = append(blogs, blog)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return blogs, nil
}

func (r *blogRepo) FindPublicByOrganization(ctx context.Context, organizationID string) ([]*model.Blog, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT `+blogColumns+`
		FROM blogs
		WHERE organization_id = $1 AND status = $2 AND is_public = true
		ORDER BY published_at DESC`,
		organizationID,
		model.STATUS_PUBLISHED,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var blogs []*model.Blog
	for rows.Next() {
		blog, err := scanBlog(rows)
		if err != nil {
			return nil, err
		}
		blogs = append(blogs, blog)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return blogs, nil
}

func (r *blogRepo) UpdateByIDAndOwner(ctx context.Context, id uuid.UUID, ownerID uuid.UUID, updates map[string]interface{}) (*model.Blog, error) {
	if len(updates) == 0 {
		return r.FindByIDAndOwner(ctx, id, ownerID)
	}

	allowedFields := []string{"status", "is_public", "published_at", "updated_at"}
	allowedFieldsSet := make(map[string]struct{}, len(allowedFields))
	for _, field := range allowedFields {
		allowedFieldsSet[field] = struct{}{}
	}

	for field := range updates {
		if _, ok := allowedFieldsSet[field]; !ok {
			return nil, ErrFieldsNotAllowedToUpdate
		}
	}

	query := "UPDATE blogs SET "
	args := []interface{}{}
	i := 1

	for column, value := range updates {
		query += (column + " = $" + strconv.Itoa(i) + ", ")
		args = append(args, value)
		i++
	}

	query = query[:len(query)-2] + " WHERE id = $" + strconv.Itoa(i) + " AND owner_id = $" + strconv.Itoa(i+1) + " RETURNING " + blogColumns
	args = append(args, id, ownerID)

	row := r.db.QueryRow(ctx, query, args...)

	return scanBlog(row)
}
