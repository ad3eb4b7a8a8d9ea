package dto

import (
	"time"

	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/google/uuid"
)

type BlogSummary struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	IsPublic  bool      `json:"isPublic"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateBlogResponse struct {
	Ok      bool        `json:"ok"`
	Message string      `json:"message"`
	Blog    BlogSummary `json:"blog"`
}

func NewCreateBlogResponse(blog *model.Blog) CreateBlogResponse {
	message := "Blog saved as draft successfully"
	if blog.Status == model.STATUS_PUBLISHED {
		message = "Blog published successfully"
	}

	return CreateBlogResponse{
		Ok: true,
		Message: message,
		Blog: BlogSummary{
			ID: blog.ID,
			Title: blog.Title,
			Status: blog.Status,
			IsPublic: blog.IsPublic,
			CreatedAt: blog.CreatedAt,
		},
	}
}

type Pagination struct {
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"hasMore"`
}

// BlogsPage is one page of an owner's blogs. HasMore is the full-page
// heuristic: true iff the page came back exactly limit long.
type BlogsPage struct {
	Blogs      []*model.Blog `json:"blogs"`
	Pagination Pagination    `json:"pagination"`
}

type UpdateBlogResponse struct {
	Ok      bool       `json:"ok"`
	Message string     `json:"message"`
	Blog    model.Blog `json:"blog"`
}
