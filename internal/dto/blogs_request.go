package dto

// CreateBlogRequest carries the raw create payload. Field rules are
// checked by the blog service, which collects every violation instead of
// failing on the first one, so there are no binding tags here.
type CreateBlogRequest struct {
	Title            string   `json:"title"`
	Subtitle         *string  `json:"subtitle"`
	Content          string   `json:"content"`
	Tags             []string `json:"tags"`
	Status           *string  `json:"status"`
	OrganizationID   *string  `json:"organizationId"`
	OrganizationName *string  `json:"organizationName"`
	IsPublic         *bool    `json:"isPublic"`
}

// UpdateBlogRequest toggles lifecycle state. Both fields are optional; an
// empty patch is a no-op that still returns the blog.
type UpdateBlogRequest struct {
	BlogID   string  `json:"blogId"`
	Status   *string `json:"status"`
	IsPublic *bool   `json:"isPublic"`
}
