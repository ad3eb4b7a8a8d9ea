package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	STATUS_DRAFT     = "draft"
	STATUS_PUBLISHED = "published"
)

func IsValidStatus(status string) bool {
	return status == STATUS_DRAFT || status == STATUS_PUBLISHED
}

type Blog struct {
	ID               uuid.UUID  `json:"id"`
	Title            string     `json:"title"`
	Subtitle         *string    `json:"subtitle"`
	Content          string     `json:"content"`
	Tags             []string   `json:"tags"`
	Status           string     `json:"status"`
	OwnerName        string     `json:"ownerName"`
	OwnerID          uuid.UUID  `json:"ownerId"`
	OrganizationID   *string    `json:"organizationId"`
	OrganizationName *string    `json:"organizationName"`
	IsPublic         bool       `json:"isPublic"`
	PublishedAt      *time.Time `json:"publishedAt"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}
