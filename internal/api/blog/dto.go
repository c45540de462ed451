package blogs

import (
	"BloggerPlatform/internal/entity"
	"BloggerPlatform/pkg/validation"
	"time"
)

const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

type BlogRequest struct {
	Name        validation.Field `json:"name" validate:"required,max=15"`
	Description validation.Field `json:"description" validate:"required,max=500"`
	WebsiteURL  validation.Field `json:"websiteUrl" validate:"required,max=100,websiteurl"`
}

type BlogResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	WebsiteURL   string `json:"websiteUrl"`
	CreatedAt    string `json:"createdAt"`
	IsMembership bool   `json:"isMembership"`
}

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// NewBlogResponse maps a stored blog to its public shape.
func NewBlogResponse(blog entity.Blog) BlogResponse {
	return BlogResponse{
		ID:           blog.ID,
		Name:         blog.Name,
		Description:  blog.Description,
		WebsiteURL:   blog.WebsiteURL,
		CreatedAt:    FormatTimestamp(blog.CreatedAt),
		IsMembership: blog.IsMembership,
	}
}
