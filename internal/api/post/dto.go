package posts

import (
	"BloggerPlatform/internal/api/blog"
	"BloggerPlatform/internal/entity"
	"BloggerPlatform/pkg/validation"
)

type PostRequest struct {
	Title            validation.Field `json:"title" validate:"required,max=30"`
	ShortDescription validation.Field `json:"shortDescription" validate:"required,max=100"`
	Content          validation.Field `json:"content" validate:"required,max=1000"`
	BlogID           validation.Field `json:"blogId" validate:"required"`
}

type PostResponse struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	ShortDescription string `json:"shortDescription"`
	Content          string `json:"content"`
	BlogID           string `json:"blogId"`
	BlogName         string `json:"blogName"`
	CreatedAt        string `json:"createdAt"`
}

func NewPostResponse(post entity.Post) PostResponse {
	return PostResponse{
		ID:               post.ID,
		Title:            post.Title,
		ShortDescription: post.ShortDescription,
		Content:          post.Content,
		BlogID:           post.BlogID,
		BlogName:         post.BlogName,
		CreatedAt:        blogs.FormatTimestamp(post.CreatedAt),
	}
}
