package blogService

import (
	"BloggerPlatform/internal/api/blog"
	blogsRepository "BloggerPlatform/internal/api/blog/repository"
	"BloggerPlatform/pkg/utils"
	"BloggerPlatform/pkg/validation"
	"context"
	"github.com/sirupsen/logrus"
)

type IBlogsService interface {
	GetAllBlogs(ctx context.Context) ([]blogs.BlogResponse, error)
	CreateBlog(ctx context.Context, req blogs.BlogRequest) (blogs.BlogResponse, error)
	GetBlogByID(ctx context.Context, id string) (blogs.BlogResponse, error)
	UpdateBlog(ctx context.Context, id string, req blogs.BlogRequest) error
	DeleteBlog(ctx context.Context, id string) error
}

type blogsService struct {
	log       *logrus.Logger
	blogsRepo blogsRepository.Repository
	validator *validation.Validator
	utils     utils.IUtils
}

func NewBlogsService(
	log *logrus.Logger,
	blogsRepo blogsRepository.Repository,
	validator *validation.Validator,
	utils utils.IUtils,
) IBlogsService {
	return &blogsService{
		log:       log,
		blogsRepo: blogsRepo,
		validator: validator,
		utils:     utils,
	}
}
