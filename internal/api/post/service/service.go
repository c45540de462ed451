package postService

import (
	"BloggerPlatform/internal/api/post"
	postsRepository "BloggerPlatform/internal/api/post/repository"
	"BloggerPlatform/pkg/utils"
	"BloggerPlatform/pkg/validation"
	"context"
	"github.com/sirupsen/logrus"
)

type IPostsService interface {
	GetAllPosts(ctx context.Context) ([]posts.PostResponse, error)
	CreatePost(ctx context.Context, req posts.PostRequest) (posts.PostResponse, error)
	GetPostByID(ctx context.Context, id string) (posts.PostResponse, error)
	UpdatePost(ctx context.Context, id string, req posts.PostRequest) error
	DeletePost(ctx context.Context, id string) error
}

type postsService struct {
	log       *logrus.Logger
	postsRepo postsRepository.Repository
	validator *validation.Validator
	utils     utils.IUtils
}

func NewPostsService(
	log *logrus.Logger,
	postsRepo postsRepository.Repository,
	validator *validation.Validator,
	utils utils.IUtils,
) IPostsService {
	return &postsService{
		log:       log,
		postsRepo: postsRepo,
		validator: validator,
		utils:     utils,
	}
}
