package postService

import (
	"BloggerPlatform/internal/api/post"
	postsRepository "BloggerPlatform/internal/api/post/repository"
	"BloggerPlatform/internal/entity"
	contextPkg "BloggerPlatform/pkg/context"
	"BloggerPlatform/pkg/validation"
	"errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
	"time"
)

func (s *postsService) GetAllPosts(ctx context.Context) ([]posts.PostResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.postsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	postsList, err := repo.Posts.GetAllPosts(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get posts")
		return nil, posts.ErrGetPosts
	}

	response := make([]posts.PostResponse, 0, len(postsList))
	for _, post := range postsList {
		response = append(response, posts.NewPostResponse(post))
	}

	return response, nil
}

func (s *postsService) CreatePost(ctx context.Context, req posts.PostRequest) (posts.PostResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.postsRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return posts.PostResponse{}, err
	}
	defer repo.Rollback()

	blog, err := s.checkInput(ctx, repo, req)
	if err != nil {
		return posts.PostResponse{}, err
	}

	now := time.Now()

	postID, err := s.utils.NewULIDFromTimestamp(now)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return posts.PostResponse{}, posts.ErrCreatePost
	}

	post := entity.Post{
		ID:               postID,
		Title:            req.Title.Value,
		ShortDescription: req.ShortDescription.Value,
		Content:          req.Content.Value,
		BlogID:           blog.ID,
		BlogName:         blog.Name,
		CreatedAt:        now.UTC().Truncate(time.Millisecond),
	}

	if err := repo.Posts.CreatePost(ctx, post); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create post")
		return posts.PostResponse{}, posts.ErrCreatePost
	}

	if err := ctx.Err(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Request deadline reached before commit")
		return posts.PostResponse{}, err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return posts.PostResponse{}, posts.ErrCreatePost
	}

	return posts.NewPostResponse(post), nil
}

func (s *postsService) GetPostByID(ctx context.Context, id string) (posts.PostResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.postsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return posts.PostResponse{}, err
	}

	post, err := repo.Posts.GetPostByID(ctx, id)
	if err != nil {
		if !errors.Is(err, posts.ErrPostNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
				"error":      err.Error(),
			}).Error("Failed to get post")
		}
		return posts.PostResponse{}, err
	}

	return posts.NewPostResponse(post), nil
}

func (s *postsService) UpdatePost(ctx context.Context, id string, req posts.PostRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.postsRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}
	defer repo.Rollback()

	blog, err := s.checkInput(ctx, repo, req)
	if err != nil {
		return err
	}

	post := entity.Post{
		ID:               id,
		Title:            req.Title.Value,
		ShortDescription: req.ShortDescription.Value,
		Content:          req.Content.Value,
		BlogID:           blog.ID,
		BlogName:         blog.Name,
	}

	if err := repo.Posts.UpdatePost(ctx, post); err != nil {
		if errors.Is(err, posts.ErrPostNotFound) {
			return err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to update post")
		return posts.ErrUpdatePost
	}

	if err := ctx.Err(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Request deadline reached before commit")
		return err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return posts.ErrUpdatePost
	}

	return nil
}

func (s *postsService) DeletePost(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.postsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	if err := repo.Posts.DeletePost(ctx, id); err != nil {
		if errors.Is(err, posts.ErrPostNotFound) {
			return err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to delete post")
		return posts.ErrDeletePost
	}

	return nil
}

// checkInput validates req and resolves its blogId. The blog lookup runs even
// when the schema already failed, and a missing blog is reported after the
// deduplicated schema errors.
func (s *postsService) checkInput(ctx context.Context, repo postsRepository.Client, req posts.PostRequest) (entity.Blog, error) {
	requestID := contextPkg.GetRequestID(ctx)

	var errs validation.Errors
	if err := s.validator.Validate(req); err != nil {
		if !errors.As(err, &errs) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Post input could not be validated")
			return entity.Blog{}, err
		}
	}

	var blog entity.Blog
	found := false
	if req.BlogID.Value != "" {
		b, err := repo.Blogs.GetBlogByID(ctx, req.BlogID.Value)
		switch {
		case err == nil:
			blog, found = b, true
		case errors.Is(err, posts.ErrBlogNotFound):
		default:
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"blog_id":    req.BlogID.Value,
				"error":      err.Error(),
			}).Error("Failed to look up blog")
			return entity.Blog{}, posts.ErrLookupBlog
		}
	}

	if !found {
		errs = append(errs, posts.BlogNotFoundError)
	}

	if len(errs) > 0 {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"errors":     len(errs),
		}).Debug("Post input rejected")
		return entity.Blog{}, errs
	}

	return blog, nil
}
