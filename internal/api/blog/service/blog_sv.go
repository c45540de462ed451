package blogService

import (
	"BloggerPlatform/internal/api/blog"
	"BloggerPlatform/internal/entity"
	contextPkg "BloggerPlatform/pkg/context"
	"BloggerPlatform/pkg/validation"
	"errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
	"time"
)

func (s *blogsService) GetAllBlogs(ctx context.Context) ([]blogs.BlogResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	blogsList, err := repo.Blogs.GetAllBlogs(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get blogs")
		return nil, blogs.ErrGetBlogs
	}

	response := make([]blogs.BlogResponse, 0, len(blogsList))
	for _, blog := range blogsList {
		response = append(response, blogs.NewBlogResponse(blog))
	}

	return response, nil
}

func (s *blogsService) CreateBlog(ctx context.Context, req blogs.BlogRequest) (blogs.BlogResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if err := s.validator.Validate(req); err != nil {
		s.logValidation(requestID, err)
		return blogs.BlogResponse{}, err
	}

	repo, err := s.blogsRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return blogs.BlogResponse{}, err
	}
	defer repo.Rollback()

	now := time.Now()

	blogID, err := s.utils.NewULIDFromTimestamp(now)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return blogs.BlogResponse{}, blogs.ErrCreateBlog
	}

	blog := entity.Blog{
		ID:           blogID,
		Name:         req.Name.Value,
		Description:  req.Description.Value,
		WebsiteURL:   req.WebsiteURL.Value,
		IsMembership: false,
		CreatedAt:    now.UTC().Truncate(time.Millisecond),
	}

	if err := repo.Blogs.CreateBlog(ctx, blog); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create blog")
		return blogs.BlogResponse{}, blogs.ErrCreateBlog
	}

	if err := ctx.Err(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Request deadline reached before commit")
		return blogs.BlogResponse{}, err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return blogs.BlogResponse{}, blogs.ErrCreateBlog
	}

	return blogs.NewBlogResponse(blog), nil
}

func (s *blogsService) GetBlogByID(ctx context.Context, id string) (blogs.BlogResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return blogs.BlogResponse{}, err
	}

	blog, err := repo.Blogs.GetBlogByID(ctx, id)
	if err != nil {
		if errors.Is(err, blogs.ErrBlogNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("Blog not found")
		} else {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
				"error":      err.Error(),
			}).Error("Failed to get blog")
		}
		return blogs.BlogResponse{}, err
	}

	return blogs.NewBlogResponse(blog), nil
}

func (s *blogsService) UpdateBlog(ctx context.Context, id string, req blogs.BlogRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	if err := s.validator.Validate(req); err != nil {
		s.logValidation(requestID, err)
		return err
	}

	repo, err := s.blogsRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}
	defer repo.Rollback()

	blog := entity.Blog{
		ID:          id,
		Name:        req.Name.Value,
		Description: req.Description.Value,
		WebsiteURL:  req.WebsiteURL.Value,
	}

	if err := repo.Blogs.UpdateBlog(ctx, blog); err != nil {
		if errors.Is(err, blogs.ErrBlogNotFound) {
			return err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to update blog")
		return blogs.ErrUpdateBlog
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
		return blogs.ErrUpdateBlog
	}

	return nil
}

func (s *blogsService) DeleteBlog(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}
	defer repo.Rollback()

	if err := repo.Blogs.DeleteBlog(ctx, id); err != nil {
		if errors.Is(err, blogs.ErrBlogNotFound) {
			return err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to delete blog")
		return blogs.ErrDeleteBlog
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
		return blogs.ErrDeleteBlog
	}

	return nil
}

func (s *blogsService) logValidation(requestID string, err error) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"errors":     len(verrs),
		}).Debug("Blog input rejected")
		return
	}
	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"error":      err.Error(),
	}).Error("Blog input could not be validated")
}
