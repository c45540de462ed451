package maintenanceService

import (
	"BloggerPlatform/internal/api/maintenance"
	blogsRepository "BloggerPlatform/internal/api/blog/repository"
	postsRepository "BloggerPlatform/internal/api/post/repository"
	contextPkg "BloggerPlatform/pkg/context"
	"context"
	"github.com/sirupsen/logrus"
)

type IMaintenanceService interface {
	ClearAllData(ctx context.Context) (maintenance.ClearResult, error)
}

type maintenanceService struct {
	log       *logrus.Logger
	blogsRepo blogsRepository.Repository
	postsRepo postsRepository.Repository
}

func NewMaintenanceService(
	log *logrus.Logger,
	blogsRepo blogsRepository.Repository,
	postsRepo postsRepository.Repository,
) IMaintenanceService {
	return &maintenanceService{
		log:       log,
		blogsRepo: blogsRepo,
		postsRepo: postsRepo,
	}
}

// ClearAllData removes every post and then every blog.
func (s *maintenanceService) ClearAllData(ctx context.Context) (maintenance.ClearResult, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var result maintenance.ClearResult

	postsClient, err := s.postsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create posts repository client")
		return result, maintenance.ErrClearData
	}

	result.Posts, err = postsClient.Posts.DeleteAllPosts(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to delete posts")
		return result, maintenance.ErrClearData
	}

	blogsClient, err := s.blogsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create blogs repository client")
		return result, maintenance.ErrClearData
	}

	result.Blogs, err = blogsClient.Blogs.DeleteAllBlogs(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to delete blogs")
		return result, maintenance.ErrClearData
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"posts":      result.Posts,
		"blogs":      result.Blogs,
	}).Info("All data cleared")

	return result, nil
}
