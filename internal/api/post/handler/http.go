package postHandler

import (
	postsService "BloggerPlatform/internal/api/post/service"
	"BloggerPlatform/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"time"
)

type PostsHandler struct {
	log          *logrus.Logger
	middleware   middleware.Middleware
	postsService postsService.IPostsService
	timeout      time.Duration
}

func New(
	log *logrus.Logger,
	middleware middleware.Middleware,
	ps postsService.IPostsService,
) *PostsHandler {
	return &PostsHandler{
		log:          log,
		middleware:   middleware,
		postsService: ps,
		timeout:      10 * time.Second,
	}
}

func (h *PostsHandler) Start(srv fiber.Router) {
	posts := srv.Group("/posts")

	posts.Get("/", h.GetAllPosts)
	posts.Get("/:id", h.GetPostByID)

	posts.Post("/", h.middleware.NewBasicAuthMiddleware, h.CreatePost)
	posts.Put("/:id", h.middleware.NewBasicAuthMiddleware, h.UpdatePost)
	posts.Delete("/:id", h.middleware.NewBasicAuthMiddleware, h.DeletePost)
}
