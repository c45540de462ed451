package blogHandler

import (
	blogsService "BloggerPlatform/internal/api/blog/service"
	"BloggerPlatform/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"time"
)

type BlogsHandler struct {
	log          *logrus.Logger
	middleware   middleware.Middleware
	blogsService blogsService.IBlogsService
	timeout      time.Duration
}

func New(
	log *logrus.Logger,
	middleware middleware.Middleware,
	bs blogsService.IBlogsService,
) *BlogsHandler {
	return &BlogsHandler{
		log:          log,
		middleware:   middleware,
		blogsService: bs,
		timeout:      10 * time.Second,
	}
}

func (h *BlogsHandler) Start(srv fiber.Router) {
	blogs := srv.Group("/blogs")

	// Public endpoints
	blogs.Get("/", h.GetAllBlogs)
	blogs.Get("/:id", h.GetBlogByID)

	// Mutations (Basic auth)
	blogs.Post("/", h.middleware.NewBasicAuthMiddleware, h.CreateBlog)
	blogs.Put("/:id", h.middleware.NewBasicAuthMiddleware, h.UpdateBlog)
	blogs.Delete("/:id", h.middleware.NewBasicAuthMiddleware, h.DeleteBlog)
}
