package postHandler

import (
	"BloggerPlatform/internal/api/post"
	contextPkg "BloggerPlatform/pkg/context"
	"BloggerPlatform/pkg/handlerUtil"
	"BloggerPlatform/pkg/log"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *PostsHandler) CreatePost(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), h.timeout)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing create post request")

	var req posts.PostRequest
	if err := handlerUtil.DecodeJSONBody(ctx, &req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "create_post")
	}

	post, err := h.postsService.CreatePost(c, req)
	if err != nil {
		if c.Err() != nil {
			return errHandler.HandleRequestTimeout(ctx)
		}
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "create_post")
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusCreated, post)
}

func (h *PostsHandler) GetPostByID(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), h.timeout)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	post, err := h.postsService.GetPostByID(c, ctx.Params("id"))
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_post")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, post)
	}
}

func (h *PostsHandler) GetAllPosts(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), h.timeout)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	postsList, err := h.postsService.GetAllPosts(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_all_posts")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, postsList)
	}
}

func (h *PostsHandler) UpdatePost(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), h.timeout)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing update post request")

	var req posts.PostRequest
	if err := handlerUtil.DecodeJSONBody(ctx, &req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "update_post")
	}

	if err := h.postsService.UpdatePost(c, ctx.Params("id"), req); err != nil {
		if c.Err() != nil {
			return errHandler.HandleRequestTimeout(ctx)
		}
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "update_post")
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusNoContent, nil)
}

func (h *PostsHandler) DeletePost(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), h.timeout)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	if err := h.postsService.DeletePost(c, ctx.Params("id")); err != nil {
		if c.Err() != nil {
			return errHandler.HandleRequestTimeout(ctx)
		}
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "delete_post")
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusNoContent, nil)
}
