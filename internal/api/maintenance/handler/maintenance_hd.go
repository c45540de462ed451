package maintenanceHandler

import (
	contextPkg "BloggerPlatform/pkg/context"
	"BloggerPlatform/pkg/handlerUtil"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *MaintenanceHandler) ClearAllData(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), h.timeout)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	if _, err := h.maintenanceService.ClearAllData(c); err != nil {
		if c.Err() != nil {
			return errHandler.HandleRequestTimeout(ctx)
		}
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "clear_all_data")
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusNoContent, nil)
}
