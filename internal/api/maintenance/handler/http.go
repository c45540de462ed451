package maintenanceHandler

import (
	maintenanceService "BloggerPlatform/internal/api/maintenance/service"
	"BloggerPlatform/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"time"
)

type MaintenanceHandler struct {
	log                *logrus.Logger
	middleware         middleware.Middleware
	maintenanceService maintenanceService.IMaintenanceService
	timeout            time.Duration
}

func New(
	log *logrus.Logger,
	middleware middleware.Middleware,
	ms maintenanceService.IMaintenanceService,
) *MaintenanceHandler {
	return &MaintenanceHandler{
		log:                log,
		middleware:         middleware,
		maintenanceService: ms,
		timeout:            30 * time.Second,
	}
}

func (h *MaintenanceHandler) Start(srv fiber.Router) {
	testingRoutes := srv.Group("/testing")
	testingRoutes.Delete("/all-data", h.ClearAllData)
}
