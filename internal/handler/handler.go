package handler

import (
	"github.com/gofiber/fiber/v2"

	"peduli-kasih/internal/domain"
	"peduli-kasih/internal/service"
)

type Handlers struct {
	Auth         *AuthHandler
	Worker       *WorkerHandler
	Case         *CaseHandler
	Supply       *SupplyHandler
	Need         *NeedHandler
	Distribution *DistributionHandler
	Activity     *ActivityHandler
	Media        *MediaHandler
	Notification *NotificationHandler
	Dashboard    *DashboardHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Auth:         NewAuthHandler(services.Auth),
		Worker:       NewWorkerHandler(services.Worker),
		Case:         NewCaseHandler(services.Case, services.Need),
		Supply:       NewSupplyHandler(services.Supply),
		Need:         NewNeedHandler(services.Need),
		Distribution: NewDistributionHandler(services.Distribution),
		Activity:     NewActivityHandler(services.Activity, services.Registration),
		Media:        NewMediaHandler(services.Media),
		Notification: NewNotificationHandler(services.Notification),
		Dashboard:    NewDashboardHandler(services.Dashboard),
	}
}

func getPaginationParams(c *fiber.Ctx) domain.PaginationParams {
	params := domain.DefaultPagination()
	if err := c.QueryParser(&params); err != nil {
		return domain.DefaultPagination()
	}
	params.Validate()
	return params
}
