package service

import (
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"

	"peduli-kasih/internal/config"
	"peduli-kasih/internal/repository"
	"peduli-kasih/internal/service/activity"
	"peduli-kasih/internal/service/auth"
	"peduli-kasih/internal/service/cases"
	"peduli-kasih/internal/service/dashboard"
	"peduli-kasih/internal/service/distribution"
	"peduli-kasih/internal/service/email"
	"peduli-kasih/internal/service/media"
	"peduli-kasih/internal/service/needstatus"
	"peduli-kasih/internal/service/notification"
	"peduli-kasih/internal/service/registration"
	"peduli-kasih/internal/service/supply"
	"peduli-kasih/internal/service/worker"
)

type Services struct {
	Auth         auth.Service
	Worker       worker.Service
	Case         cases.Service
	Supply       supply.Service
	Need         needstatus.Service
	Distribution distribution.Service
	Activity     activity.Service
	Registration registration.Service
	Media        media.Service
	Notification notification.Service
	Email        email.Service
	Dashboard    dashboard.Service
}

func NewServices(repos *repository.Repositories, redis *redis.Client, minioClient *minio.Client, cfg *config.Config) *Services {
	emailService := email.NewService(cfg)
	authService := auth.NewService(repos.Worker, repos.Session, cfg)
	workerService := worker.NewService(repos.Worker, emailService)
	caseService := cases.NewService(repos.Case, repos.Worker)
	supplyService := supply.NewService(repos.Supply)
	notificationService := notification.NewService(repos.Notification, repos.Worker, emailService)

	needService := needstatus.NewService(repos.Need, repos.Supply, repos.Case, repos.Match)
	needService.SetNotificationService(notificationService)

	distributionService := distribution.NewService(repos.Batch, repos.Need, needService)
	distributionService.SetNotificationService(notificationService)

	activityService := activity.NewService(repos.Activity, redis)
	registrationService := registration.NewService(repos.Registration, repos.Activity, repos.Case)
	mediaService := media.NewService(repos.Media, minioClient, cfg)
	dashboardService := dashboard.NewService(repos.Case, repos.Need, repos.Batch, repos.Activity, redis)

	return &Services{
		Auth:         authService,
		Worker:       workerService,
		Case:         caseService,
		Supply:       supplyService,
		Need:         needService,
		Distribution: distributionService,
		Activity:     activityService,
		Registration: registrationService,
		Media:        mediaService,
		Notification: notificationService,
		Email:        emailService,
		Dashboard:    dashboardService,
	}
}
