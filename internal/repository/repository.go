package repository

import (
	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	Worker       WorkerRepository
	Case         CaseRepository
	Supply       SupplyRepository
	Need         NeedRepository
	Match        MatchRepository
	Batch        BatchRepository
	Activity     ActivityRepository
	Registration RegistrationRepository
	Media        MediaRepository
	Notification NotificationRepository
	Session      SessionRepository
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		Worker:       NewWorkerRepository(db),
		Case:         NewCaseRepository(db),
		Supply:       NewSupplyRepository(db),
		Need:         NewNeedRepository(db),
		Match:        NewMatchRepository(db),
		Batch:        NewBatchRepository(db),
		Activity:     NewActivityRepository(db),
		Registration: NewRegistrationRepository(db),
		Media:        NewMediaRepository(db),
		Notification: NewNotificationRepository(db),
		Session:      NewSessionRepository(db),
	}
}
