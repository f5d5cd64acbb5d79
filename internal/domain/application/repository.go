package application

import (
	"context"

	"jobboard/internal/common"
)

type Repository interface {
	Create(ctx context.Context, app Application) (*Application, error)
	GetByID(ctx context.Context, id common.UUID) (*Application, error)
	FindByApplicantAndJob(ctx context.Context, applicantID, jobID common.UUID) (*Application, error)
	ListByApplicant(ctx context.Context, applicantID common.UUID) ([]Detail, error)
	ListAll(ctx context.Context) ([]Application, error)
	ListByJobOwner(ctx context.Context, ownerID common.UUID) ([]Application, error)
	UpdateStatus(ctx context.Context, id common.UUID, status Status) (*Application, error)
	Delete(ctx context.Context, id common.UUID) error
}
