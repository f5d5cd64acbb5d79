package job

import (
	"context"

	"jobboard/internal/common"
)

type Repository interface {
	Create(ctx context.Context, j Job) (*Job, error)
	GetByID(ctx context.Context, id common.UUID) (*Job, error)
	List(ctx context.Context) ([]Job, error)
	ListByOwner(ctx context.Context, ownerID common.UUID) ([]Job, error)
	Delete(ctx context.Context, id common.UUID) error
}
