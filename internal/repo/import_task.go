package repo

import (
	"context"

	"github.com/beatrizodsk/popmenu-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ImportTaskRepository interface {
	Create(ctx context.Context, task *domain.ImportTask) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.ImportTask, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.ImportTaskStatus, errorMsg string) error
	CompleteWithReport(ctx context.Context, id primitive.ObjectID, report *domain.ImportReport) error
	IncrementRetryCount(ctx context.Context, id primitive.ObjectID) error
}
