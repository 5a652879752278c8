package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/beatrizodsk/popmenu-api/internal/domain"
	"github.com/beatrizodsk/popmenu-api/internal/queue"
	"github.com/beatrizodsk/popmenu-api/internal/service"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type ImportTaskWorker struct {
	importService *service.ImportService
	broker        queue.Broker
	logger        *zap.SugaredLogger
	ctx           context.Context
	cancel        context.CancelFunc
}

func NewImportTaskWorker(
	importService *service.ImportService,
	broker queue.Broker,
	logger *zap.SugaredLogger,
) *ImportTaskWorker {
	ctx, cancel := context.WithCancel(context.Background())

	return &ImportTaskWorker{
		importService: importService,
		broker:        broker,
		logger:        logger,
		ctx:           ctx,
		cancel:        cancel,
	}
}

func (w *ImportTaskWorker) Start() error {
	w.logger.Info("starting import task worker")

	return w.broker.Subscribe(w.ctx, queue.QueueImportTasks, w.handleMessage)
}

func (w *ImportTaskWorker) Stop() {
	w.logger.Info("stopping import task worker")
	w.cancel()
}

func (w *ImportTaskWorker) handleMessage(ctx context.Context, message []byte) error {
	var msg domain.ImportTaskMessage
	if err := json.Unmarshal(message, &msg); err != nil {
		w.logger.Errorw("failed to unmarshal message", "error", err)
		return fmt.Errorf("failed to unmarshal message: %w", err)
	}

	w.logger.Infow("processing import task message", "task_id", msg.TaskID)

	taskID, err := primitive.ObjectIDFromHex(msg.TaskID)
	if err != nil {
		w.logger.Errorw("invalid task ID", "task_id", msg.TaskID, "error", err)
		return fmt.Errorf("invalid task ID: %w", err)
	}

	if err := w.importService.ProcessImportTask(ctx, taskID); err != nil {
		w.logger.Errorw("failed to process import task", "task_id", msg.TaskID, "error", err)
		return err
	}

	return nil
}
