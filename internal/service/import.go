package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/beatrizodsk/popmenu-api/internal/domain"
	"github.com/beatrizodsk/popmenu-api/internal/importer"
	"github.com/beatrizodsk/popmenu-api/internal/parser"
	"github.com/beatrizodsk/popmenu-api/internal/queue"
	"github.com/beatrizodsk/popmenu-api/internal/repo"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

var ErrSheetImportsDisabled = errors.New("sheet imports are not configured")

type ImportService struct {
	taskRepo repo.ImportTaskRepository
	importer *importer.Importer
	parser   *parser.GoogleSheetsParser
	broker   queue.Broker
	logger   *zap.SugaredLogger
}

func NewImportService(
	taskRepo repo.ImportTaskRepository,
	imp *importer.Importer,
	parser *parser.GoogleSheetsParser,
	broker queue.Broker,
	logger *zap.SugaredLogger,
) *ImportService {
	return &ImportService{
		taskRepo: taskRepo,
		importer: imp,
		parser:   parser,
		broker:   broker,
		logger:   logger,
	}
}

// RunImport runs one synchronous import of a raw JSON document and
// returns the report. Echo mirrors run progress to the console log.
func (s *ImportService) RunImport(ctx context.Context, raw []byte, echo bool) (*domain.ImportReport, error) {
	return s.importer.Run(ctx, raw, echo)
}

// CreateUploadTask queues an async import of an uploaded JSON payload.
func (s *ImportService) CreateUploadTask(ctx context.Context, payload []byte) (primitive.ObjectID, error) {
	task := &domain.ImportTask{
		Status:  domain.StatusQueued,
		Source:  domain.SourceUpload,
		Payload: payload,
	}
	return s.enqueue(ctx, task)
}

// CreateSheetTask queues an async import sourced from a Google Sheet.
func (s *ImportService) CreateSheetTask(ctx context.Context, spreadsheetID string) (primitive.ObjectID, error) {
	if s.parser == nil {
		return primitive.NilObjectID, ErrSheetImportsDisabled
	}

	task := &domain.ImportTask{
		Status:        domain.StatusQueued,
		Source:        domain.SourceSheet,
		SpreadsheetID: spreadsheetID,
	}
	return s.enqueue(ctx, task)
}

func (s *ImportService) enqueue(ctx context.Context, task *domain.ImportTask) (primitive.ObjectID, error) {
	if err := s.taskRepo.Create(ctx, task); err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to create import task: %w", err)
	}

	message := domain.ImportTaskMessage{TaskID: task.ID.Hex()}

	messageBytes, err := json.Marshal(message)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to marshal message: %w", err)
	}

	if err := s.broker.Publish(ctx, queue.QueueImportTasks, messageBytes); err != nil {
		_ = s.taskRepo.UpdateStatus(ctx, task.ID, domain.StatusFailed, err.Error())
		return primitive.NilObjectID, fmt.Errorf("failed to publish message: %w", err)
	}

	s.logger.Infow("import task created", "task_id", task.ID.Hex(), "source", task.Source)

	return task.ID, nil
}

func (s *ImportService) GetTaskStatus(ctx context.Context, taskID primitive.ObjectID) (*domain.ImportTask, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to get import task: %w", err)
	}

	return task, nil
}

// ProcessImportTask is driven by the worker. Input errors are terminal:
// they mark the task failed and are not retried, since re-running the
// same malformed payload cannot succeed. Store failures are returned so
// the broker retries the delivery.
func (s *ImportService) ProcessImportTask(ctx context.Context, taskID primitive.ObjectID) error {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return fmt.Errorf("failed to get task: %w", err)
	}

	if err := s.taskRepo.UpdateStatus(ctx, taskID, domain.StatusProcessing, ""); err != nil {
		return fmt.Errorf("failed to update task status: %w", err)
	}

	s.logger.Infow("processing import task", "task_id", taskID.Hex(), "source", task.Source)

	report, err := s.runTask(ctx, task)
	if err != nil {
		s.logger.Errorw("import task failed", "task_id", taskID.Hex(), "error", err)
		_ = s.taskRepo.UpdateStatus(ctx, taskID, domain.StatusFailed, err.Error())

		if domain.IsInputError(err) {
			return nil
		}

		_ = s.taskRepo.IncrementRetryCount(ctx, taskID)
		return err
	}

	if err := s.taskRepo.CompleteWithReport(ctx, taskID, report); err != nil {
		return fmt.Errorf("failed to complete task: %w", err)
	}

	s.logger.Infow("import task completed", "task_id", taskID.Hex(), "run_id", report.RunID)

	return nil
}

func (s *ImportService) runTask(ctx context.Context, task *domain.ImportTask) (*domain.ImportReport, error) {
	if task.Source == domain.SourceSheet {
		if s.parser == nil {
			return nil, ErrSheetImportsDisabled
		}
		doc, err := s.parser.ParseDocument(ctx, task.SpreadsheetID)
		if err != nil {
			return nil, fmt.Errorf("failed to parse spreadsheet: %w", err)
		}
		return s.importer.RunDocument(ctx, *doc, false)
	}

	return s.importer.Run(ctx, task.Payload, false)
}
