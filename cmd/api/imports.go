package main

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/beatrizodsk/popmenu-api/internal/domain"
	"github.com/beatrizodsk/popmenu-api/internal/importer"
	"github.com/beatrizodsk/popmenu-api/internal/service"
	"github.com/go-chi/chi"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const maxUploadSize = 10 << 20 // 10MB

var allowedUploadTypes = map[string]bool{
	"application/json":         true,
	"text/json":                true,
	"application/octet-stream": true,
}

// importRestaurantsHandler godoc
//
//	@Summary		Import restaurant data
//	@Description	Imports a nested restaurant/menu/menu item document, reconciling it against existing records without creating duplicates. Accepts a raw JSON body or a multipart file upload (field "file").
//	@Tags			imports
//	@Accept			json
//	@Accept			mpfd
//	@Produce		json
//	@Success		200	{object}	domain.ImportResponse
//	@Failure		400	{object}	domain.ImportResponse
//	@Failure		422	{object}	domain.ImportResponse
//	@Failure		500	{object}	domain.ImportResponse
//	@Router			/imports/restaurants [post]
func (app *application) importRestaurantsHandler(w http.ResponseWriter, r *http.Request) {
	payload, ok := app.extractImportPayload(w, r)
	if !ok {
		return
	}

	report, err := app.importService.RunImport(r.Context(), payload, app.config.echoImports)
	if err != nil {
		app.importFailureResponse(w, r, err)
		return
	}

	if err := writeJson(w, http.StatusOK, importer.FormatReport(report)); err != nil {
		app.internalServerError(w, r, err)
	}
}

// createImportTaskHandler godoc
//
//	@Summary		Queue an async import
//	@Description	Stores the uploaded document as an import task and processes it in the background
//	@Tags			imports
//	@Accept			json
//	@Accept			mpfd
//	@Produce		json
//	@Success		201	{object}	map[string]string
//	@Failure		400	{object}	domain.ImportResponse
//	@Failure		500	{object}	map[string]string
//	@Router			/imports/tasks [post]
func (app *application) createImportTaskHandler(w http.ResponseWriter, r *http.Request) {
	payload, ok := app.extractImportPayload(w, r)
	if !ok {
		return
	}

	taskID, err := app.importService.CreateUploadTask(r.Context(), payload)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	response := map[string]string{
		"task_id": taskID.Hex(),
		"status":  "queued",
	}

	if err := app.jsonRespone(w, http.StatusCreated, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

type CreateSheetImportRequest struct {
	SpreadsheetID string `json:"spreadsheet_id" validate:"required"`
}

// createSheetImportTaskHandler godoc
//
//	@Summary		Queue a Google Sheets import
//	@Description	Creates an import task that sources its document from a spreadsheet
//	@Tags			imports
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateSheetImportRequest	true	"Sheet import request"
//	@Success		201		{object}	map[string]string
//	@Failure		400		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/imports/sheets [post]
func (app *application) createSheetImportTaskHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateSheetImportRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	taskID, err := app.importService.CreateSheetTask(r.Context(), req.SpreadsheetID)
	if err != nil {
		if errors.Is(err, service.ErrSheetImportsDisabled) {
			app.badRequestResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	response := map[string]string{
		"task_id": taskID.Hex(),
		"status":  "queued",
	}

	if err := app.jsonRespone(w, http.StatusCreated, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getImportTaskHandler godoc
//
//	@Summary		Get import task status
//	@Description	Returns the status of an import task, including the final report once completed
//	@Tags			imports
//	@Produce		json
//	@Param			task_id	path		string	true	"Task ID"
//	@Success		200		{object}	domain.ImportTask
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Router			/imports/tasks/{task_id} [get]
func (app *application) getImportTaskHandler(w http.ResponseWriter, r *http.Request) {
	taskIDStr := chi.URLParam(r, "task_id")
	if taskIDStr == "" {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	taskID, err := primitive.ObjectIDFromHex(taskIDStr)
	if err != nil {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	task, err := app.importService.GetTaskStatus(r.Context(), taskID)
	if err != nil {
		app.notFoundError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, task); err != nil {
		app.internalServerError(w, r, err)
	}
}

// extractImportPayload pulls the raw document bytes out of the request:
// either a raw application/json body or a multipart upload under the
// "file" field, gated by size and content type. On rejection it writes
// the failure response itself and returns ok=false.
func (app *application) extractImportPayload(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	contentType := r.Header.Get("Content-Type")

	if strings.Contains(contentType, "application/json") {
		payload, err := io.ReadAll(io.LimitReader(r.Body, maxUploadSize+1))
		if err != nil {
			app.rejectImport(w, r, http.StatusBadRequest, "failed to read request body")
			return nil, false
		}
		if len(payload) > maxUploadSize {
			app.rejectImport(w, r, http.StatusBadRequest, "file size exceeds maximum allowed size of 10MB")
			return nil, false
		}
		return payload, true
	}

	if strings.Contains(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			app.rejectImport(w, r, http.StatusBadRequest, "file size exceeds maximum allowed size of 10MB")
			return nil, false
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			app.rejectImport(w, r, http.StatusBadRequest, "No file provided")
			return nil, false
		}
		defer file.Close()

		if header.Size > maxUploadSize {
			app.rejectImport(w, r, http.StatusBadRequest, "file size exceeds maximum allowed size of 10MB")
			return nil, false
		}

		fileType := header.Header.Get("Content-Type")
		ext := strings.ToLower(filepath.Ext(header.Filename))
		if !allowedUploadTypes[fileType] && ext != ".json" {
			app.rejectImport(w, r, http.StatusBadRequest, "Invalid file type. Expected JSON")
			return nil, false
		}

		payload, err := io.ReadAll(file)
		if err != nil {
			app.rejectImport(w, r, http.StatusBadRequest, "failed to read uploaded file")
			return nil, false
		}
		return payload, true
	}

	app.rejectImport(w, r, http.StatusBadRequest, "No file provided or invalid content type")
	return nil, false
}

func (app *application) rejectImport(w http.ResponseWriter, r *http.Request, status int, message string) {
	if err := writeJson(w, status, importer.FormatFailure(message)); err != nil {
		app.internalServerError(w, r, err)
	}
}

// importFailureResponse distinguishes input-stage failures (nothing was
// written) from persistence-stage failures (the transaction rolled the
// run back). Results are always null on failure.
func (app *application) importFailureResponse(w http.ResponseWriter, r *http.Request, err error) {
	var (
		validationErr *domain.ValidationError
		constraintErr *domain.ConstraintError
	)

	switch {
	case domain.IsInputError(err):
		app.rejectImport(w, r, http.StatusUnprocessableEntity, "Data validation error: "+err.Error())
	case errors.As(err, &validationErr):
		app.rejectImport(w, r, http.StatusUnprocessableEntity, "Validation failed: "+validationErr.Reason)
	case errors.As(err, &constraintErr):
		app.rejectImport(w, r, http.StatusUnprocessableEntity, "Database constraint violation: "+constraintErr.Error())
	default:
		app.logger.Errorw("unexpected error during import", "error", err)
		app.rejectImport(w, r, http.StatusInternalServerError, "Internal server error during import: "+err.Error())
	}
}
