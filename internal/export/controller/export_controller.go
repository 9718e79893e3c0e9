package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"rajubill/internal/domain"
	apperrors "rajubill/internal/errors"
	"rajubill/internal/export"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BillReader interface {
	GetByID(ctx context.Context, id string) (*domain.Bill, error)
}

type SettingsReader interface {
	Get() domain.Settings
}

type Pipeline interface {
	BuildPDF(bill domain.Bill) ([]byte, error)
	SaveLocally(bill domain.Bill) (string, error)
	Share(ctx context.Context, bill domain.Bill, destination string) (*export.ShareResult, error)
	Status() (export.Status, string)
}

type ExportController struct {
	bills    BillReader
	settings SettingsReader
	pipeline Pipeline
	logger   *zap.Logger
}

func NewExportController(bills BillReader, settings SettingsReader, pipeline Pipeline, logger *zap.Logger) *ExportController {
	return &ExportController{
		bills:    bills,
		settings: settings,
		pipeline: pipeline,
		logger:   logger,
	}
}

// HandleDocument returns the bill's document view as plain text.
func (c *ExportController) HandleDocument(w http.ResponseWriter, r *http.Request) {
	bill, ok := c.loadBill(w, r)
	if !ok {
		return
	}

	view := export.Document(*bill)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, strings.Join(view.Lines(), "\n"))
}

// HandleDownloadPDF builds the bill PDF and sends it as a download.
func (c *ExportController) HandleDownloadPDF(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	bill, ok := c.loadBill(w, r)
	if !ok {
		return
	}

	pdf, err := c.pipeline.BuildPDF(*bill)
	if err != nil {
		c.handleExportError(w, err, logger)
		return
	}

	fileName := export.FileName(*bill)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Length", strconv.Itoa(len(pdf)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdf); err != nil {
		logger.Error("writing pdf response", zap.Error(err))
	}
}

// HandlePrint runs the local save flow (the print dialog analogue).
func (c *ExportController) HandlePrint(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	bill, ok := c.loadBill(w, r)
	if !ok {
		return
	}

	path, err := c.pipeline.SaveLocally(*bill)
	if err != nil {
		c.handleExportError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, map[string]string{
		"message": "PDF generated successfully! You can now share it.",
		"path":    path,
	})
}

// HandleShare delivers the bill PDF to the configured WhatsApp number.
func (c *ExportController) HandleShare(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	bill, ok := c.loadBill(w, r)
	if !ok {
		return
	}

	destination := c.settings.Get().WhatsappNumber

	result, err := c.pipeline.Share(r.Context(), *bill, destination)
	if err != nil {
		c.handleExportError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, result)
}

// HandleStatus exposes the export flow state.
func (c *ExportController) HandleStatus(w http.ResponseWriter, r *http.Request) {
	status, lastError := c.pipeline.Status()
	c.writeJSON(w, http.StatusOK, map[string]string{
		"status":  string(status),
		"message": lastError,
	})
}

func (c *ExportController) loadBill(w http.ResponseWriter, r *http.Request) (*domain.Bill, bool) {
	id := chi.URLParam(r, "id")

	bill, err := c.bills.GetByID(r.Context(), id)
	if err != nil {
		if nfe, ok := apperrors.IsNotFoundError(err); ok {
			c.writeJSON(w, http.StatusNotFound, map[string]string{
				"error":   "NOT_FOUND",
				"message": nfe.Message,
			})
			return nil, false
		}
		c.logger.Error("loading bill", zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "INTERNAL_ERROR",
			"message": "an unexpected error occurred",
		})
		return nil, false
	}
	return bill, true
}

func (c *ExportController) handleExportError(w http.ResponseWriter, err error, logger *zap.Logger) {
	if me, ok := apperrors.IsMissingDestinationError(err); ok {
		c.writeJSON(w, http.StatusBadRequest, map[string]string{
			"error":   "MISSING_DESTINATION",
			"message": me.Message,
		})
		return
	}

	logger.Error("export failed", zap.Error(err))

	message := "an unexpected error occurred"
	errorCode := "INTERNAL_ERROR"
	if _, ok := apperrors.IsCaptureError(err); ok {
		errorCode = "CAPTURE_FAILED"
		message = "Error generating PDF"
	} else if _, ok := apperrors.IsPdfBuildError(err); ok {
		errorCode = "PDF_BUILD_FAILED"
		message = "Error generating PDF"
	}

	c.writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error":   errorCode,
		"message": message,
	})
}

func (c *ExportController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
