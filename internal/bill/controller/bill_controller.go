package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"rajubill/internal/bill/dto"
	apperrors "rajubill/internal/errors"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CrudUseCase interface {
	ListBills(ctx context.Context) ([]dto.BillDTO, error)
	GetBill(ctx context.Context, id string) (*dto.BillDTO, error)
	CreateBill(ctx context.Context, req dto.BillFieldsRequest) (*dto.BillDTO, error)
	UpdateBill(ctx context.Context, id string, req dto.BillFieldsRequest) (*dto.BillDTO, error)
	DeleteBill(ctx context.Context, id string) error
}

type BillController struct {
	useCase CrudUseCase
	logger  *zap.Logger
}

func NewBillController(useCase CrudUseCase, logger *zap.Logger) *BillController {
	return &BillController{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *BillController) HandleList(w http.ResponseWriter, r *http.Request) {
	bills, err := c.useCase.ListBills(r.Context())
	if err != nil {
		c.handleError(w, err, c.logger)
		return
	}

	if bills == nil {
		bills = []dto.BillDTO{}
	}
	c.writeJSON(w, http.StatusOK, dto.ListBillsResponse{Bills: bills})
}

func (c *BillController) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	bill, err := c.useCase.GetBill(r.Context(), id)
	if err != nil {
		c.handleError(w, err, c.logger)
		return
	}

	c.writeJSON(w, http.StatusOK, bill)
}

func (c *BillController) HandleCreate(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.BillFieldsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if err := c.validateFields(req); err != nil {
		ve, _ := apperrors.IsValidationError(err)
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	bill, err := c.useCase.CreateBill(r.Context(), req)
	if err != nil {
		c.handleError(w, err, logger)
		return
	}

	logger.Info("bill created",
		zap.String("billId", bill.ID),
		zap.String("orderNumber", bill.OrderNumber),
	)
	c.writeJSON(w, http.StatusCreated, bill)
}

func (c *BillController) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	id := chi.URLParam(r, "id")

	var req dto.BillFieldsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if err := c.validateFields(req); err != nil {
		ve, _ := apperrors.IsValidationError(err)
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	bill, err := c.useCase.UpdateBill(r.Context(), id, req)
	if err != nil {
		c.handleError(w, err, logger)
		return
	}

	logger.Info("bill updated", zap.String("billId", bill.ID))
	c.writeJSON(w, http.StatusOK, bill)
}

func (c *BillController) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := c.useCase.DeleteBill(r.Context(), id); err != nil {
		c.handleError(w, err, c.logger)
		return
	}

	c.writeJSON(w, http.StatusOK, map[string]string{"message": "bill deleted"})
}

// validateFields enforces the entry-time required fields. orderNumber is
// required but intentionally not unique.
func (c *BillController) validateFields(req dto.BillFieldsRequest) error {
	var details []apperrors.ValidationDetail

	required := []struct {
		field string
		value string
	}{
		{"date", req.Date},
		{"orderNumber", req.OrderNumber},
		{"customer", req.Customer},
		{"product", req.Product},
		{"rate", req.Rate},
	}

	for _, f := range required {
		if f.value == "" {
			details = append(details, apperrors.ValidationDetail{
				Field:   f.field,
				Message: f.field + " is required",
			})
		}
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("missing required fields", details...)
	}
	return nil
}

func (c *BillController) handleError(w http.ResponseWriter, err error, logger *zap.Logger) {
	if nfe, ok := apperrors.IsNotFoundError(err); ok {
		c.writeJSON(w, http.StatusNotFound, map[string]string{
			"error":   "NOT_FOUND",
			"message": nfe.Message,
		})
		return
	}

	logger.Error("bill operation failed", zap.Error(err))
	c.writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error":   "INTERNAL_ERROR",
		"message": "an unexpected error occurred",
	})
}

type validationErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *BillController) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func (c *BillController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
