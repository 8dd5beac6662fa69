package create_festival

import (
	"errors"
	"net/http"
	"time"

	"github.com/rajaput123/SevaBookingService/internal/api/handlers"
	"github.com/rajaput123/SevaBookingService/internal/api/middleware"
	"github.com/rajaput123/SevaBookingService/internal/domain"
	"github.com/rajaput123/SevaBookingService/internal/service/festivals"
	"github.com/rajaput123/SevaBookingService/internal/service/festivals/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
	msgMissingUserID      = "missing devotee ID"
	msgForbidden          = "access denied"
)

// CreateFestivalRequest HTTP request model
type CreateFestivalRequest struct {
	Name      string `json:"name"`
	StartDate string `json:"startDate"` // "2025-10-20"
	EndDate   string `json:"endDate"`   // "2025-10-22"
}

type Handler struct {
	service FestivalService
	logger  Logger
}

func NewHandler(service FestivalService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/festivals
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	devoteeID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /festivals - Missing devotee ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateFestivalRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /festivals - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	startDate, err := time.Parse(domain.DateFormat, req.StartDate)
	if err != nil {
		h.logger.Warn("POST /festivals - Invalid startDate: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	endDate, err := time.Parse(domain.DateFormat, req.EndDate)
	if err != nil {
		h.logger.Warn("POST /festivals - Invalid endDate: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	serviceReq := &models.CreateFestivalRequest{
		DevoteeID: devoteeID,
		Name:      req.Name,
		StartDate: startDate,
		EndDate:   endDate,
	}

	result, err := h.service.Create(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, festivals.ErrAccessDenied):
			h.logger.Warn("POST /festivals - Access denied: devotee_id=%d", devoteeID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, festivals.ErrInvalidInput):
			h.logger.Warn("POST /festivals - Invalid input: devotee_id=%d, error=%v", devoteeID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /festivals - Failed to create festival: devotee_id=%d, error=%v", devoteeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /festivals - Festival created successfully: festival_id=%d, devotee_id=%d",
		result.ID, devoteeID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
