package create_offering

import (
	"errors"
	"net/http"

	"github.com/rajaput123/SevaBookingService/internal/api/handlers"
	"github.com/rajaput123/SevaBookingService/internal/api/middleware"
	"github.com/rajaput123/SevaBookingService/internal/service/offerings"
	"github.com/rajaput123/SevaBookingService/internal/service/offerings/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingUserID      = "missing devotee ID"
	msgForbidden          = "access denied"
)

type Handler struct {
	service OfferingService
	logger  Logger
}

func NewHandler(service OfferingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/offerings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	devoteeID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /offerings - Missing devotee ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.CreateOfferingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /offerings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.DevoteeID = devoteeID

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, offerings.ErrAccessDenied):
			h.logger.Warn("POST /offerings - Access denied: devotee_id=%d", devoteeID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, offerings.ErrInvalidInput):
			h.logger.Warn("POST /offerings - Invalid input: devotee_id=%d, error=%v", devoteeID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /offerings - Failed to create offering: devotee_id=%d, error=%v", devoteeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /offerings - Offering created successfully: offering_id=%d, devotee_id=%d",
		result.ID, devoteeID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
