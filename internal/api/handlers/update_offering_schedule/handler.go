package update_offering_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/rajaput123/SevaBookingService/internal/api/handlers"
	"github.com/rajaput123/SevaBookingService/internal/api/middleware"
	"github.com/rajaput123/SevaBookingService/internal/service/offerings"
	"github.com/rajaput123/SevaBookingService/internal/service/offerings/models"
)

const (
	msgInvalidOfferingID  = "invalid offering ID"
	msgInvalidRequestBody = "invalid request body"
	msgMissingUserID      = "missing devotee ID"
	msgForbidden          = "access denied"
	msgNotFound           = "offering not found"
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

// Handle PUT /api/v1/offerings/{offeringId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	offeringIDStr := vars["offeringId"]

	offeringID, err := strconv.ParseInt(offeringIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /offerings/{id}/schedule - Invalid offering ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOfferingID)
		return
	}

	devoteeID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /offerings/{id}/schedule - Missing devotee ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.UpdateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /offerings/{id}/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.DevoteeID = devoteeID

	result, err := h.service.UpdateSchedule(r.Context(), offeringID, &req)
	if err != nil {
		switch {
		case errors.Is(err, offerings.ErrOfferingNotFound):
			h.logger.Warn("PUT /offerings/{id}/schedule - Offering not found: offering_id=%d", offeringID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, offerings.ErrAccessDenied):
			h.logger.Warn("PUT /offerings/{id}/schedule - Access denied: offering_id=%d, devotee_id=%d", offeringID, devoteeID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, offerings.ErrInvalidInput):
			h.logger.Warn("PUT /offerings/{id}/schedule - Invalid input: offering_id=%d, error=%v", offeringID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /offerings/{id}/schedule - Failed to update schedule: offering_id=%d, error=%v", offeringID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /offerings/{id}/schedule - Schedule updated successfully: offering_id=%d, devotee_id=%d",
		offeringID, devoteeID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
