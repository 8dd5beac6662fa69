package get_offering

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/rajaput123/SevaBookingService/internal/api/handlers"
	"github.com/rajaput123/SevaBookingService/internal/service/offerings"
)

const (
	msgInvalidOfferingID = "invalid offering ID"
	msgNotFound          = "offering not found"
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

// Handle GET /api/v1/offerings/{offeringId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	offeringIDStr := vars["offeringId"]

	offeringID, err := strconv.ParseInt(offeringIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /offerings/{id} - Invalid offering ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOfferingID)
		return
	}

	offering, err := h.service.GetByID(r.Context(), offeringID)
	if err != nil {
		switch {
		case errors.Is(err, offerings.ErrOfferingNotFound):
			h.logger.Warn("GET /offerings/{id} - Offering not found: offering_id=%d", offeringID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /offerings/{id} - Failed to get offering: offering_id=%d, error=%v", offeringID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /offerings/{id} - Offering retrieved successfully: offering_id=%d", offeringID)
	handlers.RespondJSON(w, http.StatusOK, offering)
}
