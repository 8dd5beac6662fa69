package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/rajaput123/SevaBookingService/internal/api/handlers"
	getAvailableSlots "github.com/rajaput123/SevaBookingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidOfferingID = "invalid offering ID"
	msgMissingDate       = "date is required"
	msgInvalidDate       = "invalid date format, expected YYYY-MM-DD"
	msgOfferingNotFound  = "offering not found"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/offerings/{offeringId}/available-slots
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	offeringIDStr := vars["offeringId"]
	offeringID, err := strconv.ParseInt(offeringIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /offerings/{id}/available-slots - Invalid offering ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOfferingID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /offerings/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(offeringID, dateStr)
	if err != nil {
		h.logger.Warn("GET /offerings/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrOfferingNotFound):
			h.logger.Warn("GET /offerings/{id}/available-slots - Offering not found: offering_id=%d", offeringID)
			handlers.RespondNotFound(w, msgOfferingNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /offerings/{id}/available-slots - Invalid input: offering_id=%d, error=%v", offeringID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /offerings/{id}/available-slots - Failed to get slots: offering_id=%d, error=%v", offeringID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /offerings/{id}/available-slots - Slots retrieved successfully: offering_id=%d, date=%s, slots_count=%d",
		offeringID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
