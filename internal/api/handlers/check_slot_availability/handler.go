package check_slot_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/rajaput123/SevaBookingService/internal/api/handlers"
	checkSlotAvailability "github.com/rajaput123/SevaBookingService/internal/usecase/check_slot_availability"
)

const (
	msgInvalidOfferingID = "invalid offering ID"
	msgMissingDate       = "date is required"
	msgMissingStartTime  = "startTime is required"
	msgInvalidParams     = "invalid date or startTime format, expected YYYY-MM-DD and HH:MM"
	msgOfferingNotFound  = "offering not found"
)

type Handler struct {
	useCase CheckSlotAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckSlotAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/offerings/{offeringId}/slot-availability
// Query params: date (required, YYYY-MM-DD), startTime (required, HH:MM)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	offeringIDStr := vars["offeringId"]
	offeringID, err := strconv.ParseInt(offeringIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /offerings/{id}/slot-availability - Invalid offering ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOfferingID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /offerings/{id}/slot-availability - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	startTimeStr := r.URL.Query().Get("startTime")
	if startTimeStr == "" {
		h.logger.Warn("GET /offerings/{id}/slot-availability - Missing startTime")
		handlers.RespondBadRequest(w, msgMissingStartTime)
		return
	}

	useCaseReq, err := ToUseCaseRequest(offeringID, dateStr, startTimeStr)
	if err != nil {
		h.logger.Warn("GET /offerings/{id}/slot-availability - Invalid params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkSlotAvailability.ErrOfferingNotFound):
			h.logger.Warn("GET /offerings/{id}/slot-availability - Offering not found: offering_id=%d", offeringID)
			handlers.RespondNotFound(w, msgOfferingNotFound)

		case errors.Is(err, checkSlotAvailability.ErrInvalidInput):
			h.logger.Warn("GET /offerings/{id}/slot-availability - Invalid input: offering_id=%d, error=%v", offeringID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /offerings/{id}/slot-availability - Failed to check slot: offering_id=%d, error=%v", offeringID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /offerings/{id}/slot-availability - Slot checked: offering_id=%d, date=%s, slot=%s, can_book=%t",
		offeringID, dateStr, startTimeStr, result.CanBook)
	handlers.RespondJSON(w, http.StatusOK, response)
}
