package get_devotee_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/rajaput123/SevaBookingService/internal/api/handlers"
	"github.com/rajaput123/SevaBookingService/internal/api/middleware"
	"github.com/rajaput123/SevaBookingService/internal/service/bookings"
	"github.com/rajaput123/SevaBookingService/internal/service/bookings/models"
)

const (
	msgInvalidDevoteeID = "invalid devotee ID"
	msgMissingUserID    = "missing devotee ID"
	msgForbidden        = "access denied"
	msgInvalidStatus    = "invalid booking status"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/devotees/{devoteeId}/bookings
// Query params: status (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	devoteeIDStr := vars["devoteeId"]

	devoteeID, err := strconv.ParseInt(devoteeIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /devotees/{id}/bookings - Invalid devotee ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDevoteeID)
		return
	}

	callerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /devotees/{id}/bookings - Missing devotee ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	req := &models.GetDevoteeBookingsRequest{
		DevoteeID: devoteeID,
	}

	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.GetDevoteeBookings(r.Context(), req, callerID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /devotees/{id}/bookings - Access denied: devotee_id=%d, caller_id=%d", devoteeID, callerID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /devotees/{id}/bookings - Invalid status: devotee_id=%d", devoteeID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /devotees/{id}/bookings - Failed to get bookings: devotee_id=%d, error=%v", devoteeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /devotees/{id}/bookings - Bookings retrieved successfully: devotee_id=%d, count=%d",
		devoteeID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
