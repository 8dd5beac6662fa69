package get_offering_bookings

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/rajaput123/SevaBookingService/internal/api/handlers"
	"github.com/rajaput123/SevaBookingService/internal/api/middleware"
	"github.com/rajaput123/SevaBookingService/internal/domain"
	"github.com/rajaput123/SevaBookingService/internal/service/bookings"
	"github.com/rajaput123/SevaBookingService/internal/service/bookings/models"
)

const (
	msgInvalidOfferingID = "invalid offering ID"
	msgInvalidDate       = "invalid date format, expected YYYY-MM-DD"
	msgMissingUserID     = "missing devotee ID"
	msgForbidden         = "access denied"
	msgInvalidFilter     = "invalid filter parameters"
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

// Handle GET /api/v1/offerings/{offeringId}/bookings
// Query params: startDate, endDate (YYYY-MM-DD), status, includeInactive
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	offeringIDStr := vars["offeringId"]

	offeringID, err := strconv.ParseInt(offeringIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /offerings/{id}/bookings - Invalid offering ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOfferingID)
		return
	}

	devoteeID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /offerings/{id}/bookings - Missing devotee ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	req := &models.GetOfferingBookingsRequest{
		DevoteeID:  devoteeID,
		OfferingID: offeringID,
	}

	query := r.URL.Query()

	if startDateStr := query.Get("startDate"); startDateStr != "" {
		startDate, err := time.Parse(domain.DateFormat, startDateStr)
		if err != nil {
			h.logger.Warn("GET /offerings/{id}/bookings - Invalid startDate: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.StartDate = &startDate
	}

	if endDateStr := query.Get("endDate"); endDateStr != "" {
		endDate, err := time.Parse(domain.DateFormat, endDateStr)
		if err != nil {
			h.logger.Warn("GET /offerings/{id}/bookings - Invalid endDate: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.EndDate = &endDate
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	if query.Get("includeInactive") == "true" {
		req.IncludeInactive = true
	}

	result, err := h.service.GetOfferingBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /offerings/{id}/bookings - Access denied: offering_id=%d, devotee_id=%d", offeringID, devoteeID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /offerings/{id}/bookings - Invalid filter: offering_id=%d, error=%v", offeringID, err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /offerings/{id}/bookings - Failed to get bookings: offering_id=%d, error=%v", offeringID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /offerings/{id}/bookings - Bookings retrieved successfully: offering_id=%d, count=%d",
		offeringID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
