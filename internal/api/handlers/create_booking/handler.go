package create_booking

import (
	"errors"
	"net/http"

	"github.com/rajaput123/SevaBookingService/internal/api/handlers"
	"github.com/rajaput123/SevaBookingService/internal/api/middleware"
	createBooking "github.com/rajaput123/SevaBookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDateOrTime  = "invalid bookingDate or slotStartTime format, expected YYYY-MM-DD and HH:MM"
	msgMissingUserID      = "missing devotee ID"
	msgOfferingNotFound   = "offering not found"
	msgDevoteeNotFound    = "devotee not found"
	msgOfferingNotActive  = "offering is not active"
	msgNotAvailableOnDay  = "offering not available on this day"
	msgPastDate           = "cannot book past dates"
	msgTempleClosed       = "temple closed on this date (festival)"
	msgNoTimeWindow       = "offering has no time window defined"
	msgOutsideWindow      = "slot time is outside offering time window"
	msgSlotFull           = "slot is full or unavailable"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	devoteeID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing devotee ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(devoteeID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotFull):
			h.logger.Warn("POST /bookings - Slot full: devotee_id=%d, offering_id=%d", devoteeID, req.OfferingID)
			handlers.RespondConflict(w, msgSlotFull)

		case errors.Is(err, createBooking.ErrOfferingNotFound):
			h.logger.Warn("POST /bookings - Offering not found: offering_id=%d", req.OfferingID)
			handlers.RespondNotFound(w, msgOfferingNotFound)

		case errors.Is(err, createBooking.ErrDevoteeNotFound):
			h.logger.Warn("POST /bookings - Devotee not found: devotee_id=%d", devoteeID)
			handlers.RespondNotFound(w, msgDevoteeNotFound)

		case errors.Is(err, createBooking.ErrOfferingNotActive):
			h.logger.Warn("POST /bookings - Offering not active: devotee_id=%d, offering_id=%d", devoteeID, req.OfferingID)
			handlers.RespondBadRequest(w, msgOfferingNotActive)

		case errors.Is(err, createBooking.ErrNotAvailableOnDay):
			h.logger.Warn("POST /bookings - Offering not available on day: devotee_id=%d, offering_id=%d", devoteeID, req.OfferingID)
			handlers.RespondBadRequest(w, msgNotAvailableOnDay)

		case errors.Is(err, createBooking.ErrPastDate):
			h.logger.Warn("POST /bookings - Past date: devotee_id=%d, offering_id=%d", devoteeID, req.OfferingID)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, createBooking.ErrTempleClosed):
			h.logger.Warn("POST /bookings - Temple closed: devotee_id=%d, offering_id=%d, date=%s",
				devoteeID, req.OfferingID, req.BookingDate)
			handlers.RespondBadRequest(w, msgTempleClosed)

		case errors.Is(err, createBooking.ErrNoTimeWindow):
			h.logger.Warn("POST /bookings - No time window: devotee_id=%d, offering_id=%d", devoteeID, req.OfferingID)
			handlers.RespondBadRequest(w, msgNoTimeWindow)

		case errors.Is(err, createBooking.ErrOutsideWindow):
			h.logger.Warn("POST /bookings - Slot outside window: devotee_id=%d, offering_id=%d, slot=%s",
				devoteeID, req.OfferingID, req.SlotStartTime)
			handlers.RespondBadRequest(w, msgOutsideWindow)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: devotee_id=%d, error=%v", devoteeID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /bookings - Failed to create booking: devotee_id=%d, offering_id=%d, error=%v",
				devoteeID, req.OfferingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, reference=%s, devotee_id=%d, offering_id=%d",
		result.BookingID, result.Reference, devoteeID, req.OfferingID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
