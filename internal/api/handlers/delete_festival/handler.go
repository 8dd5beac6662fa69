package delete_festival

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/rajaput123/SevaBookingService/internal/api/handlers"
	"github.com/rajaput123/SevaBookingService/internal/api/middleware"
	"github.com/rajaput123/SevaBookingService/internal/service/festivals"
)

const (
	msgInvalidFestivalID = "invalid festival ID"
	msgMissingUserID     = "missing devotee ID"
	msgForbidden         = "access denied"
	msgNotFound          = "festival event not found"
)

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

// Handle DELETE /api/v1/festivals/{festivalId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	festivalIDStr := vars["festivalId"]

	festivalID, err := strconv.ParseInt(festivalIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /festivals/{id} - Invalid festival ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFestivalID)
		return
	}

	devoteeID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /festivals/{id} - Missing devotee ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.Delete(r.Context(), festivalID, devoteeID); err != nil {
		switch {
		case errors.Is(err, festivals.ErrFestivalNotFound):
			h.logger.Warn("DELETE /festivals/{id} - Festival not found: festival_id=%d", festivalID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, festivals.ErrAccessDenied):
			h.logger.Warn("DELETE /festivals/{id} - Access denied: festival_id=%d, devotee_id=%d", festivalID, devoteeID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /festivals/{id} - Failed to delete festival: festival_id=%d, error=%v", festivalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /festivals/{id} - Festival deleted successfully: festival_id=%d, devotee_id=%d",
		festivalID, devoteeID)
	w.WriteHeader(http.StatusNoContent)
}
