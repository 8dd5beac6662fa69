package get_festival_calendar

import (
	"errors"
	"net/http"
	"time"

	"github.com/rajaput123/SevaBookingService/internal/api/handlers"
	"github.com/rajaput123/SevaBookingService/internal/domain"
	"github.com/rajaput123/SevaBookingService/internal/service/festivals"
)

const (
	msgInvalidDate  = "invalid date format, expected YYYY-MM-DD"
	msgInvalidRange = "invalid date range"
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

// Handle GET /api/v1/festivals
// Query params: from, to (optional, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var from, to *time.Time

	if fromStr := query.Get("from"); fromStr != "" {
		parsed, err := time.Parse(domain.DateFormat, fromStr)
		if err != nil {
			h.logger.Warn("GET /festivals - Invalid from date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		from = &parsed
	}

	if toStr := query.Get("to"); toStr != "" {
		parsed, err := time.Parse(domain.DateFormat, toStr)
		if err != nil {
			h.logger.Warn("GET /festivals - Invalid to date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		to = &parsed
	}

	result, err := h.service.Calendar(r.Context(), from, to)
	if err != nil {
		switch {
		case errors.Is(err, festivals.ErrInvalidInput):
			h.logger.Warn("GET /festivals - Invalid range: error=%v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET /festivals - Failed to get calendar: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /festivals - Calendar retrieved successfully: count=%d", len(result.Festivals))
	handlers.RespondJSON(w, http.StatusOK, result)
}
