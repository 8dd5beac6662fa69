package list_offerings

import (
	"net/http"

	"github.com/rajaput123/SevaBookingService/internal/api/handlers"
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

// Handle GET /api/v1/offerings
// Query params: includeInactive (optional, admin views)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	onlyActive := r.URL.Query().Get("includeInactive") != "true"

	result, err := h.service.List(r.Context(), onlyActive)
	if err != nil {
		h.logger.Error("GET /offerings - Failed to list offerings: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /offerings - Offerings retrieved successfully: count=%d", len(result.Offerings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
