package update_subscription

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMP-BookingService/internal/api/handlers"
)

const (
	msgInvalidProfessionalID = "некорректный ID профессионала"
	msgInvalidRequestBody    = "некорректное тело запроса"
)

type Handler struct {
	service CapacityService
	logger  Logger
}

func NewHandler(service CapacityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /internal/professionals/{professionalId}/subscription
// Внутренний endpoint для обвязки платежных колбеков: выставляет премиум-статус
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	professionalID, err := strconv.ParseInt(vars["professionalId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /internal/professionals/{id}/subscription - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	var req UpdateSubscriptionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /internal/professionals/{id}/subscription - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	activeUntil, err := req.ActiveUntil()
	if err != nil {
		h.logger.Warn("PUT /internal/professionals/{id}/subscription - Invalid request: professional_id=%d, error=%v",
			professionalID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	state, err := h.service.UpdatePremium(r.Context(), professionalID, req.IsPremium, activeUntil)
	if err != nil {
		h.logger.Error("PUT /internal/professionals/{id}/subscription - Failed to update premium: professional_id=%d, error=%v",
			professionalID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /internal/professionals/{id}/subscription - Premium updated: professional_id=%d, is_premium=%t",
		professionalID, req.IsPremium)
	handlers.RespondJSON(w, http.StatusOK, FromDomainState(state))
}
