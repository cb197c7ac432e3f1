package service_activation_check

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMP-BookingService/internal/api/handlers"
	"github.com/m04kA/SMP-BookingService/internal/service/capacity"
)

const (
	msgInvalidProfessionalID = "некорректный ID профессионала"
	msgInvalidRequestBody    = "некорректное тело запроса"

	reasonServiceLimitReached = "SERVICE_LIMIT_REACHED"
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

// Handle POST /internal/professionals/{professionalId}/service-activation-check
// Внутренний endpoint для каталога услуг: проверяет квоту перед активацией
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	professionalID, err := strconv.ParseInt(vars["professionalId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /internal/professionals/{id}/service-activation-check - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	var req ActivationCheckRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /internal/professionals/{id}/service-activation-check - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.CurrentActiveCount < 0 {
		h.logger.Warn("POST /internal/professionals/{id}/service-activation-check - Negative active count: %d",
			req.CurrentActiveCount)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err = h.service.CanActivateService(r.Context(), professionalID, req.CurrentActiveCount)
	if err != nil {
		switch {
		case errors.Is(err, capacity.ErrServiceLimitReached):
			h.logger.Info("POST /internal/professionals/{id}/service-activation-check - Limit reached: professional_id=%d, count=%d",
				professionalID, req.CurrentActiveCount)
			handlers.RespondJSON(w, http.StatusOK, ActivationCheckResponse{
				Allowed: false,
				Reason:  reasonServiceLimitReached,
			})

		default:
			h.logger.Error("POST /internal/professionals/{id}/service-activation-check - Check failed: professional_id=%d, error=%v",
				professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /internal/professionals/{id}/service-activation-check - Allowed: professional_id=%d, count=%d",
		professionalID, req.CurrentActiveCount)
	handlers.RespondJSON(w, http.StatusOK, ActivationCheckResponse{Allowed: true})
}
