package start_boost

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMP-BookingService/internal/api/handlers"
	"github.com/m04kA/SMP-BookingService/internal/api/middleware"
	"github.com/m04kA/SMP-BookingService/internal/service/capacity"
)

const (
	msgInvalidProfessionalID = "некорректный ID профессионала"
	msgMissingUserID         = "отсутствует ID пользователя"
	msgForbidden             = "доступ запрещен"
	msgCooldownActive        = "кулдаун буста еще не истек"
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

// Handle POST /api/v1/professionals/{professionalId}/boost
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	professionalID, err := strconv.ParseInt(vars["professionalId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /professionals/{id}/boost - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /professionals/{id}/boost - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Буст запускает только сам профессионал
	if actorID != professionalID {
		h.logger.Warn("POST /professionals/{id}/boost - Access denied: professional_id=%d, actor_id=%d",
			professionalID, actorID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	state, err := h.service.StartBoost(r.Context(), professionalID)
	if err != nil {
		switch {
		case errors.Is(err, capacity.ErrBoostCooldownActive):
			h.logger.Warn("POST /professionals/{id}/boost - Cooldown active: professional_id=%d", professionalID)
			handlers.RespondError(w, http.StatusPreconditionFailed, msgCooldownActive)

		default:
			h.logger.Error("POST /professionals/{id}/boost - Failed to start boost: professional_id=%d, error=%v",
				professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /professionals/{id}/boost - Boost started: professional_id=%d", professionalID)
	handlers.RespondJSON(w, http.StatusOK, FromDomainState(state))
}
