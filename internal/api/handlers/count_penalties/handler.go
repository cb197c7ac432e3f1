package count_penalties

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMP-BookingService/internal/api/handlers"
	"github.com/m04kA/SMP-BookingService/internal/domain"
	"github.com/m04kA/SMP-BookingService/internal/service/penalties"
)

const (
	msgInvalidActorID     = "некорректный ID актора"
	msgInvalidPenaltyType = "некорректный тип штрафа"
	msgInvalidDays        = "некорректное количество дней"

	defaultWindowDays = 90
)

// PenaltyCountResponse HTTP response model
type PenaltyCountResponse struct {
	ActorID int64  `json:"actorId"`
	Type    string `json:"type"`
	Days    int    `json:"days"`
	Count   int    `json:"count"`
}

type Handler struct {
	service PenaltyService
	logger  Logger
}

func NewHandler(service PenaltyService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /internal/actors/{actorId}/penalties
// Query params: type (required), days (опционально, по умолчанию 90)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	actorID, err := strconv.ParseInt(vars["actorId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /internal/actors/{id}/penalties - Invalid actor ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidActorID)
		return
	}

	penaltyType := domain.PenaltyType(r.URL.Query().Get("type"))
	if !domain.ValidPenaltyType(penaltyType) {
		h.logger.Warn("GET /internal/actors/{id}/penalties - Invalid penalty type: %s", penaltyType)
		handlers.RespondBadRequest(w, msgInvalidPenaltyType)
		return
	}

	days := defaultWindowDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		days, err = strconv.Atoi(raw)
		if err != nil || days <= 0 {
			h.logger.Warn("GET /internal/actors/{id}/penalties - Invalid days: %s", raw)
			handlers.RespondBadRequest(w, msgInvalidDays)
			return
		}
	}

	count, err := h.service.CountByActor(r.Context(), actorID, penaltyType, days)
	if err != nil {
		switch {
		case errors.Is(err, penalties.ErrInvalidPenaltyType):
			h.logger.Warn("GET /internal/actors/{id}/penalties - Invalid penalty type: %s", penaltyType)
			handlers.RespondBadRequest(w, msgInvalidPenaltyType)

		default:
			h.logger.Error("GET /internal/actors/{id}/penalties - Failed to count penalties: actor_id=%d, error=%v",
				actorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /internal/actors/{id}/penalties - Counted: actor_id=%d, type=%s, days=%d, count=%d",
		actorID, penaltyType, days, count)
	handlers.RespondJSON(w, http.StatusOK, PenaltyCountResponse{
		ActorID: actorID,
		Type:    string(penaltyType),
		Days:    days,
		Count:   count,
	})
}
