package cancel_booking

import (
	"time"

	"github.com/m04kA/SMP-BookingService/pkg/types"
)

// Request модель запроса на отмену бронирования
type Request struct {
	BookingID int64   // ID бронирования
	ActorID   int64   // ID актора (клиент или профессионал бронирования)
	Reason    *string // Причина отмены: обязательна для профессионала, 5-200 символов
}

// Response модель ответа с отмененным бронированием
type Response struct {
	ID                 int64            // ID бронирования
	ClientID           int64            // ID клиента
	ProfessionalID     int64            // ID профессионала
	CategoryID         int64            // ID категории
	BookingDate        time.Time        // Дата бронирования
	StartTime          types.TimeString // Время начала
	DurationMinutes    int              // Длительность в минутах
	Status             string           // Статус отмены
	CancellationReason *string          // Причина отмены
	PenaltyApplied     bool             // Создана ли штрафная запись
	CancelledAt        *time.Time       // Время отмены
	CreatedAt          time.Time        // Время создания
	UpdatedAt          time.Time        // Время обновления
}
