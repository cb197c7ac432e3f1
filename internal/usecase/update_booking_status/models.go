package update_booking_status

import (
	"time"

	"github.com/m04kA/SMP-BookingService/internal/domain"
	"github.com/m04kA/SMP-BookingService/pkg/types"
)

// Request модель запроса на подтверждение или отклонение бронирования
type Request struct {
	BookingID int64                // ID бронирования
	ActorID   int64                // ID актора (должен совпадать с профессионалом бронирования)
	Status    domain.BookingStatus // Целевой статус: CONFIRMED или DECLINED
}

// Response модель ответа с обновленным бронированием
type Response struct {
	ID              int64            // ID бронирования
	ClientID        int64            // ID клиента
	ProfessionalID  int64            // ID профессионала
	CategoryID      int64            // ID категории
	BookingDate     time.Time        // Дата бронирования
	StartTime       types.TimeString // Время начала
	DurationMinutes int              // Длительность в минутах
	Status          string           // Новый статус
	AutoCancelled   int64            // Сколько пересекающихся PENDING отменено автоматически
	ConfirmedAt     *time.Time       // Время подтверждения (для CONFIRMED)
	CreatedAt       time.Time        // Время создания
	UpdatedAt       time.Time        // Время обновления
}
