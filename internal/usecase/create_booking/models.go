package create_booking

import (
	"time"

	"github.com/m04kA/SMP-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	ClientID       int64            // ID клиента (из заголовка авторизации)
	ProfessionalID int64            // Публичный ID профессионала
	CategoryID     int64            // Категория услуги (определяет длительность)
	Date           time.Time        // Дата бронирования (без времени)
	StartTime      types.TimeString // Время начала слота (например, "10:00")
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64            // ID созданного бронирования
	ClientID        int64            // ID клиента
	ProfessionalID  int64            // ID профессионала
	CategoryID      int64            // ID категории
	BookingDate     time.Time        // Дата бронирования
	StartTime       types.TimeString // Время начала
	DurationMinutes int              // Длительность в минутах
	Status          string           // Статус бронирования (PENDING)
	CreatedAt       time.Time        // Время создания
	UpdatedAt       time.Time        // Время обновления
}
