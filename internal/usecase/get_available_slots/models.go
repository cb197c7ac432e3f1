package get_available_slots

import (
	"time"

	"github.com/m04kA/SMP-BookingService/pkg/types"
)

// Request модель запроса доступных слотов
type Request struct {
	ProfessionalID int64     // Публичный ID профессионала
	CategoryID     int64     // Категория услуги (определяет длительность)
	Date           time.Time // Дата без времени, локальная таймзона профессионала
}

// Response модель ответа со списком доступных слотов
type Response struct {
	ProfessionalID  int64
	CategoryID      int64
	Date            time.Time
	DurationMinutes int                // Длительность слота по категории
	Slots           []types.TimeString // Времена начала по возрастанию
}
