package update_availability

import (
	"github.com/m04kA/SMP-BookingService/internal/service/availability/models"
)

// UpdateScheduleRequest HTTP request model
// Расписание заменяется целиком: окна, не вошедшие в запрос, удаляются
type UpdateScheduleRequest struct {
	Windows []models.WindowPayload `json:"windows"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateScheduleRequest) ToServiceRequest(professionalID int64) *models.ReplaceScheduleRequest {
	return &models.ReplaceScheduleRequest{
		ProfessionalID: professionalID,
		Windows:        r.Windows,
	}
}
