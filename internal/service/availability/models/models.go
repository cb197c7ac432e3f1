package models

import (
	"github.com/m04kA/SMP-BookingService/internal/domain"
)

// WindowPayload одно окно еженедельного расписания
type WindowPayload struct {
	DayOfWeek int  `json:"dayOfWeek"` // 0=Sunday .. 6=Saturday
	StartMin  int  `json:"startMin"`  // Минуты с полуночи
	EndMin    int  `json:"endMin"`    // Минуты с полуночи
	IsActive  bool `json:"isActive"`
}

// ReplaceScheduleRequest запрос на полную замену расписания
type ReplaceScheduleRequest struct {
	ProfessionalID int64           `json:"professionalId"`
	Windows        []WindowPayload `json:"windows"`
}

// ScheduleResponse ответ с расписанием профессионала
type ScheduleResponse struct {
	ProfessionalID int64           `json:"professionalId"`
	Windows        []WindowPayload `json:"windows"`
}

// ToDomainWindows конвертирует payload в domain модели
func (r *ReplaceScheduleRequest) ToDomainWindows() []*domain.AvailabilityWindow {
	windows := make([]*domain.AvailabilityWindow, len(r.Windows))
	for i, w := range r.Windows {
		windows[i] = &domain.AvailabilityWindow{
			ProfessionalID: r.ProfessionalID,
			DayOfWeek:      w.DayOfWeek,
			StartMin:       w.StartMin,
			EndMin:         w.EndMin,
			IsActive:       w.IsActive,
		}
	}
	return windows
}

// FromDomainWindows конвертирует domain модели в ответ
func FromDomainWindows(professionalID int64, windows []*domain.AvailabilityWindow) *ScheduleResponse {
	resp := &ScheduleResponse{
		ProfessionalID: professionalID,
		Windows:        make([]WindowPayload, len(windows)),
	}
	for i, w := range windows {
		resp.Windows[i] = WindowPayload{
			DayOfWeek: w.DayOfWeek,
			StartMin:  w.StartMin,
			EndMin:    w.EndMin,
			IsActive:  w.IsActive,
		}
	}
	return resp
}
