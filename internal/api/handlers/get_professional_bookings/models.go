package get_professional_bookings

import (
	"net/url"
	"time"

	"github.com/m04kA/SMP-BookingService/internal/domain"
	"github.com/m04kA/SMP-BookingService/internal/service/bookings/models"
)

// ToServiceRequest собирает запрос сервиса из path и query параметров
// Поддерживаемые query: startDate, endDate (YYYY-MM-DD), status, includeInactive
func ToServiceRequest(professionalID, actorID int64, query url.Values) (*models.GetProfessionalBookingsRequest, error) {
	req := &models.GetProfessionalBookingsRequest{
		ActorID:        actorID,
		ProfessionalID: professionalID,
	}

	if raw := query.Get("startDate"); raw != "" {
		startDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate
	}

	if raw := query.Get("endDate"); raw != "" {
		endDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, err
		}
		req.EndDate = &endDate
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	req.IncludeInactive = query.Get("includeInactive") == "true"

	return req, nil
}
