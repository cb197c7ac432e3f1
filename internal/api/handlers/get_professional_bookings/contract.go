package get_professional_bookings

import (
	"context"

	"github.com/m04kA/SMP-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetProfessionalBookings(ctx context.Context, req *models.GetProfessionalBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
