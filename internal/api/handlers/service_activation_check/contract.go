package service_activation_check

import "context"

type CapacityService interface {
	CanActivateService(ctx context.Context, professionalID int64, currentActiveCount int) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
