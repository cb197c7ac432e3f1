package availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("availability.service: invalid input data")

	// ErrDuplicateDay возвращается, когда в расписании два окна на один день недели
	ErrDuplicateDay = errors.New("availability.service: duplicate day of week")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("availability.service: internal error")
)
