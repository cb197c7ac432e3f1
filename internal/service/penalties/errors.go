package penalties

import "errors"

var (
	// ErrInvalidPenaltyType возвращается при неизвестном типе штрафа
	ErrInvalidPenaltyType = errors.New("penalties.service: invalid penalty type")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("penalties.service: internal error")
)
