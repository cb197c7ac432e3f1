package identityservice

import "errors"

var (
	// ErrProfessionalNotFound возвращается, когда профессионал не найден в IdentityService
	ErrProfessionalNotFound = errors.New("identityservice: professional not found")

	// ErrInvalidResponse возвращается при некорректном ответе IdentityService
	ErrInvalidResponse = errors.New("identityservice: invalid response")

	// ErrInternal возвращается при ошибках выполнения запроса
	ErrInternal = errors.New("identityservice: internal error")
)
