package capacity

import "errors"

var (
	// ErrProfessionalNotFound возвращается, когда профессионал не найден
	ErrProfessionalNotFound = errors.New("capacity.service: professional not found")

	// ErrKYCNotApproved возвращается, когда KYC профессионала не подтвержден
	ErrKYCNotApproved = errors.New("capacity.service: kyc is not approved")

	// ErrServiceLimitReached возвращается при превышении квоты активных услуг
	ErrServiceLimitReached = errors.New("capacity.service: service limit reached")

	// ErrBoostCooldownActive возвращается, когда кулдаун буста еще не истек
	ErrBoostCooldownActive = errors.New("capacity.service: boost cooldown is active")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("capacity.service: internal error")
)
