package identityservice

import "github.com/m04kA/SMP-BookingService/internal/domain"

// KYCStatusResponse ответ IdentityService на запрос статуса проверки документов
type KYCStatusResponse struct {
	ProfessionalID int64  `json:"professionalId"`
	Status         string `json:"status"` // PENDING | APPROVED | REJECTED
}

// ToDomain конвертирует ответ в доменный статус
func (r *KYCStatusResponse) ToDomain() domain.KYCStatus {
	return domain.KYCStatus(r.Status)
}
