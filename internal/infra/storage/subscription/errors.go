package subscription

import "errors"

var (
	// ErrSubscriptionNotFound возвращается, когда запись подписки не найдена
	ErrSubscriptionNotFound = errors.New("subscription.repository: subscription not found")

	// ErrCooldownActive возвращается, когда условный старт буста не применился:
	// кулдаун после предыдущего буста еще не истек
	ErrCooldownActive = errors.New("subscription.repository: boost cooldown active")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("subscription.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("subscription.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("subscription.repository: failed to scan row")
)
