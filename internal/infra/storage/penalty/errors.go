package penalty

import "errors"

var (
	// ErrDuplicateRecord возвращается при повторной записи штрафа за то же событие
	ErrDuplicateRecord = errors.New("penalty.repository: duplicate penalty record")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("penalty.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("penalty.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("penalty.repository: failed to scan row")
)
