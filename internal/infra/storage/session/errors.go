package session

import "errors"

var (
	// ErrNotFound возвращается, когда ключ отсутствует или истёк
	ErrNotFound = errors.New("session.storage: key not found")

	// ErrQuotaExceeded возвращается при превышении лимита записей сессии
	ErrQuotaExceeded = errors.New("session.storage: quota exceeded")

	// ErrInvalidSession возвращается для пустого идентификатора сессии
	ErrInvalidSession = errors.New("session.storage: invalid session id")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("session.storage: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения запроса
	ErrExecQuery = errors.New("session.storage: failed to execute query")

	// ErrScanRow возвращается при ошибке чтения результата запроса
	ErrScanRow = errors.New("session.storage: failed to scan row")

	// ErrSerialization возвращается при ошибке (де)сериализации значения
	ErrSerialization = errors.New("session.storage: serialization error")
)
