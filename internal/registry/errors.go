package registry

import "errors"

// Классы ошибок реестра. Каждая операция заворачивает их через fmt.Errorf("%w"),
// хэндлеры сопоставляют класс с HTTP-статусом через errors.Is.
var (
	// ErrValidation - некорректный ввод: пустые строки, диапазоны числовых полей
	ErrValidation = errors.New("validation error")
	// ErrNotFound - неизвестный id тревоги/района или незарегистрированный адрес
	ErrNotFound = errors.New("not found")
	// ErrConflict - повторная регистрация, повторный отклик, повторная верификация
	ErrConflict = errors.New("conflict")
	// ErrInvalidState - операция над записью в неподходящем состоянии
	ErrInvalidState = errors.New("invalid state")
	// ErrAuthorization - у вызывающего нет нужной роли, владения или репутации
	ErrAuthorization = errors.New("not authorized")
)
