package domain

import "fmt"

// ValidationError возвращается при некорректных входных данных
// до обращения к внешнему сервису.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("некорректный вход: %s: %s", e.Field, e.Reason)
}

// TransportError возвращается, когда вызов внешнего сервиса не удалось выполнить.
type TransportError struct {
	Operation string
	Err       error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("вызов модели %s: %v", e.Operation, e.Err)
}

// Unwrap отдаёт исходную ошибку транспорта.
func (e *TransportError) Unwrap() error { return e.Err }

// EmptyResponseError возвращается, когда сервис не вернул текст.
type EmptyResponseError struct {
	Operation string
}

func (e *EmptyResponseError) Error() string {
	return fmt.Sprintf("пустой ответ модели в операции %s", e.Operation)
}

// SchemaViolationError возвращается, когда ответ модели нарушает схему:
// недопустимое значение перечисления или отсутствующий обязательный объект.
type SchemaViolationError struct {
	Field string
	Value string
}

func (e *SchemaViolationError) Error() string {
	return fmt.Sprintf("ответ модели нарушает схему: поле %s, значение %q", e.Field, e.Value)
}

// UngroundedSourceError возвращается, когда ответ модели ссылается на
// идентификатор, которого не было в исходном наборе. Это главная проверка
// целостности: инструкция модели сама по себе не контракт.
type UngroundedSourceError struct {
	Field string
	ID    string
}

func (e *UngroundedSourceError) Error() string {
	return fmt.Sprintf("ответ модели ссылается на неизвестный источник: поле %s, id %q", e.Field, e.ID)
}
