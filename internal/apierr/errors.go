package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind — вид ошибки backend. Набор закрыт.
type Kind int

const (
	// KindRequestFailure — запрос не выполнен (сеть, таймаут, битое тело ответа).
	KindRequestFailure Kind = iota

	// KindInvalidHeader — некорректное значение заголовка запроса.
	KindInvalidHeader

	// KindUnexpectedStatus — статус, не описанный для семейства.
	KindUnexpectedStatus

	// KindBadRequest — 400, список ошибок полей.
	KindBadRequest

	// KindUnauthorized — 401.
	KindUnauthorized

	// KindForbidden — 403, обычно превышение лимита.
	KindForbidden

	// KindNotFound — 404.
	KindNotFound

	// KindConflict — 409, ресурс уже существует.
	KindConflict

	// KindInternal — 500.
	KindInternal

	// KindGatewayTimeout — 504.
	KindGatewayTimeout
)

var kindNames = map[Kind]string{
	KindRequestFailure:   "request_failure",
	KindInvalidHeader:    "invalid_header",
	KindUnexpectedStatus: "unexpected_status",
	KindBadRequest:       "bad_request",
	KindUnauthorized:     "unauthorized",
	KindForbidden:        "forbidden",
	KindNotFound:         "not_found",
	KindConflict:         "conflict",
	KindInternal:         "internal",
	KindGatewayTimeout:   "gateway_timeout",
}

// String возвращает имя вида ошибки.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// statusKinds — соответствие HTTP-статуса виду ошибки.
var statusKinds = map[int]Kind{
	http.StatusBadRequest:          KindBadRequest,
	http.StatusUnauthorized:        KindUnauthorized,
	http.StatusForbidden:           KindForbidden,
	http.StatusNotFound:            KindNotFound,
	http.StatusConflict:            KindConflict,
	http.StatusInternalServerError: KindInternal,
	http.StatusGatewayTimeout:      KindGatewayTimeout,
}

// BackendError — ошибка вызова конкретного семейства ресурсов.
type BackendError struct {
	Family Family // семейство ресурсов
	Kind   Kind   // вид ошибки
	Status int    // HTTP-статус, 0 если ответа не было

	Message    string   // 404: message
	Errors     []string // 400: errors
	Detail     string   // 401/403/500: error
	ResourceID string   // 409: component_id / имя воркера

	Err error // причина для RequestFailure и InvalidHeader
}

// Error реализует интерфейс error.
func (e *BackendError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %v", e.Family, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s %s (status %d)", e.Family, e.Kind, e.Status)
}

// Unwrap возвращает причину.
func (e *BackendError) Unwrap() error {
	return e.Err
}

// RequestFailure создаёт ошибку невыполненного запроса.
func RequestFailure(f Family, err error) *BackendError {
	return &BackendError{Family: f, Kind: KindRequestFailure, Err: err}
}

// InvalidHeader создаёт ошибку некорректного заголовка.
func InvalidHeader(f Family, err error) *BackendError {
	return &BackendError{Family: f, Kind: KindInvalidHeader, Err: err}
}

// UnexpectedStatus создаёт ошибку неописанного статуса.
func UnexpectedStatus(f Family, status int) *BackendError {
	return &BackendError{Family: f, Kind: KindUnexpectedStatus, Status: status}
}

// ErrInvalidHeaderValue — значение заголовка содержит недопустимые символы.
var ErrInvalidHeaderValue = errors.New("invalid header value")

// Error — единая ошибка команды.
//
// Содержит только человекочитаемое сообщение; структурные детали
// (например, список ошибок валидации) уже склеены в текст.
type Error struct {
	Message string
}

// Error реализует интерфейс error.
func (e *Error) Error() string {
	return e.Message
}

// Errorf создаёт Error с форматированным сообщением.
func Errorf(format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}
