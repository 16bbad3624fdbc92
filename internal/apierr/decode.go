package apierr

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// errorBody — объединение всех форм тела ошибки API.
type errorBody struct {
	Errors      []string `json:"errors"`
	Error       string   `json:"error"`
	Message     string   `json:"message"`
	ComponentID string   `json:"component_id"`
}

// Decode разбирает ответ с ошибкой по закрытому набору семейства.
//
// Статус вне набора — UnexpectedStatus. Тело, которое не удалось
// разобрать, — RequestFailure с ошибкой декодирования.
func Decode(f Family, status int, body []byte) *BackendError {
	if !f.allowsStatus(status) {
		return UnexpectedStatus(f, status)
	}

	kind := statusKinds[status]
	be := &BackendError{Family: f, Kind: kind, Status: status}
	if kind == KindGatewayTimeout {
		return be
	}

	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return RequestFailure(f, fmt.Errorf("failed to decode %d response: %w", status, err))
	}

	switch kind {
	case KindBadRequest:
		be.Errors = eb.Errors
	case KindNotFound:
		be.Message = eb.Message
	case KindConflict:
		be.ResourceID = eb.ComponentID
		if be.ResourceID == "" {
			be.ResourceID = eb.Error
		}
	default:
		be.Detail = eb.Error
	}
	return be
}

// IsSuccess сообщает, что статус не является ошибкой.
func IsSuccess(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}
