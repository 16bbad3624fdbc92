package handler

import (
	"github.com/shaiso/cloudctl/internal/apierr"
)

// Result — итог команды: сериализуемое значение или готовая строка.
type Result struct {
	value   any
	text    string
	literal bool
}

// Ok оборачивает значение, которое будет выведено в выбранном формате.
func Ok(v any) Result {
	return Result{value: v}
}

// Str оборачивает строку, которая выводится как есть.
func Str(s string) Result {
	return Result{text: s, literal: true}
}

// Value возвращает сериализуемое значение.
func (r Result) Value() any {
	return r.value
}

// Text возвращает строку и true, если результат создан через Str.
func (r Result) Text() (string, bool) {
	return r.text, r.literal
}

// fail приводит ошибку к *apierr.Error. err не должна быть nil.
func fail(err error) error {
	return apierr.Normalize(err)
}

func unknownCommand(cmd any) error {
	return apierr.Errorf("Unsupported command: %T", cmd)
}
