package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"sigs.k8s.io/yaml"

	"github.com/shaiso/cloudctl/internal/domain"
	"github.com/shaiso/cloudctl/internal/handler"
)

// Output управляет форматированием вывода CLI.
type Output struct {
	format domain.Format
	w      io.Writer // stdout для данных
}

// NewOutput создаёт Output, пишущий данные в w (обычно stdout).
func NewOutput(format domain.Format, w io.Writer) *Output {
	if format == "" {
		format = domain.FormatJSON
	}
	return &Output{format: format, w: w}
}

// Print выводит результат команды: строку как есть, значение — в выбранном формате.
func (o *Output) Print(res handler.Result) error {
	if text, ok := res.Text(); ok {
		_, err := fmt.Fprintln(o.w, text)
		return err
	}
	if o.format == domain.FormatYAML {
		return o.YAML(res.Value())
	}
	return o.JSON(res.Value())
}

// JSON выводит данные в формате JSON с отступами.
func (o *Output) JSON(v any) error {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// YAML выводит данные в формате YAML. Имена полей берутся из json-тегов.
func (o *Output) YAML(v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	_, err = o.w.Write(data)
	return err
}
