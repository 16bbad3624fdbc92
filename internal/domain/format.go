package domain

import "fmt"

// Format — формат вывода результата команды.
type Format string

const (
	// FormatJSON — JSON с отступами (по умолчанию).
	FormatJSON Format = "json"

	// FormatYAML — YAML.
	FormatYAML Format = "yaml"
)

// AllFormats — все форматы в порядке объявления.
var AllFormats = []Format{FormatJSON, FormatYAML}

// ParseFormat парсит формат; регистр учитывается.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "json":
		return FormatJSON, nil
	case "yaml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("Unknown format: %s. Expected one of %s", s, quoteAll(AllFormats))
	}
}

// String реализует pflag.Value.
func (f *Format) String() string {
	if *f == "" {
		return string(FormatJSON)
	}
	return string(*f)
}

// Set реализует pflag.Value: ошибка разбора возникает ещё на этапе флагов.
func (f *Format) Set(s string) error {
	parsed, err := ParseFormat(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Type реализует pflag.Value.
func (f *Format) Type() string {
	return "format"
}
