// Package telemetry обеспечивает наблюдаемость CLI.
//
// Включает:
//   - logging.go — structured logging через slog в stderr
//   - metrics.go — Prometheus метрики HTTP-запросов и команд
//
// Процесс живёт одну команду, поэтому метрики не отдаются по /metrics,
// а при заданном CLOUD_METRICS_TEXTFILE записываются в файл на выходе.
package telemetry
