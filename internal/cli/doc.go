// Package cli реализует инструмент командной строки cloudctl.
//
// # Обзор
//
// Cobra-команды организованы по семействам ресурсов:
//   - account: get, add, update, delete
//   - token: list, add, delete
//   - grant: get, add, delete
//   - project: list, add, default
//   - project-policy: add, get
//   - share
//   - component: add, update, list, get
//   - worker: add, get, delete, interrupt
//   - api-deployment: get, add, delete
//
// Каждая группа создаётся фабричной функцией (NewProjectCmd и т.д.),
// принимающей sessionFn и outputFn — замыкания для ленивого создания
// Session и Output после парсинга PersistentFlags.
//
// # Флаги ссылок
//
// Ссылка на проект задаётся --project-id или --project-name (взаимоисключающие),
// без них используется проект по умолчанию. Ссылка на компонент —
// --component-id или --component-name с флагами проекта. Недопустимые
// сочетания, роли, действия и формат отсекаются при разборе флагов, до
// обращения к серверу.
//
// # Session
//
// Собирает учётные данные (CLOUD_TOKEN_FILE или CLOUD_TOKEN_SECRET),
// HTTP-клиенты cloud и gateway и Resolver одного запуска.
//
// ## Output
//
// Результат выводится в stdout в JSON (по умолчанию) или YAML
// (--format yaml), строковые результаты — как есть. Логи и ошибки идут в stderr:
//
//	cloudctl project list --format yaml | less
package cli
