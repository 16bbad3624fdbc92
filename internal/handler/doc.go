// Package handler — обработчики команд CLI.
//
// # Обзор
//
// На каждое семейство ресурсов один обработчик с методом
//
//	Handle(ctx, cmd) (Result, error)
//
// Команда — значение закрытого интерфейса семейства (DeploymentCommand,
// ProjectCommand и т.д.): реализовать его можно только внутри пакета.
//
// Обработчик:
//  1. разрешает ссылки через resolve.Resolver (не больше одного раза на ссылку)
//  2. вызывает клиент ресурса
//  3. упаковывает ответ в Result
//
// Ошибка из Handle всегда *apierr.Error. Ошибка разрешения прерывает команду
// до любого изменяющего вызова. Повторов и отката нет.
package handler
