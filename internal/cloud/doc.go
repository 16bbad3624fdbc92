// Package cloud — клиенты ресурсов backend API.
//
// # Обзор
//
// На каждое семейство ресурсов один интерфейс (AccountClient, ProjectClient,
// ComponentClient, DeploymentClient и т.д.) и одна HTTP-реализация.
// Handlers работают только с интерфейсами, поэтому в тестах их подменяют
// реализации из пакета cloud/fake.
//
// Ни один метод не разрешает ссылки (по имени, "по умолчанию"): все
// идентификаторы приходят уже разрешёнными. Разрешение — задача пакета resolve.
//
// # Transport
//
// Общий HTTP-слой. Добавляет заголовок Authorization, проверяет его значение,
// выполняет запрос, разбирает ответ. Ошибки возвращаются как
// *apierr.BackendError своего семейства:
//
//	transport := cloud.NewTransport(cloud.TransportConfig{
//		BaseURL:       "https://release.api.golem.cloud",
//		Authorization: authCtx.Header(),
//	})
//	clients := cloud.NewClients(transport, gatewayTransport)
//	projects, err := clients.Projects.List(ctx, nil)
//
// Deployments ходят в отдельный сервис gateway, остальные — в cloud.
package cloud
