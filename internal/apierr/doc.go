// Package apierr сводит ошибки backend API к единому виду.
//
// # Обзор
//
// Каждое семейство ресурсов (accounts, tokens, projects, grants, policies,
// project grants, components, workers, deployments, login) возвращает
// свой закрытый набор ошибок. Вместо отдельного типа на семейство здесь
// один тип BackendError с полем Kind; семейство определяет, какие Kind
// для него допустимы и как они превращаются в текст.
//
// # Ключевые компоненты
//
// ## BackendError
//
// Ошибка конкретного HTTP-вызова: семейство, вид, статус и данные тела
// ответа (message, errors, error, component_id). Создаётся транспортом
// через Decode или конструкторы RequestFailure/InvalidHeader.
//
// ## Error
//
// Единая ошибка для пользователя: одна строка Message, всегда непустая.
// Normalize проецирует любую ошибку в Error без побочных эффектов и без retry.
//
//	res, err := client.Get(ctx, id)
//	if err != nil {
//		return apierr.Normalize(err)
//	}
//
// ## Decode
//
// Разбор статуса и тела ответа с учётом закрытого набора семейства:
// статус вне набора — UnexpectedStatus.
package apierr
