package domain

// VersionedComponentID — конкретная версия компонента.
type VersionedComponentID struct {
	ComponentID ComponentID `json:"component_id"`
	Version     uint64      `json:"version"`
}

// Component — загруженный компонент (wasm-модуль).
type Component struct {
	VersionedComponentID VersionedComponentID `json:"versioned_component_id"`
	ComponentName        ComponentName        `json:"component_name"`
	ComponentSize        uint64               `json:"component_size"`
	ProjectID            ProjectID            `json:"project_id"`
}

// WorkerID — идентификатор воркера: компонент + имя.
type WorkerID struct {
	ComponentID ComponentID `json:"component_id"`
	WorkerName  string      `json:"worker_name"`
}

// WorkerCreationRequest — тело запроса на запуск воркера.
type WorkerCreationRequest struct {
	Name string            `json:"name"`
	Args []string          `json:"args"`
	Env  map[string]string `json:"env"`
}

// WorkerCreation — ответ на запуск воркера.
type WorkerCreation struct {
	WorkerID         WorkerID `json:"worker_id"`
	ComponentVersion uint64   `json:"component_version"`
}

// WorkerMetadata — состояние воркера.
type WorkerMetadata struct {
	WorkerID         WorkerID          `json:"worker_id"`
	AccountID        AccountID         `json:"account_id"`
	Args             []string          `json:"args"`
	Env              map[string]string `json:"env"`
	Status           string            `json:"status"`
	ComponentVersion uint64            `json:"component_version"`
	RetryCount       uint64            `json:"retry_count"`
}
