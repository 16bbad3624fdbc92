package domain

// ApiSite — адрес, на котором опубликовано API.
type ApiSite struct {
	Host      string `json:"host"`
	Subdomain string `json:"subdomain"`
}

// ApiDeployment — публикация определения API на сайте проекта.
type ApiDeployment struct {
	ProjectID       ProjectID `json:"project_id"`
	ApiDefinitionID string    `json:"api_definition_id"`
	Site            ApiSite   `json:"site"`
}
