package locations

// Location модель комнаты из справочника локаций
type Location struct {
	ID                string `json:"id"`
	PrisonID          string `json:"prisonId"`
	Key               string `json:"key"`
	LocalName         string `json:"localName"`
	PathHierarchy     string `json:"pathHierarchy"`
	LocationType      string `json:"locationType"`
	Active            bool   `json:"active"`
	LeafLevel         bool   `json:"leafLevel"`
	UsedForVideoLinks bool   `json:"usedForVideoLinks"`
}

// ErrorResponse модель ошибки от сервиса локаций
type ErrorResponse struct {
	Status           int    `json:"status"`
	UserMessage      string `json:"userMessage"`
	DeveloperMessage string `json:"developerMessage"`
}
