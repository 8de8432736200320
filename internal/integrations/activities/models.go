package activities

// Appointment модель встречи из внешней системы расписаний
type Appointment struct {
	AppointmentID  int64   `json:"appointmentId"`
	PrisonCode     string  `json:"prisonCode"`
	PrisonerNumber string  `json:"prisonerNumber"`
	CategoryCode   string  `json:"categoryCode"`
	InternalLocKey string  `json:"internalLocationKey"`
	StartDate      string  `json:"startDate"` // YYYY-MM-DD
	StartTime      string  `json:"startTime"` // HH:MM
	EndTime        *string `json:"endTime"`   // может отсутствовать
	IsCancelled    bool    `json:"isCancelled"`
}

// searchRequest тело запроса поиска встреч
type searchRequest struct {
	StartDate      string `json:"startDate"`
	InternalLocKey string `json:"internalLocationKey"`
}
