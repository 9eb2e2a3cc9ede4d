package api

// swagger:model api.ProjectRequest
type ProjectRequest struct {
	Name     string `json:"name" validate:"required,max=255" example:"Riverside Tower"`
	Number   string `json:"number" validate:"max=100" example:"RT-104"`
	Location string `json:"location" example:"Leeds"`
}
