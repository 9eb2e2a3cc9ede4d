package api

// RegisterRequest carries no required tags: blank fields are reported
// together as "All fields are required". Any non-empty email is accepted.
// swagger:model api.RegisterRequest
type RegisterRequest struct {
	Name     string `json:"name" validate:"max=100" example:"Alice"`
	Email    string `json:"email" validate:"max=100" example:"alice@example.com"`
	Password string `json:"password" validate:"max=72" example:"Secret123!"`
}
