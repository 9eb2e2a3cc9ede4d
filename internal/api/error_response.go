package api

// ErrorResponse is the body of every error reply.
// swagger:model api.ErrorResponse
type ErrorResponse struct {
	Error string `json:"error" example:"Invalid credentials"`
}
