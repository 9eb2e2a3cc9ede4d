package api

// SnagRequest uses the client's camelCase keys; responses use the stored
// snake_case names.
// swagger:model api.SnagRequest
type SnagRequest struct {
	Title       string `json:"title" validate:"required,max=255" example:"Cracked tile in lobby"`
	Description string `json:"description" example:"Third row from the entrance"`
	AssignedTo  string `json:"assignedTo" validate:"max=100" example:"Sam"`
	Status      string `json:"status" validate:"omitempty,oneof=open in-progress resolved closed" example:"open"`
	Image       string `json:"image" example:"https://cdn.example.com/snags/1.jpg"`
}

// swagger:model api.SnagStatusRequest
type SnagStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=open in-progress resolved closed" example:"resolved"`
}
