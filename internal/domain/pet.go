package domain

// Pet is owned by the Pet API; the client only holds a read-only copy.
type Pet struct {
	ID          ID     `json:"id"`
	Name        string `json:"name"`
	Species     string `json:"species"`
	Age         int    `json:"age"`
	Description string `json:"description"`
}

// NewPetInput is the payload of the "add a pet" and "edit pet" forms.
type NewPetInput struct {
	Name        string `json:"name" form:"name" validate:"required"`
	Species     string `json:"species" form:"species" validate:"required"`
	Age         int    `json:"age" form:"age" validate:"gte=0"`
	Description string `json:"description" form:"description"`
}
