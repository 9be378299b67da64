package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/nfrund/petcommunity/internal/domain"
)

// CustomValidator wraps the go-playground/validator library to implement Echo's Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new CustomValidator.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// PetIDParam binds the :id path parameter of pet routes.
type PetIDParam struct {
	ID string `param:"id" validate:"required"`
}

// UpdatePetRequest binds the edit-pet form together with its path parameter.
type UpdatePetRequest struct {
	ID string `param:"id" validate:"required"`
	domain.NewPetInput
}
