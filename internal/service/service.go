package service

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// Package service contains the use-case layer: ownership checks, input
// validation and orchestration across repositories, storage and mail.
// Handlers translate these errors to HTTP status codes.

var (
	ErrIDRequired = errors.New("id is required")
	ErrNotFound   = errors.New("resource not found")
	ErrNotOwner   = errors.New("caller does not own this resource")
	ErrValidation = errors.New("invalid input")
)

// validate is the shared validator instance for service input structs.
var validate = validator.New()

func validateStruct(s any) error {
	if err := validate.Struct(s); err != nil {
		return errors.Join(ErrValidation, err)
	}
	return nil
}
