package request

import (
	"strings"

	"roads_authority/internal/domain/entities"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the custom binding tags used by the request DTOs to
// gin's validator. It is safe to call more than once.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return registerOn(v)
}

func registerOn(v *validator.Validate) error {
	return v.RegisterValidation("plate_text", func(fl validator.FieldLevel) bool {
		return entities.ValidPlateText(strings.TrimSpace(fl.Field().String()))
	})
}
