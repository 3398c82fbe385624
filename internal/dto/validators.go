package dto

import (
	"github.com/agrisage/farm_management_app/internal/core/domain"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidators wires domain enum validators into gin's binding
// engine. Roles and features contain spaces ("Field Manager"), so oneof
// tags cannot express them.
func RegisterCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterValidation("farmrole", func(fl validator.FieldLevel) bool {
		return domain.IsValidRole(domain.Role(fl.Field().String()))
	})
	v.RegisterValidation("farmfeature", func(fl validator.FieldLevel) bool {
		return domain.IsValidFeature(domain.Feature(fl.Field().String()))
	})
	v.RegisterValidation("accounttype", func(fl validator.FieldLevel) bool {
		return domain.IsValidAccountType(domain.AccountType(fl.Field().String()))
	})
}
