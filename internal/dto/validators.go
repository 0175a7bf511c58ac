package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/movdin/movdin-backend/internal/core/domain"
)

// RegisterCustomValidators installs the ledger's binding rules on gin's
// validator engine. Called once at startup before routes are served.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("currencycode", validCurrencyCode)
	}
}

// validCurrencyCode accepts only the closed set of supported currency codes.
func validCurrencyCode(fl validator.FieldLevel) bool {
	return domain.Currency(fl.Field().String()).IsValid()
}
