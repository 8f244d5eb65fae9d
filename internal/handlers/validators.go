package handlers

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/SscSPs/news_management_app/internal/core/domain"
)

var registerValidatorsOnce sync.Once

// registerValidators adds the custom binding tags used by the request DTOs.
func registerValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("tone", func(fl validator.FieldLevel) bool {
			raw := fl.Field().String()
			return domain.NormalizeTone(raw) == domain.Tone(raw)
		})
	})
}
