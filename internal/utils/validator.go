package utils

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"planner-go/internal/models"
)

// RegisterValidations 在gin的绑定引擎上注册自定义验证规则
func RegisterValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("notecategory", validateNoteCategory)
}

// validateNoteCategory 验证笔记类别
func validateNoteCategory(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case models.NoteCategoryMain, models.NoteCategoryMonth, models.NoteCategoryWeek:
		return true
	default:
		return false
	}
}
