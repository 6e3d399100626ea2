package services

import (
	"errors"
	"fmt"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"gorm.io/gorm"
)

// lookupError maps gorm's not found error onto models.ErrNotFound
func lookupError(entity string, id uint, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s %d: %w", entity, id, models.ErrNotFound)
	}
	return fmt.Errorf("failed to load %s %d: %w", entity, id, err)
}

// requireRow fails with a validation error when no row of model has the given id
func requireRow(tx *gorm.DB, model any, field string, id uint) error {
	var count int64
	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check %s: %w", field, err)
	}
	if count == 0 {
		return models.NewValidationError(fmt.Sprintf("%s %d does not exist", field, id))
	}
	return nil
}
