package models

import (
	"strings"

	"gorm.io/gorm"
)

// BudgetCategory groups expense templates and line items for display.
// The color is a display hex value consumed by the presentation layer.
type BudgetCategory struct {
	DefaultModel
	Name      string `json:"name" gorm:"uniqueIndex"`
	Color     string `json:"color" example:"#38bdf8"`
	SortOrder int    `json:"sortOrder"`
}

func (c *BudgetCategory) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Color = strings.TrimSpace(c.Color)

	return nil
}
