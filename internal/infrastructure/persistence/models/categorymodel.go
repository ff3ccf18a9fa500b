package models

import "github.com/quickdesk-io/quickdesk/internal/shared/constants"

type CategoryModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"uniqueIndex;size:100;not null"`
	Description string `gorm:"size:500"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
}

func (CategoryModel) TableName() string {
	return constants.TableCategories
}
