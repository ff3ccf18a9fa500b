package dto

import (
	"time"

	"github.com/quickdesk-io/quickdesk/internal/domain/category"
)

type CategoryDTO struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func ToCategoryDTO(c *category.Category) *CategoryDTO {
	return &CategoryDTO{
		ID:          c.ID(),
		Name:        c.Name(),
		Description: c.Description(),
		CreatedAt:   c.CreatedAt(),
	}
}
