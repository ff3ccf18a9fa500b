package category

import (
	"fmt"
	"strings"
	"time"
)

const (
	maxNameLength        = 100
	maxDescriptionLength = 500
)

// Category groups tickets. Names are unique case-insensitively.
type Category struct {
	id          uint
	name        string
	description string
	createdAt   time.Time
}

func NewCategory(name, description string) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > maxNameLength {
		return nil, fmt.Errorf("name cannot exceed %d characters", maxNameLength)
	}
	if len(description) > maxDescriptionLength {
		return nil, fmt.Errorf("description cannot exceed %d characters", maxDescriptionLength)
	}

	return &Category{
		name:        name,
		description: strings.TrimSpace(description),
		createdAt:   time.Now().UTC(),
	}, nil
}

func ReconstructCategory(id uint, name, description string, createdAt time.Time) (*Category, error) {
	if id == 0 {
		return nil, fmt.Errorf("category ID cannot be zero")
	}
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}

	return &Category{
		id:          id,
		name:        name,
		description: description,
		createdAt:   createdAt,
	}, nil
}

func (c *Category) ID() uint {
	return c.id
}

func (c *Category) Name() string {
	return c.name
}

func (c *Category) Description() string {
	return c.description
}

func (c *Category) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Category) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("category ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("category ID cannot be zero")
	}
	c.id = id
	return nil
}

func (c *Category) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("name is required")
	}
	if len(name) > maxNameLength {
		return fmt.Errorf("name cannot exceed %d characters", maxNameLength)
	}
	c.name = name
	return nil
}

func (c *Category) UpdateDescription(description string) error {
	if len(description) > maxDescriptionLength {
		return fmt.Errorf("description cannot exceed %d characters", maxDescriptionLength)
	}
	c.description = strings.TrimSpace(description)
	return nil
}
