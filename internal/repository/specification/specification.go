package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Specification is a composable query constraint. Repositories apply each
// one to the base query before executing it.
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}

// ByID matches a row by primary key.
type ByID struct {
	ID uuid.UUID
}

func (s ByID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id = ?", s.ID)
}

// OrderBy sorts results by a column, ascending unless Desc is set.
type OrderBy struct {
	Field string
	Desc  bool
}

func (s OrderBy) Apply(db *gorm.DB) *gorm.DB {
	direction := "ASC"
	if s.Desc {
		direction = "DESC"
	}
	return db.Order(s.Field + " " + direction)
}

// Limit caps the number of returned rows.
type Limit struct {
	Count int
}

func (s Limit) Apply(db *gorm.DB) *gorm.DB {
	return db.Limit(s.Count)
}
