package specification

import "gorm.io/gorm"

// Specification narrows a query. Implementations compose through variadic
// repository arguments.
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}
