package specification

import (
	"strings"

	"gorm.io/gorm"
)

type ByRole struct {
	Role string
}

func (s ByRole) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("role = ?", s.Role)
}

type ByCulturalAffiliation struct {
	Affiliation string
}

func (s ByCulturalAffiliation) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("cultural_affiliation = ?", s.Affiliation)
}

// SearchUsers matches the term against full name, email and cultural
// affiliation, case-insensitively.
type SearchUsers struct {
	Term string
}

func (s SearchUsers) Apply(db *gorm.DB) *gorm.DB {
	like := "%" + strings.ToLower(s.Term) + "%"
	return db.Where(
		"LOWER(full_name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(cultural_affiliation) LIKE ?",
		like, like, like,
	)
}
