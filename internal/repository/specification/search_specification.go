package specification

import (
	"strings"

	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// DocumentSearchQuery matches the query as a case-insensitive substring of
// filename OR content. Both sides are folded by the database's LOWER() so
// they always fold the same way; a verbatim substring matches on any store.
type DocumentSearchQuery struct {
	Query string
}

// Pattern is the escaped LIKE pattern, case left as typed.
func (s DocumentSearchQuery) Pattern() string {
	return "%" + likeEscaper.Replace(s.Query) + "%"
}

func (s DocumentSearchQuery) Apply(db *gorm.DB) *gorm.DB {
	pattern := s.Pattern()
	return db.Where(
		`(LOWER(filename) LIKE LOWER(?) ESCAPE '\' OR LOWER(content) LIKE LOWER(?) ESCAPE '\')`,
		pattern, pattern,
	)
}
