package domain

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Grade is a rarity tier used for filtering and display
type Grade string

const (
	GradeCommon    Grade = "Common"
	GradeUncommon  Grade = "Uncommon"
	GradeRare      Grade = "Rare"
	GradeEpic      Grade = "Epic"
	GradeLegendary Grade = "Legendary"
)

// Grades lists every grade from lowest to highest tier
var Grades = []Grade{GradeCommon, GradeUncommon, GradeRare, GradeEpic, GradeLegendary}

// Valid reports whether g is one of the known grades
func (g Grade) Valid() bool {
	for _, known := range Grades {
		if g == known {
			return true
		}
	}
	return false
}

func (g Grade) String() string {
	return string(g)
}

// ParseGrade resolves user input such as "epic" or " LEGENDARY " to a Grade.
func ParseGrade(s string) (Grade, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", fmt.Errorf("%w: empty grade", ErrInvalidGrade)
	}

	// Casers keep state, so one per call
	g := Grade(cases.Title(language.English).String(strings.ToLower(trimmed)))
	if !g.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidGrade, s)
	}
	return g, nil
}
