package department

import (
	"strings"
)

// Department is the canonical identifier of a physical production unit.
// Attendance rows and delivery groups carry free-text labels; everything
// downstream of the normalizer works only with this enum.
type Department string

const (
	Polizol    Department = "polizol"
	Ruberoid   Department = "ruberoid"
	Okisleniya Department = "okisleniya"
	Pergamin   Department = "pergamin"
	Bikrost    Department = "bikrost"
)

// All lists every tracked department in a stable order.
func All() []Department {
	return []Department{Polizol, Ruberoid, Okisleniya, Pergamin, Bikrost}
}

func (d Department) String() string {
	return string(d)
}

// IsValid reports whether d is one of the tracked departments.
func (d Department) IsValid() bool {
	switch d {
	case Polizol, Ruberoid, Okisleniya, Pergamin, Bikrost:
		return true
	}
	return false
}

// spellings collapses every label variant seen in attendance sheets to its
// canonical department. Keys must be lower-case single tokens.
var spellings = map[string]Department{
	"polizol":  Polizol,
	"palizol":  Polizol,
	"polisol":  Polizol,
	"polizol'": Polizol,

	"ruberoid": Ruberoid,
	"rubiroid": Ruberoid,
	"ruberoit": Ruberoid,
	"ruboroid": Ruberoid,

	"okisleniya": Okisleniya,
	"okislenie":  Okisleniya,
	"akisleniya": Okisleniya,
	"okislenia":  Okisleniya,

	"pergamin":  Pergamin,
	"pergament": Pergamin,

	"bikrost": Bikrost,
	"bicrost": Bikrost,
}

// managerTokens mark a managerial variant of a department label, either as a
// prefix or a suffix ("master polizol", "ruberoid brigadir").
var managerTokens = map[string]bool{
	"master":   true,
	"brigadir": true,
}

// Normalize maps a raw department label to its canonical department and a
// manager flag. It lower-cases, trims and collapses whitespace, strips a
// leading or trailing manager token, and resolves known spelling variants.
// ok is false when the label does not belong to any tracked department.
//
// Normalize is pure: allocation correctness depends on two differently
// spelled labels of the same unit always grouping together.
func Normalize(raw string) (dept Department, isManager bool, ok bool) {
	fields := strings.Fields(strings.ToLower(raw))
	if len(fields) == 0 {
		return "", false, false
	}

	if managerTokens[fields[0]] {
		isManager = true
		fields = fields[1:]
	} else if managerTokens[fields[len(fields)-1]] {
		isManager = true
		fields = fields[:len(fields)-1]
	}
	if len(fields) == 0 {
		return "", false, false
	}

	dept, ok = spellings[strings.Join(fields, " ")]
	if !ok {
		return "", false, false
	}
	return dept, isManager, true
}
