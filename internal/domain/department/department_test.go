package department

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		raw         string
		wantDept    Department
		wantManager bool
		wantOK      bool
	}{
		{"polizol", Polizol, false, true},
		{"Polizol", Polizol, false, true},
		{"  POLIZOL  ", Polizol, false, true},
		{"palizol", Polizol, false, true},
		{"ruberoid", Ruberoid, false, true},
		{"rubiroid", Ruberoid, false, true},
		{"ruberoit", Ruberoid, false, true},
		{"okisleniya", Okisleniya, false, true},
		{"okislenie", Okisleniya, false, true},
		{"Akisleniya", Okisleniya, false, true},
		{"pergament", Pergamin, false, true},
		{"bikrost", Bikrost, false, true},

		// managerial variants, prefix and suffix
		{"master polizol", Polizol, true, true},
		{"polizol master", Polizol, true, true},
		{"Ruberoid Brigadir", Ruberoid, true, true},
		{"brigadir rubiroid", Ruberoid, true, true},

		// untracked or garbage labels
		{"", "", false, false},
		{"   ", "", false, false},
		{"sklad", "", false, false},
		{"master", "", false, false},
		{"master master", "", false, false},
	}

	for _, c := range cases {
		dept, isManager, ok := Normalize(c.raw)
		assert.Equal(t, c.wantOK, ok, "ok for %q", c.raw)
		assert.Equal(t, c.wantDept, dept, "dept for %q", c.raw)
		assert.Equal(t, c.wantManager, isManager, "manager for %q", c.raw)
	}
}

func TestNormalizeIsDeterministic(t *testing.T) {
	for i := 0; i < 100; i++ {
		dept, isManager, ok := Normalize("Master Rubiroid")
		assert.True(t, ok)
		assert.Equal(t, Ruberoid, dept)
		assert.True(t, isManager)
	}
}

func TestIsValid(t *testing.T) {
	for _, d := range All() {
		assert.True(t, d.IsValid())
	}
	assert.False(t, Department("sklad").IsValid())
}
