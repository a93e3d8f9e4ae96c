package postgresql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// The personnel tables belong to the clock software and identify employees by
// a passport column. Guard every query touching them against drifting to a
// different column name.
func TestPersonnelQueriesUsePassportColumn(t *testing.T) {
	queries := map[string]string{
		"employee columns":     employeeColumns,
		"employee search":      employeeSearchQuery,
		"employee by passport": employeeByPassportQuery,
		"punch list":           punchListQuery,
		"group member list":    memberListQuery,
		"justification joins":  justificationJoins,
		"permission joins":     permissionJoins,
	}

	for name, q := range queries {
		assert.Contains(t, q, "e.passport", name)
		assert.NotContains(t, q, "emp_code", name)
	}
}
