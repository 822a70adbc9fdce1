package domain_test

import (
	"testing"

	"github.com/peoplenest/payroll-backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestPrefixForDepartment(t *testing.T) {
	assert.Equal(t, "HR", domain.PrefixForDepartment("HR"))
	assert.Equal(t, "FN", domain.PrefixForDepartment("Finance"))
	assert.Equal(t, "EN", domain.PrefixForDepartment("Engineering"))
	assert.Equal(t, "SL", domain.PrefixForDepartment("Sales"))
	assert.Equal(t, "MK", domain.PrefixForDepartment("Marketing"))

	// Unknown departments share the generic prefix; lookup is case-sensitive
	assert.Equal(t, "UN", domain.PrefixForDepartment("Operations"))
	assert.Equal(t, "UN", domain.PrefixForDepartment("engineering"))
	assert.Equal(t, "UN", domain.PrefixForDepartment(""))
}

func TestFormatEmployeeCode(t *testing.T) {
	assert.Equal(t, "EN0001", domain.FormatEmployeeCode("EN", 1))
	assert.Equal(t, "HR0042", domain.FormatEmployeeCode("HR", 42))
	assert.Equal(t, "UN0999", domain.FormatEmployeeCode("UN", 999))
	// Counters past four digits widen instead of wrapping
	assert.Equal(t, "FN10000", domain.FormatEmployeeCode("FN", 10000))
}
