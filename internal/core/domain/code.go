package domain

import "fmt"

// departmentPrefixes maps a department name to its employee-code prefix.
// Departments outside the map fall back to the generic prefix.
var departmentPrefixes = map[string]string{
	"HR":          "HR",
	"Finance":     "FN",
	"Engineering": "EN",
	"Sales":       "SL",
	"Marketing":   "MK",
}

// FallbackPrefix is used for departments without a dedicated prefix.
const FallbackPrefix = "UN"

// PrefixForDepartment returns the employee-code prefix for a department.
func PrefixForDepartment(department string) string {
	if p, ok := departmentPrefixes[department]; ok {
		return p
	}
	return FallbackPrefix
}

// FormatEmployeeCode renders a code as prefix + zero-padded 4-digit number,
// e.g. ("EN", 7) -> "EN0007".
func FormatEmployeeCode(prefix string, n int) string {
	return fmt.Sprintf("%s%04d", prefix, n)
}
