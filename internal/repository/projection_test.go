package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func specNames(specs []fieldSpec) []string {
	names := make([]string, 0, len(specs))
	for _, spec := range specs {
		names = append(names, spec.name)
	}
	return names
}

func TestAllowedSelection_CanonicalOrder(t *testing.T) {
	// Request order must not matter.
	specs := allowedSelection([]string{"email", "fullName"})
	assert.Equal(t, []string{"email", "fullName"}, specNames(specs))

	specs = allowedSelection([]string{"fullName", "email"})
	assert.Equal(t, []string{"email", "fullName"}, specNames(specs))
}

func TestAllowedSelection_DropsUnknownNames(t *testing.T) {
	specs := allowedSelection([]string{"fullName", "passwordHash", "not_a_real_field"})
	assert.Equal(t, []string{"fullName"}, specNames(specs))
}

func TestAllowedSelection_PasswordHashNeverProjectable(t *testing.T) {
	for _, name := range []string{"password", "password_hash", "passwordHash"} {
		assert.Empty(t, allowedSelection([]string{name}))
	}
}

func TestAllowedSelection_Duplicates(t *testing.T) {
	specs := allowedSelection([]string{"email", "email", "email"})
	assert.Equal(t, []string{"email"}, specNames(specs))
}

func TestResolveSelection_FallbackToFullRecord(t *testing.T) {
	full := specNames(projectableFields)

	// No fields and all-unknown fields resolve identically.
	assert.Equal(t, full, specNames(resolveSelection(nil)))
	assert.Equal(t, full, specNames(resolveSelection([]string{"not_a_real_field"})))
}

func TestResolveSelection_Subset(t *testing.T) {
	specs := resolveSelection([]string{"fullName", "email"})
	assert.Equal(t, []string{"email", "fullName"}, specNames(specs))
}
