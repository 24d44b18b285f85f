package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/logitrack-api/internal/domain"
)

func TestCanEdit(t *testing.T) {
	// manager, admin y owner editan; user solo lee
	assert.True(t, domain.CanEdit(domain.RoleManager))
	assert.True(t, domain.CanEdit(domain.RoleAdmin))
	assert.True(t, domain.CanEdit(domain.RoleOwner))
	assert.False(t, domain.CanEdit(domain.RoleUser))
	assert.False(t, domain.CanEdit(""))
	assert.False(t, domain.CanEdit("superuser"))
}

func TestIsOwnerTier(t *testing.T) {
	assert.True(t, domain.IsOwnerTier(domain.RoleAdmin))
	assert.True(t, domain.IsOwnerTier(domain.RoleOwner))
	assert.False(t, domain.IsOwnerTier(domain.RoleManager))
	assert.False(t, domain.IsOwnerTier(domain.RoleUser))
}

func TestIsValidRole(t *testing.T) {
	for _, r := range []string{domain.RoleOwner, domain.RoleAdmin, domain.RoleManager, domain.RoleUser} {
		assert.True(t, domain.IsValidRole(r), r)
	}
	assert.False(t, domain.IsValidRole("root"))
	assert.False(t, domain.IsValidRole(""))
}
