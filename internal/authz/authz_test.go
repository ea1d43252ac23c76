package authz_test

import (
	"testing"

	"portfolio/internal/authz"
	"portfolio/internal/domain/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestDecide(t *testing.T) {
	admin := &models.Session{UserID: uuid.New(), Role: models.RoleAdmin}
	user := &models.Session{UserID: uuid.New(), Role: models.RoleUser}

	tests := []struct {
		name     string
		resource authz.Resource
		op       authz.Operation
		session  *models.Session
		allowed  bool
	}{
		{"anonymous lists blog", authz.Blog, authz.List, nil, true},
		{"anonymous reads project", authz.Projects, authz.Get, nil, true},
		{"anonymous creates blog", authz.Blog, authz.Create, nil, false},
		{"user creates blog", authz.Blog, authz.Create, user, false},
		{"admin creates blog", authz.Blog, authz.Create, admin, true},
		{"admin toggles blog", authz.Blog, authz.Toggle, admin, true},
		{"anonymous sends contact", authz.Contact, authz.Create, nil, true},
		{"anonymous lists contacts", authz.Contact, authz.List, nil, false},
		{"user reads contact", authz.Contact, authz.Get, user, false},
		{"admin marks contact read", authz.Contact, authz.Toggle, admin, true},
		{"anonymous upload", authz.Upload, authz.Create, nil, false},
		{"user upload", authz.Upload, authz.Create, user, false},
		{"admin upload", authz.Upload, authz.Create, admin, true},
		{"anonymous session lookup", authz.Users, authz.Get, nil, false},
		{"user session lookup", authz.Users, authz.Get, user, true},
		{"unknown pair denies admin", authz.Upload, authz.Delete, admin, false},
		{"gallery has no toggle", authz.Gallery, authz.Toggle, admin, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := authz.Decide(tt.resource, tt.op, tt.session)
			if tt.allowed {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, models.ErrUnauthorized)
		})
	}
}

func TestRules_OneEntryPerPair(t *testing.T) {
	seen := make(map[string]bool)
	for _, r := range authz.Rules() {
		k := string(r.Resource) + "/" + string(r.Operation)
		assert.False(t, seen[k], "duplicate rule %s", k)
		seen[k] = true
		assert.NotEqual(t, authz.Deny, r.Access, k)
		assert.Equal(t, r.Access, authz.Required(r.Resource, r.Operation))
	}
}

func TestRequired_WritesAreAdmin(t *testing.T) {
	for _, res := range []authz.Resource{authz.Blog, authz.Projects, authz.Gallery} {
		for _, op := range []authz.Operation{authz.Create, authz.Update, authz.Delete} {
			assert.Equal(t, authz.Admin, authz.Required(res, op), "%s %s", res, op)
		}
	}
}
