package membership

import (
	"context"
	"testing"

	"github.com/BruksfildServices01/attendance-tracker/internal/audit"
	"github.com/BruksfildServices01/attendance-tracker/internal/models"
)

func TestScopeOfHierarchy(t *testing.T) {
	store := newStubStore()
	ctx := context.Background()

	cases := []struct {
		entityType string
		entityID   uint
		want       audit.Scope
	}{
		{models.EntityOrganization, 1, audit.Scope{OrganizationID: 1}},
		{models.EntityGroup, 2, audit.Scope{OrganizationID: 1, GroupID: 2}},
		{models.EntityEvent, 3, audit.Scope{OrganizationID: 1, GroupID: 2, EventID: 3}},
	}

	for _, tc := range cases {
		got, err := ScopeOf(ctx, store, tc.entityType, tc.entityID)
		if err != nil {
			t.Fatalf("%s/%d: %v", tc.entityType, tc.entityID, err)
		}
		if got != tc.want {
			t.Errorf("%s/%d: got %+v, want %+v", tc.entityType, tc.entityID, got, tc.want)
		}
	}
}
