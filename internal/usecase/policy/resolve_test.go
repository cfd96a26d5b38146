package policy

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/BruksfildServices01/attendance-tracker/internal/httperr"
	"github.com/BruksfildServices01/attendance-tracker/internal/models"
)

type stubStore struct {
	events   map[uint]*models.Event
	settings map[string]*models.Settings
}

func key(entityType string, entityID uint) string {
	return fmt.Sprintf("%s:%d", entityType, entityID)
}

func (s *stubStore) GetEvent(_ context.Context, id uint) (*models.Event, error) {
	ev, ok := s.events[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return ev, nil
}

func (s *stubStore) GetSettings(_ context.Context, entityType string, entityID uint) (*models.Settings, error) {
	return s.settings[key(entityType, entityID)], nil
}

func (s *stubStore) PutSettings(_ context.Context, set *models.Settings) error {
	s.settings[key(set.EntityType, set.EntityID)] = set
	return nil
}

func TestResolveMissingEventIsNotResolvable(t *testing.T) {
	s := &stubStore{events: map[uint]*models.Event{}, settings: map[string]*models.Settings{}}
	uc := NewResolver(s, nil)

	_, err := uc.Execute(context.Background(), 42)
	if !httperr.IsBusiness(err, "policy_not_resolvable") {
		t.Fatalf("expected policy_not_resolvable, got %v", err)
	}
}

func TestResolveWalksHierarchy(t *testing.T) {
	threshold := 25
	s := &stubStore{
		events: map[uint]*models.Event{
			3: {ID: 3, OrganizationID: 1, GroupID: 2, IsActive: true},
		},
		settings: map[string]*models.Settings{
			key(models.EntityOrganization, 1): {
				EntityType: models.EntityOrganization, EntityID: 1,
				LateThresholdMinutes: &threshold,
			},
		},
	}
	uc := NewResolver(s, nil)

	eff, err := uc.Execute(context.Background(), 3)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if eff.LateThresholdMinutes != 25 {
		t.Fatalf("org threshold should reach the event, got %d", eff.LateThresholdMinutes)
	}
	if !eff.AllowLateCheckIn {
		t.Fatal("unset fields must keep system defaults")
	}
}
