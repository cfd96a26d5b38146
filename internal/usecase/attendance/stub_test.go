package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	domain "github.com/BruksfildServices01/attendance-tracker/internal/domain/record"
	"github.com/BruksfildServices01/attendance-tracker/internal/models"
)

// stubStore implementa os três Stores do domínio em memória, com a
// mesma semântica de versão otimista do repositório real: leituras
// devolvem cópias e o save confere a versão observada.
type stubStore struct {
	events      map[uint]*models.Event
	groups      map[uint]*models.Group
	settings    map[string]*models.Settings
	memberships map[string]*models.Membership
	records     map[uint]*models.Record

	audits []*models.AuditLog

	// conflictsLeft força ErrVersionConflict nos próximos saves
	conflictsLeft int
}

func newStubStore() *stubStore {
	return &stubStore{
		events:      map[uint]*models.Event{},
		groups:      map[uint]*models.Group{},
		settings:    map[string]*models.Settings{},
		memberships: map[string]*models.Membership{},
		records:     map[uint]*models.Record{},
	}
}

func settingsKey(entityType string, entityID uint) string {
	return fmt.Sprintf("%s:%d", entityType, entityID)
}

func membershipKey(userID uint, entityType string, entityID uint) string {
	return fmt.Sprintf("%d:%s:%d", userID, entityType, entityID)
}

// -------- policy.Store / record.Store --------

func (s *stubStore) GetEvent(_ context.Context, id uint) (*models.Event, error) {
	ev, ok := s.events[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	cp := *ev
	return &cp, nil
}

func (s *stubStore) GetSettings(_ context.Context, entityType string, entityID uint) (*models.Settings, error) {
	return s.settings[settingsKey(entityType, entityID)], nil
}

func (s *stubStore) PutSettings(_ context.Context, set *models.Settings) error {
	set.UpdatedAt = time.Now()
	s.settings[settingsKey(set.EntityType, set.EntityID)] = set
	return nil
}

// -------- membership.Store --------

func (s *stubStore) Find(_ context.Context, userID uint, entityType string, entityID uint) (*models.Membership, error) {
	m, ok := s.memberships[membershipKey(userID, entityType, entityID)]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (s *stubStore) GetMembership(_ context.Context, id uint) (*models.Membership, error) {
	for _, m := range s.memberships {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, errors.New("record not found")
}

func (s *stubStore) FindByInviteToken(_ context.Context, token string) (*models.Membership, error) {
	for _, m := range s.memberships {
		if m.InviteToken == token {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *stubStore) CreateMembership(_ context.Context, m *models.Membership) error {
	if m.ID == 0 {
		m.ID = uint(len(s.memberships) + 1)
	}
	cp := *m
	s.memberships[membershipKey(m.UserID, m.EntityType, m.EntityID)] = &cp
	return nil
}

func (s *stubStore) UpdateMembership(_ context.Context, m *models.Membership) error {
	cp := *m
	s.memberships[membershipKey(m.UserID, m.EntityType, m.EntityID)] = &cp
	return nil
}

func (s *stubStore) ParentOf(_ context.Context, entityType string, entityID uint) (string, uint, uint, error) {
	switch entityType {
	case models.EntityEvent:
		ev, ok := s.events[entityID]
		if !ok {
			return "", 0, 0, errors.New("record not found")
		}
		return models.EntityGroup, ev.GroupID, ev.OrganizationID, nil
	case models.EntityGroup:
		g, ok := s.groups[entityID]
		if !ok {
			return "", 0, 0, errors.New("record not found")
		}
		return models.EntityOrganization, g.OrganizationID, g.OrganizationID, nil
	default:
		return "", 0, entityID, nil
	}
}

// -------- record.Store --------

func (s *stubStore) CreateRecord(_ context.Context, rec *models.Record) error {
	if rec.ID == 0 {
		rec.ID = uint(len(s.records) + 1)
	}
	cp := *rec
	s.records[rec.ID] = &cp
	return nil
}

func (s *stubStore) GetRecord(_ context.Context, id uint) (*models.Record, error) {
	rec, ok := s.records[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	cp := *rec
	return &cp, nil
}

func (s *stubStore) GetRecordByUserEvent(_ context.Context, userID, eventID uint) (*models.Record, error) {
	for _, rec := range s.records {
		if rec.UserID == userID && rec.EventID == eventID {
			cp := *rec
			return &cp, nil
		}
	}
	return nil, errors.New("record not found")
}

func (s *stubStore) ListPendingRecords(_ context.Context, eventID uint, before time.Time) ([]models.Record, error) {
	var out []models.Record
	for _, rec := range s.records {
		if rec.EventID == eventID && rec.Status == "pending" && rec.EventStartTime.Before(before) {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (s *stubStore) SaveRecord(_ context.Context, rec *models.Record, entry *models.AuditLog) error {
	if s.conflictsLeft > 0 {
		s.conflictsLeft--
		return domain.ErrVersionConflict
	}

	stored, ok := s.records[rec.ID]
	if !ok || stored.Version != rec.Version {
		return domain.ErrVersionConflict
	}

	rec.Version++
	cp := *rec
	s.records[rec.ID] = &cp

	if entry != nil {
		s.audits = append(s.audits, entry)
	}
	return nil
}
