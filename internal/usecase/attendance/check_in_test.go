package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/BruksfildServices01/attendance-tracker/internal/audit"
	memberdomain "github.com/BruksfildServices01/attendance-tracker/internal/domain/membership"
	"github.com/BruksfildServices01/attendance-tracker/internal/httperr"
	"github.com/BruksfildServices01/attendance-tracker/internal/models"
	ucmembership "github.com/BruksfildServices01/attendance-tracker/internal/usecase/membership"
	ucpolicy "github.com/BruksfildServices01/attendance-tracker/internal/usecase/policy"
)

var (
	testStart = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	testEnd   = time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
)

// fixture reproduz a hierarquia mínima: org 1 → group 2 → event 3,
// usuário 10 membro do evento, usuário 99 admin da organização.
func newFixture() *stubStore {
	s := newStubStore()

	s.groups[2] = &models.Group{ID: 2, OrganizationID: 1, IsActive: true}

	end := testEnd
	s.events[3] = &models.Event{
		ID:             3,
		OrganizationID: 1,
		GroupID:        2,
		StartTime:      testStart,
		EndTime:        &end,
		Timezone:       "GMT+00:00",
		IsActive:       true,
	}

	s.memberships[membershipKey(10, models.EntityEvent, 3)] = &models.Membership{
		ID: 1, UserID: 10, EntityType: models.EntityEvent, EntityID: 3,
		Role: memberdomain.RoleMember, Status: memberdomain.StatusActive,
	}
	s.memberships[membershipKey(99, models.EntityOrganization, 1)] = &models.Membership{
		ID: 2, UserID: 99, EntityType: models.EntityOrganization, EntityID: 1,
		Role: memberdomain.RoleAdmin, Status: memberdomain.StatusActive,
	}

	end2 := testEnd
	s.records[7] = &models.Record{
		ID: 7, UserID: 10, EventID: 3, GroupID: 2, OrganizationID: 1,
		Status:         "pending",
		PlannedMinutes: 60,
		EventStartTime: testStart,
		EventEndTime:   &end2,
		Version:        1,
		IsActive:       true,
	}

	return s
}

func newCheckInUC(s *stubStore) *RecordCheckIn {
	auth := ucmembership.NewAuthorizer(s)
	policies := ucpolicy.NewResolver(s, nil)
	return NewRecordCheckIn(s, policies, auth)
}

func TestCheckInSuccessWritesAudit(t *testing.T) {
	s := newFixture()
	uc := newCheckInUC(s)

	rec, err := uc.Execute(context.Background(), CheckInInput{
		RecordID:  7,
		Timestamp: testStart.Add(10 * time.Minute),
		Method:    "manual",
		Actor:     10,
	})
	if err != nil {
		t.Fatalf("check-in failed: %v", err)
	}

	if rec.Status != "late" || rec.LateMinutes != 10 {
		t.Errorf("record: status=%q late=%d", rec.Status, rec.LateMinutes)
	}

	if len(s.audits) != 1 {
		t.Fatalf("expected one audit entry, got %d", len(s.audits))
	}
	entry := s.audits[0]
	if entry.Action != audit.ActionCheckIn || entry.Severity != audit.SeverityLow {
		t.Errorf("audit entry: %+v", entry)
	}
	if entry.UserID == nil || *entry.UserID != 10 {
		t.Error("audit actor not attributed")
	}
	if entry.OrganizationID != 1 || entry.GroupID != 2 || entry.EventID != 3 {
		t.Errorf("audit scope not stamped: org=%d group=%d event=%d",
			entry.OrganizationID, entry.GroupID, entry.EventID)
	}
}

func TestCheckInWindowClosedLeavesRecordUntouched(t *testing.T) {
	s := newFixture()

	// organização proíbe check-in tardio; evento herda
	next := false
	s.settings[settingsKey(models.EntityOrganization, 1)] = &models.Settings{
		EntityType: models.EntityOrganization, EntityID: 1,
		AllowLateCheckIn: &next,
	}

	uc := newCheckInUC(s)

	_, err := uc.Execute(context.Background(), CheckInInput{
		RecordID:  7,
		Timestamp: testStart.Add(20 * time.Minute),
		Method:    "manual",
		Actor:     10,
	})
	if !httperr.IsBusiness(err, "check_in_window_closed") {
		t.Fatalf("expected check_in_window_closed, got %v", err)
	}

	stored := s.records[7]
	if stored.Status != "pending" || stored.CheckInAt != nil {
		t.Errorf("record mutated on failure: %+v", stored)
	}
	if len(s.audits) != 0 {
		t.Error("failed mutation must not write audit")
	}
}

func TestSelfCheckInGatedByEffectivePolicy(t *testing.T) {
	s := newFixture()
	uc := newCheckInUC(s)

	_, err := uc.Execute(context.Background(), CheckInInput{
		RecordID: 7, Timestamp: testStart, Method: "self", Actor: 10,
	})
	if !httperr.IsBusiness(err, "self_check_in_not_allowed") {
		t.Fatalf("default policy forbids self check-in, got %v", err)
	}

	// override no nível do evento, mascarando o default
	yes := true
	s.settings[settingsKey(models.EntityEvent, 3)] = &models.Settings{
		EntityType: models.EntityEvent, EntityID: 3,
		AllowSelfCheckIn: &yes,
	}

	rec, err := uc.Execute(context.Background(), CheckInInput{
		RecordID: 7, Timestamp: testStart, Method: "self", Actor: 10,
	})
	if err != nil {
		t.Fatalf("check-in failed: %v", err)
	}
	if rec.Status != "present" {
		t.Errorf("status: got %q", rec.Status)
	}
}

func TestCheckInByOrgAdminWithoutEventMembership(t *testing.T) {
	s := newFixture()
	uc := newCheckInUC(s)

	// admin da org (sem linha no grupo nem no evento) registra por outro
	_, err := uc.Execute(context.Background(), CheckInInput{
		RecordID: 7, Timestamp: testStart, Method: "admin", Actor: 99,
	})
	if err != nil {
		t.Fatalf("org admin should record check-ins on descendant events: %v", err)
	}
}

func TestCheckInByStrangerDenied(t *testing.T) {
	s := newFixture()
	uc := newCheckInUC(s)

	_, err := uc.Execute(context.Background(), CheckInInput{
		RecordID: 7, Timestamp: testStart, Method: "manual", Actor: 55,
	})
	if !httperr.IsBusiness(err, "no_membership") {
		t.Fatalf("expected no_membership, got %v", err)
	}
}

func TestCheckInRetriesVersionConflict(t *testing.T) {
	s := newFixture()
	s.conflictsLeft = 1
	uc := newCheckInUC(s)

	rec, err := uc.Execute(context.Background(), CheckInInput{
		RecordID: 7, Timestamp: testStart, Method: "manual", Actor: 10,
	})
	if err != nil {
		t.Fatalf("one conflict must be absorbed by the retry: %v", err)
	}
	if rec.Status != "present" {
		t.Errorf("status: got %q", rec.Status)
	}
}

func TestCheckInSurfacesPersistentConflict(t *testing.T) {
	s := newFixture()
	s.conflictsLeft = 10
	uc := newCheckInUC(s)

	_, err := uc.Execute(context.Background(), CheckInInput{
		RecordID: 7, Timestamp: testStart, Method: "manual", Actor: 10,
	})
	if !httperr.IsBusiness(err, "version_conflict") {
		t.Fatalf("expected version_conflict after retries, got %v", err)
	}
}
