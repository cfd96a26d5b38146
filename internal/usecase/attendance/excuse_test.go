package attendance

import (
	"context"
	"testing"

	"github.com/BruksfildServices01/attendance-tracker/internal/audit"
	"github.com/BruksfildServices01/attendance-tracker/internal/httperr"
	"github.com/BruksfildServices01/attendance-tracker/internal/models"
	ucmembership "github.com/BruksfildServices01/attendance-tracker/internal/usecase/membership"
	ucpolicy "github.com/BruksfildServices01/attendance-tracker/internal/usecase/policy"
)

func newExcuseUCs(s *stubStore) (*FileExcuse, *ReviewExcuse) {
	auth := ucmembership.NewAuthorizer(s)
	policies := ucpolicy.NewResolver(s, nil)
	return NewFileExcuse(s, policies, auth), NewReviewExcuse(s, policies, auth)
}

func TestExcuseFlowRejectionRevertsToAbsent(t *testing.T) {
	s := newFixture()
	file, review := newExcuseUCs(s)

	rec, err := file.Execute(context.Background(), FileExcuseInput{
		RecordID: 7, Reason: "sick", Description: "flu", Actor: 10,
	})
	if err != nil {
		t.Fatalf("file excuse failed: %v", err)
	}
	if rec.Status != "excused" || rec.ExcuseApprovalStatus != "pending" {
		t.Fatalf("after filing: status=%q approval=%q", rec.Status, rec.ExcuseApprovalStatus)
	}

	// membro comum não revisa a própria justificativa
	_, err = review.Execute(context.Background(), ReviewExcuseInput{
		RecordID: 7, Approved: false, Reviewer: 10,
	})
	if !httperr.IsBusiness(err, "insufficient_permission") {
		t.Fatalf("member must not review, got %v", err)
	}

	rec, err = review.Execute(context.Background(), ReviewExcuseInput{
		RecordID: 7, Approved: false, Note: "no documentation", Reviewer: 99,
	})
	if err != nil {
		t.Fatalf("review failed: %v", err)
	}
	if rec.Status != "absent" || rec.ExcuseApprovalStatus != "rejected" {
		t.Fatalf("after rejection: status=%q approval=%q", rec.Status, rec.ExcuseApprovalStatus)
	}

	last := s.audits[len(s.audits)-1]
	if last.Action != audit.ActionExcuseRejected || last.Severity != audit.SeverityHigh {
		t.Errorf("rejection audit: action=%q severity=%q", last.Action, last.Severity)
	}
}

func TestExcusesDisabledByPolicy(t *testing.T) {
	s := newFixture()

	// grupo desliga justificativas; evento herda
	no := false
	s.settings[settingsKey("group", 2)] = &models.Settings{
		EntityType: models.EntityGroup, EntityID: 2,
		AllowExcuses: &no,
	}

	file, _ := newExcuseUCs(s)

	_, err := file.Execute(context.Background(), FileExcuseInput{
		RecordID: 7, Reason: "sick", Actor: 10,
	})
	if !httperr.IsBusiness(err, "excuses_not_allowed") {
		t.Fatalf("expected excuses_not_allowed, got %v", err)
	}
}
