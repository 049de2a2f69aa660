package postgres

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"markguard/internal/domain"
)

func TestBuildInteractionWhere_FollowUpMatchesOnUTCDate(t *testing.T) {
	day := time.Date(2026, 3, 15, 23, 30, 0, 0, time.UTC)
	clause, args := buildInteractionWhere(&domain.InteractionQuery{FollowUpOn: &day})

	// The comparison must not depend on the session timezone: both the
	// column and the parameter reduce to a UTC calendar date.
	assert.Equal(t, "WHERE (i.follow_up_at AT TIME ZONE 'UTC')::date = ($1::timestamptz AT TIME ZONE 'UTC')::date", clause)
	assert.Equal(t, []interface{}{day}, args)
}

func TestBuildCaseWhere_NumbersPlaceholdersSequentially(t *testing.T) {
	assigned := uuid.New()
	clause, args := buildCaseWhere(&domain.CaseQuery{
		AssignedTo: &assigned,
		Statuses:   []domain.CaseStatus{domain.CaseStatusApproved, domain.CaseStatusRejected},
	})

	assert.Equal(t, "WHERE c.assigned_to = $1 AND c.status IN ($2, $3)", clause)
	assert.Len(t, args, 3)
}
