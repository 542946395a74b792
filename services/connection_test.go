package services

import (
	"copyadmin/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRequestAppendsPending(t *testing.T) {
	store := newWorkflowStore()

	request, err := CreateRequest(store, "t1", "z1", models.DirectionOutgoing)
	require.NoError(t, err)

	assert.Equal(t, models.ConnectionStatusPending, request.Status)
	assert.Equal(t, models.DirectionOutgoing, request.Direction)
	assert.Equal(t, "t1", request.TeacherID)
	assert.Equal(t, "Rajesh Sharma", request.TeacherName)
	assert.Equal(t, "z1", request.StudentID)
	assert.False(t, request.CreatedAt.IsZero())
	assert.Nil(t, request.RespondedAt)

	require.Len(t, store.Connections(), 1)
}

func TestCreateRequestRejectsDuplicatePair(t *testing.T) {
	store := newWorkflowStore()

	_, err := CreateRequest(store, "t1", "z1", models.DirectionOutgoing)
	require.NoError(t, err)

	_, err = CreateRequest(store, "t1", "z1", models.DirectionOutgoing)
	assert.ErrorIs(t, err, ErrDuplicateRequest)
	assert.Len(t, store.Connections(), 1)
}

func TestCreateRequestUnknownIDs(t *testing.T) {
	store := newWorkflowStore()

	_, err := CreateRequest(store, "missing", "z1", models.DirectionOutgoing)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = CreateRequest(store, "t1", "missing", models.DirectionOutgoing)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAcceptLinksStudentToTeacher(t *testing.T) {
	store := newWorkflowStore()
	created, err := CreateRequest(store, "t1", "z1", models.DirectionOutgoing)
	require.NoError(t, err)

	accepted, err := Accept(store, created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ConnectionStatusAccepted, accepted.Status)
	require.NotNil(t, accepted.RespondedAt)

	var linked models.Student
	for _, s := range store.Students() {
		if s.ID == "z1" {
			linked = s
		}
	}
	assert.Equal(t, "t1", linked.TeacherID)
	assert.Equal(t, "Rajesh Sharma", linked.TeacherName)

	// Rollups funnel through the accept path.
	assert.Equal(t, 1, store.Teachers()[0].TotalStudents)

	// Re-accepting is a no-op that keeps RespondedAt untouched.
	again, err := Accept(store, created.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	require.NotNil(t, again.RespondedAt)
	assert.True(t, again.RespondedAt.Equal(*accepted.RespondedAt))
}

func TestAcceptMissingRequest(t *testing.T) {
	store := newWorkflowStore()

	_, err := Accept(store, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRejectLeavesStudentZombie(t *testing.T) {
	store := newWorkflowStore()
	created, err := CreateRequest(store, "t1", "z1", models.DirectionIncoming)
	require.NoError(t, err)

	rejected, err := Reject(store, created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ConnectionStatusRejected, rejected.Status)
	require.NotNil(t, rejected.RespondedAt)

	assert.Len(t, ListZombieStudents(store), 2, "no student mutation on reject")

	_, err = Reject(store, created.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestCancelRemovesRequestEntirely(t *testing.T) {
	store := newWorkflowStore()
	created, err := CreateRequest(store, "t1", "z1", models.DirectionOutgoing)
	require.NoError(t, err)

	require.NoError(t, Cancel(store, created.ID))
	assert.Empty(t, store.Connections())

	assert.ErrorIs(t, Cancel(store, created.ID), ErrNotFound)
}

func TestZombiePoolShrinksOnAccept(t *testing.T) {
	store := newWorkflowStore()

	zombies := ListZombieStudents(store)
	require.Len(t, zombies, 2)

	created, err := CreateRequest(store, "t1", "z1", models.DirectionOutgoing)
	require.NoError(t, err)
	_, err = Accept(store, created.ID)
	require.NoError(t, err)

	zombies = ListZombieStudents(store)
	require.Len(t, zombies, 1)
	assert.Equal(t, "z2", zombies[0].ID)
}

// Full workflow: request → accept shrinks the pool, request → cancel
// leaves the remaining student unaffiliated.
func TestConnectionWorkflowEndToEnd(t *testing.T) {
	store := newWorkflowStore()

	r1, err := CreateRequest(store, "t1", "z1", models.DirectionOutgoing)
	require.NoError(t, err)
	assert.Equal(t, models.ConnectionStatusPending, r1.Status)

	_, err = Accept(store, r1.ID)
	require.NoError(t, err)

	zombies := ListZombieStudents(store)
	require.Len(t, zombies, 1)
	assert.Equal(t, "z2", zombies[0].ID)

	r2, err := CreateRequest(store, "t1", "z2", models.DirectionOutgoing)
	require.NoError(t, err)

	require.NoError(t, Cancel(store, r2.ID))
	for _, conn := range store.Connections() {
		assert.NotEqual(t, r2.ID, conn.ID, "cancelled request still present")
	}

	zombies = ListZombieStudents(store)
	require.Len(t, zombies, 1)
	assert.Equal(t, "z2", zombies[0].ID, "z2 stays zombie after cancel")
}
