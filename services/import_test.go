package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportStudentsPartialBatch(t *testing.T) {
	store := newWorkflowStore()

	rows := []StudentImportRow{
		{Name: "Karan Mehta", Email: "karan@copytrade.in", InitialCapital: 100000, RiskPercentage: 2},
		{Name: "Bad Row", Email: "not-an-email", InitialCapital: 50000},
		{Name: "Dup Row", Email: "KARAN@copytrade.in", InitialCapital: 60000},
		{Name: "Divya Singh", Email: "divya@copytrade.in", InitialCapital: 80000, RiskPercentage: 150},
	}

	created, importErrors := ImportStudents(store, "t1", rows)

	require.Len(t, created, 1)
	assert.Equal(t, "Karan Mehta", created[0].Name)
	assert.Equal(t, "t1", created[0].TeacherID)
	assert.Equal(t, "Rajesh Sharma", created[0].TeacherName)
	assert.Equal(t, 100000.0, created[0].CurrentCapital, "current capital starts at initial")

	require.Len(t, importErrors, 3)
	assert.Equal(t, 2, importErrors[0].Row)
	assert.Equal(t, 3, importErrors[1].Row)
	assert.Contains(t, importErrors[1].Error, "Duplicate email")
	assert.Equal(t, 4, importErrors[2].Row)

	// Valid rows land despite the failures, and rollups include them.
	assert.Equal(t, 1, store.Teachers()[0].TotalStudents)
}

func TestImportStudentsRejectsExistingEmail(t *testing.T) {
	store := newWorkflowStore()

	created, importErrors := ImportStudents(store, "", []StudentImportRow{
		{Name: "Aarav Clone", Email: "aarav@copytrade.in", InitialCapital: 10000},
	})

	assert.Empty(t, created)
	require.Len(t, importErrors, 1)
	assert.Equal(t, 1, importErrors[0].Row)
	assert.Contains(t, importErrors[0].Error, "Duplicate email")
}

func TestImportStudentsWithoutTeacherCreatesZombies(t *testing.T) {
	store := newWorkflowStore()

	created, importErrors := ImportStudents(store, "", []StudentImportRow{
		{Name: "Nikhil Gupta", Email: "nikhil@copytrade.in", InitialCapital: 40000, Strategy: "aggressive"},
	})

	assert.Empty(t, importErrors)
	require.Len(t, created, 1)
	assert.True(t, created[0].IsZombie())
	assert.Len(t, ListZombieStudents(store), 3)
}
