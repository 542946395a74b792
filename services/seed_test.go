package services

import (
	"copyadmin/models"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSeedDataIsDeterministic(t *testing.T) {
	first := GenerateSeedData(DefaultSeedParams())
	second := GenerateSeedData(DefaultSeedParams())

	for name, pair := range map[string][2]interface{}{
		"teachers":     {first.Teachers, second.Teachers},
		"students":     {first.Students, second.Students},
		"trades":       {first.Trades, second.Trades},
		"activityLogs": {first.ActivityLogs, second.ActivityLogs},
		"connections":  {first.Connections, second.Connections},
	} {
		a, err := json.Marshal(pair[0])
		require.NoError(t, err)
		b, err := json.Marshal(pair[1])
		require.NoError(t, err)
		assert.Equal(t, string(a), string(b), "collection %s differs between runs", name)
	}
}

func TestSeedDataReferentialIntegrity(t *testing.T) {
	data := GenerateSeedData(DefaultSeedParams())

	studentsByID := make(map[string]models.Student, len(data.Students))
	for _, s := range data.Students {
		studentsByID[s.ID] = s
	}
	teacherIDs := make(map[string]bool, len(data.Teachers))
	for _, teacher := range data.Teachers {
		teacherIDs[teacher.ID] = true
	}

	for _, trade := range data.Trades {
		require.True(t, teacherIDs[trade.TeacherID], "trade %s references unknown teacher", trade.ID)
		if trade.StudentID == "" {
			continue
		}
		student, ok := studentsByID[trade.StudentID]
		require.True(t, ok, "trade %s references unknown student", trade.ID)
		assert.Equal(t, trade.TeacherID, student.TeacherID,
			"trade %s assigned to a student of another teacher", trade.ID)
	}

	for _, conn := range data.Connections {
		assert.True(t, teacherIDs[conn.TeacherID])
		student, ok := studentsByID[conn.StudentID]
		require.True(t, ok)
		assert.True(t, student.IsZombie(), "seeded requests only target zombies")
	}
}

func TestSeedDataShape(t *testing.T) {
	p := DefaultSeedParams()
	data := GenerateSeedData(p)

	require.Len(t, data.Teachers, p.TeacherCount)

	// Student allocation per teacher follows 6 + i%4.
	for i, teacher := range data.Teachers {
		count := 0
		for _, s := range data.Students {
			if s.TeacherID == teacher.ID {
				count++
			}
		}
		assert.Equal(t, 6+i%4, count, "teacher %d student allocation", i)
	}

	zombies := 0
	for _, s := range data.Students {
		if s.IsZombie() {
			zombies++
		}
		assert.GreaterOrEqual(t, s.CurrentCapital, 50000.0, "capital floor")
	}
	assert.Equal(t, p.ZombieCount, zombies)

	assert.NotEmpty(t, data.Connections)
	for _, conn := range data.Connections {
		assert.Equal(t, models.ConnectionStatusPending, conn.Status)
		assert.Contains(t, []string{models.DirectionIncoming, models.DirectionOutgoing}, conn.Direction)
	}
}

func TestSeedActivityLogsSortedNewestFirst(t *testing.T) {
	data := GenerateSeedData(DefaultSeedParams())

	require.NotEmpty(t, data.ActivityLogs)
	for i := 1; i < len(data.ActivityLogs); i++ {
		assert.False(t, data.ActivityLogs[i].Timestamp.After(data.ActivityLogs[i-1].Timestamp),
			"activity feed out of order at %d", i)
	}

	// One profile_created and one profile_updated per teacher.
	created := 0
	for _, entry := range data.ActivityLogs {
		if entry.Action == models.ActionProfileCreated {
			created++
		}
	}
	assert.Equal(t, len(data.Teachers), created)
}

func TestEnsureSeedDataRunsOnceAndRollsUp(t *testing.T) {
	store := newTestStore()
	p := DefaultSeedParams()

	assert.True(t, EnsureSeedData(store, p), "first run generates")

	teachers := store.Teachers()
	students := store.Students()
	trades := store.Trades()
	require.Len(t, teachers, p.TeacherCount)

	for _, teacher := range teachers {
		r := Rollup(teacher.ID, students, trades)
		assert.Equal(t, r.TotalStudents, teacher.TotalStudents)
		assert.Equal(t, r.TotalTrades, teacher.TotalTrades)
		assert.Equal(t, r.TotalCapital, teacher.TotalCapital)
		assert.Equal(t, r.ProfitLoss, teacher.ProfitLoss)
		assert.Equal(t, r.WinRate, teacher.WinRate)
	}

	_, ok := store.SeedGeneratedAt()
	assert.True(t, ok)

	assert.False(t, EnsureSeedData(store, p), "guarded second run")
	assert.Len(t, store.Teachers(), p.TeacherCount, "no duplicate teachers")
}

func TestEnsureSeedDataTopsUpZombiePool(t *testing.T) {
	store := newTestStore()
	p := DefaultSeedParams()
	require.True(t, EnsureSeedData(store, p))

	// Claim every zombie so the pool runs dry.
	students := store.Students()
	for i := range students {
		if students[i].IsZombie() {
			students[i].TeacherID = "teacher-1"
		}
	}
	store.SaveStudents(students)
	store.SaveConnections(nil)

	assert.False(t, EnsureSeedData(store, p))

	zombies := ListZombieStudents(store)
	assert.Len(t, zombies, p.ZombieCount, "pool topped back up")

	ids := make(map[string]bool)
	for _, s := range store.Students() {
		assert.False(t, ids[s.ID], "duplicate student id %s", s.ID)
		ids[s.ID] = true
	}

	assert.NotEmpty(t, store.Connections(), "requests regenerated from the new pool")
}
