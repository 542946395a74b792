package database

import (
	"testing"
	"time"

	"copyadmin/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMissingKeyReturnsNothing(t *testing.T) {
	store := NewKVStore(NewMemoryBackend())

	value, ok := store.Get("teachers")
	assert.False(t, ok)
	assert.Nil(t, value)
}

func TestSetGetRemoveRoundtrip(t *testing.T) {
	store := NewKVStore(NewMemoryBackend())

	store.Set("teachers", []byte(`[{"id":"teacher-1"}]`))
	value, ok := store.Get("teachers")
	require.True(t, ok)
	assert.JSONEq(t, `[{"id":"teacher-1"}]`, string(value))

	store.Set("teachers", []byte(`[]`))
	value, _ = store.Get("teachers")
	assert.JSONEq(t, `[]`, string(value), "set replaces the whole value")

	store.Remove("teachers")
	_, ok = store.Get("teachers")
	assert.False(t, ok)
}

func TestStoreWithoutBackendDegradesToNoOps(t *testing.T) {
	store := NewKVStore(nil)

	value, ok := store.Get("teachers")
	assert.False(t, ok)
	assert.Nil(t, value)

	assert.NotPanics(t, func() {
		store.Set("teachers", []byte(`[]`))
		store.Remove("teachers")
	})
}

func TestTypedCollectionsRoundtrip(t *testing.T) {
	store := NewKVStore(NewMemoryBackend())

	assert.Empty(t, store.Teachers(), "missing collection coalesces to empty")

	store.SaveTeachers([]models.Teacher{{ID: "teacher-1", Name: "Rajesh Sharma"}})
	teachers := store.Teachers()
	require.Len(t, teachers, 1)
	assert.Equal(t, "teacher-1", teachers[0].ID)

	store.SaveStudents([]models.Student{{ID: "student-1", TeacherID: "teacher-1"}})
	require.Len(t, store.Students(), 1)

	assert.Equal(t, models.Stats{}, store.Stats())
	store.SaveStats(models.Stats{TotalTeachers: 3})
	assert.Equal(t, 3, store.Stats().TotalTeachers)
}

func TestSeedGeneratedAtRoundtrip(t *testing.T) {
	store := NewKVStore(NewMemoryBackend())

	_, ok := store.SeedGeneratedAt()
	assert.False(t, ok)

	stamp := time.Date(2025, 1, 6, 9, 15, 0, 0, time.UTC)
	store.SetSeedGeneratedAt(stamp)

	got, ok := store.SeedGeneratedAt()
	require.True(t, ok)
	assert.True(t, stamp.Equal(got))
}
