package services

import (
	"copyadmin/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloseAllTradesForcesOpenTradesCompleted(t *testing.T) {
	store := newWorkflowStore()
	store.SaveStudents([]models.Student{
		{ID: "s1", TeacherID: "t1"},
	})
	store.SaveTrades([]models.Trade{
		{ID: "tr1", TeacherID: "t1", Status: models.TradeStatusPending},
		{ID: "tr2", TeacherID: "t1", Status: models.TradeStatusExecuted},
		// Owned via the student, not the teacher id.
		{ID: "tr3", TeacherID: "other", StudentID: "s1", Status: models.TradeStatusPending},
		{ID: "tr4", TeacherID: "t1", Status: models.TradeStatusCompleted},
		{ID: "tr5", TeacherID: "t1", Status: models.TradeStatusCompleted},
	})

	closed, err := CloseAllTrades(store, "t1")
	require.NoError(t, err)
	assert.Equal(t, 3, closed)

	for _, trade := range store.Trades() {
		assert.Equal(t, models.TradeStatusCompleted, trade.Status, "trade %s", trade.ID)
	}

	// Second immediate call finds nothing open.
	closed, err = CloseAllTrades(store, "t1")
	require.NoError(t, err)
	assert.Zero(t, closed)
}

func TestCloseAllTradesIgnoresOtherTeachers(t *testing.T) {
	store := newWorkflowStore()
	store.SaveTrades([]models.Trade{
		{ID: "tr1", TeacherID: "t1", Status: models.TradeStatusPending},
		{ID: "tr2", TeacherID: "t2", Status: models.TradeStatusPending},
		{ID: "tr3", TeacherID: "t1", Status: models.TradeStatusFailed},
		{ID: "tr4", TeacherID: "t1", Status: models.TradeStatusCancelled},
	})

	closed, err := CloseAllTrades(store, "t1")
	require.NoError(t, err)
	assert.Equal(t, 1, closed)

	statuses := make(map[string]string)
	for _, trade := range store.Trades() {
		statuses[trade.ID] = trade.Status
	}
	assert.Equal(t, models.TradeStatusCompleted, statuses["tr1"])
	assert.Equal(t, models.TradeStatusPending, statuses["tr2"], "other teacher untouched")
	assert.Equal(t, models.TradeStatusFailed, statuses["tr3"], "terminal statuses untouched")
	assert.Equal(t, models.TradeStatusCancelled, statuses["tr4"])
}

func TestCloseAllTradesLogsAndRecomputes(t *testing.T) {
	store := newWorkflowStore()
	store.SaveTrades([]models.Trade{
		{ID: "tr1", TeacherID: "t1", Status: models.TradeStatusPending, PnL: 0},
	})

	closed, err := CloseAllTrades(store, "t1")
	require.NoError(t, err)
	require.Equal(t, 1, closed)

	logs := store.ActivityLogs()
	require.NotEmpty(t, logs)
	assert.Equal(t, models.ActionTradeExecuted, logs[0].Action)
	assert.Equal(t, "t1", logs[0].TeacherID)

	assert.Equal(t, 1, store.Teachers()[0].TotalTrades, "rollups refreshed")
}
