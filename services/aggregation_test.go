package services

import (
	"copyadmin/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRollupComputesAllMetrics(t *testing.T) {
	students := []models.Student{
		{ID: "s1", TeacherID: "t1", CurrentCapital: 100000.50},
		{ID: "s2", TeacherID: "t1", CurrentCapital: 49999.25},
		{ID: "s3", TeacherID: "t2", CurrentCapital: 70000},
		{ID: "z1"}, // zombie, counts for nobody
	}
	trades := []models.Trade{
		{ID: "tr1", TeacherID: "t1", PnL: 1200.555},
		{ID: "tr2", TeacherID: "t1", PnL: -300.25},
		{ID: "tr3", TeacherID: "t1", PnL: 450},
		{ID: "tr4", TeacherID: "t1"}, // open trade, no pnl yet
		{ID: "tr5", TeacherID: "t2", PnL: 9000},
	}

	r := Rollup("t1", students, trades)

	assert.Equal(t, 2, r.TotalStudents)
	assert.Equal(t, 4, r.TotalTrades)
	assert.Equal(t, 149999.75, r.TotalCapital)
	assert.Equal(t, 1350.31, r.ProfitLoss)
	// 2 of 4 trades have positive pnl
	assert.Equal(t, 50.0, r.WinRate)
}

func TestRollupNoTradesHasZeroWinRate(t *testing.T) {
	r := Rollup("t1", nil, nil)

	assert.Zero(t, r.TotalTrades)
	assert.Zero(t, r.WinRate)
	assert.Zero(t, r.ProfitLoss)
}

func TestRollupWinRateRounds(t *testing.T) {
	trades := []models.Trade{
		{TeacherID: "t1", PnL: 10},
		{TeacherID: "t1", PnL: -5},
		{TeacherID: "t1", PnL: -5},
	}

	r := Rollup("t1", nil, trades)
	// 1/3 → 33.33… rounds to 33
	assert.Equal(t, 33.0, r.WinRate)
}

func TestApplyRollupWritesTeacherFields(t *testing.T) {
	teacher := models.Teacher{ID: "t1"}
	students := []models.Student{{ID: "s1", TeacherID: "t1", CurrentCapital: 50000}}
	trades := []models.Trade{{ID: "tr1", TeacherID: "t1", PnL: 100}}

	ApplyRollup(&teacher, students, trades)

	assert.Equal(t, 1, teacher.TotalStudents)
	assert.Equal(t, 1, teacher.TotalTrades)
	assert.Equal(t, 50000.0, teacher.TotalCapital)
	assert.Equal(t, 100.0, teacher.ProfitLoss)
	assert.Equal(t, 100.0, teacher.WinRate)
}

func TestComputeStatsAveragesWinRates(t *testing.T) {
	teachers := []models.Teacher{
		{ID: "t1", WinRate: 60},
		{ID: "t2", WinRate: 40},
	}
	students := []models.Student{
		{ID: "s1", TeacherID: "t1", CurrentCapital: 10000},
		{ID: "z1", CurrentCapital: 5000},
	}
	trades := []models.Trade{
		{ID: "tr1", TeacherID: "t1", PnL: 250.555},
	}

	stats := ComputeStats(teachers, students, trades)

	assert.Equal(t, 2, stats.TotalTeachers)
	assert.Equal(t, 2, stats.TotalStudents)
	assert.Equal(t, 1, stats.TotalTrades)
	assert.Equal(t, 15000.0, stats.TotalCapital)
	assert.Equal(t, 250.56, stats.TotalProfitLoss)
	assert.Equal(t, 50.0, stats.AverageWinRate)
}

func TestRecomputeAllPersistsRollupsAndStats(t *testing.T) {
	store := newWorkflowStore()
	store.SaveStudents([]models.Student{
		{ID: "s1", TeacherID: "t1", CurrentCapital: 120000},
	})
	store.SaveTrades([]models.Trade{
		{ID: "tr1", TeacherID: "t1", PnL: 500},
		{ID: "tr2", TeacherID: "t1", PnL: -200},
	})

	stats := RecomputeAll(store)

	teachers := store.Teachers()
	assert.Equal(t, 1, teachers[0].TotalStudents)
	assert.Equal(t, 2, teachers[0].TotalTrades)
	assert.Equal(t, 120000.0, teachers[0].TotalCapital)
	assert.Equal(t, 300.0, teachers[0].ProfitLoss)
	assert.Equal(t, 50.0, teachers[0].WinRate)

	assert.Equal(t, stats, store.Stats(), "snapshot persisted alongside rollups")
}
