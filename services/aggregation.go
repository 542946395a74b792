package services

import (
	"copyadmin/database"
	"copyadmin/models"
	"math"
)

// RollupResult carries the derived teacher-level metrics.
type RollupResult struct {
	TotalStudents int
	TotalTrades   int
	TotalCapital  float64
	ProfitLoss    float64
	WinRate       float64
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Rollup derives a teacher's metrics from the full student and trade
// collections. Pure function, no side effects; call it again whenever the
// underlying sets change instead of patching stored rollups incrementally.
func Rollup(teacherID string, students []models.Student, trades []models.Trade) RollupResult {
	var r RollupResult

	for _, s := range students {
		if s.TeacherID == teacherID {
			r.TotalStudents++
			r.TotalCapital += s.CurrentCapital
		}
	}

	wins := 0
	for _, t := range trades {
		if t.TeacherID != teacherID {
			continue
		}
		r.TotalTrades++
		r.ProfitLoss += t.PnL
		if t.PnL > 0 {
			wins++
		}
	}

	if r.TotalTrades > 0 {
		r.WinRate = math.Round(float64(wins) / float64(r.TotalTrades) * 100)
	}
	r.TotalCapital = round2(r.TotalCapital)
	r.ProfitLoss = round2(r.ProfitLoss)
	return r
}

// ApplyRollup writes the derived metrics onto the teacher record.
func ApplyRollup(teacher *models.Teacher, students []models.Student, trades []models.Trade) {
	r := Rollup(teacher.ID, students, trades)
	teacher.TotalStudents = r.TotalStudents
	teacher.TotalTrades = r.TotalTrades
	teacher.TotalCapital = r.TotalCapital
	teacher.ProfitLoss = r.ProfitLoss
	teacher.WinRate = r.WinRate
}

// ComputeStats builds the platform-wide snapshot from already-rolled-up
// teachers plus the raw collections.
func ComputeStats(teachers []models.Teacher, students []models.Student, trades []models.Trade) models.Stats {
	stats := models.Stats{
		TotalTeachers: len(teachers),
		TotalStudents: len(students),
		TotalTrades:   len(trades),
	}

	for _, s := range students {
		stats.TotalCapital += s.CurrentCapital
	}
	for _, t := range trades {
		stats.TotalProfitLoss += t.PnL
	}

	if len(teachers) > 0 {
		sum := 0.0
		for _, t := range teachers {
			sum += t.WinRate
		}
		stats.AverageWinRate = round2(sum / float64(len(teachers)))
	}

	stats.TotalCapital = round2(stats.TotalCapital)
	stats.TotalProfitLoss = round2(stats.TotalProfitLoss)
	return stats
}

// RecomputeAll re-derives every teacher's rollups and the stats snapshot
// from the current collections and persists them. Every mutation of
// students or trades funnels through here so stored rollups never drift.
func RecomputeAll(store *database.KVStore) models.Stats {
	teachers := store.Teachers()
	students := store.Students()
	trades := store.Trades()

	for i := range teachers {
		ApplyRollup(&teachers[i], students, trades)
	}
	store.SaveTeachers(teachers)

	stats := ComputeStats(teachers, students, trades)
	store.SaveStats(stats)
	return stats
}
