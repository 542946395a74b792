package services

import (
	"copyadmin/database"
	"copyadmin/models"
	"fmt"
)

// CloseAllTrades is the panic button: force-close every open (pending or
// executed) trade owned by the teacher or placed for any of the teacher's
// students. Returns how many trades were transitioned to completed.
// Idempotent — a second call with no new trades returns 0.
func CloseAllTrades(store *database.KVStore, teacherID string) (int, error) {
	studentIDs := make(map[string]bool)
	for _, s := range store.Students() {
		if s.TeacherID == teacherID {
			studentIDs[s.ID] = true
		}
	}

	trades := store.Trades()
	closed := 0
	for i, t := range trades {
		if t.TeacherID != teacherID && !studentIDs[t.StudentID] {
			continue
		}
		if !t.IsOpen() {
			continue
		}
		trades[i].Status = models.TradeStatusCompleted
		closed++
	}

	if closed == 0 {
		return 0, nil
	}

	store.SaveTrades(trades)
	appendActivityLog(store, teacherID, models.ActionTradeExecuted,
		fmt.Sprintf("Panic close: %d open trades force-completed", closed))
	RecomputeAll(store)
	return closed, nil
}
