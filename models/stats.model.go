package models

// Stats is the platform-wide aggregate snapshot shown on the admin dashboard.
type Stats struct {
	TotalTeachers   int     `json:"totalTeachers"`
	TotalStudents   int     `json:"totalStudents"`
	TotalTrades     int     `json:"totalTrades"`
	TotalCapital    float64 `json:"totalCapital"`
	TotalProfitLoss float64 `json:"totalProfitLoss"`
	AverageWinRate  float64 `json:"averageWinRate"`
}
