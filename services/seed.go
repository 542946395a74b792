package services

import (
	"copyadmin/database"
	"copyadmin/models"
	"fmt"
	"log"
	"math/rand"
	"sort"
	"strings"
	"time"
)

// SeedParams are the generation knobs. Identical params on an empty store
// always yield an identical dataset, which the tests rely on.
type SeedParams struct {
	TeacherCount int
	ZombieCount  int
	BaseDate     time.Time
}

// DefaultSeedParams mirrors the reference roster: 12 teachers, an 8-deep
// zombie pool, dates anchored to a fixed Monday market open.
func DefaultSeedParams() SeedParams {
	return SeedParams{
		TeacherCount: 12,
		ZombieCount:  8,
		BaseDate:     time.Date(2025, 1, 6, 9, 15, 0, 0, time.UTC),
	}
}

// SeedData is the complete generated dataset before persistence.
type SeedData struct {
	Teachers      []models.Teacher
	Students      []models.Student
	Trades        []models.Trade
	ActivityLogs  []models.ActivityLog
	Connections   []models.ConnectionRequest
	BrokerConfigs []models.BrokerConfig
}

var teacherNamePool = []string{
	"Rajesh Sharma", "Priya Verma", "Amit Deshmukh", "Sunita Iyer",
	"Vikram Malhotra", "Neha Kulkarni", "Arjun Reddy", "Kavita Nair",
	"Sandeep Joshi", "Meera Pillai", "Rohit Agarwal", "Anjali Menon",
}

var studentNamePool = []string{
	"Aarav Patel", "Ishita Rao", "Karan Mehta", "Divya Singh",
	"Nikhil Gupta", "Pooja Bhatt", "Rahul Saxena", "Sneha Kapoor",
	"Varun Chopra", "Ananya Das", "Manish Tiwari", "Ritika Jain",
	"Siddharth Bose", "Tanvi Shah", "Harsh Vora", "Lakshmi Krishnan",
}

var specializationPool = []string{
	"Intraday Equity", "Options & Futures", "Swing Trading",
	"Commodity Trading", "Index Scalping", "Positional Equity",
}

var strategyPool = []string{"conservative", "balanced", "aggressive"}

var stockPool = []string{
	"RELIANCE", "TCS", "INFY", "HDFCBANK", "ICICIBANK", "SBIN",
	"TATAMOTORS", "WIPRO", "AXISBANK", "ITC", "LT", "BHARTIARTL",
}

var tradeStatusCycle = []string{
	models.TradeStatusPending,
	models.TradeStatusExecuted,
	models.TradeStatusCompleted,
	models.TradeStatusFailed,
	models.TradeStatusCancelled,
}

var brokerProviderPool = []string{"zerodha", "upstox", "angelone", "bajaj"}

func seedEmail(name string, idx int) string {
	slug := strings.ToLower(strings.ReplaceAll(name, " ", "."))
	return fmt.Sprintf("%s%d@copytrade.in", slug, idx+1)
}

func seedMobile(idx int) string {
	return fmt.Sprintf("98%08d", 11000000+idx*13579)
}

const (
	capitalBase  = 100000.0
	capitalFloor = 50000.0
)

// GenerateSeedData manufactures the full cross-referenced dataset in one
// pass. Everything is derived from indices and BaseDate; no wall clock,
// so two runs with the same params produce byte-identical collections.
func GenerateSeedData(p SeedParams) SeedData {
	var data SeedData

	for i := 0; i < p.TeacherCount; i++ {
		name := teacherNamePool[i%len(teacherNamePool)]
		teacher := models.Teacher{
			ID:             fmt.Sprintf("teacher-%d", i+1),
			Name:           name,
			Email:          seedEmail(name, i),
			Mobile:         seedMobile(i),
			Specialization: specializationPool[i%len(specializationPool)],
			Status:         models.TeacherStatuses[i%len(models.TeacherStatuses)],
			JoinedDate:     p.BaseDate.AddDate(0, 0, -14*i),
		}
		data.Teachers = append(data.Teachers, teacher)

		students := generateStudents(teacher, i)
		data.Students = append(data.Students, students...)
		data.Trades = append(data.Trades, generateTrades(teacher, i, students)...)
	}

	data.Students = append(data.Students, GenerateZombieStudents(p, 0)...)
	data.ActivityLogs = generateActivityLogs(data.Teachers, data.Students, data.Trades)
	data.Connections = GenerateConnections(data.Teachers, data.Students)
	data.BrokerConfigs = generateBrokerConfigs(p, data.Teachers)

	return data
}

func generateStudents(teacher models.Teacher, i int) []models.Student {
	count := 6 + i%4
	students := make([]models.Student, 0, count)
	for j := 0; j < count; j++ {
		name := studentNamePool[(i*5+j)%len(studentNamePool)]
		initial := capitalBase + float64((i*3+j)%8)*12500
		// Performance offset swings both ways but never below the floor.
		current := initial + float64(((i*7+j*5)%11)-5)*4000
		if current < capitalFloor {
			current = capitalFloor
		}
		status := models.StudentStatusActive
		if j%5 == 4 {
			status = models.StudentStatusInactive
		}
		students = append(students, models.Student{
			ID:             fmt.Sprintf("student-%d-%d", i+1, j+1),
			Name:           name,
			Email:          seedEmail(name, i*10+j),
			Mobile:         seedMobile(100 + i*10 + j),
			TeacherID:      teacher.ID,
			TeacherName:    teacher.Name,
			Status:         status,
			InitialCapital: initial,
			CurrentCapital: current,
			RiskPercentage: float64(1 + (i+j)%5),
			Strategy:       strategyPool[(i+j)%len(strategyPool)],
			JoinedDate:     teacher.JoinedDate.AddDate(0, 0, j+1),
		})
	}
	return students
}

func generateTrades(teacher models.Teacher, i int, students []models.Student) []models.Trade {
	count := 10 + 2*i
	rng := rand.New(rand.NewSource(int64(7919 * (i + 1))))
	trades := make([]models.Trade, 0, count)
	for k := 0; k < count; k++ {
		status := tradeStatusCycle[k%len(tradeStatusCycle)]
		trade := models.Trade{
			ID:        fmt.Sprintf("trade-%d-%d", i+1, k+1),
			TeacherID: teacher.ID,
			StudentID: students[k%len(students)].ID,
			Stock:     stockPool[(i+k)%len(stockPool)],
			Quantity:  5 * (1 + (i+k)%20),
			Price:     round2(250 + float64((i*37+k*61)%2000) + 0.5),
			Type:      []string{models.TradeTypeBuy, models.TradeTypeSell}[(i+k)%2],
			Exchange:  []string{models.ExchangeNSE, models.ExchangeBSE}[k%2],
			Status:    status,
			CreatedAt: teacher.JoinedDate.AddDate(0, 0, k).Add(time.Duration(k%6) * time.Hour),
		}
		if status == models.TradeStatusExecuted || status == models.TradeStatusCompleted {
			trade.PnL = round2((rng.Float64() - 0.42) * 9000)
			executed := trade.CreatedAt.Add(2 * time.Hour)
			trade.ExecutedAt = &executed
		}
		trades = append(trades, trade)
	}
	return trades
}

// GenerateZombieStudents builds the unaffiliated pool teachers can send
// connection requests to. start offsets ids so a top-up never collides
// with zombies already claimed by a teacher.
func GenerateZombieStudents(p SeedParams, start int) []models.Student {
	zombies := make([]models.Student, 0, p.ZombieCount)
	for n := 0; n < p.ZombieCount; n++ {
		z := start + n
		name := studentNamePool[(z*3+7)%len(studentNamePool)]
		capital := 75000 + float64(z)*5000
		zombies = append(zombies, models.Student{
			ID:             fmt.Sprintf("student-z-%d", z+1),
			Name:           name,
			Email:          seedEmail(name, 900+z),
			Mobile:         seedMobile(900 + z),
			Status:         models.StudentStatusActive,
			InitialCapital: capital,
			CurrentCapital: capital,
			RiskPercentage: float64(1 + z%5),
			Strategy:       strategyPool[z%len(strategyPool)],
			JoinedDate:     p.BaseDate.AddDate(0, 0, -3*z),
		})
	}
	return zombies
}

func generateActivityLogs(teachers []models.Teacher, students []models.Student, trades []models.Trade) []models.ActivityLog {
	var logs []models.ActivityLog
	n := 0
	add := func(teacherID, action string, ts time.Time, details string) {
		n++
		logs = append(logs, models.ActivityLog{
			ID:        fmt.Sprintf("log-%d", n),
			TeacherID: teacherID,
			Action:    action,
			Timestamp: ts,
			Details:   details,
		})
	}

	for _, t := range teachers {
		add(t.ID, models.ActionProfileCreated, t.JoinedDate, t.Name+" joined the platform")
		add(t.ID, models.ActionProfileUpdated, t.JoinedDate.AddDate(0, 0, 5), t.Name+" updated trading profile")

		added, executed := 0, 0
		for _, s := range students {
			if s.TeacherID == t.ID && added < 3 {
				add(t.ID, models.ActionStudentAdded, s.JoinedDate, s.Name+" joined as student")
				added++
			}
		}
		for _, tr := range trades {
			if tr.TeacherID == t.ID && executed < 6 {
				add(t.ID, models.ActionTradeExecuted,
					tr.CreatedAt, fmt.Sprintf("%s %s x%d on %s", tr.Type, tr.Stock, tr.Quantity, tr.Exchange))
				executed++
			}
		}
	}

	sort.SliceStable(logs, func(a, b int) bool {
		return logs[a].Timestamp.After(logs[b].Timestamp)
	})
	return logs
}

// GenerateConnections pairs the first zombies with teachers, alternating
// direction, all pending.
func GenerateConnections(teachers []models.Teacher, students []models.Student) []models.ConnectionRequest {
	if len(teachers) == 0 {
		return nil
	}
	var connections []models.ConnectionRequest
	idx := 0
	for _, s := range students {
		if !s.IsZombie() || idx >= 6 {
			continue
		}
		t := teachers[idx%len(teachers)]
		direction := models.DirectionIncoming
		if idx%2 == 1 {
			direction = models.DirectionOutgoing
		}
		connections = append(connections, models.ConnectionRequest{
			ID:          fmt.Sprintf("conn-%d", idx+1),
			StudentID:   s.ID,
			StudentName: s.Name,
			TeacherID:   t.ID,
			TeacherName: t.Name,
			Direction:   direction,
			Status:      models.ConnectionStatusPending,
			CreatedAt:   t.JoinedDate.Add(time.Duration(idx+1) * time.Hour),
		})
		idx++
	}
	return connections
}

func generateBrokerConfigs(p SeedParams, teachers []models.Teacher) []models.BrokerConfig {
	count := len(brokerProviderPool)
	if len(teachers) < count {
		count = len(teachers)
	}
	configs := make([]models.BrokerConfig, 0, count)
	for i := 0; i < count; i++ {
		configs = append(configs, models.BrokerConfig{
			UserID:     teachers[i].ID,
			Provider:   brokerProviderPool[i],
			ClientCode: fmt.Sprintf("CT%04d", 1000+i),
			Status:     models.BrokerStatusDisconnected,
			UpdatedAt:  p.BaseDate,
		})
	}
	return configs
}

// EnsureSeedData populates an empty store and is a guard-checked no-op
// afterwards. The one conditional side effect after first run: an exhausted
// zombie pool is topped up, and an empty connection collection is
// regenerated from whatever zombies exist. Returns true when a fresh
// dataset was generated.
func EnsureSeedData(store *database.KVStore, p SeedParams) bool {
	teachers := store.Teachers()
	if len(teachers) > 0 {
		topUpSeedData(store, p, teachers)
		return false
	}

	data := GenerateSeedData(p)
	for i := range data.Teachers {
		ApplyRollup(&data.Teachers[i], data.Students, data.Trades)
	}

	store.SaveTeachers(data.Teachers)
	store.SaveStudents(data.Students)
	store.SaveTrades(data.Trades)
	store.SaveActivityLogs(data.ActivityLogs)
	store.SaveConnections(data.Connections)
	store.SaveBrokerConfigs(data.BrokerConfigs)
	store.SaveStats(ComputeStats(data.Teachers, data.Students, data.Trades))
	store.SetSeedGeneratedAt(time.Now())

	log.Printf("Seed data generated: %d teachers, %d students, %d trades",
		len(data.Teachers), len(data.Students), len(data.Trades))
	return true
}

func topUpSeedData(store *database.KVStore, p SeedParams, teachers []models.Teacher) {
	students := store.Students()

	hasZombie := false
	for _, s := range students {
		if s.IsZombie() {
			hasZombie = true
			break
		}
	}
	if !hasZombie {
		start := 0
		for _, s := range students {
			if strings.HasPrefix(s.ID, "student-z-") {
				start++
			}
		}
		students = append(students, GenerateZombieStudents(p, start)...)
		store.SaveStudents(students)
		log.Printf("Zombie student pool topped up")
	}

	if len(store.Connections()) == 0 {
		store.SaveConnections(GenerateConnections(teachers, students))
		log.Printf("Connection requests regenerated")
	}
}
