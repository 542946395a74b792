package database

import (
	"copyadmin/models"
	"encoding/json"
	"log"
	"time"
)

// One key per logical collection. Each value is the entire collection
// serialized as a JSON array (or object for stats).
const (
	KeyTeachers      = "teachers"
	KeyStudents      = "students"
	KeyTrades        = "trades"
	KeyActivityLogs  = "activityLogs"
	KeyConnections   = "connections"
	KeyBrokerConfigs = "brokerConfigs"
	KeyStats         = "stats"
	KeySeedTimestamp = "seedDataGeneratedAt"
)

func getCollection[T any](s *KVStore, key string) []T {
	raw, ok := s.Get(key)
	if !ok {
		return nil
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		log.Printf("Corrupt collection %s: %v", key, err)
		return nil
	}
	return out
}

func setCollection[T any](s *KVStore, key string, value []T) {
	raw, err := json.Marshal(value)
	if err != nil {
		log.Printf("Failed to serialize collection %s: %v", key, err)
		return
	}
	s.Set(key, raw)
}

func (s *KVStore) Teachers() []models.Teacher {
	return getCollection[models.Teacher](s, KeyTeachers)
}

func (s *KVStore) SaveTeachers(teachers []models.Teacher) {
	setCollection(s, KeyTeachers, teachers)
}

func (s *KVStore) Students() []models.Student {
	return getCollection[models.Student](s, KeyStudents)
}

func (s *KVStore) SaveStudents(students []models.Student) {
	setCollection(s, KeyStudents, students)
}

func (s *KVStore) Trades() []models.Trade {
	return getCollection[models.Trade](s, KeyTrades)
}

func (s *KVStore) SaveTrades(trades []models.Trade) {
	setCollection(s, KeyTrades, trades)
}

func (s *KVStore) ActivityLogs() []models.ActivityLog {
	return getCollection[models.ActivityLog](s, KeyActivityLogs)
}

func (s *KVStore) SaveActivityLogs(logs []models.ActivityLog) {
	setCollection(s, KeyActivityLogs, logs)
}

func (s *KVStore) Connections() []models.ConnectionRequest {
	return getCollection[models.ConnectionRequest](s, KeyConnections)
}

func (s *KVStore) SaveConnections(connections []models.ConnectionRequest) {
	setCollection(s, KeyConnections, connections)
}

func (s *KVStore) BrokerConfigs() []models.BrokerConfig {
	return getCollection[models.BrokerConfig](s, KeyBrokerConfigs)
}

func (s *KVStore) SaveBrokerConfigs(configs []models.BrokerConfig) {
	setCollection(s, KeyBrokerConfigs, configs)
}

func (s *KVStore) Stats() models.Stats {
	raw, ok := s.Get(KeyStats)
	if !ok {
		return models.Stats{}
	}
	var stats models.Stats
	if err := json.Unmarshal(raw, &stats); err != nil {
		log.Printf("Corrupt stats snapshot: %v", err)
		return models.Stats{}
	}
	return stats
}

func (s *KVStore) SaveStats(stats models.Stats) {
	raw, err := json.Marshal(stats)
	if err != nil {
		log.Printf("Failed to serialize stats: %v", err)
		return
	}
	s.Set(KeyStats, raw)
}

// SeedGeneratedAt returns when seed data was last generated, if ever.
func (s *KVStore) SeedGeneratedAt() (time.Time, bool) {
	raw, ok := s.Get(KeySeedTimestamp)
	if !ok {
		return time.Time{}, false
	}
	var stamp string
	if err := json.Unmarshal(raw, &stamp); err != nil {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, stamp)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func (s *KVStore) SetSeedGeneratedAt(t time.Time) {
	raw, _ := json.Marshal(t.Format(time.RFC3339))
	s.Set(KeySeedTimestamp, raw)
}
