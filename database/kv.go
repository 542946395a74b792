package database

import (
	"errors"
	"log"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// keyPrefix namespaces every entry so the table can be shared with other
// tooling without collisions.
const keyPrefix = "copytrade_admin_"

// KVEntry is the persisted row backing one logical collection.
type KVEntry struct {
	Key   string         `gorm:"primaryKey"`
	Value datatypes.JSON `gorm:"not null"`
}

// Backend abstracts the physical storage under the KV store so tests run
// against an in-memory map instead of SQLite.
type Backend interface {
	Load(key string) ([]byte, bool)
	Save(key string, value []byte)
	Delete(key string)
}

// KVStore is namespaced get/set/remove over a persisted map. Every write
// replaces the entire value for a key; there are no partial updates.
type KVStore struct {
	backend Backend
}

func NewKVStore(backend Backend) *KVStore {
	return &KVStore{backend: backend}
}

// Get returns the raw value for key, or (nil, false) when the key is
// missing or no backend is available. Callers coalesce to empty.
func (s *KVStore) Get(key string) ([]byte, bool) {
	if s == nil || s.backend == nil {
		return nil, false
	}
	return s.backend.Load(keyPrefix + key)
}

// Set replaces the whole value stored under key. A store without a
// backend silently drops the write.
func (s *KVStore) Set(key string, value []byte) {
	if s == nil || s.backend == nil {
		return
	}
	s.backend.Save(keyPrefix+key, value)
}

// Remove deletes the key entirely.
func (s *KVStore) Remove(key string) {
	if s == nil || s.backend == nil {
		return
	}
	s.backend.Delete(keyPrefix + key)
}

// GormBackend persists entries in the kv_entries table.
type GormBackend struct {
	db *gorm.DB
}

func NewGormBackend(db *gorm.DB) *GormBackend {
	return &GormBackend{db: db}
}

func (b *GormBackend) Load(key string) ([]byte, bool) {
	var entry KVEntry
	err := b.db.First(&entry, "key = ?", key).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("KV load failed for %s: %v", key, err)
		}
		return nil, false
	}
	return []byte(entry.Value), true
}

func (b *GormBackend) Save(key string, value []byte) {
	entry := KVEntry{Key: key, Value: datatypes.JSON(value)}
	err := b.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&entry).Error
	if err != nil {
		log.Printf("KV save failed for %s: %v", key, err)
	}
}

func (b *GormBackend) Delete(key string) {
	if err := b.db.Delete(&KVEntry{}, "key = ?", key).Error; err != nil {
		log.Printf("KV delete failed for %s: %v", key, err)
	}
}

// MemoryBackend keeps entries in a plain map. Used by tests and as the
// degraded mode when no persistence is available.
type MemoryBackend struct {
	entries map[string][]byte
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{entries: make(map[string][]byte)}
}

func (b *MemoryBackend) Load(key string) ([]byte, bool) {
	value, ok := b.entries[key]
	if !ok {
		return nil, false
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, true
}

func (b *MemoryBackend) Save(key string, value []byte) {
	stored := make([]byte, len(value))
	copy(stored, value)
	b.entries[key] = stored
}

func (b *MemoryBackend) Delete(key string) {
	delete(b.entries, key)
}
