package models

import "gorm.io/gorm"

// KVEntry backs the key-value store when it runs on postgres.
type KVEntry struct {
	gorm.Model
	Key   string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Value []byte `gorm:"type:bytea"`
}

func (KVEntry) TableName() string { return "kv_entries" }
