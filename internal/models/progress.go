package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Counters is an open-ended map of named integer counters (ships, games,
// DMs, restarts). Stored as a JSON text column so the same model works on
// Postgres in production and in-memory SQLite in tests.
type Counters map[string]int

func (c Counters) Value() (driver.Value, error) {
	if c == nil {
		c = Counters{}
	}
	b, err := json.Marshal(c)
	return string(b), err
}

func (c *Counters) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*c = Counters{}
		return nil
	case []byte:
		return json.Unmarshal(v, c)
	case string:
		return json.Unmarshal([]byte(v), c)
	default:
		return errors.New("counters: unsupported column type")
	}
}

// MessageList holds celebration template variants, same storage trick.
type MessageList []string

func (m MessageList) Value() (driver.Value, error) {
	if m == nil {
		m = MessageList{}
	}
	b, err := json.Marshal(m)
	return string(b), err
}

func (m *MessageList) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*m = MessageList{}
		return nil
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return errors.New("message list: unsupported column type")
	}
}

// UserProgress is the per-handle streak and counter state. Created on the
// first evaluation for an unseen handle, mutated only by the evaluator,
// never deleted. Invariant: BestStreak >= CurrentStreak after every update.
type UserProgress struct {
	Handle        string    `gorm:"primaryKey;type:text" json:"handle"`
	CurrentStreak int       `gorm:"default:0" json:"currentStreak"`
	BestStreak    int       `gorm:"default:0" json:"bestStreak"`
	Counters      Counters  `gorm:"type:text" json:"counters"`
	LastUpdated   time.Time `json:"lastUpdated"`
}
