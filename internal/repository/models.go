package repository

import "time"

// Player is the persisted aggregate for one address, maintained from
// the engine's event stream.
type Player struct {
	Address       string `gorm:"primaryKey;size:42"`
	Shots         uint64 `gorm:"not null;default:0"`
	TotalSpentWei string `gorm:"size:100;not null;default:0"`
	TotalWonWei   string `gorm:"size:100;not null;default:0"`
	LastCommitAt  time.Time
}

// Winner is one recorded jackpot.
type Winner struct {
	ID        uint      `gorm:"primaryKey"`
	Address   string    `gorm:"size:42;index;not null"`
	AmountWei string    `gorm:"size:100;not null"`
	Height    uint64    `gorm:"not null"`
	WonAt     time.Time `gorm:"index"`
}

// GameEvent is the raw audit row written for every published event.
type GameEvent struct {
	ID        string `gorm:"primaryKey;size:36"`
	Type      string `gorm:"size:32;index;not null"`
	Address   string `gorm:"size:42;index"`
	AmountWei string `gorm:"size:100"`
	Height    uint64
	At        time.Time
}
