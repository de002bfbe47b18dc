package core

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/holiman/uint256"
)

type EventType string

const (
	EventCommitAccepted  EventType = "commit_accepted"
	EventRevealResolved  EventType = "reveal_resolved"
	EventJackpotWon      EventType = "jackpot_won"
	EventPayoutFailed    EventType = "payout_failed"
	EventPayoutClaimed   EventType = "payout_claimed"
	EventCommitExpired   EventType = "commit_expired"
	EventSponsorSet      EventType = "sponsor_set"
	EventSponsorCleared  EventType = "sponsor_cleared"
	EventHouseWithdrawal EventType = "house_withdrawal"
)

// Event is the signal shape consumed by off-core observers. The engine makes
// no assumption that anything is listening.
type Event struct {
	ID     string
	Type   EventType
	At     time.Time
	Player common.Address
	Amount *uint256.Int
	Height uint64
	Win    bool
}

// NopSink discards every event. The engine must behave identically with
// zero consumers.
type NopSink struct{}

func (NopSink) Publish(Event) {}

func newEvent(kind EventType) Event {
	return Event{
		ID:   uuid.NewString(),
		Type: kind,
		At:   TimeNow(),
	}
}
