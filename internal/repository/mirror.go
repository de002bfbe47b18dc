package repository

import (
	"errors"
	"fmt"

	"github.com/holiman/uint256"
	"go.uber.org/zap"

	"potshot/internal/core"
	"potshot/internal/db"
)

const queueSize = 256

// Mirror subscribes to the engine's event stream and maintains the
// off-core read models: the per-player aggregates, the winner history
// and the raw event audit trail. Persistence happens on a single
// worker goroutine so a slow database never blocks the game, and
// events are applied in publish order.
type Mirror struct {
	logs  *zap.SugaredLogger
	store Database
	queue chan core.Event
	done  chan struct{}
}

// NewMirror migrates the read-model tables and starts the persistence
// worker.
func NewMirror(logger *zap.SugaredLogger, store Database) (*Mirror, error) {
	err := store.MigrateTable(&Player{}, &Winner{}, &GameEvent{})
	if err != nil {
		return nil, fmt.Errorf("migrate read models: %w", err)
	}

	m := &Mirror{
		logs:  logger,
		store: store,
		queue: make(chan core.Event, queueSize),
		done:  make(chan struct{}),
	}
	go m.run()

	return m, nil
}

// Publish enqueues the event for persistence. The mirror is an
// observer: when the queue is full the event is dropped and logged
// rather than back-pressuring the engine.
func (m *Mirror) Publish(event core.Event) {
	select {
	case m.queue <- event:
	default:
		m.logs.Errorw("event queue full, dropping event",
			"event_id", event.ID,
			"event_type", event.Type)
	}
}

// Close stops the worker after the queued events are flushed.
func (m *Mirror) Close() {
	close(m.queue)
	<-m.done
}

// TopPlayers returns up to limit players ranked by shots taken.
func (m *Mirror) TopPlayers(limit int) ([]Player, error) {
	var players []Player
	err := m.store.ListOrdered("shots desc", limit, &players)
	if err != nil {
		return nil, fmt.Errorf("list top players: %w", err)
	}

	return players, nil
}

// WinnerHistory returns up to limit winners, most recent first.
func (m *Mirror) WinnerHistory(limit int) ([]Winner, error) {
	var winners []Winner
	err := m.store.ListOrdered("won_at desc", limit, &winners)
	if err != nil {
		return nil, fmt.Errorf("list winners: %w", err)
	}

	return winners, nil
}

func (m *Mirror) run() {
	defer close(m.done)

	for event := range m.queue {
		err := m.persist(event)
		if err != nil {
			m.logs.Errorw("failed to persist event",
				"event_id", event.ID,
				"event_type", event.Type,
				"error", err)
		}
	}
}

func (m *Mirror) persist(event core.Event) error {
	switch event.Type {
	case core.EventCommitAccepted:
		err := m.applyCommit(event)
		if err != nil {
			return err
		}
	case core.EventJackpotWon:
		err := m.applyJackpot(event)
		if err != nil {
			return err
		}
	}

	return m.store.Save(&GameEvent{
		ID:        event.ID,
		Type:      string(event.Type),
		Address:   event.Player.Hex(),
		AmountWei: amountString(event.Amount),
		Height:    event.Height,
		At:        event.At,
	})
}

func (m *Mirror) applyCommit(event core.Event) error {
	player, err := m.loadPlayer(event.Player.Hex())
	if err != nil {
		return err
	}

	spent, err := addAmount(player.TotalSpentWei, event.Amount)
	if err != nil {
		return fmt.Errorf("player %s: %w", player.Address, err)
	}

	player.Shots++
	player.TotalSpentWei = spent
	player.LastCommitAt = event.At

	err = m.store.Save(player)
	if err != nil {
		return fmt.Errorf("save player: %w", err)
	}

	return nil
}

func (m *Mirror) applyJackpot(event core.Event) error {
	player, err := m.loadPlayer(event.Player.Hex())
	if err != nil {
		return err
	}

	won, err := addAmount(player.TotalWonWei, event.Amount)
	if err != nil {
		return fmt.Errorf("player %s: %w", player.Address, err)
	}

	player.TotalWonWei = won
	err = m.store.Save(player)
	if err != nil {
		return fmt.Errorf("save player: %w", err)
	}

	err = m.store.Save(&Winner{
		Address:   event.Player.Hex(),
		AmountWei: amountString(event.Amount),
		Height:    event.Height,
		WonAt:     event.At,
	})
	if err != nil {
		return fmt.Errorf("save winner: %w", err)
	}

	return nil
}

func (m *Mirror) loadPlayer(address string) (*Player, error) {
	var player Player
	err := m.store.GetBy("address", address, &player)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return &Player{
				Address:       address,
				TotalSpentWei: "0",
				TotalWonWei:   "0",
			}, nil
		}
		return nil, fmt.Errorf("load player: %w", err)
	}

	return &player, nil
}

func amountString(amount *uint256.Int) string {
	if amount == nil {
		return "0"
	}
	return amount.Dec()
}

func addAmount(current string, delta *uint256.Int) (string, error) {
	total, err := uint256.FromDecimal(current)
	if err != nil {
		return "", fmt.Errorf("parse stored amount %q: %w", current, err)
	}
	if delta != nil {
		total.Add(total, delta)
	}

	return total.Dec(), nil
}
