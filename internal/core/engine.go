package core

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"go.uber.org/zap"
)

// TimeNow is swapped out in tests to pin the cooldown clock.
var TimeNow = time.Now

// Engine is the single-writer game ledger. Every operation takes the engine
// lock and either completes in full or leaves no trace; there is no partial
// application of effects.
type Engine struct {
	logs    *zap.SugaredLogger
	rules   Rules
	chain   ChainReader
	entropy EntropySource
	sender  PayoutSender
	events  EventSink

	mu          sync.Mutex
	ledger      *ledger
	commits     map[common.Address]PendingCommitment
	players     map[common.Address]*PlayerStats
	vault       *vault
	winners     *winnerRing
	sponsor     RoundSponsor
	globalShots uint64
	paused      bool
}

// NewEngine validates the rules once; an invalid configuration is a hard
// failure before any operation can run.
func NewEngine(logger *zap.SugaredLogger, rules Rules, chain ChainReader, entropy EntropySource, sender PayoutSender, events EventSink) (*Engine, error) {
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("validate rules: %w", err)
	}
	if events == nil {
		events = NopSink{}
	}

	return &Engine{
		logs:    logger,
		rules:   rules.clone(),
		chain:   chain,
		entropy: entropy,
		sender:  sender,
		events:  events,
		ledger:  newLedger(),
		commits: make(map[common.Address]PendingCommitment),
		players: make(map[common.Address]*PlayerStats),
		vault:   newVault(),
		winners: newWinnerRing(rules.MaxWinners),
	}, nil
}

// Commit escrows the exact stake against a commitment digest. A stale
// (past-window) commitment by the same player is discarded first, its stake
// forfeited into the pot.
func (e *Engine) Commit(ctx context.Context, player common.Address, digest common.Hash, paid *uint256.Int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.checkCommit(player, digest); err != nil {
		return err
	}
	if paid == nil || !paid.Eq(e.rules.StakeWei) {
		return ErrWrongStake
	}

	head, err := e.chain.Head(ctx)
	if err != nil {
		return fmt.Errorf("read chain head: %w", err)
	}
	if err := e.checkPending(player, head.Height); err != nil {
		return err
	}

	e.acceptCommit(player, digest, paid, head.Height)
	return nil
}

// CommitFirst is the pot-seeding variant: it requires the pot to be empty
// and accepts any payment at or above the first-stake minimum, crediting the
// full amount.
func (e *Engine) CommitFirst(ctx context.Context, player common.Address, digest common.Hash, paid *uint256.Int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.checkCommit(player, digest); err != nil {
		return err
	}
	if paid == nil || paid.Lt(e.rules.FirstStakeWei) {
		return ErrStakeTooLow
	}
	if !e.ledger.pot.IsZero() {
		return ErrPotNotEmpty
	}

	head, err := e.chain.Head(ctx)
	if err != nil {
		return fmt.Errorf("read chain head: %w", err)
	}
	if err := e.checkPending(player, head.Height); err != nil {
		return err
	}

	e.acceptCommit(player, digest, paid, head.Height)
	return nil
}

func (e *Engine) checkCommit(player common.Address, digest common.Hash) error {
	if e.paused {
		return ErrPaused
	}
	if digest == (common.Hash{}) {
		return ErrZeroCommitment
	}
	if remaining := e.cooldownRemaining(player); remaining > 0 {
		return ErrCooldownActive
	}
	return nil
}

// checkPending enforces at most one live commitment per player. A pending
// entry past the reveal window is reaped here, stake kept in the pot.
func (e *Engine) checkPending(player common.Address, height uint64) error {
	c, ok := e.commits[player]
	if !ok {
		return nil
	}
	if height <= c.Height+maxRevealWindowBlocks {
		return ErrCommitPending
	}

	delete(e.commits, player)
	e.publishCommitExpired(player, c)
	e.logs.Infow("stale commitment forfeited on re-commit",
		"player", player.Hex(),
		"commit_height", c.Height,
		"forfeited", c.Amount)
	return nil
}

func (e *Engine) acceptCommit(player common.Address, digest common.Hash, paid *uint256.Int, height uint64) {
	e.commits[player] = PendingCommitment{
		Digest: digest,
		Height: height,
		Amount: paid.Clone(),
	}
	e.ledger.creditPot(paid)

	stats := e.statsFor(player)
	stats.Shots++
	stats.TotalSpent.Add(stats.TotalSpent, paid)
	stats.LastCommitAt = TimeNow()
	e.globalShots++

	ev := newEvent(EventCommitAccepted)
	ev.Player = player
	ev.Amount = paid.Clone()
	ev.Height = height
	e.events.Publish(ev)

	e.logs.Infow("commitment accepted",
		"player", player.Hex(),
		"amount", paid,
		"height", height,
		"pot", e.ledger.pot)
}

// Reveal resolves a pending commitment. The minimum-pot check happens here,
// not at commit time, so a pot-seeding commit is always accepted and only
// blocked from resolving until the pot is funded. All bookkeeping completes
// before the push payment is attempted; a failed transfer routes the amount
// to the pending payout ledger instead of failing the reveal.
func (e *Engine) Reveal(ctx context.Context, player common.Address, secret []byte) (RevealResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.paused {
		return RevealResult{}, ErrPaused
	}
	if len(secret) == 0 {
		return RevealResult{}, ErrEmptySecret
	}

	c, ok := e.commits[player]
	if !ok {
		return RevealResult{}, ErrNoCommitment
	}

	head, err := e.chain.Head(ctx)
	if err != nil {
		return RevealResult{}, fmt.Errorf("read chain head: %w", err)
	}
	if head.Height <= c.Height+minRevealDelayBlocks {
		return RevealResult{}, ErrRevealTooEarly
	}
	if head.Height > c.Height+maxRevealWindowBlocks {
		return RevealResult{}, ErrRevealTooLate
	}
	if e.ledger.pot.Lt(e.rules.MinPotWei) {
		return RevealResult{}, ErrPotBelowMinimum
	}
	if CommitmentDigest(secret, player) != c.Digest {
		return RevealResult{}, ErrCommitMismatch
	}

	stats := e.statsFor(player)

	// A commitment can only win a pot larger than its own contribution;
	// a pot-seeding commit never wins back its own stake.
	canWin := e.ledger.pot.Gt(c.Amount)

	roll := uint64(BasisPoints)
	if canWin {
		roll, err = e.entropy.Roll(ctx, RollInput{
			Secret:       secret,
			Player:       player,
			CommitHeight: c.Height,
			GlobalShots:  e.globalShots,
			PlayerShots:  stats.Shots,
		})
		if err != nil {
			// Commitment stays intact, reveal is retryable.
			return RevealResult{}, fmt.Errorf("draw entropy: %w", err)
		}
	}
	win := canWin && roll < e.rules.WinChanceBP

	// State transition first, external transfer last.
	delete(e.commits, player)

	result := RevealResult{
		Win:    win,
		Roll:   roll,
		Height: head.Height,
	}

	resolved := newEvent(EventRevealResolved)
	resolved.Player = player
	resolved.Height = head.Height
	resolved.Win = win

	if !win {
		e.events.Publish(resolved)
		e.logs.Infow("reveal resolved",
			"player", player.Hex(),
			"win", false,
			"roll", roll,
			"height", head.Height)
		return result, nil
	}

	winnerAmount, houseAmount := e.ledger.splitPot(e.rules.WinShareBP)
	stats.TotalWon.Add(stats.TotalWon, winnerAmount)
	e.winners.push(WinnerRecord{
		Player: player,
		Amount: winnerAmount.Clone(),
		When:   TimeNow(),
		Height: head.Height,
	})
	if e.sponsor.Set {
		e.sponsor = RoundSponsor{}
		e.events.Publish(newEvent(EventSponsorCleared))
	}

	e.events.Publish(resolved)
	won := newEvent(EventJackpotWon)
	won.Player = player
	won.Amount = winnerAmount.Clone()
	won.Height = head.Height
	won.Win = true
	e.events.Publish(won)

	result.Amount = winnerAmount.Clone()

	e.logs.Infow("jackpot won",
		"player", player.Hex(),
		"amount", winnerAmount,
		"house_share", houseAmount,
		"roll", roll,
		"height", head.Height)

	if err := e.sender.Send(ctx, player, winnerAmount); err != nil {
		e.vault.credit(player, winnerAmount)

		failed := newEvent(EventPayoutFailed)
		failed.Player = player
		failed.Amount = winnerAmount.Clone()
		e.events.Publish(failed)

		e.logs.Errorw("push payout failed, amount moved to pending payouts",
			"error", err,
			"player", player.Hex(),
			"amount", winnerAmount)
		return result, nil
	}

	result.Paid = true
	return result, nil
}

// ExpireCommitment is the public reaper: once the reveal window has fully
// elapsed, any caller may discard another participant's stale commitment.
// The escrowed stake stays in the pot. Deliberately not pause-gated, it
// moves no funds.
func (e *Engine) ExpireCommitment(ctx context.Context, caller, owner common.Address) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	c, ok := e.commits[owner]
	if !ok {
		return ErrNoCommitment
	}

	head, err := e.chain.Head(ctx)
	if err != nil {
		return fmt.Errorf("read chain head: %w", err)
	}
	if head.Height <= c.Height+maxRevealWindowBlocks {
		return ErrCommitStillLive
	}

	delete(e.commits, owner)
	e.publishCommitExpired(owner, c)

	e.logs.Infow("stale commitment cleaned",
		"owner", owner.Hex(),
		"caller", caller.Hex(),
		"commit_height", c.Height,
		"forfeited", c.Amount)
	return nil
}

// ClaimPayout pulls the caller's owed balance. The entry is zeroed before
// the transfer so nothing can be claimed twice; a failed transfer restores
// it. Reachable while paused so owed funds stay recoverable during an
// incident.
func (e *Engine) ClaimPayout(ctx context.Context, caller common.Address) (*uint256.Int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	amount, ok := e.vault.take(caller)
	if !ok {
		return nil, ErrNothingOwed
	}

	if err := e.sender.Send(ctx, caller, amount); err != nil {
		e.vault.restore(caller, amount)
		return nil, fmt.Errorf("%w: %s", ErrSendFailed, err)
	}

	ev := newEvent(EventPayoutClaimed)
	ev.Player = caller
	ev.Amount = amount.Clone()
	e.events.Publish(ev)

	e.logs.Infow("pending payout claimed", "player", caller.Hex(), "amount", amount)
	return amount.Clone(), nil
}

// Sponsor attaches display metadata to the current round for a fixed fee
// routed entirely into the house funds. Cleared on the next win.
func (e *Engine) Sponsor(ctx context.Context, sponsor common.Address, name, url string, fee *uint256.Int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.paused {
		return ErrPaused
	}
	if fee == nil || !fee.Eq(e.rules.SponsorFeeWei) {
		return ErrWrongSponsorFee
	}

	e.ledger.creditHouse(fee)
	e.sponsor = RoundSponsor{
		Sponsor: sponsor,
		Name:    name,
		URL:     url,
		Set:     true,
	}

	ev := newEvent(EventSponsorSet)
	ev.Player = sponsor
	ev.Amount = fee.Clone()
	e.events.Publish(ev)

	e.logs.Infow("round sponsor set", "sponsor", sponsor.Hex(), "name", name, "fee", fee)
	return nil
}

// WithdrawHouseFunds sends the accumulated house funds to the configured
// house address. Administrator only.
func (e *Engine) WithdrawHouseFunds(ctx context.Context, caller common.Address) (*uint256.Int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.paused {
		return nil, ErrPaused
	}
	if caller != e.rules.AdminAddr {
		return nil, ErrNotAdmin
	}
	if e.ledger.houseFunds.IsZero() {
		return nil, ErrNoHouseFunds
	}

	amount := e.ledger.drainHouse()
	if err := e.sender.Send(ctx, e.rules.HouseAddr, amount); err != nil {
		e.ledger.restoreHouse(amount)
		return nil, fmt.Errorf("%w: %s", ErrSendFailed, err)
	}

	ev := newEvent(EventHouseWithdrawal)
	ev.Player = e.rules.HouseAddr
	ev.Amount = amount.Clone()
	e.events.Publish(ev)

	e.logs.Infow("house funds withdrawn", "to", e.rules.HouseAddr.Hex(), "amount", amount)
	return amount.Clone(), nil
}

// Pause trips the circuit breaker consulted by every fund-moving operation
// except payout claims.
func (e *Engine) Pause(caller common.Address) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if caller != e.rules.AdminAddr {
		return ErrNotAdmin
	}
	e.paused = true
	e.logs.Infow("game paused", "admin", caller.Hex())
	return nil
}

func (e *Engine) Unpause(caller common.Address) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if caller != e.rules.AdminAddr {
		return ErrNotAdmin
	}
	e.paused = false
	e.logs.Infow("game unpaused", "admin", caller.Hex())
	return nil
}

// --- read-only queries ---

func (e *Engine) PotSize() *uint256.Int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ledger.pot.Clone()
}

func (e *Engine) HouseBalance() *uint256.Int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ledger.houseFunds.Clone()
}

func (e *Engine) PlayerStats(player common.Address) (PlayerStats, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	stats, ok := e.players[player]
	if !ok {
		return PlayerStats{}, false
	}
	return stats.clone(), true
}

// CooldownRemaining reports how long until a commit by this player would
// pass the cooldown gate. Zero means a commit would not be rejected for
// cooldown right now.
func (e *Engine) CooldownRemaining(player common.Address) time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cooldownRemaining(player)
}

func (e *Engine) PendingCommitmentOf(player common.Address) (PendingCommitment, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	c, ok := e.commits[player]
	if !ok {
		return PendingCommitment{}, false
	}
	c.Amount = c.Amount.Clone()
	return c, true
}

func (e *Engine) PendingPayoutOf(player common.Address) *uint256.Int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.vault.owedTo(player)
}

func (e *Engine) RecentWinners() []WinnerRecord {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.winners.recent(recentWinnersLimit)
}

func (e *Engine) Rules() Rules {
	return e.rules.clone()
}

func (e *Engine) RoundSponsor() (RoundSponsor, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sponsor, e.sponsor.Set
}

func (e *Engine) Paused() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.paused
}

// --- internals, caller holds the lock ---

func (e *Engine) cooldownRemaining(player common.Address) time.Duration {
	stats, ok := e.players[player]
	if !ok || stats.LastCommitAt.IsZero() {
		return 0
	}
	elapsed := TimeNow().Sub(stats.LastCommitAt)
	if elapsed >= e.rules.Cooldown {
		return 0
	}
	return e.rules.Cooldown - elapsed
}

func (e *Engine) statsFor(player common.Address) *PlayerStats {
	stats, ok := e.players[player]
	if !ok {
		stats = &PlayerStats{
			Address:    player,
			TotalSpent: uint256.NewInt(0),
			TotalWon:   uint256.NewInt(0),
		}
		e.players[player] = stats
	}
	return stats
}

func (e *Engine) publishCommitExpired(owner common.Address, c PendingCommitment) {
	ev := newEvent(EventCommitExpired)
	ev.Player = owner
	ev.Amount = c.Amount.Clone()
	ev.Height = c.Height
	e.events.Publish(ev)
}
