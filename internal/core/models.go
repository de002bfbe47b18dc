package core

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/jellydator/validation"
)

const (
	// BasisPoints is the scale for shares and win chance: 10000 == 100%.
	BasisPoints = 10000

	// minRevealDelayBlocks is the number of blocks that must be mined past
	// the commit before a reveal is accepted. The deciding entropy is the
	// hash of the block right after the commit, which does not exist yet
	// at commit time.
	minRevealDelayBlocks = 1

	// maxRevealWindowBlocks bounds how long a commitment stays revealable.
	// It matches the historic block hash lookup limit.
	maxRevealWindowBlocks = 256

	// recentWinnersLimit caps how many records RecentWinners returns.
	recentWinnersLimit = 10

	// maxCooldown is the upper bound for the configured cooldown.
	maxCooldown = 24 * time.Hour
)

// Rules holds the game parameters. Immutable after construction.
type Rules struct {
	StakeWei      *uint256.Int
	FirstStakeWei *uint256.Int
	SponsorFeeWei *uint256.Int
	MinPotWei     *uint256.Int
	Cooldown      time.Duration
	WinShareBP    uint64
	HouseShareBP  uint64
	WinChanceBP   uint64
	MaxWinners    int
	HouseAddr     common.Address
	AdminAddr     common.Address
}

func (r Rules) Validate() error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.StakeWei, validation.Required, validation.By(nonZeroAmount)),
		validation.Field(&r.FirstStakeWei, validation.Required, validation.By(nonZeroAmount)),
		validation.Field(&r.SponsorFeeWei, validation.Required),
		validation.Field(&r.MinPotWei, validation.Required),
		validation.Field(&r.Cooldown, validation.Required, validation.Min(time.Second), validation.Max(maxCooldown)),
		validation.Field(&r.WinShareBP, validation.Required, validation.Max(uint64(BasisPoints))),
		validation.Field(&r.HouseShareBP, validation.Max(uint64(BasisPoints))),
		validation.Field(&r.WinChanceBP, validation.Required, validation.Max(uint64(BasisPoints))),
		validation.Field(&r.MaxWinners, validation.Required, validation.Min(1)),
		validation.Field(&r.HouseAddr, validation.By(nonZeroAddress)),
		validation.Field(&r.AdminAddr, validation.By(nonZeroAddress)),
	)
	if err != nil {
		return err
	}

	if r.WinShareBP+r.HouseShareBP != BasisPoints {
		return ErrSharesNotWhole
	}
	return nil
}

func nonZeroAmount(value interface{}) error {
	amount, ok := value.(*uint256.Int)
	if !ok || amount == nil || amount.IsZero() {
		return ErrZeroAmount
	}
	return nil
}

func nonZeroAddress(value interface{}) error {
	addr, ok := value.(common.Address)
	if !ok || addr == (common.Address{}) {
		return ErrZeroAddress
	}
	return nil
}

// clone returns a deep copy so callers cannot mutate engine state through
// the shared amount pointers.
func (r Rules) clone() Rules {
	out := r
	out.StakeWei = r.StakeWei.Clone()
	out.FirstStakeWei = r.FirstStakeWei.Clone()
	out.SponsorFeeWei = r.SponsorFeeWei.Clone()
	out.MinPotWei = r.MinPotWei.Clone()
	return out
}

// PlayerStats tracks a participant's lifetime activity. Created lazily on
// the first accepted commit, never destroyed.
type PlayerStats struct {
	Address      common.Address
	Shots        uint64
	TotalSpent   *uint256.Int
	TotalWon     *uint256.Int
	LastCommitAt time.Time
}

func (s PlayerStats) clone() PlayerStats {
	out := s
	out.TotalSpent = s.TotalSpent.Clone()
	out.TotalWon = s.TotalWon.Clone()
	return out
}

// PendingCommitment is the stored half of the commit-reveal pair: only the
// one-way digest, never the secret.
type PendingCommitment struct {
	Digest common.Hash
	Height uint64
	Amount *uint256.Int
}

// WinnerRecord is one entry of the bounded winner history.
type WinnerRecord struct {
	Player common.Address
	Amount *uint256.Int
	When   time.Time
	Height uint64
}

// RoundSponsor is display metadata attached to the current round for a fee.
// Cleared automatically on the next win.
type RoundSponsor struct {
	Sponsor common.Address
	Name    string
	URL     string
	Set     bool
}

// ChainHead is the engine's view of the latest block.
type ChainHead struct {
	Height   uint64
	Hash     common.Hash
	Beacon   common.Hash
	Proposer common.Address
	Time     uint64
}

// RevealResult reports how a reveal resolved. Paid is false when the push
// payment was rerouted to the pending payout ledger.
type RevealResult struct {
	Win    bool
	Roll   uint64
	Amount *uint256.Int
	Paid   bool
	Height uint64
}
