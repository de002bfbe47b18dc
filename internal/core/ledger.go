package core

import "github.com/holiman/uint256"

// ledger holds the two shared accumulators. It is only ever touched through
// the named transitions below, under the engine lock.
type ledger struct {
	pot        *uint256.Int
	houseFunds *uint256.Int
}

func newLedger() *ledger {
	return &ledger{
		pot:        uint256.NewInt(0),
		houseFunds: uint256.NewInt(0),
	}
}

// creditPot is the only transition that increases the pot: the full paid
// amount of an accepted commit.
func (l *ledger) creditPot(amount *uint256.Int) {
	l.pot.Add(l.pot, amount)
}

// splitPot disburses the entire pot on a win: the winner share rounds down
// and the remainder flows to the house, so no wei is ever lost. The pot is
// exactly zero afterwards.
func (l *ledger) splitPot(winShareBP uint64) (winner, house *uint256.Int) {
	winner = new(uint256.Int).Mul(l.pot, uint256.NewInt(winShareBP))
	winner.Div(winner, uint256.NewInt(BasisPoints))

	house = new(uint256.Int).Sub(l.pot, winner)
	l.houseFunds.Add(l.houseFunds, house)
	l.pot.Clear()
	return winner, house
}

// creditHouse routes side fees (round sponsorship) into the house funds.
func (l *ledger) creditHouse(amount *uint256.Int) {
	l.houseFunds.Add(l.houseFunds, amount)
}

// drainHouse zeroes the house funds and returns the withdrawn amount.
func (l *ledger) drainHouse() *uint256.Int {
	out := l.houseFunds.Clone()
	l.houseFunds.Clear()
	return out
}

// restoreHouse undoes a drain whose transfer failed.
func (l *ledger) restoreHouse(amount *uint256.Int) {
	l.houseFunds.Add(l.houseFunds, amount)
}
