package core

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// vault is the pull side of push-then-pull payments: amounts owed to
// addresses whose direct transfer failed. Entries persist until claimed.
type vault struct {
	owed map[common.Address]*uint256.Int
}

func newVault() *vault {
	return &vault{
		owed: make(map[common.Address]*uint256.Int),
	}
}

func (v *vault) credit(addr common.Address, amount *uint256.Int) {
	if have, ok := v.owed[addr]; ok {
		have.Add(have, amount)
		return
	}
	v.owed[addr] = amount.Clone()
}

// take removes and returns the full owed balance. The entry is gone before
// any transfer is attempted, so a second claim sees nothing owed.
func (v *vault) take(addr common.Address) (*uint256.Int, bool) {
	amount, ok := v.owed[addr]
	if !ok {
		return nil, false
	}
	delete(v.owed, addr)
	return amount, true
}

// restore puts back a balance whose claim transfer failed.
func (v *vault) restore(addr common.Address, amount *uint256.Int) {
	v.credit(addr, amount)
}

func (v *vault) owedTo(addr common.Address) *uint256.Int {
	if amount, ok := v.owed[addr]; ok {
		return amount.Clone()
	}
	return uint256.NewInt(0)
}
