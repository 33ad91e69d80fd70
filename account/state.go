// Package account implements the staked-account side of the engine: the
// StakedState snapshot, its deposit/unbond/withdraw transitions, and the
// three account-touching transaction shapes.
package account

import (
	"errors"

	"github.com/staked-chain/txvalidation/coin"
	"github.com/staked-chain/txvalidation/ids"
)

// ErrBondedOverflow is returned when bonded+unbonded would exceed
// coin.MaxCoin, the state's one standing invariant.
var ErrBondedOverflow = errors.New("account: bonded plus unbonded exceeds maximum coin supply")

// State is a staked account's snapshot: how much of its stake is bonded
// (securing consensus, slashable), how much is unbonded (cooling down
// toward withdrawal), and the replay-protection nonce. bonded+unbonded
// never exceeds coin.MaxCoin.
type State struct {
	Address      ids.AccountKeyHash
	Nonce        uint64
	Bonded       coin.Coin
	Unbonded     coin.Coin
	UnbondedFrom ids.Timestamp
}

// New builds a fresh account snapshot with the given initial bonded
// balance and nonce 0, the shape produced by a deposit that creates an
// account for the first time.
func New(address ids.AccountKeyHash, bonded coin.Coin, unbondedFrom ids.Timestamp) (State, error) {
	s := State{Address: address, Bonded: bonded, UnbondedFrom: unbondedFrom}
	if err := s.checkInvariant(); err != nil {
		return State{}, err
	}
	return s, nil
}

func (s State) checkInvariant() error {
	if _, err := coin.Add(s.Bonded, s.Unbonded); err != nil {
		return ErrBondedOverflow
	}
	return nil
}
