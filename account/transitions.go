package account

import (
	"errors"

	"github.com/staked-chain/txvalidation/coin"
	"github.com/staked-chain/txvalidation/ids"
)

// ErrInsufficientBonded is returned by Unbond when the account does not
// hold enough bonded stake to cover the requested value plus fee.
var ErrInsufficientBonded = errors.New("account: insufficient bonded balance")

// ErrInsufficientUnbonded is returned by Withdraw when there is nothing
// unbonded to withdraw.
var ErrInsufficientUnbonded = errors.New("account: no unbonded balance to withdraw")

// Deposit adds amount to the account's bonded balance. It does not touch
// the nonce: witnesses for a deposit are on the spent UTXO inputs, not on
// the account itself, so a deposit never needs replay protection of its
// own.
func Deposit(s State, amount coin.Coin) (State, error) {
	bonded, err := coin.Add(s.Bonded, amount)
	if err != nil {
		return State{}, err
	}
	next := s
	next.Bonded = bonded
	if err := next.checkInvariant(); err != nil {
		return State{}, err
	}
	return next, nil
}

// Unbond moves value out of bonded and fee out of bonded (paid to the
// network), adds value to unbonded, advances the nonce by one, and resets
// the unbonding clock to unbondedFrom (normally previous_block_time plus
// the chain's unbonding period).
func Unbond(s State, value, fee coin.Coin, unbondedFrom ids.Timestamp) (State, error) {
	spent, err := coin.Add(value, fee)
	if err != nil {
		return State{}, err
	}
	bonded, err := coin.Sub(s.Bonded, spent)
	if err != nil {
		return State{}, ErrInsufficientBonded
	}
	unbonded, err := coin.Add(s.Unbonded, value)
	if err != nil {
		return State{}, err
	}
	next := s
	next.Bonded = bonded
	next.Unbonded = unbonded
	next.UnbondedFrom = unbondedFrom
	next.Nonce++
	if err := next.checkInvariant(); err != nil {
		return State{}, err
	}
	return next, nil
}

// Withdraw zeroes the account's unbonded balance and advances the nonce.
// The withdrawn amount becomes TxOuts; the orchestrator is responsible for
// constructing them and enforcing their timelock.
func Withdraw(s State) (State, error) {
	if s.Unbonded.IsZero() {
		return State{}, ErrInsufficientUnbonded
	}
	next := s
	next.Unbonded = coin.Zero
	next.Nonce++
	return next, nil
}
