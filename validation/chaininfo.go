package validation

import (
	"github.com/staked-chain/txvalidation/account"
	"github.com/staked-chain/txvalidation/ids"
	"github.com/staked-chain/txvalidation/tx"
)

// ChainInfo is the immutable context a single validation call runs
// against: the fee floor, the chain's replay-protection id, the previous
// committed block's time, and the unbonding period. Callers derive it
// fresh from the last committed block and the current fee schedule; the
// engine never mutates or caches it.
type ChainInfo struct {
	MinFeeComputed    tx.Fee
	ChainHexID        uint8
	PreviousBlockTime ids.Timestamp
	UnbondingPeriod   account.UnbondingPeriod
}
