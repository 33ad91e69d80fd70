package validation

import (
	"github.com/google/btree"

	"github.com/staked-chain/txvalidation/account"
	"github.com/staked-chain/txvalidation/coin"
	"github.com/staked-chain/txvalidation/ids"
	"github.com/staked-chain/txvalidation/tx"
	"github.com/staked-chain/txvalidation/witness"
)

func checkAttributes(attrs tx.Attributes, ctx ChainInfo) error {
	if attrs.ChainHexID != ctx.ChainHexID {
		return newError(WrongChainHexID, "tx chain id %#x, want %#x", attrs.ChainHexID, ctx.ChainHexID)
	}
	return nil
}

type txoPointerItem struct{ p ids.TxoPointer }

func (a txoPointerItem) Less(than btree.Item) bool { return a.p.Less(than.(txoPointerItem).p) }

// checkInputsBasic rejects an empty input list and any pair of equal
// pointers. Duplicate detection uses an ordered tree rather than an O(n^2)
// scan, following the dedup idiom google/btree documents for sorted-set
// use.
func checkInputsBasic(inputs []ids.TxoPointer) error {
	if len(inputs) == 0 {
		return newError(NoInputs, "transaction has no inputs")
	}
	seen := btree.New(8)
	for _, p := range inputs {
		item := txoPointerItem{p: p}
		if existing := seen.ReplaceOrInsert(item); existing != nil {
			return newError(DuplicateInputs, "input %s#%d appears more than once", p.ID, p.Index)
		}
	}
	return nil
}

func checkWitnessCount(inputs []ids.TxoPointer, witnesses []witness.TxWitness) error {
	if len(witnesses) > len(inputs) {
		return newError(UnexpectedWitnesses, "%d witnesses for %d inputs", len(witnesses), len(inputs))
	}
	if len(witnesses) < len(inputs) {
		return newError(MissingWitnesses, "%d witnesses for %d inputs", len(witnesses), len(inputs))
	}
	return nil
}

func checkOutputsBasic(outputs []tx.TxOut) error {
	if len(outputs) == 0 {
		return newError(NoOutputs, "transaction has no outputs")
	}
	for i, o := range outputs {
		if o.Value.IsZero() {
			return newError(ZeroCoin, "output %d has zero value", i)
		}
	}
	return nil
}

// checkInputs walks each input alongside its resolved prior output and
// witness, verifying the pointer matches, the output isn't still
// timelocked, and the witness authorizes the output's address. It
// accumulates the checked sum of spent value.
func checkInputs(
	inputs []ids.TxoPointer,
	witnesses []witness.TxWitness,
	resolved []ResolvedInput,
	mainTxID ids.TxID,
	ctx ChainInfo,
) (coin.Coin, error) {
	if len(resolved) != len(inputs) {
		return coin.Zero, newError(InvalidInput, "%d resolved inputs for %d inputs", len(resolved), len(inputs))
	}
	incoins := coin.Zero
	for i, input := range inputs {
		res := resolved[i]
		resolvedID, err := res.ID()
		if err != nil {
			return coin.Zero, wrapError(InvalidInput, err)
		}
		if !resolvedID.Equal(input.ID) {
			return coin.Zero, newError(InvalidInput, "resolved id %s does not match input id %s", resolvedID, input.ID)
		}
		out, ok := res.OutputAt(input.Index)
		if !ok {
			return coin.Zero, newError(InvalidInput, "input index %d out of range for tx %s", input.Index, input.ID)
		}
		if out.ValidFrom != nil && *out.ValidFrom > ctx.PreviousBlockTime {
			return coin.Zero, newError(OutputInTimelock, "output %s#%d unlocks at %d, previous block time %d", input.ID, input.Index, *out.ValidFrom, ctx.PreviousBlockTime)
		}
		if err := witness.Verify(witnesses[i], mainTxID, out.Address); err != nil {
			return coin.Zero, wrapError(EcdsaCrypto, err)
		}
		sum, err := coin.Add(incoins, out.Value)
		if err != nil {
			return coin.Zero, wrapError(InvalidSum, err)
		}
		incoins = sum
	}
	return incoins, nil
}

func checkInputOutputSums(incoins, outcoins, minFee coin.Coin) (tx.Fee, error) {
	needed, err := coin.Add(outcoins, minFee)
	if err != nil {
		return tx.Fee{}, wrapError(InvalidSum, err)
	}
	if incoins.Less(needed) {
		return tx.Fee{}, newError(InputOutputDoNotMatch, "incoins %s < outcoins+fee %s", incoins, needed)
	}
	fee, err := coin.Sub(incoins, outcoins)
	if err != nil {
		return tx.Fee{}, wrapError(InvalidSum, err)
	}
	return tx.NewFee(fee), nil
}

// VerifyTransfer checks an ordinary value transfer: every common
// structural check, every input's witness and timelock, and the balance
// inequality incoins >= outcoins + min_fee. It returns the fee paid.
func VerifyTransfer(
	transaction tx.Tx,
	witnesses []witness.TxWitness,
	ctx ChainInfo,
	resolved []ResolvedInput,
) (tx.Fee, error) {
	if err := checkAttributes(transaction.Attributes, ctx); err != nil {
		return tx.Fee{}, err
	}
	if err := checkInputsBasic(transaction.Inputs); err != nil {
		return tx.Fee{}, err
	}
	if err := checkWitnessCount(transaction.Inputs, witnesses); err != nil {
		return tx.Fee{}, err
	}
	if err := checkOutputsBasic(transaction.Outputs); err != nil {
		return tx.Fee{}, err
	}

	mainTxID, err := transaction.ID()
	if err != nil {
		return tx.Fee{}, wrapError(InvalidInput, err)
	}

	incoins, err := checkInputs(transaction.Inputs, witnesses, resolved, mainTxID, ctx)
	if err != nil {
		return tx.Fee{}, err
	}

	outcoins, err := transaction.GetOutputTotal()
	if err != nil {
		return tx.Fee{}, wrapError(InvalidSum, err)
	}

	return checkInputOutputSums(incoins, outcoins, ctx.MinFeeComputed.ToCoin())
}

// VerifyBondedDeposit checks a transaction that spends UTXO inputs into a
// staked account's bonded balance. maybeAccount is nil to create a fresh
// account, or a snapshot to add to an existing one; deposits never touch
// the destination account's nonce because the witnesses that authorize
// the transaction are on the spent inputs, not on the account.
func VerifyBondedDeposit(
	transaction account.DepositBondTx,
	witnesses []witness.TxWitness,
	ctx ChainInfo,
	resolved []ResolvedInput,
	maybeAccount *account.State,
) (tx.Fee, account.State, error) {
	if err := checkAttributes(transaction.Attributes, ctx); err != nil {
		return tx.Fee{}, account.State{}, err
	}
	if err := checkInputsBasic(transaction.Inputs); err != nil {
		return tx.Fee{}, account.State{}, err
	}
	if err := checkWitnessCount(transaction.Inputs, witnesses); err != nil {
		return tx.Fee{}, account.State{}, err
	}

	mainTxID, err := transaction.ID()
	if err != nil {
		return tx.Fee{}, account.State{}, wrapError(InvalidInput, err)
	}

	incoins, err := checkInputs(transaction.Inputs, witnesses, resolved, mainTxID, ctx)
	if err != nil {
		return tx.Fee{}, account.State{}, err
	}

	minFee := ctx.MinFeeComputed.ToCoin()
	if incoins.Less(minFee) || incoins.Equal(minFee) {
		return tx.Fee{}, account.State{}, newError(InputOutputDoNotMatch, "deposit %s does not exceed min fee %s", incoins, minFee)
	}
	depositAmount, err := coin.Sub(incoins, minFee)
	if err != nil {
		return tx.Fee{}, account.State{}, wrapError(InvalidSum, err)
	}

	var nextState account.State
	if maybeAccount != nil {
		nextState, err = account.Deposit(*maybeAccount, depositAmount)
		if err != nil {
			return tx.Fee{}, account.State{}, wrapError(InvalidSum, err)
		}
	} else {
		nextState, err = account.New(transaction.ToStakedAccount, depositAmount, ctx.PreviousBlockTime)
		if err != nil {
			return tx.Fee{}, account.State{}, wrapError(InvalidSum, err)
		}
	}

	return tx.NewFee(minFee), nextState, nil
}

// VerifyUnbonding checks a transaction that moves bonded stake into
// unbonded inside one account. The witness for an account-touching
// transaction is assumed to be checked by the caller before the engine is
// invoked; the engine only checks the nonce, the amount, and the balance.
// maybeAccount is nil when the caller has no snapshot for FromAccount.
func VerifyUnbonding(transaction account.UnbondTx, ctx ChainInfo, maybeAccount *account.State) (tx.Fee, account.State, error) {
	if err := checkAttributes(transaction.Attributes, ctx); err != nil {
		return tx.Fee{}, account.State{}, err
	}
	if maybeAccount == nil {
		return tx.Fee{}, account.State{}, newError(AccountNotFound, "no account snapshot for %s", transaction.FromAccount)
	}
	acc := *maybeAccount
	if transaction.Nonce != acc.Nonce {
		return tx.Fee{}, account.State{}, newError(AccountIncorrectNonce, "tx nonce %d, account nonce %d", transaction.Nonce, acc.Nonce)
	}
	if transaction.Value.IsZero() {
		return tx.Fee{}, account.State{}, newError(ZeroCoin, "unbond value is zero")
	}

	minFee := ctx.MinFeeComputed.ToCoin()
	required, err := coin.Add(transaction.Value, minFee)
	if err != nil {
		return tx.Fee{}, account.State{}, wrapError(InvalidSum, err)
	}
	if acc.Bonded.Less(required) {
		return tx.Fee{}, account.State{}, newError(InputOutputDoNotMatch, "bonded %s less than value+fee %s", acc.Bonded, required)
	}

	unbondedFrom := ctx.PreviousBlockTime + ids.Timestamp(ctx.UnbondingPeriod)
	nextState, err := account.Unbond(acc, transaction.Value, minFee, unbondedFrom)
	if err != nil {
		return tx.Fee{}, account.State{}, wrapError(InputOutputDoNotMatch, err)
	}
	return tx.NewFee(minFee), nextState, nil
}

// VerifyUnbondedWithdraw checks a transaction that turns an account's
// unbonded balance into UTXOs, each required to carry the account's
// unbonding timestamp as its valid_from lock. maybeAccount is nil when the
// caller has no snapshot for FromAccount.
func VerifyUnbondedWithdraw(transaction account.WithdrawUnbondedTx, ctx ChainInfo, maybeAccount *account.State) (tx.Fee, account.State, error) {
	if err := checkAttributes(transaction.Attributes, ctx); err != nil {
		return tx.Fee{}, account.State{}, err
	}
	if err := checkOutputsBasic(transaction.Outputs); err != nil {
		return tx.Fee{}, account.State{}, err
	}
	if maybeAccount == nil {
		return tx.Fee{}, account.State{}, newError(AccountNotFound, "no account snapshot for %s", transaction.FromAccount)
	}
	acc := *maybeAccount
	if transaction.Nonce != acc.Nonce {
		return tx.Fee{}, account.State{}, newError(AccountIncorrectNonce, "tx nonce %d, account nonce %d", transaction.Nonce, acc.Nonce)
	}
	if acc.UnbondedFrom > ctx.PreviousBlockTime {
		return tx.Fee{}, account.State{}, newError(AccountNotUnbonded, "unbonded_from %d after previous block time %d", acc.UnbondedFrom, ctx.PreviousBlockTime)
	}
	if acc.Unbonded.IsZero() {
		return tx.Fee{}, account.State{}, newError(ZeroCoin, "account has no unbonded balance")
	}

	for i, out := range transaction.Outputs {
		if out.ValidFrom == nil || *out.ValidFrom != acc.UnbondedFrom {
			return tx.Fee{}, account.State{}, newError(AccountWithdrawOutputNotLocked, "output %d missing lock at %d", i, acc.UnbondedFrom)
		}
	}

	outcoins, err := transaction.GetOutputTotal()
	if err != nil {
		return tx.Fee{}, account.State{}, wrapError(InvalidSum, err)
	}
	minFee := ctx.MinFeeComputed.ToCoin()
	required, err := coin.Add(outcoins, minFee)
	if err != nil {
		return tx.Fee{}, account.State{}, wrapError(InvalidSum, err)
	}
	if acc.Unbonded.Less(required) {
		return tx.Fee{}, account.State{}, newError(InputOutputDoNotMatch, "unbonded %s less than outputs+fee %s", acc.Unbonded, required)
	}
	fee, err := coin.Sub(acc.Unbonded, outcoins)
	if err != nil {
		return tx.Fee{}, account.State{}, wrapError(InvalidSum, err)
	}

	nextState, err := account.Withdraw(acc)
	if err != nil {
		return tx.Fee{}, account.State{}, wrapError(InputOutputDoNotMatch, err)
	}
	return tx.NewFee(fee), nextState, nil
}
