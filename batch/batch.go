// Package batch provides concurrent validation of independent
// transactions. The validation engine itself is synchronous and
// single-threaded per call; batch exploits the fact that unrelated
// transactions can be resolved and verified in parallel by the caller.
package batch

import (
	"context"
	"fmt"

	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"

	"github.com/staked-chain/txvalidation/ids"
	"github.com/staked-chain/txvalidation/tx"
	"github.com/staked-chain/txvalidation/validation"
	"github.com/staked-chain/txvalidation/witness"
)

// Resolver resolves an input pointer to the prior transaction it names,
// the abstraction a caller's UTXO store implements so batch never needs
// to know about storage.
type Resolver interface {
	Resolve(ctx context.Context, pointer ids.TxoPointer) (validation.ResolvedInput, error)
}

// ResolveInputs resolves every pointer concurrently via resolver,
// preserving input order in the returned slice. Every resolution is started
// at once; the first failure cancels the context passed to the others, and
// that first error is returned.
func ResolveInputs(ctx context.Context, resolver Resolver, pointers []ids.TxoPointer) ([]validation.ResolvedInput, error) {
	out := make([]validation.ResolvedInput, len(pointers))
	g, gctx := errgroup.WithContext(ctx)
	for i, p := range pointers {
		i, p := i, p
		g.Go(func() error {
			resolved, err := resolver.Resolve(gctx, p)
			if err != nil {
				return fmt.Errorf("batch: resolving input %d (%s#%d): %w", i, p.ID, p.Index, err)
			}
			out[i] = resolved
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// TransferJob bundles one transfer transaction's full verification input.
type TransferJob struct {
	Tx        tx.Tx
	Witnesses []witness.TxWitness
	Resolved  []validation.ResolvedInput
}

// TransferResult is one job's verification outcome, tagged with its
// original index so results can be matched back to requests after
// concurrent completion.
type TransferResult struct {
	Index int
	Fee   tx.Fee
	Err   error
}

// ValidateTransfers verifies every job concurrently against the same
// ChainInfo and returns one result per job, in the same order the jobs
// were given — each job's outcome is independent, so one job's error
// never aborts the others.
func ValidateTransfers(ctx context.Context, jobs []TransferJob, chainInfo validation.ChainInfo) []TransferResult {
	results := make([]TransferResult, len(jobs))
	var g errgroup.Group
	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			fee, err := validation.VerifyTransfer(job.Tx, job.Witnesses, chainInfo, job.Resolved)
			results[i] = TransferResult{Index: i, Fee: fee, Err: err}
			return nil
		})
	}
	// Every job reports through results rather than through the group's
	// own error, so Wait can never fail here; it only blocks until all
	// goroutines have finished.
	_ = g.Wait()
	return results
}

// FailedIndices returns the indices of every failed result, sorted
// ascending for deterministic reporting.
func FailedIndices(results []TransferResult) []int {
	failed := make([]int, 0)
	for _, r := range results {
		if r.Err != nil {
			failed = append(failed, r.Index)
		}
	}
	slices.Sort(failed)
	return failed
}
