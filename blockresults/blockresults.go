// Package blockresults parses the consensus layer's block-result payload
// and extracts the set of transaction ids it reports as valid. This is a
// boundary contract, not part of the validation engine: it never calls
// into the validation package and the engine never calls into it.
package blockresults

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/staked-chain/txvalidation/ids"
)

// ValidTransactionsEventType is the Tendermint event type under which a
// block result reports the set of transactions that passed validation.
const ValidTransactionsEventType = "ValidTransactions"

// ErrMalformedAttribute is returned when an attribute's value does not
// base64-decode to exactly 32 bytes.
var ErrMalformedAttribute = errors.New("blockresults: attribute value is not a 32-byte id")

// Attribute is one key/value pair attached to an event.
type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Event is one event emitted by a deliver_tx execution.
type Event struct {
	Type       string      `json:"type"`
	Attributes []Attribute `json:"attributes"`
}

// DeliverTx is one transaction's execution result within a block.
type DeliverTx struct {
	Events []Event `json:"events"`
}

// Results is the results object nested inside a block-result payload.
type Results struct {
	DeliverTx []DeliverTx `json:"deliver_tx"`
}

// BlockResults is a Tendermint block_results RPC response, reduced to the
// fields this boundary cares about.
type BlockResults struct {
	Height  string  `json:"height"`
	Results Results `json:"results"`
}

// Parse decodes a block_results JSON payload.
func Parse(data []byte) (BlockResults, error) {
	var br BlockResults
	if err := json.Unmarshal(data, &br); err != nil {
		return BlockResults{}, fmt.Errorf("blockresults: %w", err)
	}
	return br, nil
}

// IDs returns the set of transaction ids reported valid by any
// ValidTransactionsEventType event across every deliver_tx entry. A nil or
// empty DeliverTx list yields an empty, non-nil set.
func (b BlockResults) IDs() (map[ids.TxID]struct{}, error) {
	out := make(map[ids.TxID]struct{})
	for _, delivered := range b.Results.DeliverTx {
		for _, event := range delivered.Events {
			if event.Type != ValidTransactionsEventType {
				continue
			}
			for _, attr := range event.Attributes {
				decoded, err := base64.StdEncoding.DecodeString(attr.Value)
				if err != nil {
					return nil, fmt.Errorf("%w: %s", ErrMalformedAttribute, err)
				}
				if len(decoded) != ids.IDLen {
					return nil, ErrMalformedAttribute
				}
				var id ids.TxID
				copy(id[:], decoded)
				out[id] = struct{}{}
			}
		}
	}
	return out, nil
}
