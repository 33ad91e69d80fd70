package blockresults_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/staked-chain/txvalidation/blockresults"
)

var _ = Describe("BlockResults", func() {
	Describe("IDs", func() {
		It("extracts a single valid transaction id", func() {
			br := blockresults.BlockResults{
				Height: "2",
				Results: blockresults.Results{
					DeliverTx: []blockresults.DeliverTx{{
						Events: []blockresults.Event{{
							Type: blockresults.ValidTransactionsEventType,
							Attributes: []blockresults.Attribute{{
								Key:   "dHhpZA==",
								Value: "kOzcmhZgAAaw5roBdqDNniwRjjKNe+foJEiDAOObTDQ=",
							}},
						}},
					}},
				},
			}

			got, err := br.IDs()
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(HaveLen(1))
		})

		It("rejects an attribute that does not decode to 32 bytes", func() {
			br := blockresults.BlockResults{
				Height: "2",
				Results: blockresults.Results{
					DeliverTx: []blockresults.DeliverTx{{
						Events: []blockresults.Event{{
							Type: blockresults.ValidTransactionsEventType,
							Attributes: []blockresults.Attribute{{
								Key:   "dHhpZA==",
								Value: "kOzcmhZgAAaw5riwRjjKNe+foJEiDAOObTDQ=",
							}},
						}},
					}},
				},
			}

			_, err := br.IDs()
			Expect(err).To(HaveOccurred())
			Expect(err).To(MatchError(blockresults.ErrMalformedAttribute))
		})

		It("returns an empty set when deliver_tx is absent", func() {
			br := blockresults.BlockResults{Height: "2"}

			got, err := br.IDs()
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(BeEmpty())
		})

		It("ignores events of other types", func() {
			br := blockresults.BlockResults{
				Results: blockresults.Results{
					DeliverTx: []blockresults.DeliverTx{{
						Events: []blockresults.Event{{
							Type: "SomeOtherEvent",
							Attributes: []blockresults.Attribute{{
								Key:   "k",
								Value: "kOzcmhZgAAaw5roBdqDNniwRjjKNe+foJEiDAOObTDQ=",
							}},
						}},
					}},
				},
			}

			got, err := br.IDs()
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(BeEmpty())
		})
	})

	Describe("Parse", func() {
		It("decodes a JSON payload", func() {
			payload := []byte(`{"height":"2","results":{"deliver_tx":[{"events":[{"type":"ValidTransactions","attributes":[{"key":"a","value":"kOzcmhZgAAaw5roBdqDNniwRjjKNe+foJEiDAOObTDQ="}]}]}]}}`)
			br, err := blockresults.Parse(payload)
			Expect(err).NotTo(HaveOccurred())
			Expect(br.Height).To(Equal("2"))

			ids, err := br.IDs()
			Expect(err).NotTo(HaveOccurred())
			Expect(ids).To(HaveLen(1))
		})
	})
})
