// Command txvalidate wires the validation engine's ambient layer
// together: config loading, structured logging, Prometheus metrics, and
// OpenTelemetry tracing around the pure engine in package validation.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/staked-chain/txvalidation/account"
	"github.com/staked-chain/txvalidation/coin"
	"github.com/staked-chain/txvalidation/config"
	"github.com/staked-chain/txvalidation/ids"
	"github.com/staked-chain/txvalidation/logging"
	"github.com/staked-chain/txvalidation/metrics"
	"github.com/staked-chain/txvalidation/telemetry"
	"github.com/staked-chain/txvalidation/tx"
	"github.com/staked-chain/txvalidation/validation"
	"github.com/staked-chain/txvalidation/witness"
)

// errNoMetricsAddress mirrors the original CLI's own sentinel-error style
// for a flag combination that cannot be satisfied.
var errNoMetricsAddress = errors.New("txvalidate: serve requires --metrics-address")

func main() {
	fs := config.BuildFlagSet()
	root := &cobra.Command{
		Use:   "txvalidate",
		Short: "Validate transactions against the staked-account UTXO engine",
	}
	root.PersistentFlags().AddFlagSet(fs)

	root.AddCommand(newDemoCommand())
	root.AddCommand(newServeCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadRuntime(fs *pflag.FlagSet) (config.Config, *zap.Logger, *metrics.Metrics, error) {
	cfg, err := config.Load(fs)
	if err != nil {
		return config.Config{}, nil, nil, err
	}

	highlight, err := logging.ToHighlight("auto", os.Stderr.Fd())
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	logger, err := logging.New(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile, Highlight: highlight})
	if err != nil {
		return config.Config{}, nil, nil, err
	}

	m, err := metrics.New(cfg.MetricsNamespace, prometheus.DefaultRegisterer)
	if err != nil {
		return config.Config{}, nil, nil, err
	}

	return cfg, logger, m, nil
}

func newDemoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run a single built-in transfer through the engine and print its fee",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, m, err := loadRuntime(cmd.Flags())
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			tp := telemetry.NewProvider(cfg.TraceSampleRatio)
			defer tp.Shutdown(context.Background()) //nolint:errcheck
			otel.SetTracerProvider(tp)

			ctx, span := telemetry.StartVerifySpan(cmd.Context(), "transfer")
			start := time.Now()
			fee, verifyErr := runDemoTransfer(cfg)
			elapsed := time.Since(start).Seconds()
			telemetry.EndSpan(span, verifyErr)
			m.ObserveResult("transfer", elapsed, verifyErr)
			_ = ctx

			if verifyErr != nil {
				logger.Error("demo transfer failed", zap.Error(verifyErr))
				return verifyErr
			}
			logger.Info("demo transfer verified", zap.Uint64("fee", fee.ToCoin().Uint64()))
			fmt.Println(fee.ToCoin().Uint64())
			return nil
		},
	}
}

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve Prometheus metrics for a long-running validation process",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, _, err := loadRuntime(cmd.Flags())
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			if cfg.MetricsAddress == "" {
				return errNoMetricsAddress
			}

			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			logger.Info("serving metrics", zap.String("address", cfg.MetricsAddress))
			return http.ListenAndServe(cfg.MetricsAddress, mux)
		},
	}
}

// runDemoTransfer exercises VerifyTransfer against a fixed, well-formed
// transaction so `txvalidate demo` has something deterministic to print
// without requiring a UTXO store.
func runDemoTransfer(cfg config.Config) (tx.Fee, error) {
	secret := make([]byte, 32)
	for i := range secret {
		secret[i] = 0xcc
	}
	sk, err := witness.SecretKeyFromBytes(secret)
	if err != nil {
		return tx.Fee{}, err
	}
	tree, err := witness.NewMerkleTree([]witness.RawPubkey{sk.PublicKey()})
	if err != nil {
		return tx.Fee{}, err
	}
	address := ids.NewMerkleTreeAddress(tree.Root())

	resolvedTx := tx.New(cfg.ChainHexID)
	resolvedTx.AddInput(ids.TxoPointer{ID: ids.TxID{0x99}, Index: 0})
	tenCoins, err := coin.New(10)
	if err != nil {
		return tx.Fee{}, err
	}
	resolvedTx.AddOutput(tx.NewTxOut(address, tenCoins))
	resolvedID, err := resolvedTx.ID()
	if err != nil {
		return tx.Fee{}, err
	}

	transaction := tx.New(cfg.ChainHexID)
	transaction.AddInput(ids.TxoPointer{ID: resolvedID, Index: 0})
	nineCoins, err := coin.New(9)
	if err != nil {
		return tx.Fee{}, err
	}
	transaction.AddOutput(tx.NewTxOut(address, nineCoins))

	txID, err := transaction.ID()
	if err != nil {
		return tx.Fee{}, err
	}
	sig, err := sk.SignSchnorr([32]byte(txID))
	if err != nil {
		return tx.Fee{}, err
	}
	proof, err := tree.GenerateProof(sk.PublicKey())
	if err != nil {
		return tx.Fee{}, err
	}
	witnesses := []witness.TxWitness{witness.NewTreeSig(witness.TreeSig{Signature: sig, PublicKey: sk.PublicKey(), Proof: proof})}

	minFee, err := coin.New(cfg.MinFee)
	if err != nil {
		return tx.Fee{}, err
	}
	ctx := validation.ChainInfo{
		MinFeeComputed:  tx.NewFee(minFee),
		ChainHexID:      cfg.ChainHexID,
		UnbondingPeriod: account.UnbondingPeriod(cfg.UnbondingPeriod),
	}
	resolved := []validation.ResolvedInput{validation.TransferResolved{Tx: resolvedTx}}
	return validation.VerifyTransfer(transaction, witnesses, ctx, resolved)
}
