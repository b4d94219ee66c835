// Package engine implements the pool state-transition logic: request
// validation, opcode dispatch, the constant-product swap math, and the
// atomic sequencing of external transfers with local state mutation.
//
// Each request is a single sequential unit of work. External transfer
// legs run synchronously and in order; the pool record is rewritten
// exactly once, strictly after every leg has succeeded. Any failure
// aborts the request before a byte of pool state changes.
package engine

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lugondev/go-amm/internal/errors"
	"github.com/lugondev/go-amm/internal/instruction"
	"github.com/lugondev/go-amm/internal/ledger"
	"github.com/lugondev/go-amm/internal/metrics"
	"github.com/lugondev/go-amm/internal/pool"
	"github.com/lugondev/go-amm/internal/validate"
	"github.com/lugondev/go-amm/pkg/types"
)

// Engine processes amm requests against pool accounts.
type Engine struct {
	programID types.Pubkey
	tokens    ledger.TokenLedger
	system    ledger.SystemLedger
	rent      ledger.Rent
	logger    *slog.Logger
	metrics   *metrics.Collection
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithMetrics sets the metrics collection the engine reports to.
func WithMetrics(collection *metrics.Collection) Option {
	return func(e *Engine) {
		if collection != nil {
			e.metrics = collection
		}
	}
}

// New creates an Engine for the given program identity and external
// ledger capabilities.
func New(
	programID types.Pubkey,
	tokens ledger.TokenLedger,
	system ledger.SystemLedger,
	rent ledger.Rent,
	opts ...Option,
) *Engine {
	e := &Engine{
		programID: programID,
		tokens:    tokens,
		system:    system,
		rent:      rent,
		logger:    slog.Default(),
		metrics:   metrics.NewCollection(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Process executes one request: bind and validate the account list,
// decode the instruction, dispatch, and report the outcome. The
// returned error, if any, carries the failure category code.
func (e *Engine) Process(ctx context.Context, accounts []*types.AccountInfo, data []byte) error {
	logger := e.logger.With("request_id", uuid.NewString())

	accs, err := validate.Bind(accounts)
	if err != nil {
		return e.fail(ctx, logger, err)
	}
	if err := accs.Validate(); err != nil {
		return e.fail(ctx, logger, err)
	}

	inst, err := instruction.Decode(data)
	if err != nil {
		return e.fail(ctx, logger, err)
	}

	switch inst := inst.(type) {
	case instruction.Initialize:
		err = e.initialize(ctx, logger, accs, inst)
	case instruction.AddLiquidity:
		err = e.addLiquidity(ctx, logger, accs, inst)
	case instruction.Swap:
		err = e.swap(ctx, logger, accs, inst)
	}
	if err != nil {
		return e.fail(ctx, logger, err)
	}

	e.count(ctx, metrics.CounterRequestsProcessed)
	return nil
}

// loadPool decodes the pool record and rejects uninitialized pools.
func loadPool(accs *validate.Accounts) (*pool.Pool, error) {
	p, err := pool.Decode(accs.Pool.Data)
	if err != nil {
		return nil, err
	}
	if !p.IsInitialized {
		return nil, errors.ErrNotInitialized
	}
	return p, nil
}

// arith tags a wide-arithmetic failure with the overflow category.
func arith(err error) error {
	return errors.ErrArithmeticOverflow.Wrap(err)
}

func (e *Engine) fail(ctx context.Context, logger *slog.Logger, err error) error {
	logger.Error("request failed", "error", err)
	e.count(ctx, metrics.CounterRequestsFailed)
	return err
}

func (e *Engine) count(ctx context.Context, name string) {
	_ = e.metrics.IncrementCounter(ctx, name, 1)
}
