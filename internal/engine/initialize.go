package engine

import (
	"context"
	"log/slog"

	bin "github.com/gagliardetto/binary"

	"github.com/lugondev/go-amm/internal/errors"
	"github.com/lugondev/go-amm/internal/instruction"
	"github.com/lugondev/go-amm/internal/ledger"
	"github.com/lugondev/go-amm/internal/metrics"
	"github.com/lugondev/go-amm/internal/pool"
	"github.com/lugondev/go-amm/internal/validate"
)

// initialize creates the pool record for a mint pair, bootstrapping the
// pool account inline when it has no funding yet.
//
// The bootstrap (fund, allocate, assign) only runs when the account is
// observed with zero lamports, so a pre-funded-and-assigned account is
// accepted as-is and only the record initialization applies.
func (e *Engine) initialize(ctx context.Context, logger *slog.Logger, accs *validate.Accounts, inst instruction.Initialize) error {
	expected, bump, err := pool.Derive(e.programID, inst.MintA, inst.MintB)
	if err != nil {
		return err
	}
	if accs.Pool.Pubkey != expected {
		return errors.ErrAddressMismatch.Wrapf("got %s, want %s", accs.Pool.Pubkey, expected)
	}
	seeds := pool.Seeds(inst.MintA, inst.MintB, bump)

	if accs.Pool.Lamports == 0 {
		lamports := e.rent.MinimumBalance(pool.RecordSize)
		if err := e.system.FundAccount(ctx, accs.User.Pubkey, accs.Pool.Pubkey, lamports); err != nil {
			return errors.ErrBootstrapFailed.Wrap(err)
		}
		if err := e.system.Allocate(ctx, accs.Pool.Pubkey, pool.RecordSize, seeds); err != nil {
			return errors.ErrBootstrapFailed.Wrap(err)
		}
		if err := e.system.Assign(ctx, accs.Pool.Pubkey, e.programID, seeds); err != nil {
			return errors.ErrBootstrapFailed.Wrap(err)
		}
	}

	if accs.Pool.Owner != e.programID {
		return errors.ErrInvalidAccountOwner.Wrapf("pool account owned by %s", accs.Pool.Owner)
	}

	p, err := pool.Decode(accs.Pool.Data)
	if err != nil {
		return err
	}
	if p.IsInitialized {
		return errors.ErrAlreadyInitialized
	}

	reserveA, err := ledger.UnpackTokenAccount(accs.PoolTokenA.Data)
	if err != nil {
		return err
	}
	reserveB, err := ledger.UnpackTokenAccount(accs.PoolTokenB.Data)
	if err != nil {
		return err
	}
	if reserveA.Mint != inst.MintA || reserveB.Mint != inst.MintB {
		return errors.ErrAssetMismatch.Wrapf("reserve accounts hold %s/%s", reserveA.Mint, reserveB.Mint)
	}

	p.IsInitialized = true
	p.MintA = inst.MintA
	p.MintB = inst.MintB
	p.ReserveA = bin.Uint128{}
	p.ReserveB = bin.Uint128{}
	p.InvariantK = bin.Uint128{}

	if err := p.Store(accs.Pool.Data); err != nil {
		return err
	}

	logger.Info("pool initialized",
		"pool", accs.Pool.Pubkey.String(),
		"mint_a", inst.MintA.String(),
		"mint_b", inst.MintB.String(),
		"bump", bump,
	)
	e.count(ctx, metrics.CounterPoolsInitialized)
	return nil
}
