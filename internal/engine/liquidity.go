package engine

import (
	"context"
	"log/slog"

	"github.com/lugondev/go-amm/internal/errors"
	"github.com/lugondev/go-amm/internal/instruction"
	"github.com/lugondev/go-amm/internal/ledger"
	"github.com/lugondev/go-amm/internal/metrics"
	"github.com/lugondev/go-amm/internal/validate"
	"github.com/lugondev/go-amm/pkg/u128"
)

// addLiquidity deposits both assets into the pool under the caller's
// own authority.
//
// Any positive amount pair is accepted; there is no proportionality
// check against the existing reserves, so a caller choosing a skewed
// pair moves the pool's effective exchange rate. That is an accepted
// characteristic of this pool design, not a defect.
func (e *Engine) addLiquidity(ctx context.Context, logger *slog.Logger, accs *validate.Accounts, inst instruction.AddLiquidity) error {
	p, err := loadPool(accs)
	if err != nil {
		return err
	}

	reserveA, err := ledger.UnpackTokenAccount(accs.PoolTokenA.Data)
	if err != nil {
		return err
	}
	reserveB, err := ledger.UnpackTokenAccount(accs.PoolTokenB.Data)
	if err != nil {
		return err
	}
	if reserveA.Mint != p.MintA || reserveB.Mint != p.MintB {
		return errors.ErrAssetMismatch.Wrapf("reserve accounts hold %s/%s", reserveA.Mint, reserveB.Mint)
	}

	if inst.AmountA.IsZero() || inst.AmountB.IsZero() {
		return errors.ErrInvalidAmount
	}

	amountA, err := u128.ToUint64(inst.AmountA)
	if err != nil {
		return errors.ErrAmountTooLarge.Wrap(err)
	}
	amountB, err := u128.ToUint64(inst.AmountB)
	if err != nil {
		return errors.ErrAmountTooLarge.Wrap(err)
	}

	// Both deposit legs run under the caller's signed authorities.
	// State is only touched after both succeed.
	if err := e.tokens.Transfer(ctx, accs.UserTokenA.Pubkey, accs.PoolTokenA.Pubkey, accs.UserAuthorityA.Pubkey, amountA); err != nil {
		return errors.ErrTransferFailed.Wrap(err)
	}
	if err := e.tokens.Transfer(ctx, accs.UserTokenB.Pubkey, accs.PoolTokenB.Pubkey, accs.UserAuthorityB.Pubkey, amountB); err != nil {
		return errors.ErrTransferFailed.Wrap(err)
	}

	newReserveA, err := u128.Add(u128.FromBin(p.ReserveA), inst.AmountA)
	if err != nil {
		return arith(err)
	}
	newReserveB, err := u128.Add(u128.FromBin(p.ReserveB), inst.AmountB)
	if err != nil {
		return arith(err)
	}
	k, err := u128.Mul(newReserveA, newReserveB)
	if err != nil {
		return arith(err)
	}

	p.ReserveA = u128.ToBin(newReserveA)
	p.ReserveB = u128.ToBin(newReserveB)
	p.InvariantK = u128.ToBin(k)

	if err := p.Store(accs.Pool.Data); err != nil {
		return err
	}

	logger.Info("liquidity added",
		"pool", accs.Pool.Pubkey.String(),
		"amount_a", inst.AmountA.String(),
		"amount_b", inst.AmountB.String(),
	)
	e.count(ctx, metrics.CounterDeposits)
	return nil
}
