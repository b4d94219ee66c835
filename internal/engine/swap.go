package engine

import (
	"context"
	"log/slog"

	"github.com/lugondev/go-amm/internal/errors"
	"github.com/lugondev/go-amm/internal/instruction"
	"github.com/lugondev/go-amm/internal/metrics"
	"github.com/lugondev/go-amm/internal/pool"
	"github.com/lugondev/go-amm/internal/validate"
	"github.com/lugondev/go-amm/pkg/u128"
)

// Swap fee, taken from the input leg: 0.3%.
const (
	FeeNumerator   = 997
	FeeDenominator = 1000
)

// Quote computes the fee-adjusted constant-product output for a trade:
//
//	afterFee = floor(amountIn * 997 / 1000)
//	out      = floor(afterFee * reserveOut / (reserveIn + afterFee))
//
// All arithmetic is checked; any overflow or undefined division is an
// arithmetic-category error. Quote is pure and usable off-chain.
func Quote(amountIn, reserveIn, reserveOut u128.Uint128) (u128.Uint128, error) {
	afterFee, err := u128.Mul(amountIn, u128.From64(FeeNumerator))
	if err != nil {
		return u128.Zero, arith(err)
	}
	afterFee, err = u128.Div(afterFee, u128.From64(FeeDenominator))
	if err != nil {
		return u128.Zero, arith(err)
	}

	numerator, err := u128.Mul(afterFee, reserveOut)
	if err != nil {
		return u128.Zero, arith(err)
	}
	denominator, err := u128.Add(reserveIn, afterFee)
	if err != nil {
		return u128.Zero, arith(err)
	}
	out, err := u128.Div(numerator, denominator)
	if err != nil {
		return u128.Zero, arith(err)
	}
	return out, nil
}

// swap sells AmountIn of one asset for the other.
//
// The input leg runs under the caller's authority; the output leg is
// the one place the pool acts as a signer, presenting its derivation
// seeds as proof of authority. The fee stays on the input leg:
// reserve_in grows by the full amount_in, which is what makes the
// invariant product non-decreasing across fee-bearing trades.
func (e *Engine) swap(ctx context.Context, logger *slog.Logger, accs *validate.Accounts, inst instruction.Swap) error {
	p, err := loadPool(accs)
	if err != nil {
		return err
	}

	if inst.AmountIn.IsZero() {
		return errors.ErrInvalidAmount
	}
	amountIn, err := u128.ToUint64(inst.AmountIn)
	if err != nil {
		return errors.ErrAmountTooLarge.Wrap(err)
	}

	_, bump, err := pool.Derive(e.programID, p.MintA, p.MintB)
	if err != nil {
		return err
	}
	seeds := pool.Seeds(p.MintA, p.MintB, bump)

	reserveIn := u128.FromBin(p.ReserveA)
	reserveOut := u128.FromBin(p.ReserveB)
	userIn, poolIn := accs.UserTokenA, accs.PoolTokenA
	poolOut, userOut := accs.PoolTokenB, accs.UserTokenB
	inAuthority := accs.UserAuthorityA
	if inst.Direction == instruction.BToA {
		reserveIn, reserveOut = reserveOut, reserveIn
		userIn, poolIn = accs.UserTokenB, accs.PoolTokenB
		poolOut, userOut = accs.PoolTokenA, accs.UserTokenA
		inAuthority = accs.UserAuthorityB
	}

	amountOut, err := Quote(inst.AmountIn, reserveIn, reserveOut)
	if err != nil {
		return err
	}
	if amountOut.IsZero() || amountOut.Cmp(reserveOut) > 0 {
		return errors.ErrInsufficientLiquidity.Wrapf("quote %s against reserve %s", amountOut, reserveOut)
	}
	amountOut64, err := u128.ToUint64(amountOut)
	if err != nil {
		return errors.ErrAmountTooLarge.Wrap(err)
	}

	// Input leg: caller pays the pool under their own authority.
	if err := e.tokens.Transfer(ctx, userIn.Pubkey, poolIn.Pubkey, inAuthority.Pubkey, amountIn); err != nil {
		return errors.ErrTransferFailed.Wrap(err)
	}
	// Output leg: the pool pays the caller, signing via its seeds.
	if err := e.tokens.TransferSigned(ctx, poolOut.Pubkey, userOut.Pubkey, accs.Pool.Pubkey, amountOut64, seeds); err != nil {
		return errors.ErrTransferFailed.Wrap(err)
	}

	newReserveIn, err := u128.Add(reserveIn, inst.AmountIn)
	if err != nil {
		return arith(err)
	}
	newReserveOut, err := u128.Sub(reserveOut, amountOut)
	if err != nil {
		return arith(err)
	}

	if inst.Direction == instruction.AToB {
		p.ReserveA = u128.ToBin(newReserveIn)
		p.ReserveB = u128.ToBin(newReserveOut)
	} else {
		p.ReserveA = u128.ToBin(newReserveOut)
		p.ReserveB = u128.ToBin(newReserveIn)
	}

	k, err := u128.Mul(newReserveIn, newReserveOut)
	if err != nil {
		return arith(err)
	}
	p.InvariantK = u128.ToBin(k)

	if err := p.Store(accs.Pool.Data); err != nil {
		return err
	}

	logger.Info("swap executed",
		"pool", accs.Pool.Pubkey.String(),
		"direction", inst.Direction.String(),
		"amount_in", inst.AmountIn.String(),
		"amount_out", amountOut.String(),
	)
	e.count(ctx, metrics.CounterSwaps)
	return nil
}
