package cmd

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lugondev/go-amm/internal/engine"
	"github.com/lugondev/go-amm/internal/pool"
	ammrpc "github.com/lugondev/go-amm/internal/solana"
	"github.com/lugondev/go-amm/pkg/u128"
)

var poolCmd = &cobra.Command{
	Use:   "pool",
	Short: "Pool commands",
	Long:  `Commands for deriving, inspecting, and quoting against AMM pools.`,
}

var poolDeriveCmd = &cobra.Command{
	Use:   "derive [mint-a] [mint-b]",
	Short: "Derive the pool address for a mint pair",
	Long: `Derive the deterministic pool address for an ordered mint pair.

With a single mint argument the pair defaults to (mint, WSOL), the
convention used by token/SOL pools.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		programID, err := programIDFromConfig()
		if err != nil {
			return err
		}

		mintA, err := solana.PublicKeyFromBase58(args[0])
		if err != nil {
			return fmt.Errorf("invalid mint-a: %w", err)
		}
		mintB := solana.SolMint
		if len(args) == 2 {
			mintB, err = solana.PublicKeyFromBase58(args[1])
			if err != nil {
				return fmt.Errorf("invalid mint-b: %w", err)
			}
		}

		addr, bump, err := pool.Derive(programID, mintA, mintB)
		if err != nil {
			return err
		}

		fmt.Printf("Pool:   %s\n", addr)
		fmt.Printf("Bump:   %d\n", bump)
		fmt.Printf("Mint A: %s\n", mintA)
		fmt.Printf("Mint B: %s\n", mintB)
		return nil
	},
}

var poolInspectCmd = &cobra.Command{
	Use:   "inspect [pool-address]",
	Short: "Fetch and decode an on-chain pool record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		programID, err := programIDFromConfig()
		if err != nil {
			return err
		}
		addr, err := solana.PublicKeyFromBase58(args[0])
		if err != nil {
			return fmt.Errorf("invalid pool address: %w", err)
		}

		client := ammrpc.NewClient(viper.GetString("solana.rpc"))
		account, err := client.GetAccount(cmd.Context(), addr)
		if err != nil {
			return err
		}

		p, err := pool.DecodeAccount(programID, account)
		if err != nil {
			return err
		}

		fmt.Printf("Pool:        %s\n", addr)
		fmt.Printf("Mint A:      %s\n", p.MintA)
		fmt.Printf("Mint B:      %s\n", p.MintB)
		fmt.Printf("Reserve A:   %s\n", u128.FromBin(p.ReserveA))
		fmt.Printf("Reserve B:   %s\n", u128.FromBin(p.ReserveB))
		fmt.Printf("Invariant k: %s\n", u128.FromBin(p.InvariantK))
		return nil
	},
}

var (
	quoteAmount     string
	quoteReserveIn  string
	quoteReserveOut string
	quotePool       string
	quoteDirection  string
)

var poolQuoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Quote a swap against pool reserves",
	Long: `Quote the fee-adjusted constant-product output for a trade.

Reserves come either from --reserve-in/--reserve-out (offline) or from
a fetched on-chain pool via --pool with --direction a|b.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		amountIn, err := u128.FromString(quoteAmount)
		if err != nil {
			return fmt.Errorf("invalid amount: %w", err)
		}

		var reserveIn, reserveOut u128.Uint128
		switch {
		case quotePool != "":
			programID, err := programIDFromConfig()
			if err != nil {
				return err
			}
			addr, err := solana.PublicKeyFromBase58(quotePool)
			if err != nil {
				return fmt.Errorf("invalid pool address: %w", err)
			}
			client := ammrpc.NewClient(viper.GetString("solana.rpc"))
			account, err := client.GetAccount(cmd.Context(), addr)
			if err != nil {
				return err
			}
			p, err := pool.DecodeAccount(programID, account)
			if err != nil {
				return err
			}
			if quoteDirection == "b" {
				reserveIn, reserveOut = u128.FromBin(p.ReserveB), u128.FromBin(p.ReserveA)
			} else {
				reserveIn, reserveOut = u128.FromBin(p.ReserveA), u128.FromBin(p.ReserveB)
			}

		case quoteReserveIn != "" && quoteReserveOut != "":
			if reserveIn, err = u128.FromString(quoteReserveIn); err != nil {
				return fmt.Errorf("invalid reserve-in: %w", err)
			}
			if reserveOut, err = u128.FromString(quoteReserveOut); err != nil {
				return fmt.Errorf("invalid reserve-out: %w", err)
			}

		default:
			return fmt.Errorf("either --pool or both --reserve-in and --reserve-out are required")
		}

		out, err := engine.Quote(amountIn, reserveIn, reserveOut)
		if err != nil {
			return err
		}

		fmt.Printf("Amount in:  %s\n", amountIn)
		fmt.Printf("Amount out: %s\n", out)
		return nil
	},
}

func programIDFromConfig() (solana.PublicKey, error) {
	raw := viper.GetString("amm.program_id")
	if raw == "" {
		return solana.PublicKey{}, fmt.Errorf("program id not set (use --program-id or config)")
	}
	programID, err := solana.PublicKeyFromBase58(raw)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("invalid program id: %w", err)
	}
	return programID, nil
}

func init() {
	poolQuoteCmd.Flags().StringVar(&quoteAmount, "amount", "", "input amount in native units")
	poolQuoteCmd.Flags().StringVar(&quoteReserveIn, "reserve-in", "", "input-side reserve (offline quote)")
	poolQuoteCmd.Flags().StringVar(&quoteReserveOut, "reserve-out", "", "output-side reserve (offline quote)")
	poolQuoteCmd.Flags().StringVar(&quotePool, "pool", "", "on-chain pool address")
	poolQuoteCmd.Flags().StringVar(&quoteDirection, "direction", "a", "swap direction: a (A→B) or b (B→A)")
	_ = poolQuoteCmd.MarkFlagRequired("amount")

	rootCmd.AddCommand(poolCmd)
	poolCmd.AddCommand(poolDeriveCmd)
	poolCmd.AddCommand(poolInspectCmd)
	poolCmd.AddCommand(poolQuoteCmd)
}
