package cmd

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	ammrpc "github.com/lugondev/go-amm/internal/solana"
	"github.com/lugondev/go-amm/pkg/types"
)

var walletCmd = &cobra.Command{
	Use:   "wallet",
	Short: "Wallet management commands",
	Long:  `Commands for generating keypairs and checking balances.`,
}

var walletOut string

var walletNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Generate a new wallet",
	Long: `Generate a new keypair. With --out the keypair is written to a
JSON file in the Solana CLI format; otherwise the private key is
printed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		wallet := ammrpc.NewWallet()

		fmt.Printf("Public Key: %s\n", wallet.PublicKey())
		if walletOut != "" {
			if err := wallet.SaveToFile(walletOut); err != nil {
				return err
			}
			fmt.Println("Keypair written to:", walletOut)
			return nil
		}

		fmt.Printf("Private Key: %s\n", wallet.PrivateKey())
		fmt.Println("\nWARNING: Save your private key securely. Never share it with anyone!")
		return nil
	},
}

var walletBalanceCmd = &cobra.Command{
	Use:   "balance [address]",
	Short: "Check wallet balance",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pubKey, err := solana.PublicKeyFromBase58(args[0])
		if err != nil {
			return fmt.Errorf("invalid address: %w", err)
		}

		client := ammrpc.NewClient(viper.GetString("solana.rpc"))
		defer client.Close()

		lamports, err := client.GetBalance(cmd.Context(), pubKey)
		if err != nil {
			return err
		}

		fmt.Printf("Address: %s\n", pubKey)
		fmt.Printf("Balance: %.9f SOL (%d lamports)\n", types.LamportsToSOL(lamports), lamports)
		return nil
	},
}

func init() {
	walletNewCmd.Flags().StringVar(&walletOut, "out", "", "write the keypair to this file instead of printing it")

	rootCmd.AddCommand(walletCmd)
	walletCmd.AddCommand(walletNewCmd)
	walletCmd.AddCommand(walletBalanceCmd)
}
