package instruction

import (
	"bytes"
	"testing"

	"github.com/gagliardetto/solana-go"

	"github.com/lugondev/go-amm/internal/errors"
	"github.com/lugondev/go-amm/pkg/u128"
)

var (
	testMintA = solana.MustPublicKeyFromBase58("So11111111111111111111111111111111111111112")
	testMintB = solana.MustPublicKeyFromBase58("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA")
)

func TestDecodeInitialize(t *testing.T) {
	data := Initialize{MintA: testMintA, MintB: testMintB}.Data()
	if len(data) != 65 {
		t.Fatalf("initialize encoding is %d bytes, want 65", len(data))
	}

	decoded, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	init, ok := decoded.(Initialize)
	if !ok {
		t.Fatalf("decoded %T, want Initialize", decoded)
	}
	if init.MintA != testMintA || init.MintB != testMintB {
		t.Fatalf("decoded mints %s/%s", init.MintA, init.MintB)
	}
}

func TestDecodeAddLiquidity(t *testing.T) {
	in := AddLiquidity{
		AmountA: u128.From64(1_000),
		AmountB: u128.New(5, 7),
	}
	data := in.Data()
	if len(data) != 33 {
		t.Fatalf("add-liquidity encoding is %d bytes, want 33", len(data))
	}

	decoded, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	add, ok := decoded.(AddLiquidity)
	if !ok {
		t.Fatalf("decoded %T, want AddLiquidity", decoded)
	}
	if !add.AmountA.Equals(in.AmountA) || !add.AmountB.Equals(in.AmountB) {
		t.Fatalf("decoded amounts %v/%v", add.AmountA, add.AmountB)
	}
}

func TestDecodeSwap(t *testing.T) {
	for _, dir := range []Direction{AToB, BToA} {
		in := Swap{Direction: dir, AmountIn: u128.From64(42)}
		decoded, err := Decode(in.Data())
		if err != nil {
			t.Fatalf("Decode(%s): %v", dir, err)
		}
		swap, ok := decoded.(Swap)
		if !ok {
			t.Fatalf("decoded %T, want Swap", decoded)
		}
		if swap.Direction != dir || !swap.AmountIn.Equals(in.AmountIn) {
			t.Fatalf("decoded %s/%v, want %s/42", swap.Direction, swap.AmountIn, dir)
		}
	}
}

func TestDecodeMalformed(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: nil},
		{name: "unknown opcode", data: []byte{9}},
		{name: "initialize short payload", data: append([]byte{0}, make([]byte, 63)...)},
		{name: "initialize long payload", data: append([]byte{0}, make([]byte, 65)...)},
		{name: "add-liquidity short payload", data: append([]byte{1}, make([]byte, 31)...)},
		{name: "swap short payload", data: append([]byte{2}, make([]byte, 15)...)},
		{name: "swap long payload", data: append([]byte{3}, make([]byte, 17)...)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(tt.data); !errors.Is(err, errors.ErrMalformedPayload) {
				t.Fatalf("Decode error = %v, want ErrMalformedPayload", err)
			}
		})
	}
}

func TestOpcodes(t *testing.T) {
	if got := (Initialize{}).Opcode(); got != OpInitialize {
		t.Fatalf("Initialize opcode = %d", got)
	}
	if got := (AddLiquidity{}).Opcode(); got != OpAddLiquidity {
		t.Fatalf("AddLiquidity opcode = %d", got)
	}
	if got := (Swap{Direction: AToB}).Opcode(); got != OpSwapAToB {
		t.Fatalf("Swap A→B opcode = %d", got)
	}
	if got := (Swap{Direction: BToA}).Opcode(); got != OpSwapBToA {
		t.Fatalf("Swap B→A opcode = %d", got)
	}
}

func TestBuild(t *testing.T) {
	programID := solana.MustPublicKeyFromBase58("BPFLoaderUpgradeab1e11111111111111111111111")
	set := AccountSet{
		User:           solana.NewWallet().PublicKey(),
		Pool:           solana.NewWallet().PublicKey(),
		PoolTokenA:     solana.NewWallet().PublicKey(),
		PoolTokenB:     solana.NewWallet().PublicKey(),
		UserAuthorityA: solana.NewWallet().PublicKey(),
		UserAuthorityB: solana.NewWallet().PublicKey(),
		UserTokenA:     solana.NewWallet().PublicKey(),
		UserTokenB:     solana.NewWallet().PublicKey(),
	}

	inst := Build(programID, set, Swap{Direction: AToB, AmountIn: u128.From64(1)})

	if inst.ProgramID != programID {
		t.Fatalf("program id = %s", inst.ProgramID)
	}
	if len(inst.Accounts) != 10 {
		t.Fatalf("account metas = %d, want 10", len(inst.Accounts))
	}
	if !inst.Accounts[0].IsSigner || !inst.Accounts[4].IsSigner || !inst.Accounts[5].IsSigner {
		t.Fatal("caller and transfer authorities must be marked signers")
	}
	if inst.Accounts[8].Pubkey != solana.TokenProgramID {
		t.Fatalf("ninth account = %s, want token program", inst.Accounts[8].Pubkey)
	}
	if inst.Accounts[9].Pubkey != solana.SystemProgramID {
		t.Fatalf("tenth account = %s, want system program", inst.Accounts[9].Pubkey)
	}
	if !bytes.Equal(inst.Data, (Swap{Direction: AToB, AmountIn: u128.From64(1)}).Data()) {
		t.Fatal("instruction data does not round trip")
	}
}
