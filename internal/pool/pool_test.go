package pool

import (
	"bytes"
	"testing"

	"github.com/gagliardetto/solana-go"

	"github.com/lugondev/go-amm/internal/errors"
	"github.com/lugondev/go-amm/pkg/types"
	"github.com/lugondev/go-amm/pkg/u128"
)

var (
	testProgramID = solana.MustPublicKeyFromBase58("BPFLoaderUpgradeab1e11111111111111111111111")
	testMintA     = solana.MustPublicKeyFromBase58("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA")
	testMintB     = solana.SolMint
)

func testPool() *Pool {
	return &Pool{
		IsInitialized: true,
		MintA:         testMintA,
		MintB:         testMintB,
		ReserveA:      u128.ToBin(u128.From64(1_000_000)),
		ReserveB:      u128.ToBin(u128.From64(2_000_000)),
		InvariantK:    u128.ToBin(u128.From64(2_000_000_000_000)),
	}
}

func TestRecordSize(t *testing.T) {
	encoded, err := testPool().Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(encoded) != RecordSize {
		t.Fatalf("encoded record is %d bytes, want %d", len(encoded), RecordSize)
	}
}

func TestStoreDecodeRoundTrip(t *testing.T) {
	p := testPool()
	region := make([]byte, RecordSize)
	if err := p.Store(region); err != nil {
		t.Fatalf("Store: %v", err)
	}

	decoded, err := Decode(region)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !decoded.IsInitialized || decoded.MintA != p.MintA || decoded.MintB != p.MintB {
		t.Fatalf("decoded record differs: %+v", decoded)
	}
	if decoded.ReserveA != p.ReserveA || decoded.ReserveB != p.ReserveB || decoded.InvariantK != p.InvariantK {
		t.Fatalf("decoded amounts differ: %+v", decoded)
	}

	// Re-serializing the decoded record must be byte-identical.
	region2 := make([]byte, RecordSize)
	if err := decoded.Store(region2); err != nil {
		t.Fatalf("Store (second): %v", err)
	}
	if !bytes.Equal(region, region2) {
		t.Fatal("re-serialized record is not byte-identical")
	}
}

func TestDecodeZeroRegion(t *testing.T) {
	p, err := Decode(make([]byte, RecordSize))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if p.IsInitialized {
		t.Fatal("zero region decoded as initialized")
	}
	if !u128.FromBin(p.ReserveA).IsZero() || !u128.FromBin(p.ReserveB).IsZero() {
		t.Fatal("zero region decoded with nonzero reserves")
	}
}

func TestStoreTooSmallRegion(t *testing.T) {
	err := testPool().Store(make([]byte, RecordSize-1))
	if !errors.Is(err, errors.ErrRecordTooLarge) {
		t.Fatalf("Store error = %v, want ErrRecordTooLarge", err)
	}
}

func TestDeriveDeterministic(t *testing.T) {
	addr1, bump1, err := Derive(testProgramID, testMintA, testMintB)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	addr2, bump2, err := Derive(testProgramID, testMintA, testMintB)
	if err != nil {
		t.Fatalf("Derive (second): %v", err)
	}
	if addr1 != addr2 || bump1 != bump2 {
		t.Fatal("derivation is not deterministic")
	}

	// Matches the raw seed derivation.
	want, wantBump, err := solana.FindProgramAddress(
		[][]byte{[]byte(SeedTag), testMintA[:], testMintB[:]},
		testProgramID,
	)
	if err != nil {
		t.Fatalf("FindProgramAddress: %v", err)
	}
	if addr1 != want || bump1 != wantBump {
		t.Fatalf("Derive = (%s, %d), want (%s, %d)", addr1, bump1, want, wantBump)
	}
}

func TestDeriveOrderMatters(t *testing.T) {
	ab, _, err := Derive(testProgramID, testMintA, testMintB)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	ba, _, err := Derive(testProgramID, testMintB, testMintA)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	if ab == ba {
		t.Fatal("mint order must change the derived address")
	}
}

func TestSeeds(t *testing.T) {
	_, bump, err := Derive(testProgramID, testMintA, testMintB)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	seeds := Seeds(testMintA, testMintB, bump)
	if len(seeds) != 4 {
		t.Fatalf("seeds = %d entries, want 4", len(seeds))
	}
	if string(seeds[0]) != SeedTag {
		t.Fatalf("seed tag = %q", seeds[0])
	}
	if !bytes.Equal(seeds[3], []byte{bump}) {
		t.Fatalf("bump seed = %v, want [%d]", seeds[3], bump)
	}

	// The seeds must re-create the derived address exactly.
	addr, err := solana.CreateProgramAddress(seeds, testProgramID)
	if err != nil {
		t.Fatalf("CreateProgramAddress: %v", err)
	}
	want, _, _ := Derive(testProgramID, testMintA, testMintB)
	if addr != want {
		t.Fatalf("seeds recreate %s, want %s", addr, want)
	}
}

func TestDecodeAccount(t *testing.T) {
	region := make([]byte, RecordSize)
	if err := testPool().Store(region); err != nil {
		t.Fatalf("Store: %v", err)
	}

	p, err := DecodeAccount(testProgramID, &types.Account{Data: region, Owner: testProgramID})
	if err != nil {
		t.Fatalf("DecodeAccount: %v", err)
	}
	if p.MintA != testMintA {
		t.Fatalf("decoded mint A = %s", p.MintA)
	}

	if _, err := DecodeAccount(testProgramID, &types.Account{Data: region, Owner: testMintA}); !errors.Is(err, errors.ErrInvalidAccountOwner) {
		t.Fatalf("wrong owner error = %v, want ErrInvalidAccountOwner", err)
	}

	if _, err := DecodeAccount(testProgramID, &types.Account{Data: make([]byte, RecordSize), Owner: testProgramID}); !errors.Is(err, errors.ErrNotInitialized) {
		t.Fatalf("uninitialized error = %v, want ErrNotInitialized", err)
	}
}
