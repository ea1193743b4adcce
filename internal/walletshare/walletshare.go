// Package walletshare offers opt-in sanity checks for a secret just
// recovered by gfshare.Combine. Shamir's Secret Sharing carries no
// integrity check (no VSS, no MAC over shares), so a
// combine from the wrong share set, a mismatched field width, or a
// single flipped bit still produces a "recovered" value with no error.
// When the caller knows the secret is supposed to be wallet key
// material, these helpers confirm it actually parses as one before it
// is trusted -- they are never called from gfshare.Combine itself.
package walletshare

import (
	"crypto/ecdsa"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/tyler-smith/go-bip32"
)

// MasterKeyInfo summarizes a BIP-32 master extended key derived from a
// recovered seed.
type MasterKeyInfo struct {
	ExtendedKey   string // base58, master key
	FirstChild    string // base58, child index 0 (non-hardened)
	FirstHardened string // base58, child index 0' (hardened)
	ChainCodeHex  string
}

// VerifyBIP32Seed treats seed (typically a BIP-39 seed recovered via
// mnemonic.Seed after gfshare.Combine + mnemonic.FromHex) as a BIP-32
// seed, derives the master extended key plus its first non-hardened and
// hardened children, and returns their serialized form. An error here
// means the recovered bytes are not usable as an HD wallet seed --
// strong evidence the combine used the wrong shares or field width. A
// seed shorter than 16 or longer than 64 bytes is rejected.
func VerifyBIP32Seed(seed []byte) (*MasterKeyInfo, error) {
	if len(seed) < 16 || len(seed) > 64 {
		return nil, fmt.Errorf("seed is %d bytes; a BIP-32 seed is 16 to 64 bytes", len(seed))
	}

	master, err := bip32.NewMasterKey(seed)
	if err != nil {
		return nil, err
	}

	child, err := master.NewChildKey(0)
	if err != nil {
		return nil, err
	}

	hardened, err := master.NewChildKey(bip32.FirstHardenedChild)
	if err != nil {
		return nil, err
	}

	return &MasterKeyInfo{
		ExtendedKey:   master.String(),
		FirstChild:    child.String(),
		FirstHardened: hardened.String(),
		ChainCodeHex:  hex.EncodeToString(master.ChainCode),
	}, nil
}

// Secp256k1KeyInfo summarizes a recovered secret validated as a usable
// secp256k1 private key.
type Secp256k1KeyInfo struct {
	PrivateKeyHex string
	Address       string // EIP-55 checksummed hex address
}

// VerifySecp256k1Key treats secretHex (the value gfshare.Combine
// returned, or a mnemonic-derived private key) as a raw secp256k1
// private key: it must decode to exactly 32 bytes and fall in
// [1, N-1] for the secp256k1 curve order N. Returns the derived
// Ethereum-style address as a deterministic fingerprint of the key.
func VerifySecp256k1Key(secretHex string) (*Secp256k1KeyInfo, error) {
	secretHex = strings.TrimPrefix(secretHex, "0x")
	raw, err := hex.DecodeString(secretHex)
	if err != nil {
		return nil, err
	}

	priv, err := ethcrypto.ToECDSA(raw)
	if err != nil {
		return nil, err
	}

	return &Secp256k1KeyInfo{
		PrivateKeyHex: secretHex,
		Address:       addressOf(priv).Hex(),
	}, nil
}

func addressOf(priv *ecdsa.PrivateKey) common.Address {
	return ethcrypto.PubkeyToAddress(priv.PublicKey)
}
