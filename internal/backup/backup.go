// Package backup bundles a set of public share strings into a single
// JSON document and encrypts it with a password, using age's
// scrypt-based recipient/identity, so a threshold of shares can be
// archived as one file instead of n loose strings.
package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"filippo.io/age"

	"github.com/mrz1836/gfshare/internal/ratelimit"
)

// scryptWorkFactor controls the cost of the password-derived key. 18 is
// age's own secure default; tests lower it to keep runtime reasonable.
//
//nolint:gochecknoglobals // package-level atomic so tests can lower the cost
var scryptWorkFactor atomic.Int32

func init() {
	scryptWorkFactor.Store(18)
}

// SetScryptWorkFactor overrides the scrypt work factor. Only intended
// for tests; clamps to age's supported range.
func SetScryptWorkFactor(factor int) {
	if factor < 10 {
		factor = 10
	} else if factor > 22 {
		factor = 22
	}
	scryptWorkFactor.Store(int32(factor))
}

// Bundle is the JSON payload archived inside an encrypted backup file.
type Bundle struct {
	Bits      int       `json:"bits"`
	Threshold int       `json:"threshold"`
	Shares    []string  `json:"shares"`
	CreatedAt time.Time `json:"created_at"`
}

// Create serializes a Bundle and encrypts it with a password-based age
// recipient.
func Create(bits, threshold int, shares []string, password string) ([]byte, error) {
	bundle := Bundle{
		Bits:      bits,
		Threshold: threshold,
		Shares:    shares,
		CreatedAt: time.Now().UTC(),
	}

	plaintext, err := json.Marshal(bundle)
	if err != nil {
		return nil, fmt.Errorf("marshaling share bundle: %w", err)
	}

	recipient, err := age.NewScryptRecipient(password)
	if err != nil {
		return nil, fmt.Errorf("creating scrypt recipient: %w", err)
	}
	recipient.SetWorkFactor(int(scryptWorkFactor.Load()))

	buf := &bytes.Buffer{}
	w, err := age.Encrypt(buf, recipient)
	if err != nil {
		return nil, fmt.Errorf("initializing backup encryption: %w", err)
	}
	if _, err := w.Write(plaintext); err != nil {
		return nil, fmt.Errorf("writing backup payload: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("finalizing backup encryption: %w", err)
	}

	return buf.Bytes(), nil
}

// limiter throttles Open attempts per backup file path, so a brute-force
// script guessing at a backup's password cannot spin freely.
//
//nolint:gochecknoglobals // shared limiter; Open attempts are throttled process-wide
var limiter = ratelimit.DefaultLimiter()

// Open decrypts and unmarshals a backup previously produced by Create.
// key identifies the backup for rate-limiting purposes (typically its
// file path); ctx bounds how long a caller is willing to wait for a
// free attempt slot.
func Open(ctx context.Context, key string, ciphertext []byte, password string) (Bundle, error) {
	if err := limiter.Wait(ctx, key); err != nil {
		return Bundle{}, fmt.Errorf("rate limited: %w", err)
	}

	identity, err := age.NewScryptIdentity(password)
	if err != nil {
		return Bundle{}, fmt.Errorf("creating scrypt identity: %w", err)
	}
	identity.SetMaxWorkFactor(int(scryptWorkFactor.Load()))

	r, err := age.Decrypt(bytes.NewReader(ciphertext), identity)
	if err != nil {
		return Bundle{}, fmt.Errorf("initializing backup decryption: %w", err)
	}

	plaintext, err := io.ReadAll(r)
	if err != nil {
		return Bundle{}, fmt.Errorf("reading backup payload: %w", err)
	}

	var bundle Bundle
	if err := json.Unmarshal(plaintext, &bundle); err != nil {
		return Bundle{}, fmt.Errorf("unmarshaling share bundle: %w", err)
	}
	return bundle, nil
}
