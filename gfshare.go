// Package gfshare implements Shamir's Secret Sharing over a binary
// Galois field GF(2^b), b in [3,20]. A secret is split into n shares
// such that any k reconstruct it, while any k-1 reveal no information.
//
// The package exposes a default, process-wide engine mirroring the
// library's original init/share/combine lifecycle (Init, GetConfig,
// SetRNG, IsSetRNG, Share, Combine, NewShare, Random,
// ExtractShareComponents), guarded by a mutex so callers sharing the
// default engine across goroutines get safe, serialized access. Callers
// who want multiple independent configurations in one process should
// use NewEngine directly instead of the package-level functions.
package gfshare

import (
	"sync"

	"github.com/mrz1836/gfshare/internal/codec"
	"github.com/mrz1836/gfshare/internal/entropy"
	"github.com/mrz1836/gfshare/internal/gf"
	"github.com/mrz1836/gfshare/internal/share"
	"github.com/mrz1836/gfshare/internal/sharecodec"
	gfserr "github.com/mrz1836/gfshare/pkg/errors"
)

// DefaultBits is the field width used when Init is called with bits=0.
const DefaultBits = 8

// Config reports the active field configuration, mirroring getConfig().
type Config struct {
	Bits       int
	Size       int
	Max        int
	Radix      int
	HasCSPRNG  bool
	TypeCSPRNG string
}

// Components is the decoded form of a public share string.
type Components = sharecodec.Components

// Engine holds one field configuration plus its bound random source. A
// zero Engine is not usable; construct one with NewEngine.
type Engine struct {
	mu sync.Mutex

	cfg       *gf.Config
	rng       entropy.Source
	rngName   string
	hasRNG    bool
	shareEng  *share.Engine
	hasCSPRNG bool
}

// NewEngine returns an uninitialized Engine; call Init before any other
// operation.
func NewEngine() *Engine {
	return &Engine{}
}

// Init (re)configures the field width and, unless rngSource is given,
// auto-selects a secure random source. rngSource may be nil, a named
// source string ("nodeCryptoRandomBytes", "browserCryptoGetRandomValues",
// "testRandom"), or an entropy.Source function. bits=0 selects
// DefaultBits.
func (e *Engine) Init(bits int, rngSource any) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if bits == 0 {
		bits = DefaultBits
	}

	cfg, err := gf.New(bits)
	if err != nil {
		return err
	}

	e.cfg = cfg
	e.shareEng = nil
	e.hasRNG = false
	e.rng = nil
	e.rngName = ""

	if rngSource == nil {
		src, name, aErr := entropy.AutoDetect()
		if aErr != nil {
			return aErr
		}
		e.rng = src
		e.rngName = name
		e.hasRNG = true
		e.hasCSPRNG = true
	} else if err := e.setRNGLocked(rngSource); err != nil {
		return err
	}

	e.shareEng = share.NewEngine(e.cfg, e.rng)
	return nil
}

// GetConfig reports the active field configuration. Requires a prior
// successful Init.
func (e *Engine) GetConfig() (Config, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.cfg == nil {
		return Config{}, gfserr.ErrNotInitialized
	}

	return Config{
		Bits:       e.cfg.Bits,
		Size:       e.cfg.Size,
		Max:        e.cfg.Max,
		Radix:      e.cfg.Radix,
		HasCSPRNG:  e.hasCSPRNG,
		TypeCSPRNG: e.rngName,
	}, nil
}

// SetRNG binds the active random source. x may be a named source string
// or an entropy.Source function; a function is validated by invoking it
// once before being accepted.
func (e *Engine) SetRNG(x any) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.cfg == nil {
		return gfserr.ErrNotInitialized
	}
	return e.setRNGLocked(x)
}

func (e *Engine) setRNGLocked(x any) error {
	switch v := x.(type) {
	case string:
		src, err := entropy.Resolve(v)
		if err != nil {
			return err
		}
		e.rng = src
		e.rngName = v
		e.hasRNG = true
		e.hasCSPRNG = v != entropy.NameTestRandom
	case entropy.Source:
		if err := entropy.Validate(v, e.cfg.Bits); err != nil {
			return err
		}
		e.rng = v
		e.rngName = "custom"
		e.hasRNG = true
		e.hasCSPRNG = false
	case func(int) (string, error):
		return e.setRNGLocked(entropy.Source(v))
	default:
		return gfserr.WithDetails(gfserr.ErrRNGUnknownSource, map[string]string{"type": "unsupported"})
	}

	if e.shareEng != nil {
		e.shareEng = share.NewEngine(e.cfg, e.rng)
	}
	return nil
}

// IsSetRNG reports whether a random source has been bound since the
// last Init.
func (e *Engine) IsSetRNG() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.hasRNG
}

// Share splits secretHex into n public share strings requiring k to
// reconstruct. padTo optionally fixes the padded secret's bit length.
func (e *Engine) Share(secretHex string, n, k int, padTo int) ([]string, error) {
	eng, err := e.readyShareEngine()
	if err != nil {
		return nil, err
	}
	return eng.Split(secretHex, n, k, padTo)
}

// Combine reconstructs the secret hex string from a set of shares.
func (e *Engine) Combine(shares []string) (string, error) {
	eng, err := e.readyShareEngine()
	if err != nil {
		return "", err
	}
	return eng.Combine(shares)
}

// NewShare mints an additional share at id from an existing share set.
func (e *Engine) NewShare(id int, shares []string) (string, error) {
	eng, err := e.readyShareEngine()
	if err != nil {
		return "", err
	}
	return eng.NewShare(id, shares)
}

// Random returns bits random bits from the active source, hex-encoded.
func (e *Engine) Random(bits int) (string, error) {
	e.mu.Lock()
	rng := e.rng
	ready := e.cfg != nil && e.hasRNG
	e.mu.Unlock()

	if !ready {
		return "", gfserr.ErrNotInitialized
	}

	bin, err := rng(bits)
	if err != nil {
		return "", err
	}

	return codec.Bin2Hex(bin), nil
}

// ExtractShareComponents decodes a public share string into its bits,
// id, and data-hex components. Stateless: does not require Init.
func ExtractShareComponents(shareString string) (Components, error) {
	return sharecodec.Extract(shareString)
}

func (e *Engine) readyShareEngine() (*share.Engine, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cfg == nil || e.shareEng == nil || !e.hasRNG {
		return nil, gfserr.ErrNotInitialized
	}
	return e.shareEng, nil
}

// defaultEngine is the process-wide singleton the package-level
// functions below delegate to, matching the original library's
// ambient, mutable-global configuration.
//
//nolint:gochecknoglobals // intentional singleton; see NewEngine for the escape hatch
var defaultEngine = NewEngine()

// Init configures the default engine. See Engine.Init.
func Init(bits int, rngSource any) error { return defaultEngine.Init(bits, rngSource) }

// GetConfig reports the default engine's configuration. See Engine.GetConfig.
func GetConfig() (Config, error) { return defaultEngine.GetConfig() }

// SetRNG binds the default engine's random source. See Engine.SetRNG.
func SetRNG(x any) error { return defaultEngine.SetRNG(x) }

// IsSetRNG reports whether the default engine has a bound RNG.
func IsSetRNG() bool { return defaultEngine.IsSetRNG() }

// Share splits a secret using the default engine. See Engine.Share.
func Share(secretHex string, n, k, padTo int) ([]string, error) {
	return defaultEngine.Share(secretHex, n, k, padTo)
}

// Combine reconstructs a secret using the default engine. See Engine.Combine.
func Combine(shares []string) (string, error) { return defaultEngine.Combine(shares) }

// NewShare mints a share using the default engine. See Engine.NewShare.
func NewShare(id int, shares []string) (string, error) { return defaultEngine.NewShare(id, shares) }

// Random draws random hex using the default engine. See Engine.Random.
func Random(bits int) (string, error) { return defaultEngine.Random(bits) }
