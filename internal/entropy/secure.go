package entropy

import (
	"io"
	"sync"

	gfserr "github.com/mrz1836/gfshare/pkg/errors"
)

// SecureBytes is a byte buffer intended for key material or secret
// chunks in flight: it attempts to pin its pages in memory (best
// effort, platform-dependent) and guarantees the contents are
// overwritten with zeros exactly once, on Destroy.
type SecureBytes struct {
	mu        sync.Mutex
	data      []byte
	locked    bool
	destroyed bool
}

// NewSecureBytes allocates an n-byte SecureBytes, attempting to mlock
// its backing array. Locking failure is not an error: on hosts without
// the privilege (e.g. no CAP_IPC_LOCK, or a restrictive container) the
// buffer still works, just without the memory-residency guarantee.
func NewSecureBytes(n int) (*SecureBytes, error) {
	if n < 0 {
		return nil, gfserr.Wrap(gfserr.ErrGeneral, "negative SecureBytes length")
	}
	sb := &SecureBytes{data: make([]byte, n)}
	sb.locked = mlock(sb.data)
	return sb, nil
}

// SecureBytesFromSlice copies src into a new SecureBytes, attempting to
// mlock the copy. The caller retains ownership of src.
func SecureBytesFromSlice(src []byte) (*SecureBytes, error) {
	sb, err := NewSecureBytes(len(src))
	if err != nil {
		return nil, err
	}
	copy(sb.data, src)
	return sb, nil
}

// SecureRandomBytes allocates a SecureBytes of n bytes and fills it from
// the package's CSPRNG reader.
func SecureRandomBytes(n int) (*SecureBytes, error) {
	sb, err := NewSecureBytes(n)
	if err != nil {
		return nil, err
	}
	if _, err := io.ReadFull(Reader, sb.data); err != nil {
		sb.Destroy()
		return nil, gfserr.Wrap(err, "filling SecureBytes")
	}
	return sb, nil
}

// Bytes returns the underlying slice. Callers must not retain it past a
// call to Destroy.
func (s *SecureBytes) Bytes() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data
}

// Locked reports whether the buffer's pages are pinned in memory.
func (s *SecureBytes) Locked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.locked
}

// Destroy zeroes the buffer and releases its memory lock. Safe to call
// more than once.
func (s *SecureBytes) Destroy() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.destroyed {
		return
	}
	for i := range s.data {
		s.data[i] = 0
	}
	if s.locked {
		munlock(s.data)
	}
	s.destroyed = true
}
