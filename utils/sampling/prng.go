// Package sampling implements deterministic and secure generation of random
// scalars, used to produce reproducible coefficient streams for tests and
// benchmarks.
package sampling

import (
	"crypto/rand"
	"io"
	"sync"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
)

const keySize = 32

// PRNG is an interface for the generation of random bytes.
type PRNG interface {
	io.Reader
}

type ThreadSafePRNG struct {
}

// NewPRNG returns a new PRNG that is thread-safe but not deterministic.
func NewPRNG() (*ThreadSafePRNG, error) {
	return &ThreadSafePRNG{}, nil
}

// Read reads random bytes on sum.
func (prng *ThreadSafePRNG) Read(sum []byte) (n int, err error) {
	return rand.Read(sum)
}

// KeyedPRNG is a structure storing the parameters used to deterministically
// generate a shared sequence of random bytes from a key, using the hash
// function blake2b.
type KeyedPRNG struct {
	mutex sync.Mutex
	key   []byte
	xof   blake2b.XOF
}

// NewKeyedPRNG creates a new instance of KeyedPRNG.
// Accepts an optional key, else set key=nil which is treated as key=[]byte{}.
func NewKeyedPRNG(key []byte) (*KeyedPRNG, error) {
	var err error
	prng := new(KeyedPRNG)
	prng.key = key
	prng.xof, err = blake2b.NewXOF(blake2b.OutputLengthUnknown, key)
	return prng, err
}

// NewPRNGFromLabel creates a new KeyedPRNG keyed with the blake3 hash of the
// given label, so that two PRNGs instantiated with the same label produce the
// same stream of bytes.
func NewPRNGFromLabel(label string) (*KeyedPRNG, error) {
	hasher := blake3.New()
	hasher.Write([]byte(label))
	key := hasher.Sum(nil)
	return NewKeyedPRNG(key[:keySize])
}

// Key returns a copy of the key used to seed the PRNG.
// This value can be used with NewKeyedPRNG to instantiate a new PRNG that
// will produce the same stream of bytes.
func (prng *KeyedPRNG) Key() (key []byte) {
	key = make([]byte, len(prng.key))
	copy(key, prng.key)
	return
}

// Read reads bytes from the KeyedPRNG on sum.
func (prng *KeyedPRNG) Read(sum []byte) (n int, err error) {
	prng.mutex.Lock()
	defer prng.mutex.Unlock()
	return prng.xof.Read(sum)
}

// Reset resets the PRNG to its initial state.
func (prng *KeyedPRNG) Reset() {
	prng.mutex.Lock()
	defer prng.mutex.Unlock()
	prng.xof.Reset()
}
