package env

import (
	"sync"

	"github.com/custodia-labs/corpuschat/internal/core/domain"
)

// KeyStore keeps provider credentials in a dotenv file and forwards every
// change to a live consumer such as the model factory.
type KeyStore struct {
	path     string
	onChange func(domain.AIProvider, string)

	mu   sync.RWMutex
	keys map[domain.AIProvider]string
}

// NewKeyStore creates a store writing to the dotenv file at path, seeded
// with the credentials already loaded. onChange may be nil.
func NewKeyStore(path string, keys map[domain.AIProvider]string, onChange func(domain.AIProvider, string)) *KeyStore {
	seeded := make(map[domain.AIProvider]string, len(keys))
	for p, k := range keys {
		seeded[p] = k
	}
	return &KeyStore{path: path, onChange: onChange, keys: seeded}
}

// APIKey returns the credential for a provider, or "" if none is set.
func (s *KeyStore) APIKey(p domain.AIProvider) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.keys[p]
}

// SetAPIKey persists the credential and applies it immediately.
// An empty key removes the stored credential.
func (s *KeyStore) SetAPIKey(p domain.AIProvider, key string) error {
	if !p.IsValid() {
		return domain.ErrInvalidProvider
	}
	if err := SaveAPIKey(s.path, p, key); err != nil {
		return err
	}

	s.mu.Lock()
	if key == "" {
		delete(s.keys, p)
	} else {
		s.keys[p] = key
	}
	s.mu.Unlock()

	if s.onChange != nil {
		s.onChange(p, key)
	}
	return nil
}

// Path returns the dotenv file the store writes to.
func (s *KeyStore) Path() string {
	return s.path
}
