package erc725y

import (
	"context"
	"sync"

	"github.com/lukso-network/lsp-utils-go/pkg/lsp2"
	"github.com/lukso-network/lsp-utils-go/pkg/shared"
)

// DataStore persists ERC725Y values under 32-byte data keys.
type DataStore interface {
	SetData(ctx context.Context, key []byte, value []byte) error
	GetData(ctx context.Context, key []byte) ([]byte, error)
}

// DataKeyValue is one encoded (data key, value) pair.
type DataKeyValue struct {
	Key   []byte
	Value []byte
}

// NewDataKeyValue decodes a hex data key and value.
func NewDataKeyValue(key string, value string) (DataKeyValue, error) {
	decodedKey, err := shared.DecodeHexExactLength(key, lsp2.DataKeyBytes)
	if err != nil {
		return DataKeyValue{}, err
	}
	decodedValue, err := shared.DecodeHex(value)
	if err != nil {
		return DataKeyValue{}, err
	}
	return DataKeyValue{Key: decodedKey, Value: decodedValue}, nil
}

func (kv DataKeyValue) KeyHex() string {
	return shared.EncodeHex(kv.Key)
}

func (kv DataKeyValue) ValueHex() string {
	return shared.EncodeHex(kv.Value)
}

// Write stores kv in store.
func (kv DataKeyValue) Write(ctx context.Context, store DataStore) error {
	return store.SetData(ctx, kv.Key, kv.Value)
}

// MemoryStore is a DataStore backed by a map. It is safe for concurrent use.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: map[string][]byte{}}
}

// SetData stores a copy of value. An empty value deletes the key, matching
// ERC725Y where unset keys read as empty bytes.
func (s *MemoryStore) SetData(ctx context.Context, key []byte, value []byte) error {
	if err := contextErr(ctx); err != nil {
		return err
	}
	if len(key) != lsp2.DataKeyBytes {
		return shared.NewInvalidLengthError(shared.EncodeHex(key), len(key), lsp2.DataKeyBytes, lsp2.DataKeyBytes)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if len(value) == 0 {
		delete(s.values, string(key))
		return nil
	}
	stored := make([]byte, len(value))
	copy(stored, value)
	s.values[string(key)] = stored
	return nil
}

// GetData returns a copy of the value stored under key, or an empty slice.
func (s *MemoryStore) GetData(ctx context.Context, key []byte) ([]byte, error) {
	if err := contextErr(ctx); err != nil {
		return nil, err
	}
	if len(key) != lsp2.DataKeyBytes {
		return nil, shared.NewInvalidLengthError(shared.EncodeHex(key), len(key), lsp2.DataKeyBytes, lsp2.DataKeyBytes)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	value := s.values[string(key)]
	result := make([]byte, len(value))
	copy(result, value)
	return result, nil
}

// contextErr treats a nil context as never cancelled.
func contextErr(ctx context.Context) error {
	if ctx == nil {
		return nil
	}
	return ctx.Err()
}

// Len returns the number of keys holding a value.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}
