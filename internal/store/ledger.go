package store

import (
	"encoding/json"
	"fmt"

	"github.com/theirongolddev/kcal/internal/log"
	"github.com/theirongolddev/kcal/internal/model"
)

// Key is the fixed storage key the ledger lives under.
const Key = "calorieData"

// StorageReadError reports persisted ledger state that could not be read
// or decoded. Load recovers from it by returning an empty ledger.
type StorageReadError struct {
	Key string
	Err error
}

func (e *StorageReadError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Key, e.Err)
}

func (e *StorageReadError) Unwrap() error {
	return e.Err
}

// LedgerStore is the only path to the persisted ledger.
type LedgerStore struct {
	backend Backend
	key     string
	log     *log.Logger
}

// New returns a LedgerStore over backend. logger may be nil.
func New(backend Backend, logger *log.Logger) *LedgerStore {
	return &LedgerStore{
		backend: backend,
		key:     Key,
		log:     logger.OrNop().WithComponent(log.ComponentStorage),
	}
}

// Load returns the persisted ledger. Absent state yields an empty ledger;
// so does unreadable state, which is logged and otherwise swallowed.
func (s *LedgerStore) Load() model.Ledger {
	l, err := s.Read()
	if err != nil {
		s.log.Warn("stored ledger unreadable, starting empty", log.FieldKey, s.key, log.FieldError, err)
		return model.NewLedger()
	}
	return l
}

// Read is Load without the recovery: it returns a *StorageReadError when
// persisted state exists but cannot be used.
func (s *LedgerStore) Read() (model.Ledger, error) {
	raw, ok, err := s.backend.Get(s.key)
	if err != nil {
		return model.NewLedger(), &StorageReadError{Key: s.key, Err: err}
	}
	if !ok || len(raw) == 0 {
		return model.NewLedger(), nil
	}

	var l model.Ledger
	if err := json.Unmarshal(raw, &l); err != nil {
		return model.NewLedger(), &StorageReadError{Key: s.key, Err: err}
	}
	if l == nil {
		return model.NewLedger(), nil
	}

	repaired, fixed := l.Repair()
	if fixed > 0 {
		s.log.Warn("repaired stored ledger", log.FieldKey, s.key, "days_fixed", fixed)
	}
	return repaired, nil
}

// Save serializes the full ledger over whatever was stored. An empty
// ledger removes the key.
func (s *LedgerStore) Save(l model.Ledger) error {
	if len(l) == 0 {
		if err := s.backend.Remove(s.key); err != nil {
			return fmt.Errorf("saving ledger: %w", err)
		}
		return nil
	}

	raw, err := json.Marshal(l)
	if err != nil {
		return fmt.Errorf("encoding ledger: %w", err)
	}
	if err := s.backend.Set(s.key, raw); err != nil {
		return fmt.Errorf("saving ledger: %w", err)
	}
	s.log.Debug("saved ledger", log.FieldKey, s.key, "days", len(l), "bytes", len(raw))
	return nil
}

// Clear removes all persisted ledger state.
func (s *LedgerStore) Clear() error {
	if err := s.backend.Remove(s.key); err != nil {
		return fmt.Errorf("clearing ledger: %w", err)
	}
	return nil
}
