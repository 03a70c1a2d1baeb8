package manager

import (
	"log/slog"

	"classic-snake/record"
)

// RecordStore loads and saves the persisted record.
type RecordStore interface {
	Load() record.Result
	Save(score int) error
}

// StateManager owns the score, the record and the pause/over flags of a round.
type StateManager struct {
	store  RecordStore
	logger *slog.Logger

	score  int
	record int
	paused bool
	over   bool
}

func NewStateManager(store RecordStore, logger *slog.Logger) *StateManager {
	if logger == nil {
		logger = slog.Default()
	}
	return &StateManager{
		store:  store,
		logger: logger,
	}
}

// Reset reloads the record and clears everything that belongs to a round.
func (sm *StateManager) Reset() {
	sm.record = sm.LoadRecord()
	sm.score = 0
	sm.paused = false
	sm.over = false
}

// LoadRecord reads the stored record; absent and malformed records count as 0.
func (sm *StateManager) LoadRecord() int {
	if sm.store == nil {
		return 0
	}
	res := sm.store.Load()
	if res.Status != record.Loaded {
		sm.logger.Debug("no usable record, starting from 0",
			"status", res.Status.String(),
			"error", res.Err,
		)
	}
	return res.OrZero()
}

func (sm *StateManager) AddPoint() {
	sm.score++
}

// Finish marks the round over and persists the score when it beats the record.
// It reports whether a new record was set.
func (sm *StateManager) Finish() bool {
	sm.over = true
	sm.paused = false
	if sm.score <= sm.record {
		return false
	}
	if sm.store != nil {
		if err := sm.store.Save(sm.score); err != nil {
			sm.logger.Error("failed to save record", "score", sm.score, "error", err)
		}
	}
	sm.record = sm.score
	return true
}

func (sm *StateManager) SetPaused(paused bool) {
	sm.paused = paused
}

func (sm *StateManager) GetScore() int {
	return sm.score
}

func (sm *StateManager) GetRecord() int {
	return sm.record
}

func (sm *StateManager) IsPaused() bool {
	return sm.paused
}

func (sm *StateManager) IsOver() bool {
	return sm.over
}
