package model

import (
	"sync"
)

// StateManager tracks the fitted state of an estimator in a thread-safe manner.
type StateManager struct {
	mu     sync.RWMutex
	fitted bool

	nFeatures int
	nSamples  int
}

// NewStateManager creates a new StateManager instance.
func NewStateManager() *StateManager {
	return &StateManager{}
}

// IsFitted returns whether the model has been fitted.
func (s *StateManager) IsFitted() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fitted
}

// MarkFitted records a successful fit together with the training shape.
func (s *StateManager) MarkFitted(nFeatures, nSamples int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fitted = true
	s.nFeatures = nFeatures
	s.nSamples = nSamples
}

// Reset resets the fitted state.
func (s *StateManager) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fitted = false
	s.nFeatures = 0
	s.nSamples = 0
}

// Dimensions returns the number of features and samples seen during fitting.
func (s *StateManager) Dimensions() (nFeatures, nSamples int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nFeatures, s.nSamples
}

// ModelState is a snapshot of the state, used for persistence and debugging.
type ModelState struct {
	Fitted    bool `json:"fitted"`
	NFeatures int  `json:"n_features,omitempty"`
	NSamples  int  `json:"n_samples,omitempty"`
}

// State returns the current state as a ModelState.
func (s *StateManager) State() ModelState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ModelState{
		Fitted:    s.fitted,
		NFeatures: s.nFeatures,
		NSamples:  s.nSamples,
	}
}

// Restore sets the state from a ModelState.
func (s *StateManager) Restore(state ModelState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fitted = state.Fitted
	s.nFeatures = state.NFeatures
	s.nSamples = state.NSamples
}
