package detector

import "restockwatch/internal/models"

// StateStore holds the per-page snapshots, keyed by page URL. State is
// memory-resident only: a restart loses it and every page re-baselines on its
// next scrape. The store is only touched from the single sequential polling
// loop, so no locking is required.
type StateStore struct {
	snapshots map[string]*models.PageSnapshot
}

// NewStateStore creates an empty state store.
func NewStateStore() *StateStore {
	return &StateStore{snapshots: make(map[string]*models.PageSnapshot)}
}

// Get returns the snapshot for a page URL, or nil when the page has never
// been successfully scraped.
func (s *StateStore) Get(pageURL string) *models.PageSnapshot {
	return s.snapshots[pageURL]
}

// Put replaces the snapshot for a page URL.
func (s *StateStore) Put(snapshot *models.PageSnapshot) {
	s.snapshots[snapshot.URL] = snapshot
}

// Len returns the number of pages with stored state.
func (s *StateStore) Len() int {
	return len(s.snapshots)
}
