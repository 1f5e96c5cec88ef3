package profile

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"partypilot/utils"
)

// SectionState is the tracked state of one editable profile section.
type SectionState struct {
	OriginalValue any        `json:"originalValue"`
	HasChanges    bool       `json:"hasChanges"`
	Saving        bool       `json:"saving"`
	LastSaved     *time.Time `json:"lastSaved,omitempty"`
	Error         string     `json:"error,omitempty"`
}

// PersistResult is what the injected persistence call reports back.
type PersistResult struct {
	Success bool
	Error   string
}

// PersistFunc performs the actual save of a section payload. The payload is
// caller-assembled and opaque to the tracker. A logical failure is reported
// through the result; a returned error covers transport-level failures.
type PersistFunc func(ctx context.Context, payload any) (*PersistResult, error)

// Extractor derives a section's baseline value from a source data snapshot.
type Extractor[S any] func(source S) any

// Tracker keeps per-section dirty state and orchestrates saves for one
// editing session. Sections are compared against their last saved baseline
// by deep structural equality; a successful save moves the baseline.
//
// The tracker does not queue concurrent saves on the same section; the
// caller is expected to disable the save action while Saving is true.
// Saves on distinct sections run independently.
type Tracker[S any] struct {
	mu         sync.Mutex
	extractors map[string]Extractor[S]
	persist    PersistFunc
	sections   map[string]*SectionState
	generation uint64
}

// NewTracker builds a tracker over the given section extractor table.
func NewTracker[S any](extractors map[string]Extractor[S], persist PersistFunc) *Tracker[S] {
	return &Tracker[S]{
		extractors: extractors,
		persist:    persist,
		sections:   make(map[string]*SectionState),
	}
}

// InitializeSections derives baselines for every configured section from a
// freshly loaded source snapshot. Sections that already exist keep their
// baseline, so a background refetch cannot clobber an in-progress edit.
func (t *Tracker[S]) InitializeSections(source S) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for key, extract := range t.extractors {
		if _, ok := t.sections[key]; ok {
			continue
		}
		t.sections[key] = &SectionState{
			OriginalValue: normalizeJSON(extract(source)),
		}
	}
}

// Reset supersedes the whole section map with baselines from a new source
// snapshot. Used when the editing context switches to different supplier
// data. Saves still in flight against the previous map are discarded when
// they settle.
func (t *Tracker[S]) Reset(source S) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.generation++
	t.sections = make(map[string]*SectionState)
	for key, extract := range t.extractors {
		t.sections[key] = &SectionState{
			OriginalValue: normalizeJSON(extract(source)),
		}
	}
}

// CheckChanges recomputes the dirty flag for a section against its baseline.
// It is a no-op for sections that were never initialized.
func (t *Tracker[S]) CheckChanges(key string, current any) {
	t.mu.Lock()
	defer t.mu.Unlock()

	entry, ok := t.sections[key]
	if !ok {
		return
	}
	entry.HasChanges = !utils.DeepEqual(normalizeJSON(current), entry.OriginalValue)
}

// SaveSection runs the save lifecycle for one section: mark saving, invoke
// the injected persistence call with the opaque payload, and settle the
// section state from the outcome. Failures never propagate as errors; they
// land in the returned snapshot's Error field with the baseline untouched,
// so the section stays dirty and the save can be retried.
func (t *Tracker[S]) SaveSection(ctx context.Context, key string, current any, payload any) SectionState {
	t.mu.Lock()
	entry, ok := t.sections[key]
	if !ok {
		// First reference creates the section; the baseline arrives with
		// the first successful save.
		entry = &SectionState{HasChanges: true}
		t.sections[key] = entry
	}
	entry.Saving = true
	entry.Error = ""
	generation := t.generation
	t.mu.Unlock()

	result, err := t.persist(ctx, payload)

	t.mu.Lock()
	defer t.mu.Unlock()

	stale := t.generation != generation
	entry.Saving = false
	switch {
	case err != nil:
		entry.Error = err.Error()
	case result == nil || !result.Success:
		entry.Error = "Save failed"
		if result != nil && result.Error != "" {
			entry.Error = result.Error
		}
	case stale:
		// The context switched while the save was in flight; the entry is
		// no longer part of the live map and its result must not be applied.
	default:
		now := time.Now()
		entry.OriginalValue = normalizeJSON(current)
		entry.HasChanges = false
		entry.LastSaved = &now
		entry.Error = ""
	}
	return *entry
}

// State returns a snapshot of one section's state.
func (t *Tracker[S]) State(key string) (SectionState, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	entry, ok := t.sections[key]
	if !ok {
		return SectionState{}, false
	}
	return *entry, true
}

// States returns a snapshot of every tracked section keyed by section name.
func (t *Tracker[S]) States() map[string]SectionState {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make(map[string]SectionState, len(t.sections))
	for key, entry := range t.sections {
		out[key] = *entry
	}
	return out
}

// normalizeJSON round-trips a value through JSON so baselines extracted from
// typed structs and current values decoded from request bodies compare under
// the same shape (maps, slices, float64 numbers). Values that cannot be
// marshalled are kept as-is.
func normalizeJSON(v any) any {
	if v == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return v
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return v
	}
	return out
}
