package test

import (
	"context"
	"sort"
	"sync"
	"time"

	"main/model"
	"main/repository"
	"main/utils"
)

// In-memory repository fakes implementing the usecase interfaces.

type mockNotesRepo struct {
	mu        sync.RWMutex
	notes     map[string]model.Note
	insertErr error
	findErr   error
	deleteErr error
}

func newMockNotesRepo() *mockNotesRepo {
	return &mockNotesRepo{notes: make(map[string]model.Note)}
}

func (m *mockNotesRepo) InsertNote(_ context.Context, note *model.Note) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.insertErr != nil {
		return "", m.insertErr
	}
	if note.ID == "" {
		note.ID = utils.GenerateNoteID()
	}
	if note.Timestamp.IsZero() {
		note.Timestamp = time.Now()
	}
	if note.Labels == nil {
		note.Labels = []string{}
	}
	m.notes[note.ID] = *note
	return note.ID, nil
}

func (m *mockNotesRepo) GetProfileNotes(_ context.Context, profile string) ([]*model.Note, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.findErr != nil {
		return nil, m.findErr
	}
	notes := []*model.Note{}
	for id := range m.notes {
		note := m.notes[id]
		if note.Profile == profile {
			notes = append(notes, &note)
		}
	}
	// Same contract as the Mongo repo: newest first.
	sort.Slice(notes, func(i, j int) bool {
		return notes[i].Timestamp.After(notes[j].Timestamp)
	})
	return notes, nil
}

func (m *mockNotesRepo) DeleteNote(_ context.Context, noteID string) (*model.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.deleteErr != nil {
		return nil, m.deleteErr
	}
	note, ok := m.notes[noteID]
	if !ok {
		return nil, repository.ErrNoteNotFound
	}
	delete(m.notes, noteID)
	return &note, nil
}

func (m *mockNotesRepo) count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.notes)
}

type mockProfileInfoRepo struct {
	mu        sync.RWMutex
	infos     map[string]model.ProfileInfo
	upsertErr error
}

func newMockProfileInfoRepo() *mockProfileInfoRepo {
	return &mockProfileInfoRepo{infos: make(map[string]model.ProfileInfo)}
}

func (m *mockProfileInfoRepo) UpsertProfileInfo(_ context.Context, info *model.ProfileInfo) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.upsertErr != nil {
		return m.upsertErr
	}
	m.infos[info.Profile] = *info
	return nil
}

func (m *mockProfileInfoRepo) GetProfileInfo(_ context.Context, profile string) (*model.ProfileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	info, ok := m.infos[profile]
	if !ok {
		return nil, repository.ErrProfileInfoNotFound
	}
	return &info, nil
}

type mockActivityLogRepo struct {
	mu        sync.RWMutex
	entries   []model.ActivityLog
	appendErr error
}

func newMockActivityLogRepo() *mockActivityLogRepo {
	return &mockActivityLogRepo{}
}

func (m *mockActivityLogRepo) AppendEntry(_ context.Context, entry *model.ActivityLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.appendErr != nil {
		return m.appendErr
	}
	m.entries = append(m.entries, *entry)
	return nil
}

func (m *mockActivityLogRepo) entriesFor(action string) []model.ActivityLog {
	m.mu.RLock()
	defer m.mu.RUnlock()

	matched := []model.ActivityLog{}
	for _, entry := range m.entries {
		if entry.Action == action {
			matched = append(matched, entry)
		}
	}
	return matched
}

func (m *mockActivityLogRepo) count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
