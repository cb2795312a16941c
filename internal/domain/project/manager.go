package project

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rpggio/storyboard/internal/domain/scene"
)

// CopySuffix is appended to the title of a duplicated scene.
const CopySuffix = " (Copy)"

const maxIDAttempts = 8

// Manager is the sole mutator of a project's scene sequence. Positions and the
// total duration are recomputed from the sequence after every mutation and are
// never tracked independently.
//
// Manager is not safe for concurrent use; callers serialize access.
type Manager struct {
	project Project
	issued  map[string]struct{}
	newID   func() string
	now     func() time.Time
	seq     int
}

// Option configures a Manager.
type Option func(*Manager)

// WithIDGenerator overrides the scene ID generator.
func WithIDGenerator(fn func() string) Option {
	return func(m *Manager) {
		if fn != nil {
			m.newID = fn
		}
	}
}

// WithClock overrides the clock used for UpdatedAt stamps.
func WithClock(fn func() time.Time) Option {
	return func(m *Manager) {
		if fn != nil {
			m.now = fn
		}
	}
}

// NewProject returns an empty project stamped with the current time.
func NewProject(title, description string) Project {
	now := time.Now()
	return Project{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Scenes:      []scene.Scene{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// NewManager creates a manager owning a copy of initial. Positions, totals and
// scene IDs of the initial value are normalized.
func NewManager(initial Project, opts ...Option) *Manager {
	m := &Manager{
		issued: make(map[string]struct{}),
		newID:  newSceneID,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}

	m.project = initial
	scenes := slices.Clone(initial.Scenes)
	if scenes == nil {
		scenes = []scene.Scene{}
	}
	// Blank or repeated IDs from the initial value are reissued.
	for i := range scenes {
		id := scenes[i].ID
		if _, taken := m.issued[id]; taken || strings.TrimSpace(id) == "" {
			scenes[i].ID = m.nextID()
			continue
		}
		m.issued[id] = struct{}{}
	}
	m.project.Scenes = scenes
	m.project.TotalDuration = normalize(scenes)
	return m
}

// Project returns a snapshot of the current project.
func (m *Manager) Project() Project {
	p := m.project
	p.Scenes = slices.Clone(m.project.Scenes)
	return p
}

// ProjectID returns the managed project's ID.
func (m *Manager) ProjectID() string {
	return m.project.ID
}

// Len returns the number of scenes.
func (m *Manager) Len() int {
	return len(m.project.Scenes)
}

// Scene returns the scene with the given ID.
func (m *Manager) Scene(id string) (scene.Scene, bool) {
	idx := m.indexOf(id)
	if idx < 0 {
		return scene.Scene{}, false
	}
	return m.project.Scenes[idx], true
}

// Index returns the position of the scene with the given ID, or -1.
func (m *Manager) Index(id string) int {
	return m.indexOf(id)
}

// Add appends a scene built from d and returns its new ID.
func (m *Manager) Add(d scene.Draft) string {
	id := m.nextID()
	scenes := make([]scene.Scene, 0, len(m.project.Scenes)+1)
	scenes = append(scenes, m.project.Scenes...)
	scenes = append(scenes, scene.FromDraft(id, len(scenes), d))
	m.commit(scenes)
	return id
}

// Update applies p to the scene with the given ID. It reports false, leaving
// the project untouched, when no such scene exists.
func (m *Manager) Update(id string, p scene.Patch) bool {
	idx := m.indexOf(id)
	if idx < 0 {
		return false
	}
	scenes := slices.Clone(m.project.Scenes)
	scenes[idx] = p.Apply(scenes[idx])
	m.commit(scenes)
	return true
}

// Delete removes the scene with the given ID and renumbers the rest. It
// reports false when no such scene exists.
func (m *Manager) Delete(id string) bool {
	idx := m.indexOf(id)
	if idx < 0 {
		return false
	}
	scenes := slices.Delete(slices.Clone(m.project.Scenes), idx, idx+1)
	m.commit(scenes)
	return true
}

// Duplicate appends a copy of the scene with the given ID and returns the
// copy's ID. The copy goes to the end of the sequence, not next to its source.
func (m *Manager) Duplicate(id string) (string, bool) {
	idx := m.indexOf(id)
	if idx < 0 {
		return "", false
	}
	clone := m.project.Scenes[idx]
	clone.ID = m.nextID()
	clone.Title += CopySuffix

	scenes := make([]scene.Scene, 0, len(m.project.Scenes)+1)
	scenes = append(scenes, m.project.Scenes...)
	scenes = append(scenes, clone)
	m.commit(scenes)
	return clone.ID, true
}

// Reorder moves the scene at from so that it ends up at index to. Elements in
// between shift by one. Both indices must be in [0, Len()); otherwise
// ErrInvalidRange is returned and nothing changes.
func (m *Manager) Reorder(from, to int) error {
	n := len(m.project.Scenes)
	if from < 0 || from >= n || to < 0 || to >= n {
		return fmt.Errorf("%w: move %d to %d with %d scenes", ErrInvalidRange, from, to, n)
	}
	scenes := slices.Clone(m.project.Scenes)
	moved := scenes[from]
	scenes = slices.Delete(scenes, from, from+1)
	scenes = slices.Insert(scenes, to, moved)
	m.commit(scenes)
	return nil
}

// Rename replaces the project's title and description.
func (m *Manager) Rename(title, description string) {
	m.project.Title = title
	m.project.Description = description
	m.touch()
}

func (m *Manager) commit(scenes []scene.Scene) {
	m.project.TotalDuration = normalize(scenes)
	m.project.Scenes = scenes
	m.touch()
}

// touch stamps UpdatedAt, never moving it backwards.
func (m *Manager) touch() {
	now := m.now()
	if now.Before(m.project.UpdatedAt) {
		now = m.project.UpdatedAt
	}
	m.project.UpdatedAt = now
}

func (m *Manager) indexOf(id string) int {
	return slices.IndexFunc(m.project.Scenes, func(s scene.Scene) bool {
		return s.ID == id
	})
}

// nextID returns an ID not issued before by this manager.
func (m *Manager) nextID() string {
	for attempt := 0; ; attempt++ {
		id := m.newID()
		if attempt >= maxIDAttempts || strings.TrimSpace(id) == "" {
			m.seq++
			id = fmt.Sprintf("%s-%d", newSceneID(), m.seq)
		}
		if _, taken := m.issued[id]; !taken {
			m.issued[id] = struct{}{}
			return id
		}
	}
}

// normalize renumbers positions to match sequence order and returns the
// summed duration.
func normalize(scenes []scene.Scene) int {
	total := 0
	for i := range scenes {
		scenes[i].Position = i
		total += scenes[i].Duration
	}
	return total
}

func newSceneID() string {
	return "scene-" + uuid.NewString()
}
