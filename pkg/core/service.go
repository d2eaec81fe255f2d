package core

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Service holds the annotation and sub-node mappings and mediates every
// read and write. It is the single owner of both stores: mutation happens
// only through its methods, and each mutation synchronously re-serializes
// the full affected mapping to the repository.
type Service struct {
	repo   Repository
	logger *slog.Logger
	clock  func() time.Time

	mu          sync.RWMutex
	annotations map[string]AnnotationRecord
	subnodes    map[string][]SubNode
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) ServiceOption {
	return func(s *Service) { s.logger = logger }
}

// WithClock injects the time source used for overdue checks.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *Service) { s.clock = clock }
}

// NewService creates a Service. Both mappings start empty; call Load to
// hydrate them from the repository.
func NewService(repo Repository, opts ...ServiceOption) *Service {
	s := &Service{
		repo:        repo,
		clock:       time.Now,
		annotations: make(map[string]AnnotationRecord),
		subnodes:    make(map[string][]SubNode),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load hydrates both mappings from the repository. A missing key yields an
// empty mapping; malformed JSON is logged and treated as empty rather than
// failing, so a corrupt snapshot never blocks startup.
func (s *Service) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.annotations = make(map[string]AnnotationRecord)
	if data, err := s.repo.Load(ctx, SnapshotAnnotations); err != nil {
		s.warn("failed to read annotation snapshot", "error", err)
	} else if len(data) > 0 {
		if err := json.Unmarshal(data, &s.annotations); err != nil {
			s.warn("malformed annotation snapshot, starting empty", "error", err)
			s.annotations = make(map[string]AnnotationRecord)
		}
	}

	s.subnodes = make(map[string][]SubNode)
	if data, err := s.repo.Load(ctx, SnapshotSubNodes); err != nil {
		s.warn("failed to read sub-node snapshot", "error", err)
	} else if len(data) > 0 {
		if err := json.Unmarshal(data, &s.subnodes); err != nil {
			s.warn("malformed sub-node snapshot, starting empty", "error", err)
			s.subnodes = make(map[string][]SubNode)
		}
	}

	// Snapshots written before the placed flag existed encode placement
	// through the position alone: anything off the origin was placed.
	for key, subs := range s.subnodes {
		for i := range subs {
			if !subs[i].Placed && (subs[i].X != 0 || subs[i].Y != 0) {
				subs[i].Placed = true
			}
		}
		s.subnodes[key] = subs
	}
}

// --- Annotations ---

// Annotation returns the stored record for the key, or an empty record if
// none exists. It never fails.
func (s *Service) Annotation(key string) AnnotationRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.annotations[key]
}

// Annotations returns a copy of the full annotation mapping.
func (s *Service) Annotations() map[string]AnnotationRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]AnnotationRecord, len(s.annotations))
	for k, v := range s.annotations {
		out[k] = v
	}
	return out
}

// AnnotatedKeys returns all annotated keys in sorted order.
func (s *Service) AnnotatedKeys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.annotations))
	for k := range s.annotations {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Upsert stores the trimmed deadline/notes pair under key. An empty
// candidate (both fields blank after trimming) deletes any existing entry;
// edit-to-empty is a delete, not a no-op. A non-empty candidate replaces
// the entry wholesale.
func (s *Service) Upsert(ctx context.Context, key, deadline, notes string) error {
	if key == "" {
		return ErrEmptyKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec := NewRecord(deadline, notes)
	if rec.Empty() {
		delete(s.annotations, key)
	} else {
		s.annotations[key] = rec
	}
	s.persistAnnotations(ctx)
	return nil
}

// Remove deletes the entry unconditionally. Removing an absent key is a
// no-op and does not trigger a snapshot write.
func (s *Service) Remove(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.annotations[key]; !ok {
		return nil
	}
	delete(s.annotations, key)
	s.persistAnnotations(ctx)
	return nil
}

// Overdue reports whether the deadline lies strictly before today.
func (s *Service) Overdue(deadline string) bool {
	return OverdueAt(deadline, s.clock())
}

// --- Sub-nodes ---

// SubNodes returns a copy of the ordered sub-node sequence for the parent
// key. Insertion order is display order.
func (s *Service) SubNodes(parentKey string) []SubNode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	subs := s.subnodes[parentKey]
	if len(subs) == 0 {
		return nil
	}
	out := make([]SubNode, len(subs))
	copy(out, subs)
	return out
}

// AllSubNodes returns a copy of the full sub-node mapping.
func (s *Service) AllSubNodes() map[string][]SubNode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string][]SubNode, len(s.subnodes))
	for k, subs := range s.subnodes {
		cp := make([]SubNode, len(subs))
		copy(cp, subs)
		out[k] = cp
	}
	return out
}

// CreateSubNode appends a new sub-node to the parent's sequence. The label
// is required; deadline/notes, when non-empty, create the derived
// annotation record in the same store.
func (s *Service) CreateSubNode(ctx context.Context, parentKey, label, deadline, notes string) (SubNode, error) {
	if parentKey == "" {
		return SubNode{}, ErrEmptyKey
	}
	label = strings.TrimSpace(label)
	if label == "" {
		return SubNode{}, ErrEmptyLabel
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sub := SubNode{ID: uuid.NewString(), Label: label}
	s.subnodes[parentKey] = append(s.subnodes[parentKey], sub)
	s.persistSubNodes(ctx)

	rec := NewRecord(deadline, notes)
	if !rec.Empty() {
		s.annotations[SubKey(parentKey, sub.ID)] = rec
		s.persistAnnotations(ctx)
	}
	return sub, nil
}

// UpdateSubNode replaces the label and the derived annotation of an
// existing sub-node. An unknown id is an idempotent no-op.
func (s *Service) UpdateSubNode(ctx context.Context, parentKey, subID, label, deadline, notes string) error {
	label = strings.TrimSpace(label)
	if label == "" {
		return ErrEmptyLabel
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(parentKey, subID)
	if idx < 0 {
		return nil
	}
	s.subnodes[parentKey][idx].Label = label
	s.persistSubNodes(ctx)

	key := SubKey(parentKey, subID)
	rec := NewRecord(deadline, notes)
	if rec.Empty() {
		delete(s.annotations, key)
	} else {
		s.annotations[key] = rec
	}
	s.persistAnnotations(ctx)
	return nil
}

// DeleteSubNode removes the sub-node and its derived annotation. When the
// sequence becomes empty the parent entry is removed entirely. An unknown
// id is an idempotent no-op.
func (s *Service) DeleteSubNode(ctx context.Context, parentKey, subID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(parentKey, subID)
	if idx < 0 {
		return
	}
	subs := s.subnodes[parentKey]
	subs = append(subs[:idx], subs[idx+1:]...)
	if len(subs) == 0 {
		delete(s.subnodes, parentKey)
	} else {
		s.subnodes[parentKey] = subs
	}
	s.persistSubNodes(ctx)

	if key := SubKey(parentKey, subID); s.dropAnnotation(key) {
		s.persistAnnotations(ctx)
	}
}

// RepositionSubNode moves a sub-node. Coordinates are clamped to be
// non-negative and the node becomes (and stays) placed.
func (s *Service) RepositionSubNode(ctx context.Context, parentKey, subID string, x, y float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(parentKey, subID)
	if idx < 0 {
		return
	}
	sub := &s.subnodes[parentKey][idx]
	sub.X = max(x, 0)
	sub.Y = max(y, 0)
	sub.Placed = true
	s.persistSubNodes(ctx)
}

// ResolvePlacement assigns an initial position, offset vertically from the
// parent's rendered anchor, to every sub-node that has not been placed
// yet. It is idempotent once a sub-node has a position.
func (s *Service) ResolvePlacement(ctx context.Context, parentKey string, anchorX, anchorY, spacing float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	subs := s.subnodes[parentKey]
	changed := false
	for i := range subs {
		if subs[i].Placed {
			continue
		}
		subs[i].X = max(anchorX, 0)
		subs[i].Y = max(anchorY+spacing*float64(i+1), 0)
		subs[i].Placed = true
		changed = true
	}
	if changed {
		s.subnodes[parentKey] = subs
		s.persistSubNodes(ctx)
	}
}

// Watch observes external changes to the snapshots if the repository
// supports it.
func (s *Service) Watch(ctx context.Context, pattern string) (<-chan Event, error) {
	w, ok := s.repo.(Watchable)
	if !ok {
		return nil, errRepositoryNotWatchable
	}
	return w.Watch(ctx, pattern)
}

// --- internals ---

// indexOf returns the position of subID under parentKey, or -1.
// Caller must hold the lock.
func (s *Service) indexOf(parentKey, subID string) int {
	for i, sub := range s.subnodes[parentKey] {
		if sub.ID == subID {
			return i
		}
	}
	return -1
}

// dropAnnotation deletes a key and reports whether it existed.
// Caller must hold the lock.
func (s *Service) dropAnnotation(key string) bool {
	if _, ok := s.annotations[key]; !ok {
		return false
	}
	delete(s.annotations, key)
	return true
}

// persistAnnotations writes the full annotation snapshot. A write failure
// is logged and swallowed: the in-memory state stays authoritative and the
// change simply is not durable until the next successful save.
// Caller must hold the lock.
func (s *Service) persistAnnotations(ctx context.Context) {
	data, err := json.Marshal(s.annotations)
	if err != nil {
		s.warn("failed to serialize annotations", "error", err)
		return
	}
	if err := s.repo.Store(ctx, SnapshotAnnotations, data); err != nil {
		s.warn("failed to persist annotations", "error", err)
	}
}

// persistSubNodes writes the full sub-node snapshot. Same failure
// semantics as persistAnnotations. Caller must hold the lock.
func (s *Service) persistSubNodes(ctx context.Context) {
	data, err := json.Marshal(s.subnodes)
	if err != nil {
		s.warn("failed to serialize sub-nodes", "error", err)
		return
	}
	if err := s.repo.Store(ctx, SnapshotSubNodes, data); err != nil {
		s.warn("failed to persist sub-nodes", "error", err)
	}
}

func (s *Service) warn(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Warn(msg, args...)
	}
}
