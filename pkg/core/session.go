package core

import "context"

// SessionKind identifies what an edit session targets.
type SessionKind int

const (
	SessionNode SessionKind = iota
	SessionSubNodeNew
	SessionSubNodeEdit
)

// EditSession holds the identity of the node or sub-node currently being
// edited and the draft values of its editable fields before commit.
// Sessions are transient UI state and are never persisted.
type EditSession struct {
	Kind      SessionKind
	NodeKey   string // set for SessionNode
	ParentKey string // set for sub-node sessions
	SubID     string // set for SessionSubNodeEdit

	// Drafts, pre-filled on open and discarded on close.
	Label    string
	Deadline string
	Notes    string
}

// SessionManager owns the single open edit session. Opening a new session
// while one is open replaces it, discarding the replaced session's unsaved
// drafts; this is accepted lossy behavior, not an error.
type SessionManager struct {
	svc     *Service
	current *EditSession
}

// NewSessionManager creates a SessionManager bound to a store service.
func NewSessionManager(svc *Service) *SessionManager {
	return &SessionManager{svc: svc}
}

// Current returns the open session, or nil.
func (m *SessionManager) Current() *EditSession {
	return m.current
}

// OpenNode starts editing a static node's annotation, pre-filling the
// drafts from the stored record.
func (m *SessionManager) OpenNode(nodeKey string) *EditSession {
	rec := m.svc.Annotation(nodeKey)
	m.current = &EditSession{
		Kind:     SessionNode,
		NodeKey:  nodeKey,
		Deadline: rec.Deadline,
		Notes:    rec.Notes,
	}
	return m.current
}

// OpenNewSubNode starts creating a sub-node under the parent key with
// empty defaults.
func (m *SessionManager) OpenNewSubNode(parentKey string) *EditSession {
	m.current = &EditSession{
		Kind:      SessionSubNodeNew,
		ParentKey: parentKey,
	}
	return m.current
}

// OpenSubNode starts editing an existing sub-node, pre-filling label and
// derived annotation. Returns nil (and opens nothing) for an unknown id.
func (m *SessionManager) OpenSubNode(parentKey, subID string) *EditSession {
	var found *SubNode
	for _, sub := range m.svc.SubNodes(parentKey) {
		if sub.ID == subID {
			s := sub
			found = &s
			break
		}
	}
	if found == nil {
		return nil
	}
	rec := m.svc.Annotation(SubKey(parentKey, subID))
	m.current = &EditSession{
		Kind:      SessionSubNodeEdit,
		ParentKey: parentKey,
		SubID:     subID,
		Label:     found.Label,
		Deadline:  rec.Deadline,
		Notes:     rec.Notes,
	}
	return m.current
}

// Commit applies the drafts through the store and closes the session.
// A validation failure (empty sub-node label) leaves the session open so
// the caller can correct the drafts.
func (m *SessionManager) Commit(ctx context.Context) error {
	if m.current == nil {
		return nil
	}

	var err error
	switch m.current.Kind {
	case SessionNode:
		err = m.svc.Upsert(ctx, m.current.NodeKey, m.current.Deadline, m.current.Notes)
	case SessionSubNodeNew:
		_, err = m.svc.CreateSubNode(ctx, m.current.ParentKey, m.current.Label, m.current.Deadline, m.current.Notes)
	case SessionSubNodeEdit:
		err = m.svc.UpdateSubNode(ctx, m.current.ParentKey, m.current.SubID, m.current.Label, m.current.Deadline, m.current.Notes)
	}
	if err != nil {
		return err
	}
	m.current = nil
	return nil
}

// Cancel discards the drafts without mutating any store.
func (m *SessionManager) Cancel() {
	m.current = nil
}
