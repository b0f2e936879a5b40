// Package optimistic gives a UI a locally-mutated view of a bookmark before
// the server confirms the mutation, and reconciles deterministically when the
// background request resolves.
//
// Each entity runs a small state machine: Idle -> Pending(action) ->
// {Committed | RolledBack} -> Idle. Every Begin hands out a monotonically
// increasing token; a resolution carrying a token that has been superseded by
// a newer Begin is discarded, so a stale in-flight request can never
// overwrite newer optimistic state.
package optimistic

import (
	"context"
	"sync"

	"markfy/pkg/client"
)

// State is the reconciliation state of a controller.
type State int

const (
	// Idle means the projection equals the last server-confirmed value.
	Idle State = iota
	// Pending means an action is applied locally but not yet confirmed.
	Pending
)

// actionKind tags the supported optimistic actions.
type actionKind int

const (
	actionToggleFavorite actionKind = iota
	actionUpdate
	actionDelete
)

// Action is one optimistic mutation.
type Action struct {
	kind  actionKind
	patch client.UpdateRequest
}

// ToggleFavorite flips isFavorite in the projected view.
func ToggleFavorite() Action {
	return Action{kind: actionToggleFavorite}
}

// Update merges the non-nil fields of patch into the projected view.
func Update(patch client.UpdateRequest) Action {
	return Action{kind: actionUpdate, patch: patch}
}

// Delete marks the projection as pending deletion. The projected fields stay
// unchanged; removing the entity from a listing is the owning list's concern.
func Delete() Action {
	return Action{kind: actionDelete}
}

// Token identifies one Begin. Resolutions must present the token they were
// issued; stale tokens are ignored.
type Token uint64

// Snapshot is the projected view handed to the renderer.
type Snapshot struct {
	Bookmark      client.Bookmark
	PendingDelete bool
}

// Controller manages the optimistic projection of a single bookmark.
// All methods are safe for concurrent use.
type Controller struct {
	mu        sync.Mutex
	confirmed client.Bookmark
	deleted   bool
	pending   *pendingAction
	seq       uint64
}

type pendingAction struct {
	token  Token
	action Action
}

// NewController creates a controller seeded with the server-confirmed value.
func NewController(confirmed client.Bookmark) *Controller {
	return &Controller{confirmed: confirmed}
}

// Begin applies the action to the projection synchronously and returns the
// new snapshot together with the token the eventual resolution must present.
// The snapshot is visible before any network round-trip starts. Beginning a
// new action while another is pending supersedes it: the older action's
// resolution becomes stale.
func (c *Controller) Begin(a Action) (Snapshot, Token) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	token := Token(c.seq)
	c.pending = &pendingAction{token: token, action: a}
	return c.projectionLocked(), token
}

// Commit resolves a pending action as succeeded. When the server returned the
// mutated entity it becomes the confirmed value; otherwise the action is
// folded into the confirmed value locally until the next Confirm. Commit
// reports whether the resolution was current; stale tokens are discarded.
func (c *Controller) Commit(token Token, confirmed *client.Bookmark) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pending == nil || c.pending.token != token {
		return false
	}

	action := c.pending.action
	c.pending = nil

	switch {
	case action.kind == actionDelete:
		c.deleted = true
	case confirmed != nil:
		c.confirmed = *confirmed
	default:
		c.confirmed = applyAction(c.confirmed, action)
	}
	return true
}

// Rollback resolves a pending action as failed: the projection reverts to the
// pre-action value. Reports whether the resolution was current.
func (c *Controller) Rollback(token Token) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pending == nil || c.pending.token != token {
		return false
	}
	c.pending = nil
	return true
}

// Confirm absorbs a server revalidation. Revalidation is the source of truth
// for confirmed state; a pending action stays applied on top of it.
func (c *Controller) Confirm(b client.Bookmark) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.confirmed = b
	c.deleted = false
}

// Projection returns the current snapshot: the confirmed value with the
// pending action, if any, applied on top.
func (c *Controller) Projection() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionLocked()
}

// State reports whether an action is in flight.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending != nil {
		return Pending
	}
	return Idle
}

// Deleted reports whether a delete has been confirmed.
func (c *Controller) Deleted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.deleted
}

// Do runs one full optimistic round-trip: Begin, then the mutation, then
// Commit or Rollback depending on the outcome. The projection reflects the
// action before mutate is invoked. Any mutation error triggers a rollback and
// is returned to the caller.
func (c *Controller) Do(ctx context.Context, a Action, mutate func(context.Context) (*client.Bookmark, error)) error {
	_, token := c.Begin(a)

	confirmed, err := mutate(ctx)
	if err != nil {
		c.Rollback(token)
		return err
	}

	c.Commit(token, confirmed)
	return nil
}

func (c *Controller) projectionLocked() Snapshot {
	snap := Snapshot{Bookmark: c.confirmed, PendingDelete: c.deleted}
	if c.pending == nil {
		return snap
	}
	switch c.pending.action.kind {
	case actionDelete:
		snap.PendingDelete = true
	default:
		snap.Bookmark = applyAction(snap.Bookmark, c.pending.action)
	}
	return snap
}

func applyAction(b client.Bookmark, a Action) client.Bookmark {
	switch a.kind {
	case actionToggleFavorite:
		b.IsFavorite = !b.IsFavorite
	case actionUpdate:
		if a.patch.Title != nil {
			b.Title = *a.patch.Title
		}
		if a.patch.URL != nil {
			b.URL = *a.patch.URL
		}
		if a.patch.Description != nil {
			b.Description = *a.patch.Description
		}
		if a.patch.IsFavorite != nil {
			b.IsFavorite = *a.patch.IsFavorite
		}
	}
	return b
}
