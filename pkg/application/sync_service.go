// Package application orchestrates the optimistic-update engine: it owns the
// snapshot store, the speculative overlay, and the pending-operation tracker,
// and reconciles local toggles with the task service.
package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/felixgeelhaar/fortify/timeout"

	"github.com/garvitthakral/GrindChain/pkg/domain/events"
	"github.com/garvitthakral/GrindChain/pkg/domain/task"
	"github.com/garvitthakral/GrindChain/pkg/domain/tasklist"
)

// ErrEmptyTaskID is returned when an operation addresses no task.
var ErrEmptyTaskID = errors.New("application: empty task id")

// RemoteAPI is the slice of the task service the engine depends on.
// *sdk.Client satisfies it.
type RemoteAPI interface {
	ListTasks(ctx context.Context) ([]task.Task, error)
	UpdateRoadmapItem(ctx context.Context, taskID string, position int, completed bool) (*task.Task, error)
	DeleteTask(ctx context.Context, taskID string) error
	GroupMembers(ctx context.Context, taskID string) ([]task.GroupMember, error)
}

// SyncService reconciles the speculative overlay with the task service.
//
// The overlay is what callers render; the snapshot is the rollback source of
// truth. Mutations are applied speculatively, confirmed against the server,
// and rolled back to the snapshot on any failure. One mutation per roadmap
// item may be in flight at a time; overlapping calls for the same item are
// dropped, not queued.
type SyncService struct {
	mu         sync.RWMutex
	remote     RemoteAPI
	snapshot   *tasklist.SnapshotStore
	overlay    *tasklist.Overlay
	pending    *tasklist.PendingTracker
	dispatcher *events.EventDispatcher
	logger     *slog.Logger

	remoteTimeout time.Duration
}

// ServiceOption configures a SyncService.
type ServiceOption func(*SyncService)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) ServiceOption {
	return func(s *SyncService) { s.logger = logger }
}

// WithRemoteTimeout bounds each remote call. On expiry the operation rolls
// back and its tracker key is released, so a dead request can never leave an
// item stuck in the updating state.
func WithRemoteTimeout(d time.Duration) ServiceOption {
	return func(s *SyncService) { s.remoteTimeout = d }
}

// NewSyncService creates a SyncService on top of the given remote API.
func NewSyncService(remote RemoteAPI, dispatcher *events.EventDispatcher, opts ...ServiceOption) *SyncService {
	s := &SyncService{
		remote:        remote,
		snapshot:      tasklist.NewSnapshotStore(),
		overlay:       tasklist.NewOverlay(),
		pending:       tasklist.NewPendingTracker(),
		dispatcher:    dispatcher,
		logger:        slog.Default(),
		remoteTimeout: 10 * time.Second,
	}
	for _, fn := range opts {
		fn(s)
	}
	if s.dispatcher == nil {
		s.dispatcher = events.NewEventDispatcher()
	}
	return s
}

// Refresh fetches the full collection from the task source, replaces the
// snapshot wholesale, and reseeds the overlay. Unconfirmed local edits that
// predate the refresh are discarded; refresh is authoritative.
func (s *SyncService) Refresh(ctx context.Context) error {
	fetched, err := s.remote.ListTasks(ctx)
	if err != nil {
		return fmt.Errorf("refresh tasks: %w", err)
	}
	s.ReplaceSnapshot(fetched)
	return nil
}

// ReplaceSnapshot installs a confirmed collection, e.g. one pushed by the
// refresh stream. Tasks that fail validation are dropped with a warning
// rather than admitted to the overlay.
func (s *SyncService) ReplaceSnapshot(fetched []task.Task) {
	admitted := make([]task.Task, 0, len(fetched))
	for _, t := range fetched {
		if err := t.Validate(); err != nil {
			s.logger.Warn("dropping invalid task from snapshot", "err", err)
			continue
		}
		admitted = append(admitted, t)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Replace(admitted)
	s.overlay.Reseed(s.snapshot.Tasks())
}

// Tasks returns the current overlay as a read-only copy. This is the
// collection the presentation layer renders.
func (s *SyncService) Tasks() []task.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.overlay.Tasks()
}

// Snapshot returns a copy of the last confirmed collection.
func (s *SyncService) Snapshot() []task.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.Tasks()
}

// PendingCount returns how many roadmap mutations are in flight, for the
// "N updating" indicator.
func (s *SyncService) PendingCount() int {
	return s.pending.Count()
}

// IsPending reports whether the given roadmap item has a mutation in flight.
func (s *SyncService) IsPending(taskID string, position int) bool {
	return s.pending.IsPending(tasklist.OpKey{TaskID: taskID, Position: position})
}

// ToggleRoadmapItem flips one roadmap item's completed flag: applies it
// speculatively, confirms it against the server, and rolls the overlay back
// to the snapshot if the server disagrees or cannot be reached.
//
// A call for an item that already has a mutation in flight is dropped
// silently; the in-flight call wins. Calls for other items proceed
// concurrently and serialize only on the brief overlay swaps.
func (s *SyncService) ToggleRoadmapItem(ctx context.Context, taskID string, position int, currentCompleted bool) error {
	key := tasklist.OpKey{TaskID: taskID, Position: position}
	if !s.pending.TryAcquire(key) {
		s.logger.Debug("toggle already in flight, dropping", "task", taskID, "position", position)
		return nil
	}
	defer s.pending.Release(key)

	op, err := tasklist.NewOpStateMachine(key)
	if err != nil {
		return err
	}
	s.step(op, tasklist.OpEventApply)

	next := !currentCompleted

	s.mu.Lock()
	_, applyErr := s.overlay.ApplyToggle(taskID, position, next)
	s.mu.Unlock()
	if applyErr != nil {
		s.step(op, tasklist.OpEventReject)
		s.logger.Warn("roadmap toggle rejected", "task", taskID, "position", position, "err", applyErr)
		return fmt.Errorf("toggle roadmap item: %w", applyErr)
	}

	s.step(op, tasklist.OpEventDispatch)
	canonical, remoteErr := s.updateRemote(ctx, taskID, position, next)
	if remoteErr != nil {
		s.step(op, tasklist.OpEventReject)
		s.rollback()
		s.logger.Warn("roadmap update failed, rolled back", "task", taskID, "position", position, "err", remoteErr)
		return fmt.Errorf("toggle roadmap item: %w", remoteErr)
	}

	s.step(op, tasklist.OpEventConfirm)
	s.mu.Lock()
	replaceErr := s.overlay.ReplaceTask(*canonical)
	s.mu.Unlock()
	if replaceErr != nil {
		// The task vanished from the overlay mid-flight (refresh or delete).
		// The canonical copy is stale against the new collection; drop it.
		s.logger.Warn("confirmed task no longer in overlay", "task", taskID, "err", replaceErr)
		return nil
	}

	if err := s.dispatcher.Dispatch(ctx, events.NewTaskUpdated(*canonical)); err != nil {
		s.logger.Warn("task updated handlers failed", "task", taskID, "err", err)
	}
	return nil
}

// DeleteTask removes a task on the server. There is no optimistic removal:
// on failure nothing changes locally, because a wrongly-vanished task is a
// worse experience than a wrongly-present one. On success the snapshot owner
// is notified through the TaskDeleted event.
func (s *SyncService) DeleteTask(ctx context.Context, taskID string) error {
	if strings.TrimSpace(taskID) == "" {
		return ErrEmptyTaskID
	}

	t := timeout.New[struct{}](timeout.Config{DefaultTimeout: s.remoteTimeout})
	_, err := t.Execute(ctx, s.remoteTimeout, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.remote.DeleteTask(ctx, taskID)
	})
	if err != nil {
		s.logger.Warn("delete failed, task kept", "task", taskID, "err", err)
		return fmt.Errorf("delete task: %w", err)
	}

	if err := s.dispatcher.Dispatch(ctx, events.NewTaskDeleted(taskID)); err != nil {
		s.logger.Warn("task deleted handlers failed", "task", taskID, "err", err)
	}
	return nil
}

// GroupMembers fetches the member list for assignment display. A failed or
// malformed response degrades to an empty list so rendering never fails on
// membership data.
func (s *SyncService) GroupMembers(ctx context.Context, taskID string) []task.GroupMember {
	members, err := s.remote.GroupMembers(ctx, taskID)
	if err != nil {
		s.logger.Warn("group members unavailable", "task", taskID, "err", err)
		return nil
	}
	return members
}

// updateRemote issues the roadmap mutation with a bounded deadline.
func (s *SyncService) updateRemote(ctx context.Context, taskID string, position int, completed bool) (*task.Task, error) {
	t := timeout.New[*task.Task](timeout.Config{DefaultTimeout: s.remoteTimeout})
	canonical, err := t.Execute(ctx, s.remoteTimeout, func(ctx context.Context) (*task.Task, error) {
		return s.remote.UpdateRoadmapItem(ctx, taskID, position, completed)
	})
	if err != nil {
		return nil, err
	}
	if canonical == nil {
		return nil, fmt.Errorf("remote returned no task")
	}
	if err := canonical.Validate(); err != nil {
		return nil, fmt.Errorf("canonical task invalid: %w", err)
	}
	return canonical, nil
}

// rollback discards the whole overlay and reseeds it from the snapshot.
// Other speculative edits may be in flight, so a precise per-field revert
// is not safe; the coarse reseed always lands on a known-good state.
func (s *SyncService) rollback() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overlay.Reseed(s.snapshot.Tasks())
}

// step advances the operation machine. The sequence is driven entirely by
// this service, so a refused transition is a programming error worth logging
// loudly rather than propagating.
func (s *SyncService) step(op *tasklist.OpStateMachine, event string) {
	if err := op.Transition(event); err != nil {
		s.logger.Error("op state machine out of sync", "event", event, "state", op.Current(), "err", err)
	}
}
