// Package memory implements the TodoRepository port with an in-process map.
// It backs the "memory" database driver and is used where a real database is
// unnecessary. Transactions are serialized by a single lock and rolled back by
// restoring a snapshot.
package memory

import (
	"cmp"
	"context"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-service/internal/ports"
)

// Driver is the database.driver value that selects this store.
const Driver = "memory"

var (
	_ ports.TodoRepository = (*Store)(nil)
	_ ports.TodoRepository = (*view)(nil)
)

// state is the mutable data guarded by Store.mu.
type state struct {
	rows   map[int64]todo.Todo
	nextID int64
}

// Store is a concurrency-safe in-memory TodoRepository.
type Store struct {
	mu    sync.Mutex
	state *state
	now   func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the clock used for CreatedAt and UpdatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New returns an empty Store. IDs start at 1.
func New(opts ...Option) *Store {
	s := &Store{
		state: &state{rows: make(map[int64]todo.Todo), nextID: 1},
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// InTx runs fn with exclusive access to the store. If fn fails, every change
// it made is discarded.
func (s *Store) InTx(ctx context.Context, fn func(ctx context.Context, tx ports.TodoRepository) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := &state{rows: maps.Clone(s.state.rows), nextID: s.state.nextID}
	if err := fn(ctx, s.view()); err != nil {
		s.state = snapshot
		return err
	}
	return nil
}

func (s *Store) ListAll(ctx context.Context) ([]todo.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view().ListAll(ctx)
}

func (s *Store) ListByCompleted(ctx context.Context, completed bool) ([]todo.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view().ListByCompleted(ctx, completed)
}

func (s *Store) FindByID(ctx context.Context, id int64) (*todo.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view().FindByID(ctx, id)
}

func (s *Store) ExistsByID(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view().ExistsByID(ctx, id)
}

func (s *Store) Save(ctx context.Context, t *todo.Todo) (*todo.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view().Save(ctx, t)
}

func (s *Store) SaveAndReadBack(ctx context.Context, t *todo.Todo) (*todo.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view().SaveAndReadBack(ctx, t)
}

func (s *Store) DeleteByID(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view().DeleteByID(ctx, id)
}

func (s *Store) Count(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view().Count(ctx)
}

func (s *Store) CountByCompleted(ctx context.Context, completed bool) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view().CountByCompleted(ctx, completed)
}

func (s *Store) DeleteAllCompleted(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view().DeleteAllCompleted(ctx)
}

func (s *Store) DeleteAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view().DeleteAll(ctx)
}

func (s *Store) FindByTitleContains(ctx context.Context, substr string, ignoreCase bool) ([]todo.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view().FindByTitleContains(ctx, substr, ignoreCase)
}

// HealthCheck always succeeds; the store has no external dependency.
func (s *Store) HealthCheck(context.Context) error {
	return nil
}

// Name identifies the store in health reports.
func (s *Store) Name() string {
	return "database"
}

// Close is a no-op, present so the store can stand in for a database handle.
func (s *Store) Close() error {
	return nil
}

func (s *Store) view() *view {
	return &view{st: s.state, now: s.now}
}

// view operates on state without locking. It is only handed out while
// Store.mu is held.
type view struct {
	st  *state
	now func() time.Time
}

// InTx joins the enclosing transaction.
func (v *view) InTx(ctx context.Context, fn func(ctx context.Context, tx ports.TodoRepository) error) error {
	return fn(ctx, v)
}

func (v *view) ListAll(context.Context) ([]todo.Todo, error) {
	return v.collect(func(*todo.Todo) bool { return true }), nil
}

func (v *view) ListByCompleted(_ context.Context, completed bool) ([]todo.Todo, error) {
	return v.collect(func(t *todo.Todo) bool { return t.Completed == completed }), nil
}

func (v *view) FindByID(_ context.Context, id int64) (*todo.Todo, error) {
	row, ok := v.st.rows[id]
	if !ok {
		return nil, nil
	}
	return clone(&row), nil
}

func (v *view) ExistsByID(_ context.Context, id int64) (bool, error) {
	_, ok := v.st.rows[id]
	return ok, nil
}

// Save assigns an ID and both timestamps on insert. On update it refreshes
// UpdatedAt and keeps the stored CreatedAt.
func (v *view) Save(_ context.Context, t *todo.Todo) (*todo.Todo, error) {
	row := *clone(t)
	now := v.now()

	if existing, ok := v.st.rows[row.ID]; ok && row.ID != 0 {
		row.CreatedAt = existing.CreatedAt
		row.UpdatedAt = now
	} else {
		if row.ID == 0 {
			row.ID = v.st.nextID
		}
		if row.ID >= v.st.nextID {
			v.st.nextID = row.ID + 1
		}
		row.CreatedAt = now
		row.UpdatedAt = now
	}

	v.st.rows[row.ID] = row
	return clone(&row), nil
}

func (v *view) SaveAndReadBack(ctx context.Context, t *todo.Todo) (*todo.Todo, error) {
	saved, err := v.Save(ctx, t)
	if err != nil {
		return nil, err
	}
	return v.FindByID(ctx, saved.ID)
}

func (v *view) DeleteByID(_ context.Context, id int64) error {
	delete(v.st.rows, id)
	return nil
}

func (v *view) Count(context.Context) (int64, error) {
	return int64(len(v.st.rows)), nil
}

func (v *view) CountByCompleted(_ context.Context, completed bool) (int64, error) {
	var n int64
	for _, row := range v.st.rows {
		if row.Completed == completed {
			n++
		}
	}
	return n, nil
}

func (v *view) DeleteAllCompleted(context.Context) (int64, error) {
	var n int64
	for id, row := range v.st.rows {
		if row.Completed {
			delete(v.st.rows, id)
			n++
		}
	}
	return n, nil
}

func (v *view) DeleteAll(context.Context) error {
	clear(v.st.rows)
	return nil
}

func (v *view) FindByTitleContains(_ context.Context, substr string, ignoreCase bool) ([]todo.Todo, error) {
	if ignoreCase {
		needle := strings.ToLower(substr)
		return v.collect(func(t *todo.Todo) bool {
			return strings.Contains(strings.ToLower(t.Title), needle)
		}), nil
	}
	return v.collect(func(t *todo.Todo) bool { return strings.Contains(t.Title, substr) }), nil
}

// collect returns copies of matching rows, newest first. Rows created in the
// same instant fall back to descending ID.
func (v *view) collect(keep func(*todo.Todo) bool) []todo.Todo {
	out := make([]todo.Todo, 0, len(v.st.rows))
	for _, row := range v.st.rows {
		if keep(&row) {
			out = append(out, *clone(&row))
		}
	}
	slices.SortFunc(out, func(a, b todo.Todo) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
	return out
}

func clone(t *todo.Todo) *todo.Todo {
	c := *t
	if t.Description != nil {
		desc := *t.Description
		c.Description = &desc
	}
	return &c
}
