// Package storagetest holds behavior tests shared by every TodoRepository
// implementation. Adapters call Run from their own tests with a factory that
// returns an empty repository.
package storagetest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-service/internal/ports"
)

// Factory returns an empty repository owned by the test.
type Factory func(t *testing.T) ports.TodoRepository

// Run executes the shared repository behavior tests.
func Run(t *testing.T, newRepo Factory) {
	t.Helper()

	t.Run("save assigns id and timestamps", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		saved, err := repo.Save(ctx, todo.New("Buy milk", nil))
		require.NoError(t, err)
		assert.Positive(t, saved.ID)
		assert.False(t, saved.Completed)
		assert.Nil(t, saved.Description)
		assert.False(t, saved.CreatedAt.IsZero())
		assert.True(t, saved.CreatedAt.Equal(saved.UpdatedAt), "created %v updated %v", saved.CreatedAt, saved.UpdatedAt)

		second, err := repo.Save(ctx, todo.New("Walk dog", ptr("")))
		require.NoError(t, err)
		assert.Greater(t, second.ID, saved.ID)
		require.NotNil(t, second.Description)
		assert.Empty(t, *second.Description)
	})

	t.Run("find by id", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		saved, err := repo.Save(ctx, todo.New("Read book", ptr("chapter 3")))
		require.NoError(t, err)

		found, err := repo.FindByID(ctx, saved.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "Read book", found.Title)
		assert.Equal(t, "chapter 3", *found.Description)

		missing, err := repo.FindByID(ctx, saved.ID+100)
		require.NoError(t, err)
		assert.Nil(t, missing)

		exists, err := repo.ExistsByID(ctx, saved.ID)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("lists newest first and filters by completion", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		first := mustSave(t, repo, "first", false)
		second := mustSave(t, repo, "second", true)
		third := mustSave(t, repo, "third", false)

		all, err := repo.ListAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, []int64{third.ID, second.ID, first.ID}, ids(all))

		done, err := repo.ListByCompleted(ctx, true)
		require.NoError(t, err)
		assert.Equal(t, []int64{second.ID}, ids(done))

		open, err := repo.ListByCompleted(ctx, false)
		require.NoError(t, err)
		assert.Equal(t, []int64{third.ID, first.ID}, ids(open))
	})

	t.Run("save and read back keeps createdAt and stamps updatedAt", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		saved := mustSave(t, repo, "Draft", false)
		time.Sleep(5 * time.Millisecond)

		saved.Title = "Final"
		saved.Completed = true
		saved.CreatedAt = saved.CreatedAt.Add(-time.Hour)
		bogusUpdatedAt := time.Date(2999, time.January, 1, 0, 0, 0, 0, time.UTC)
		saved.UpdatedAt = bogusUpdatedAt

		got, err := repo.SaveAndReadBack(ctx, saved)
		require.NoError(t, err)
		assert.Equal(t, "Final", got.Title)
		assert.True(t, got.Completed)
		assert.True(t, got.CreatedAt.Equal(saved.CreatedAt.Add(time.Hour)), "createdAt changed to %v", got.CreatedAt)
		assert.True(t, got.UpdatedAt.After(got.CreatedAt), "updatedAt %v not after createdAt %v", got.UpdatedAt, got.CreatedAt)
		assert.True(t, got.UpdatedAt.Before(bogusUpdatedAt), "updatedAt %v taken from caller, want store timestamp", got.UpdatedAt)

		stored, err := repo.FindByID(ctx, saved.ID)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.True(t, stored.UpdatedAt.Equal(got.UpdatedAt), "read-back updatedAt %v differs from stored %v", got.UpdatedAt, stored.UpdatedAt)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.EqualValues(t, 1, count)
	})

	t.Run("counts and deletes", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		a := mustSave(t, repo, "a", true)
		mustSave(t, repo, "b", true)
		c := mustSave(t, repo, "c", false)

		total, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.EqualValues(t, 3, total)

		completed, err := repo.CountByCompleted(ctx, true)
		require.NoError(t, err)
		pending, err := repo.CountByCompleted(ctx, false)
		require.NoError(t, err)
		assert.EqualValues(t, 2, completed)
		assert.EqualValues(t, 1, pending)

		require.NoError(t, repo.DeleteByID(ctx, a.ID))
		require.NoError(t, repo.DeleteByID(ctx, a.ID), "deleting a missing row must not fail")

		removed, err := repo.DeleteAllCompleted(ctx)
		require.NoError(t, err)
		assert.EqualValues(t, 1, removed)

		left, err := repo.ListAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, []int64{c.ID}, ids(left))

		removed, err = repo.DeleteAllCompleted(ctx)
		require.NoError(t, err)
		assert.Zero(t, removed)

		require.NoError(t, repo.DeleteAll(ctx))
		total, err = repo.Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, total)
	})

	t.Run("title search", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		groceries := mustSave(t, repo, "Buy Groceries", false)
		mustSave(t, repo, "Call mom", false)
		discount := mustSave(t, repo, "50% off groceries", false)

		insensitive, err := repo.FindByTitleContains(ctx, "GROCER", true)
		require.NoError(t, err)
		assert.Equal(t, []int64{discount.ID, groceries.ID}, ids(insensitive))

		sensitive, err := repo.FindByTitleContains(ctx, "Groc", false)
		require.NoError(t, err)
		assert.Equal(t, []int64{groceries.ID}, ids(sensitive))

		literal, err := repo.FindByTitleContains(ctx, "0%", true)
		require.NoError(t, err)
		assert.Equal(t, []int64{discount.ID}, ids(literal))

		none, err := repo.FindByTitleContains(ctx, "_", true)
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("transaction rolls back on error", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		keep := mustSave(t, repo, "keep", false)
		boom := errors.New("boom")

		err := repo.InTx(ctx, func(ctx context.Context, tx ports.TodoRepository) error {
			if _, err := tx.Save(ctx, todo.New("discarded", nil)); err != nil {
				return err
			}
			if err := tx.DeleteByID(ctx, keep.ID); err != nil {
				return err
			}
			return boom
		})
		require.ErrorIs(t, err, boom)

		all, err := repo.ListAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, []int64{keep.ID}, ids(all))
	})

	t.Run("transaction commits", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		err := repo.InTx(ctx, func(ctx context.Context, tx ports.TodoRepository) error {
			_, err := tx.Save(ctx, todo.New("committed", nil))
			return err
		})
		require.NoError(t, err)

		total, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
	})
}

func mustSave(t *testing.T, repo ports.TodoRepository, title string, completed bool) *todo.Todo {
	t.Helper()
	td := todo.New(title, nil)
	td.Completed = completed
	saved, err := repo.Save(context.Background(), td)
	require.NoError(t, err)
	return saved
}

func ids(todos []todo.Todo) []int64 {
	out := make([]int64, len(todos))
	for i := range todos {
		out[i] = todos[i].ID
	}
	return out
}

func ptr(s string) *string { return &s }
