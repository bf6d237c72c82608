// Package storetest holds the behaviour every store.TaskStore backend must share.
package storetest

import (
	"context"
	stderrors "errors"
	"sync"
	"testing"
	"time"

	"task-manager/internal/domain"
	"task-manager/internal/errors"
	"task-manager/internal/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Factory returns an empty store. Run closes it when the subtest ends.
type Factory func(t *testing.T) store.TaskStore

// UniqueCreates is the number of sequential creates checked for ID uniqueness.
const UniqueCreates = 10000

// Run exercises a backend against the shared TaskStore contract.
func Run(t *testing.T, factory Factory) {
	tests := []struct {
		name string
		fn   func(t *testing.T, s store.TaskStore)
	}{
		{"CreateThenGetByID", testCreateThenGetByID},
		{"CreateTrimsWhitespace", testCreateTrimsWhitespace},
		{"CreateAbsentDescription", testCreateAbsentDescription},
		{"UniqueIDs", testUniqueIDs},
		{"GetAllEmpty", testGetAllEmpty},
		{"GetAllInsertionOrder", testGetAllInsertionOrder},
		{"GetByIDMissing", testGetByIDMissing},
		{"UpdateReplacesFields", testUpdateReplacesFields},
		{"UpdateMissingLeavesStoreUnchanged", testUpdateMissingLeavesStoreUnchanged},
		{"DeleteTwice", testDeleteTwice},
		{"DeleteKeepsOrder", testDeleteKeepsOrder},
		{"WriteReportScenario", testWriteReportScenario},
		{"DefensiveCopies", testDefensiveCopies},
		{"CanceledContext", testCanceledContext},
		{"ConcurrentAccess", testConcurrentAccess},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := factory(t)
			t.Cleanup(func() {
				assert.NoError(t, s.Close())
			})
			tt.fn(t, s)
		})
	}
}

// Today is the UTC calendar date used for due dates in the suite.
func Today() time.Time {
	return domain.DateOf(time.Now().UTC())
}

// Input returns a valid task input with the given name.
func Input(name string) domain.TaskInput {
	return domain.TaskInput{
		Name:     name,
		Priority: domain.PriorityMedium,
		DueDate:  Today().AddDate(0, 0, 7),
		Status:   domain.StatusPending,
	}
}

func stringPtr(s string) *string {
	return &s
}

func testCreateThenGetByID(t *testing.T, s store.TaskStore) {
	ctx := context.Background()
	in := domain.TaskInput{
		Name:        "Plan sprint",
		Description: stringPtr("Collect estimates"),
		Priority:    domain.PriorityLow,
		DueDate:     Today(),
		Status:      domain.StatusInProgress,
	}

	created, err := s.Create(ctx, in)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, "Plan sprint", created.Name)
	require.NotNil(t, created.Description)
	assert.Equal(t, "Collect estimates", *created.Description)
	assert.Equal(t, domain.PriorityLow, created.Priority)
	assert.True(t, Today().Equal(created.DueDate))
	assert.Equal(t, domain.StatusInProgress, created.Status)

	got, ok, err := s.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, created, got)
}

func testCreateTrimsWhitespace(t *testing.T, s store.TaskStore) {
	ctx := context.Background()
	in := Input("  Buy milk  ")
	in.Description = stringPtr("\t two litres \n")

	created, err := s.Create(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", created.Name)
	assert.Equal(t, "two litres", *created.Description)

	got, ok, err := s.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Buy milk", got.Name)
	assert.Equal(t, "two litres", *got.Description)
}

func testCreateAbsentDescription(t *testing.T, s store.TaskStore) {
	ctx := context.Background()

	created, err := s.Create(ctx, Input("No description"))
	require.NoError(t, err)
	assert.Nil(t, created.Description)

	got, ok, err := s.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Nil(t, got.Description)
}

func testUniqueIDs(t *testing.T, s store.TaskStore) {
	if testing.Short() {
		t.Skip("skipping uniqueness sweep in short mode")
	}

	ctx := context.Background()
	seen := make(map[uuid.UUID]struct{}, UniqueCreates)
	for i := 0; i < UniqueCreates; i++ {
		created, err := s.Create(ctx, Input("task"))
		require.NoError(t, err)
		_, dup := seen[created.ID]
		require.False(t, dup, "duplicate id %s after %d creates", created.ID, i)
		seen[created.ID] = struct{}{}
	}

	all, err := s.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, UniqueCreates)
}

func testGetAllEmpty(t *testing.T, s store.TaskStore) {
	all, err := s.GetAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func testGetAllInsertionOrder(t *testing.T, s store.TaskStore) {
	ctx := context.Background()
	names := []string{"first", "second", "third", "fourth"}
	for _, name := range names {
		_, err := s.Create(ctx, Input(name))
		require.NoError(t, err)
	}

	all, err := s.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, len(names))
	for i, task := range all {
		assert.Equal(t, names[i], task.Name)
	}
}

func testGetByIDMissing(t *testing.T, s store.TaskStore) {
	ctx := context.Background()
	_, err := s.Create(ctx, Input("present"))
	require.NoError(t, err)

	got, ok, err := s.GetByID(ctx, uuid.New())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, domain.Task{}, got)
}

func testUpdateReplacesFields(t *testing.T, s store.TaskStore) {
	ctx := context.Background()
	created, err := s.Create(ctx, domain.TaskInput{
		Name:        "Draft",
		Description: stringPtr("old"),
		Priority:    domain.PriorityLow,
		DueDate:     Today(),
		Status:      domain.StatusPending,
	})
	require.NoError(t, err)

	past := Today().AddDate(0, 0, -3)
	updated, ok, err := s.Update(ctx, created.ID, domain.TaskInput{
		Name:     "  Final  ",
		Priority: domain.PriorityHigh,
		DueDate:  past,
		Status:   domain.StatusDone,
	})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Final", updated.Name)
	assert.Nil(t, updated.Description)
	assert.Equal(t, domain.PriorityHigh, updated.Priority)
	assert.True(t, past.Equal(updated.DueDate))
	assert.Equal(t, domain.StatusDone, updated.Status)

	got, ok, err := s.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, updated, got)

	all, err := s.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func testUpdateMissingLeavesStoreUnchanged(t *testing.T, s store.TaskStore) {
	ctx := context.Background()
	for _, name := range []string{"a", "b"} {
		_, err := s.Create(ctx, Input(name))
		require.NoError(t, err)
	}
	before, err := s.GetAll(ctx)
	require.NoError(t, err)

	updated, ok, err := s.Update(ctx, uuid.New(), Input("ghost"))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, domain.Task{}, updated)

	after, err := s.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func testDeleteTwice(t *testing.T, s store.TaskStore) {
	ctx := context.Background()
	created, err := s.Create(ctx, Input("short-lived"))
	require.NoError(t, err)

	deleted, err := s.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = s.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	_, ok, err := s.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	deleted, err = s.Delete(ctx, uuid.New())
	require.NoError(t, err)
	assert.False(t, deleted)
}

func testDeleteKeepsOrder(t *testing.T, s store.TaskStore) {
	ctx := context.Background()
	var ids []uuid.UUID
	for _, name := range []string{"one", "two", "three"} {
		created, err := s.Create(ctx, Input(name))
		require.NoError(t, err)
		ids = append(ids, created.ID)
	}

	deleted, err := s.Delete(ctx, ids[1])
	require.NoError(t, err)
	require.True(t, deleted)

	_, err = s.Create(ctx, Input("four"))
	require.NoError(t, err)

	all, err := s.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "one", all[0].Name)
	assert.Equal(t, "three", all[1].Name)
	assert.Equal(t, "four", all[2].Name)
}

func testWriteReportScenario(t *testing.T, s store.TaskStore) {
	ctx := context.Background()
	created, err := s.Create(ctx, domain.TaskInput{
		Name:     "Write report",
		Priority: domain.PriorityHigh,
		DueDate:  Today(),
		Status:   domain.StatusPending,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)

	all, err := s.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, created, all[0])

	got, ok, err := s.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, created, got)

	deleted, err := s.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, ok, err = s.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func testDefensiveCopies(t *testing.T, s store.TaskStore) {
	ctx := context.Background()
	description := "original"
	in := Input("copy me")
	in.Description = &description

	created, err := s.Create(ctx, in)
	require.NoError(t, err)

	description = "changed by caller"
	*created.Description = "changed via result"
	created.Name = "renamed locally"

	got, ok, err := s.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "copy me", got.Name)
	assert.Equal(t, "original", *got.Description)

	*got.Description = "changed via read"
	all, err := s.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "original", *all[0].Description)
}

func testCanceledContext(t *testing.T, s store.TaskStore) {
	live := context.Background()
	existing, err := s.Create(live, Input("existing"))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assertCanceled := func(t *testing.T, err error) {
		t.Helper()
		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeCanceled), "expected canceled error, got %v", err)
		assert.True(t, stderrors.Is(err, context.Canceled))
	}

	_, err = s.Create(ctx, Input("never stored"))
	assertCanceled(t, err)

	_, err = s.GetAll(ctx)
	assertCanceled(t, err)

	_, _, err = s.GetByID(ctx, existing.ID)
	assertCanceled(t, err)

	_, _, err = s.Update(ctx, existing.ID, Input("never applied"))
	assertCanceled(t, err)

	_, err = s.Delete(ctx, existing.ID)
	assertCanceled(t, err)

	all, err := s.GetAll(live)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, existing, all[0])
}

func testConcurrentAccess(t *testing.T, s store.TaskStore) {
	const workers = 8
	const perWorker = 25

	ctx := context.Background()
	var wg sync.WaitGroup
	ids := make(chan uuid.UUID, workers*perWorker)
	errs := make(chan error, workers*perWorker*3)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				created, err := s.Create(ctx, Input("concurrent"))
				if err != nil {
					errs <- err
					continue
				}
				ids <- created.ID
				if _, _, err := s.GetByID(ctx, created.ID); err != nil {
					errs <- err
				}
				if _, err := s.GetAll(ctx); err != nil {
					errs <- err
				}
			}
		}()
	}
	wg.Wait()
	close(ids)
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}

	seen := make(map[uuid.UUID]struct{})
	for id := range ids {
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, workers*perWorker)

	all, err := s.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, workers*perWorker)
}
