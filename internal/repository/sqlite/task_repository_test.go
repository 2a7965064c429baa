package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/domain"
	"taskboard/internal/repository"
)

func newTestTaskRepo(t *testing.T) repository.TaskRepository {
	t.Helper()
	repo := NewTaskRepository(openTestDB(t))
	require.NoError(t, repo.Init(context.Background()))
	return repo
}

func TestTaskCreateAndGet(t *testing.T) {
	repo := newTestTaskRepo(t)
	ctx := context.Background()

	task := &domain.Task{
		Title:       "Buy milk",
		Description: "two liters",
		Priority:    domain.PriorityHigh,
		Status:      domain.StatusTodo,
	}
	id, err := repo.Create(ctx, task)
	require.NoError(t, err)
	require.Equal(t, id, task.ID)
	assert.False(t, task.CreatedAt.IsZero())

	got, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", got.Title)
	assert.Equal(t, "two liters", got.Description)
	assert.Equal(t, domain.PriorityHigh, got.Priority)
	assert.Equal(t, domain.StatusTodo, got.Status)
	assert.Equal(t, task.CreatedAt.Unix(), got.CreatedAt.Unix())
}

func TestTaskListNewestFirst(t *testing.T) {
	repo := newTestTaskRepo(t)
	ctx := context.Background()

	for _, title := range []string{"first", "second", "third"} {
		_, err := repo.Create(ctx, &domain.Task{Title: title, Priority: "medium", Status: "todo"})
		require.NoError(t, err)
	}

	tasks, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "third", tasks[0].Title)
	assert.Equal(t, "second", tasks[1].Title)
	assert.Equal(t, "first", tasks[2].Title)
}

func TestTaskUpdate(t *testing.T) {
	repo := newTestTaskRepo(t)
	ctx := context.Background()

	task := &domain.Task{Title: "write report", Priority: "medium", Status: "todo"}
	_, err := repo.Create(ctx, task)
	require.NoError(t, err)

	task.Status = domain.StatusDone
	require.NoError(t, repo.Update(ctx, task))

	got, err := repo.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDone, got.Status)
	assert.Equal(t, "write report", got.Title)
}

func TestTaskUpdateUnknown(t *testing.T) {
	repo := newTestTaskRepo(t)

	err := repo.Update(context.Background(), &domain.Task{ID: 404, Title: "x"})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestTaskDelete(t *testing.T) {
	repo := newTestTaskRepo(t)
	ctx := context.Background()

	task := &domain.Task{Title: "temp", Priority: "medium", Status: "todo"}
	_, err := repo.Create(ctx, task)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, task.ID))

	_, err = repo.Get(ctx, task.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	tasks, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestTaskDeleteUnknown(t *testing.T) {
	repo := newTestTaskRepo(t)

	err := repo.Delete(context.Background(), 404)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestTaskArbitraryPriorityAndStatusStored(t *testing.T) {
	repo := newTestTaskRepo(t)
	ctx := context.Background()

	task := &domain.Task{Title: "odd", Priority: "urgent!!", Status: "someday"}
	_, err := repo.Create(ctx, task)
	require.NoError(t, err)

	got, err := repo.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "urgent!!", got.Priority)
	assert.Equal(t, "someday", got.Status)
}
