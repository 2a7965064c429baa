package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/domain"
	"taskboard/internal/repository/sqlite"
)

func newTestTaskService(t *testing.T) TaskService {
	t.Helper()
	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := sqlite.NewTaskRepository(db)
	require.NoError(t, repo.Init(context.Background()))
	return NewTaskService(repo)
}

func strPtr(s string) *string { return &s }

func TestCreateAppliesDefaults(t *testing.T) {
	svc := newTestTaskService(t)

	task, err := svc.Create(context.Background(), TaskCreate{Title: "Buy milk"})
	require.NoError(t, err)

	assert.Equal(t, "Buy milk", task.Title)
	assert.Equal(t, "", task.Description)
	assert.Equal(t, domain.PriorityMedium, task.Priority)
	assert.Equal(t, domain.StatusTodo, task.Status)
	assert.False(t, task.CreatedAt.IsZero())
}

func TestCreateKeepsProvidedFields(t *testing.T) {
	svc := newTestTaskService(t)

	task, err := svc.Create(context.Background(), TaskCreate{
		Title:       "deploy",
		Description: strPtr("before friday"),
		Priority:    strPtr("high"),
		Status:      strPtr("in-progress"),
	})
	require.NoError(t, err)

	assert.Equal(t, "before friday", task.Description)
	assert.Equal(t, "high", task.Priority)
	assert.Equal(t, "in-progress", task.Status)
}

func TestCreateAcceptsExplicitEmptyStrings(t *testing.T) {
	svc := newTestTaskService(t)

	// explicitly provided empty values are stored, not defaulted
	task, err := svc.Create(context.Background(), TaskCreate{
		Title:    "odd one",
		Priority: strPtr(""),
		Status:   strPtr(""),
	})
	require.NoError(t, err)
	assert.Equal(t, "", task.Priority)
	assert.Equal(t, "", task.Status)
}

func TestCreateRequiresTitle(t *testing.T) {
	svc := newTestTaskService(t)

	_, err := svc.Create(context.Background(), TaskCreate{})
	assert.ErrorIs(t, err, ErrMissingTitle)
}

func TestUpdateAppliesOnlyProvidedFields(t *testing.T) {
	svc := newTestTaskService(t)
	ctx := context.Background()

	task, err := svc.Create(ctx, TaskCreate{Title: "write tests", Description: strPtr("service layer")})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, task.ID, TaskPatch{Status: strPtr(domain.StatusDone)})
	require.NoError(t, err)

	assert.Equal(t, "write tests", updated.Title)
	assert.Equal(t, "service layer", updated.Description)
	assert.Equal(t, domain.PriorityMedium, updated.Priority)
	assert.Equal(t, domain.StatusDone, updated.Status)
	assert.Equal(t, task.CreatedAt.Unix(), updated.CreatedAt.Unix())
}

func TestUpdateUnknownTask(t *testing.T) {
	svc := newTestTaskService(t)

	_, err := svc.Update(context.Background(), 404, TaskPatch{Title: strPtr("x")})
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestDeleteRemovesTask(t *testing.T) {
	svc := newTestTaskService(t)
	ctx := context.Background()

	task, err := svc.Create(ctx, TaskCreate{Title: "temp"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, task.ID))

	tasks, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestDeleteUnknownTask(t *testing.T) {
	svc := newTestTaskService(t)

	err := svc.Delete(context.Background(), 404)
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestListNewestFirst(t *testing.T) {
	svc := newTestTaskService(t)
	ctx := context.Background()

	for _, title := range []string{"one", "two", "three"} {
		_, err := svc.Create(ctx, TaskCreate{Title: title})
		require.NoError(t, err)
	}

	tasks, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "three", tasks[0].Title)
	assert.Equal(t, "one", tasks[2].Title)
}
