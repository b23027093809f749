package cli

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alexanderramin/linework/internal/cli/formatter"
	"github.com/alexanderramin/linework/internal/contract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRunService struct {
	runs      []contract.RunSummary
	detail    *contract.RunDetail
	deleted   []string
	lastLimit int
}

func (f *fakeRunService) List(_ context.Context, limit int) ([]contract.RunSummary, error) {
	f.lastLimit = limit
	return f.runs, nil
}

func (f *fakeRunService) Get(_ context.Context, id string) (*contract.RunDetail, error) {
	if f.detail == nil || f.detail.Run.ID != id {
		return nil, fmt.Errorf("run %s not found", id)
	}
	return f.detail, nil
}

func (f *fakeRunService) Delete(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func TestRunsCmd_List(t *testing.T) {
	formatter.SetColorEnabled(false)
	t.Cleanup(func() { formatter.SetColorEnabled(true) })

	fake := &fakeRunService{
		runs: []contract.RunSummary{
			{ID: "run-1", GeneratedAt: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), Rate: 1.2},
		},
	}

	stdout, _, err := runCommand(t, &App{Runs: fake}, "runs")
	require.NoError(t, err)

	assert.Equal(t, 20, fake.lastLimit, "default limit")
	assert.Contains(t, stdout, "run-1")
}

func TestRunsCmd_ListLimitFlag(t *testing.T) {
	fake := &fakeRunService{}

	_, _, err := runCommand(t, &App{Runs: fake}, "runs", "--limit", "5")
	require.NoError(t, err)
	assert.Equal(t, 5, fake.lastLimit)
}

func TestRunsCmd_Show(t *testing.T) {
	formatter.SetColorEnabled(false)
	t.Cleanup(func() { formatter.SetColorEnabled(true) })

	fake := &fakeRunService{
		detail: &contract.RunDetail{
			Run: contract.RunSummary{
				ID:          "run-7",
				GeneratedAt: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
				Rate:        1.2,
			},
		},
	}

	stdout, _, err := runCommand(t, &App{Runs: fake}, "runs", "show", "run-7")
	require.NoError(t, err)
	assert.Contains(t, stdout, "RUN RUN-7")
}

func TestRunsCmd_ShowUnknown(t *testing.T) {
	_, _, err := runCommand(t, &App{Runs: &fakeRunService{}}, "runs", "show", "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestRunsCmd_Delete(t *testing.T) {
	fake := &fakeRunService{}

	stdout, _, err := runCommand(t, &App{Runs: fake}, "runs", "delete", "run-3")
	require.NoError(t, err)

	assert.Equal(t, []string{"run-3"}, fake.deleted)
	assert.Contains(t, stdout, "Deleted run run-3")
}

func TestRunsCmd_ShowRequiresArg(t *testing.T) {
	_, _, err := runCommand(t, &App{Runs: &fakeRunService{}}, "runs", "show")
	require.Error(t, err)
}
