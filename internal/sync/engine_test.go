package sync_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/firefox-ai/prompts-sync/internal/config"
	"github.com/firefox-ai/prompts-sync/internal/remotesettings"
	"github.com/firefox-ai/prompts-sync/internal/remotesettings/mocks"
	syncengine "github.com/firefox-ai/prompts-sync/internal/sync"
)

func newEngine(t *testing.T, env config.Environment) (*syncengine.Engine, *mocks.MockClient) {
	t.Helper()
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	engine := syncengine.NewEngine(syncengine.Config{Environment: env}, client)
	return engine, client
}

func TestEngine_Sync_NoChanges(t *testing.T) {
	t.Parallel()

	engine, client := newEngine(t, config.EnvironmentStage)
	desired := []remotesettings.Record{{ID: "test-1", Prompts: "foo"}}

	client.EXPECT().FetchAllRecords(gomock.Any()).Return(desired, nil)
	// No batch and no review transition for an empty diff.

	err := engine.Sync(t.Context(), desired)

	require.NoError(t, err)
}

func TestEngine_Sync_FetchError(t *testing.T) {
	t.Parallel()

	engine, client := newEngine(t, config.EnvironmentStage)

	client.EXPECT().FetchAllRecords(gomock.Any()).Return(nil, errors.New("server error"))
	// No mutation of any kind may follow a fetch failure.

	err := engine.Sync(t.Context(), []remotesettings.Record{{ID: "test-1"}})

	require.Error(t, err)
	assert.ErrorIs(t, err, syncengine.ErrFetch)
}

func TestEngine_Sync_CreatesAndRequestsReview(t *testing.T) {
	t.Parallel()

	engine, client := newEngine(t, config.EnvironmentStage)
	ctrl := gomock.NewController(t)
	batch := mocks.NewMockBatch(ctrl)

	desired := []remotesettings.Record{{ID: "chat--claude-3-5--v1", Prompts: "A"}}

	client.EXPECT().FetchAllRecords(gomock.Any()).Return(nil, nil)
	client.EXPECT().NewBatch().Return(batch)
	batch.EXPECT().CreateRecord(desired[0])
	batch.EXPECT().Commit(gomock.Any()).Return(1, nil)
	client.EXPECT().RequestReview(gomock.Any(), "r?").Return(nil)
	// Outside dev no approval call is made.

	err := engine.Sync(t.Context(), desired)

	require.NoError(t, err)
}

func TestEngine_Sync_UpdateStripsLastModified(t *testing.T) {
	t.Parallel()

	engine, client := newEngine(t, config.EnvironmentStage)
	ctrl := gomock.NewController(t)
	batch := mocks.NewMockBatch(ctrl)

	desired := remotesettings.Record{ID: "test-1", Prompts: "new", LastModified: 456}
	actual := remotesettings.Record{ID: "test-1", Prompts: "old", LastModified: 123}

	client.EXPECT().FetchAllRecords(gomock.Any()).Return([]remotesettings.Record{actual}, nil)
	client.EXPECT().NewBatch().Return(batch)

	var submitted remotesettings.Record
	batch.EXPECT().UpdateRecord(gomock.Any()).Do(func(record remotesettings.Record) {
		submitted = record
	})
	batch.EXPECT().Commit(gomock.Any()).Return(1, nil)
	client.EXPECT().RequestReview(gomock.Any(), "r?").Return(nil)

	err := engine.Sync(t.Context(), []remotesettings.Record{desired})

	require.NoError(t, err)
	assert.Zero(t, submitted.LastModified, "updates must never carry a revision stamp")
	assert.Equal(t, "new", submitted.Prompts)
}

func TestEngine_Sync_DeletesByID(t *testing.T) {
	t.Parallel()

	engine, client := newEngine(t, config.EnvironmentStage)
	ctrl := gomock.NewController(t)
	batch := mocks.NewMockBatch(ctrl)

	actual := remotesettings.Record{ID: "test-1", Prompts: "foo"}

	client.EXPECT().FetchAllRecords(gomock.Any()).Return([]remotesettings.Record{actual}, nil)
	client.EXPECT().NewBatch().Return(batch)
	batch.EXPECT().DeleteRecord("test-1")
	batch.EXPECT().Commit(gomock.Any()).Return(1, nil)
	client.EXPECT().RequestReview(gomock.Any(), "r?").Return(nil)

	err := engine.Sync(t.Context(), nil)

	require.NoError(t, err)
}

func TestEngine_Sync_DevAutoApproves(t *testing.T) {
	t.Parallel()

	engine, client := newEngine(t, config.EnvironmentDev)
	ctrl := gomock.NewController(t)
	batch := mocks.NewMockBatch(ctrl)

	desired := []remotesettings.Record{{ID: "test-1", Prompts: "foo"}}

	client.EXPECT().FetchAllRecords(gomock.Any()).Return(nil, nil)
	client.EXPECT().NewBatch().Return(batch)
	batch.EXPECT().CreateRecord(desired[0])
	batch.EXPECT().Commit(gomock.Any()).Return(1, nil)
	gomock.InOrder(
		client.EXPECT().RequestReview(gomock.Any(), "r?").Return(nil),
		client.EXPECT().ApproveChanges(gomock.Any()).Return(nil),
	)

	err := engine.Sync(t.Context(), desired)

	require.NoError(t, err)
}

func TestEngine_Sync_BatchError(t *testing.T) {
	t.Parallel()

	engine, client := newEngine(t, config.EnvironmentStage)
	ctrl := gomock.NewController(t)
	batch := mocks.NewMockBatch(ctrl)

	desired := []remotesettings.Record{{ID: "test-1", Prompts: "foo"}}

	client.EXPECT().FetchAllRecords(gomock.Any()).Return(nil, nil)
	client.EXPECT().NewBatch().Return(batch)
	batch.EXPECT().CreateRecord(desired[0])
	batch.EXPECT().Commit(gomock.Any()).Return(0, errors.New("batch failed"))
	// No review call after a failed batch.

	err := engine.Sync(t.Context(), desired)

	require.Error(t, err)
	assert.ErrorIs(t, err, syncengine.ErrApply)
}

func TestEngine_Sync_ReviewError(t *testing.T) {
	t.Parallel()

	engine, client := newEngine(t, config.EnvironmentStage)
	ctrl := gomock.NewController(t)
	batch := mocks.NewMockBatch(ctrl)

	desired := []remotesettings.Record{{ID: "test-1", Prompts: "foo"}}

	client.EXPECT().FetchAllRecords(gomock.Any()).Return(nil, nil)
	client.EXPECT().NewBatch().Return(batch)
	batch.EXPECT().CreateRecord(desired[0])
	// The batch succeeds and stays applied even though the review
	// transition fails afterwards.
	batch.EXPECT().Commit(gomock.Any()).Return(1, nil)
	client.EXPECT().RequestReview(gomock.Any(), "r?").Return(errors.New("review failed"))

	err := engine.Sync(t.Context(), desired)

	require.Error(t, err)
	assert.ErrorIs(t, err, syncengine.ErrReview)
}

func TestEngine_Sync_ApprovalError(t *testing.T) {
	t.Parallel()

	engine, client := newEngine(t, config.EnvironmentDev)
	ctrl := gomock.NewController(t)
	batch := mocks.NewMockBatch(ctrl)

	desired := []remotesettings.Record{{ID: "test-1", Prompts: "foo"}}

	client.EXPECT().FetchAllRecords(gomock.Any()).Return(nil, nil)
	client.EXPECT().NewBatch().Return(batch)
	batch.EXPECT().CreateRecord(desired[0])
	batch.EXPECT().Commit(gomock.Any()).Return(1, nil)
	client.EXPECT().RequestReview(gomock.Any(), "r?").Return(nil)
	client.EXPECT().ApproveChanges(gomock.Any()).Return(errors.New("approval failed"))

	err := engine.Sync(t.Context(), desired)

	require.Error(t, err)
	assert.ErrorIs(t, err, syncengine.ErrReview)
}

// A second run with unchanged desired input over the state the first run
// produced yields an empty diff.
func TestEngine_Sync_SecondRunIsNoOp(t *testing.T) {
	t.Parallel()

	engine, client := newEngine(t, config.EnvironmentStage)
	ctrl := gomock.NewController(t)
	batch := mocks.NewMockBatch(ctrl)

	desired := []remotesettings.Record{{ID: "chat--claude-3-5--v1", Prompts: "A"}}

	// First run: record is created.
	client.EXPECT().FetchAllRecords(gomock.Any()).Return(nil, nil)
	client.EXPECT().NewBatch().Return(batch)
	batch.EXPECT().CreateRecord(desired[0])
	batch.EXPECT().Commit(gomock.Any()).Return(1, nil)
	client.EXPECT().RequestReview(gomock.Any(), "r?").Return(nil)

	require.NoError(t, engine.Sync(t.Context(), desired))

	// Second run: the store now returns the created record (with a
	// server-assigned stamp) and nothing happens.
	stored := desired[0]
	stored.LastModified = 1724580000000
	client.EXPECT().FetchAllRecords(gomock.Any()).Return([]remotesettings.Record{stored}, nil)

	require.NoError(t, engine.Sync(t.Context(), desired))
}
