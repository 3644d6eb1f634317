package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stylegen/internal/adapters/fs"
	"go.trai.ch/stylegen/internal/adapters/shell"
	"go.trai.ch/stylegen/internal/adapters/telemetry"
	"go.trai.ch/stylegen/internal/app"
	"go.trai.ch/stylegen/internal/core/domain"
	"go.trai.ch/stylegen/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newProvider(t *testing.T, ctrl *gomock.Controller) (ComponentProvider, *mocks.MockLogger, *mocks.MockSettingsLoader) {
	t.Helper()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLoader := mocks.NewMockSettingsLoader(ctrl)

	application := app.New(
		mockLogger,
		mockLoader,
		fs.NewWorkspace(t.TempDir()),
		fs.NewHasher(),
		shell.NewRunner(mockLogger),
		telemetry.NewNoOpTracer(),
	).WithOutput(io.Discard)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:    application,
			Logger: mockLogger,
		}, func() {}, nil
	}
	return provider, mockLogger, mockLoader
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider, _, _ := newProvider(t, ctrl)

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_MissingArguments verifies that missing positional arguments exit 1 without logging.
func TestRun_MissingArguments(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider, _, _ := newProvider(t, ctrl)

	exitCode := run(context.Background(), []string{"generate"}, io.Discard, provider)
	assert.Equal(t, 1, exitCode)
}

// TestRun_GenerateError verifies that a failed generation is logged and exits 1.
func TestRun_GenerateError(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider, mockLogger, mockLoader := newProvider(t, ctrl)

	settings := domain.DefaultSettings()
	settings.Compiler = filepath.Join(t.TempDir(), "missing-compiler")
	mockLoader.EXPECT().Load().Return(settings, nil)

	var logged error
	mockLogger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		logged = err
	})

	out := filepath.Join(t.TempDir(), "out.css")
	exitCode := run(context.Background(), []string{"generate", "Demo", "stylesheet", "-o", out}, io.Discard, provider)

	assert.Equal(t, 1, exitCode)
	require.ErrorIs(t, logged, domain.ErrGenerationFailed)
	require.ErrorIs(t, logged, domain.ErrCompileFailed)
	assert.Equal(t, -1, domain.ExitCode(logged))

	_, err := os.Stat(out)
	assert.True(t, os.IsNotExist(err))
}

// TestRun_Cancelled verifies that a cancelled context stops the run with a non-zero exit.
func TestRun_Cancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider, mockLogger, mockLoader := newProvider(t, ctrl)

	mockLoader.EXPECT().Load().Return(domain.DefaultSettings(), nil)
	mockLogger.EXPECT().Error(gomock.Any()).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exitCode := run(ctx, []string{"generate", "Demo", "stylesheet", "-o", filepath.Join(t.TempDir(), "out.css")}, io.Discard, provider)
	assert.Equal(t, 1, exitCode)
}
