package jobs

import (
	"context"
	"founderdeck/internal/mocks"
	"founderdeck/internal/models"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestProbeStatuses(t *testing.T) {
	up := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer up.Close()

	noContent := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer noContent.Close()

	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer down.Close()

	job := NewServerHealthJob(nil, time.Minute, testLogger())

	status, _ := job.probe(context.Background(), up.URL)
	assert.Equal(t, models.ServerStatusUp, status)

	status, _ = job.probe(context.Background(), noContent.URL)
	assert.Equal(t, models.ServerStatusUp, status)

	status, _ = job.probe(context.Background(), down.URL)
	assert.Equal(t, models.ServerStatusDown, status)

	status, latency := job.probe(context.Background(), "")
	assert.Equal(t, models.ServerStatusUnknown, status)
	assert.Zero(t, latency)

	unreachable := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	unreachable.Close()
	status, _ = job.probe(context.Background(), unreachable.URL)
	assert.Equal(t, models.ServerStatusDown, status)
}

func TestCheckAllWritesStatusesBack(t *testing.T) {
	up := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer up.Close()

	ctrl := gomock.NewController(t)
	store := mocks.NewMockStorageProvider(ctrl)

	store.EXPECT().
		ListAllServers(gomock.Any()).
		Return([]*models.TrackedServer{
			{ID: "s-1", Name: "web", CheckURL: up.URL},
			{ID: "s-2", Name: "unconfigured"},
		}, nil)

	store.EXPECT().
		UpdateServerStatus(gomock.Any(), "s-1", models.ServerStatusUp, gomock.Any(), gomock.Any()).
		Return(nil)
	store.EXPECT().
		UpdateServerStatus(gomock.Any(), "s-2", models.ServerStatusUnknown, int64(0), gomock.Any()).
		Return(nil)

	job := NewServerHealthJob(store, time.Minute, testLogger())

	assert.NoError(t, job.checkAll(context.Background()))
}

func TestRunRejectsNonPositiveInterval(t *testing.T) {
	job := NewServerHealthJob(nil, 0, testLogger())
	assert.Error(t, job.Run(context.Background()))
}
