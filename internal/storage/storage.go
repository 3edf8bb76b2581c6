package storage

import (
	"context"
	"founderdeck/internal/models"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:generate mockgen -source=storage.go -destination=../mocks/storage.go -package=mocks -mock_names Provider=MockStorageProvider

type Provider interface {
	GetPool() *pgxpool.Pool
	Close()
	Ping(ctx context.Context) error
	RunMigrations(ctx context.Context) error

	UpsertUser(ctx context.Context, sub, iss, username, displayName, email string) (*models.User, error)
	GetUserByIssSub(ctx context.Context, iss, sub string) (*models.User, error)

	GetUserSetting(ctx context.Context, ownerID, name string) (string, error)
	UpsertUserSetting(ctx context.Context, ownerID, name, value string) error
	DeleteUserSetting(ctx context.Context, ownerID, name string) error

	ListProjects(ctx context.Context, ownerID string) ([]*models.Project, error)
	CreateProject(ctx context.Context, project *models.Project) (*models.Project, error)
	UpdateProject(ctx context.Context, project *models.Project) (*models.Project, error)
	DeleteProject(ctx context.Context, ownerID, id string) error

	ListRevenueSources(ctx context.Context, ownerID string) ([]*models.RevenueSource, error)
	CreateRevenueSource(ctx context.Context, source *models.RevenueSource) (*models.RevenueSource, error)
	UpdateRevenueSource(ctx context.Context, source *models.RevenueSource) (*models.RevenueSource, error)
	DeleteRevenueSource(ctx context.Context, ownerID, id string) error

	ListIdeas(ctx context.Context, ownerID string) ([]*models.Idea, error)
	CreateIdea(ctx context.Context, idea *models.Idea) (*models.Idea, error)
	UpdateIdea(ctx context.Context, idea *models.Idea) (*models.Idea, error)
	DeleteIdea(ctx context.Context, ownerID, id string) error

	ListHabits(ctx context.Context, ownerID string) ([]*models.Habit, error)
	CreateHabit(ctx context.Context, habit *models.Habit) (*models.Habit, error)
	UpdateHabit(ctx context.Context, habit *models.Habit) (*models.Habit, error)
	DeleteHabit(ctx context.Context, ownerID, id string) error

	ListSnippets(ctx context.Context, ownerID string) ([]*models.Snippet, error)
	CreateSnippet(ctx context.Context, snippet *models.Snippet) (*models.Snippet, error)
	UpdateSnippet(ctx context.Context, snippet *models.Snippet) (*models.Snippet, error)
	DeleteSnippet(ctx context.Context, ownerID, id string) error

	ListServers(ctx context.Context, ownerID string) ([]*models.TrackedServer, error)
	ListAllServers(ctx context.Context) ([]*models.TrackedServer, error)
	CreateServer(ctx context.Context, server *models.TrackedServer) (*models.TrackedServer, error)
	UpdateServer(ctx context.Context, server *models.TrackedServer) (*models.TrackedServer, error)
	UpdateServerStatus(ctx context.Context, id string, status models.ServerStatus, latencyMillis int64, checkedAt time.Time) error
	DeleteServer(ctx context.Context, ownerID, id string) error

	ListAcquisitionTargets(ctx context.Context, ownerID string) ([]*models.AcquisitionTarget, error)
	CreateAcquisitionTarget(ctx context.Context, target *models.AcquisitionTarget) (*models.AcquisitionTarget, error)
	UpdateAcquisitionTarget(ctx context.Context, target *models.AcquisitionTarget) (*models.AcquisitionTarget, error)
	DeleteAcquisitionTarget(ctx context.Context, ownerID, id string) error

	GetDashboardSummary(ctx context.Context, ownerID string) (*models.DashboardSummary, error)
}
