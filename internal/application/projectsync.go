package application

import (
	"context"
	"log/slog"
	"time"

	"github.com/ericfisherdev/portfolio-api/internal/domain/port/driven"
)

// SyncStats summarises the outcome of one sync pass.
type SyncStats struct {
	Synced  int
	Skipped int
	Failed  int
}

// ProjectSyncService periodically refreshes GitHub metadata (stars, last
// push) for research projects whose project URL points at a github.com
// repository. It is entirely optional: construct it with a nil client and
// Start returns immediately.
type ProjectSyncService struct {
	client    driven.RepoMetadataClient
	store     driven.ResearchStore
	interval  time.Duration
	refreshCh chan chan error
}

// NewProjectSyncService creates a ProjectSyncService. client may be nil when
// no GitHub token is configured.
func NewProjectSyncService(client driven.RepoMetadataClient, store driven.ResearchStore, interval time.Duration) *ProjectSyncService {
	return &ProjectSyncService{
		client:    client,
		store:     store,
		interval:  interval,
		refreshCh: make(chan chan error),
	}
}

// Start begins the sync loop: an immediate pass, then one per interval, plus
// manual refresh requests. Blocks until the context is canceled. Returns
// immediately when no client is configured.
func (s *ProjectSyncService) Start(ctx context.Context) {
	if s.client == nil {
		slog.Info("project sync disabled, no github client configured")
		return
	}

	if _, err := s.syncAll(ctx); err != nil {
		slog.Error("initial project sync failed", "error", err)
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("project sync stopped")
			return
		case <-ticker.C:
			if _, err := s.syncAll(ctx); err != nil {
				slog.Error("project sync cycle failed", "error", err)
			}
		case done := <-s.refreshCh:
			_, err := s.syncAll(ctx)
			done <- err
		}
	}
}

// Refresh triggers a sync pass outside the regular interval and blocks until
// it completes or the context is canceled. Returns nil immediately when sync
// is disabled.
func (s *ProjectSyncService) Refresh(ctx context.Context) error {
	if s.client == nil {
		return nil
	}

	done := make(chan error, 1)

	select {
	case s.refreshCh <- done:
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// syncAll fetches metadata for every project with a GitHub URL. Per-project
// failures are logged and counted but do not abort the pass.
func (s *ProjectSyncService) syncAll(ctx context.Context) (SyncStats, error) {
	var stats SyncStats

	projects, err := s.store.List(ctx)
	if err != nil {
		return stats, err
	}

	for _, project := range projects {
		owner, repo, ok := project.GitHubRepo()
		if !ok {
			stats.Skipped++
			continue
		}

		meta, err := s.client.FetchRepo(ctx, owner, repo)
		if err != nil {
			slog.Error("fetch project metadata failed",
				"project_id", project.ID, "repo", owner+"/"+repo, "error", err)
			stats.Failed++
			continue
		}

		if err := s.store.UpdateMetadata(ctx, project.ID, *meta); err != nil {
			slog.Error("store project metadata failed",
				"project_id", project.ID, "error", err)
			stats.Failed++
			continue
		}

		stats.Synced++
	}

	slog.Info("project sync complete",
		"synced", stats.Synced, "skipped", stats.Skipped, "failed", stats.Failed)

	return stats, nil
}
