package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/sujin-dev/revu-manager-api/infrastructure/repository"
	"github.com/sujin-dev/revu-manager-api/internal/config"
	"github.com/sujin-dev/revu-manager-api/internal/domain"
	"github.com/sujin-dev/revu-manager-api/internal/usecases/statistics"
)

// SnapshotSyncConfig holds the scheduler knobs resolved from the app config.
type SnapshotSyncConfig struct {
	CronSchedule      string
	MaxConcurrentJobs int
	RetentionMonths   int
	SyncEnabled       bool
}

// SnapshotSyncService recomputes every active user's monthly growth series
// on a cron schedule and persists the buckets as snapshots. Snapshots older
// than the retention window are pruned at the end of each run.
type SnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	config              SnapshotSyncConfig
	userRepo            repository.UserRepository
	snapshotRepo        repository.StatSnapshotRepository
	statsService        statistics.Provider
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewSnapshotSyncService(
	userRepo repository.UserRepository,
	snapshotRepo repository.StatSnapshotRepository,
	statsService statistics.Provider,
	appConfig *config.Config,
) *SnapshotSyncService {
	syncConfig := SnapshotSyncConfig{
		CronSchedule:      appConfig.SnapshotSync.CronSchedule,
		MaxConcurrentJobs: appConfig.SnapshotSync.MaxConcurrentJobs,
		RetentionMonths:   appConfig.SnapshotSync.RetentionMonths,
		SyncEnabled:       appConfig.SnapshotSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       syncConfig.CronSchedule,
		"max_concurrent_jobs": syncConfig.MaxConcurrentJobs,
		"retention_months":    syncConfig.RetentionMonths,
		"sync_enabled":        syncConfig.SyncEnabled,
	}).Info("snapshot sync scheduler configuration loaded")

	return &SnapshotSyncService{
		scheduler:    gocron.NewScheduler(time.Local),
		config:       syncConfig,
		userRepo:     userRepo,
		snapshotRepo: snapshotRepo,
		statsService: statsService,
	}
}

// Start registers the cron job and runs the scheduler until ctx is done.
func (s *SnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("snapshot sync disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("starting snapshot sync scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncSnapshots()
	})
	if err != nil {
		return fmt.Errorf("scheduling snapshot sync: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("stopping snapshot sync scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *SnapshotSyncService) syncSnapshots() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("snapshot sync already running, skipping")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("starting snapshot sync for all active users")

	users, err := s.userRepo.ListActiveUsers()
	if err != nil {
		logrus.WithError(err).Error("failed to list users for snapshot sync")
		return
	}

	if len(users) == 0 {
		logrus.Info("no active users found for snapshot sync")
		return
	}

	s.processUsers(users)

	if s.config.RetentionMonths > 0 {
		pruned, err := s.snapshotRepo.DeleteOlderThan(s.config.RetentionMonths)
		if err != nil {
			logrus.WithError(err).Error("failed to prune old snapshots")
		} else if pruned > 0 {
			logrus.WithField("pruned", pruned).Info("old snapshots pruned")
		}
	}

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"users":    len(users),
	}).Info("snapshot sync completed")

	s.lastSyncCompletedAt = time.Now()
}

func (s *SnapshotSyncService) processUsers(users []*domain.User) {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	for _, user := range users {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(u *domain.User) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			if err := s.processUserSnapshots(u.ID); err != nil {
				logrus.WithError(err).WithFields(logrus.Fields{
					"user_id": u.ID,
				}).Error("failed to sync snapshots for user")
			}
		}(user)
	}

	wg.Wait()
}

// processUserSnapshots recomputes the user's full growth series and upserts
// every bucket. Upserting the whole series keeps past months honest when a
// user backfills or edits old campaigns.
func (s *SnapshotSyncService) processUserSnapshots(userID int) error {
	now := time.Now()
	selector := domain.MonthOf(now.Year(), now.Month())

	buckets, err := s.statsService.MonthlyGrowth(userID, selector)
	if err != nil {
		return fmt.Errorf("computing growth series: %w", err)
	}

	for _, bucket := range buckets {
		if err := s.snapshotRepo.SaveOrUpdate(userID, bucket); err != nil {
			return fmt.Errorf("saving snapshot %s: %w", bucket.MonthKey, err)
		}
	}

	logrus.WithFields(logrus.Fields{
		"user_id": userID,
		"buckets": len(buckets),
	}).Debug("user snapshots synced")

	return nil
}
