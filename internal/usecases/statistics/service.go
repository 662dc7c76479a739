package statistics

import (
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sujin-dev/revu-manager-api/infrastructure/repository"
	"github.com/sujin-dev/revu-manager-api/internal/domain"
)

// Provider is the statistics surface exposed to the API layer.
type Provider interface {
	PeriodSummary(userID int, selector domain.PeriodSelector) (*domain.PeriodSummary, error)
	MonthlyGrowth(userID int, selector domain.PeriodSelector) ([]*domain.MonthBucket, error)
}

type summaryCacheEntry struct {
	summary   *domain.PeriodSummary
	expiresAt time.Time
}

// Service fetches a user's raw records and runs them through the pure
// aggregation pipeline. State is limited to the optional per-query summary
// cache; every computation itself is a fresh fold.
type Service struct {
	campaignRepo    repository.CampaignRepository
	extraIncomeRepo repository.ExtraIncomeRepository

	useCache bool
	cacheTTL time.Duration
	cacheMu  sync.Mutex
	cache    map[string]summaryCacheEntry
}

func NewService(
	campaignRepo repository.CampaignRepository,
	extraIncomeRepo repository.ExtraIncomeRepository,
) *Service {
	return &Service{
		campaignRepo:    campaignRepo,
		extraIncomeRepo: extraIncomeRepo,
	}
}

// WithCache enables the summary cache. Entries are keyed by the full
// (user, selector) tuple and expire after ttl.
func (s *Service) WithCache(ttl time.Duration) *Service {
	s.useCache = ttl > 0
	s.cacheTTL = ttl
	s.cache = make(map[string]summaryCacheEntry)
	return s
}

// PeriodSummary computes the aggregate for one user and reporting window.
func (s *Service) PeriodSummary(userID int, selector domain.PeriodSelector) (*domain.PeriodSummary, error) {
	cacheKey := fmt.Sprintf("%d|%s", userID, selector)

	if s.useCache {
		if summary, ok := s.cachedSummary(cacheKey); ok {
			return summary, nil
		}
	}

	campaigns, extras, err := s.fetchRecords(userID)
	if err != nil {
		return nil, err
	}

	summary := ComputePeriodSummary(campaigns, extras, selector)

	if s.useCache {
		s.storeSummary(cacheKey, summary)
	}

	return summary, nil
}

// MonthlyGrowth computes the full-history trend series for one user. The
// series is never cached: it already feeds a chart that tolerates a fetch.
func (s *Service) MonthlyGrowth(userID int, selector domain.PeriodSelector) ([]*domain.MonthBucket, error) {
	campaigns, extras, err := s.fetchRecords(userID)
	if err != nil {
		return nil, err
	}

	return ComputeMonthlyGrowthSeries(campaigns, extras, selector), nil
}

func (s *Service) fetchRecords(userID int) ([]*domain.CampaignRecord, []*domain.ExtraIncomeRecord, error) {
	rawCampaigns, err := s.campaignRepo.ListByUser(userID)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"user_id": userID,
		}).Error("failed to list campaigns for statistics")
		return nil, nil, err
	}

	rawExtras, err := s.extraIncomeRepo.ListByUser(userID)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"user_id": userID,
		}).Error("failed to list extra incomes for statistics")
		return nil, nil, err
	}

	return NormalizeCampaigns(rawCampaigns), NormalizeExtraIncomes(rawExtras), nil
}

func (s *Service) cachedSummary(key string) (*domain.PeriodSummary, bool) {
	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()

	entry, ok := s.cache[key]
	if !ok || time.Now().After(entry.expiresAt) {
		return nil, false
	}

	return entry.summary, true
}

func (s *Service) storeSummary(key string, summary *domain.PeriodSummary) {
	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()

	s.cache[key] = summaryCacheEntry{
		summary:   summary,
		expiresAt: time.Now().Add(s.cacheTTL),
	}
}
