package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/sujin-dev/revu-manager-api/infrastructure/database/postgres"
	"github.com/sujin-dev/revu-manager-api/internal/domain"
)

const statSnapshotsTable = "monthly_stat_snapshots mss"

// StatSnapshotRepository persists the scheduler's precomputed month buckets
// so the dashboard's first paint does not have to re-fold the full history,
// and ops keep a queryable record of how totals evolved.
type StatSnapshotRepository interface {
	SaveOrUpdate(userID int, bucket *domain.MonthBucket) error
	ListByUser(userID int) ([]*domain.MonthBucket, error)
	DeleteOlderThan(months int) (int64, error)
}

type statSnapshotRepository struct {
	conn *postgres.Connection
}

func NewStatSnapshotRepository(conn *postgres.Connection) StatSnapshotRepository {
	return &statSnapshotRepository{
		conn: conn,
	}
}

func (r *statSnapshotRepository) SaveOrUpdate(userID int, bucket *domain.MonthBucket) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("monthly_stat_snapshots").
		Columns("user_id", "month_key", "benefit_total", "income_total", "cost_total",
			"extra_income_total", "economic_value").
		Values(userID, bucket.MonthKey, bucket.BenefitTotal, bucket.IncomeTotal,
			bucket.CostTotal, bucket.ExtraIncomeTotal, bucket.EconomicValue).
		Suffix(`
			ON CONFLICT (user_id, month_key) DO UPDATE SET
				benefit_total = EXCLUDED.benefit_total,
				income_total = EXCLUDED.income_total,
				cost_total = EXCLUDED.cost_total,
				extra_income_total = EXCLUDED.extra_income_total,
				economic_value = EXCLUDED.economic_value,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("building snapshot upsert query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("upserting snapshot: %w", err)
	}

	return nil
}

func (r *statSnapshotRepository) ListByUser(userID int) ([]*domain.MonthBucket, error) {
	query, args, err := squirrel.
		Select("mss.month_key, mss.benefit_total, mss.income_total, mss.cost_total, "+
			"mss.extra_income_total, mss.economic_value").
		From(statSnapshotsTable).
		Where(squirrel.Eq{"mss.user_id": userID}).
		OrderBy("mss.month_key ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building snapshot list query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing snapshots: %w", err)
	}
	defer rows.Close()

	buckets := make([]*domain.MonthBucket, 0)
	for rows.Next() {
		bucket := &domain.MonthBucket{}
		err := rows.Scan(
			&bucket.MonthKey,
			&bucket.BenefitTotal,
			&bucket.IncomeTotal,
			&bucket.CostTotal,
			&bucket.ExtraIncomeTotal,
			&bucket.EconomicValue,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning snapshot row: %w", err)
		}
		buckets = append(buckets, bucket)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating snapshot rows: %w", err)
	}

	return buckets, nil
}

func (r *statSnapshotRepository) DeleteOlderThan(months int) (int64, error) {
	cutoff := time.Now().AddDate(0, -months, 0)
	cutoffKey := domain.MonthKeyOf(cutoff)

	query, args, err := squirrel.
		Delete("monthly_stat_snapshots").
		Where(squirrel.Lt{"month_key": cutoffKey}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("building snapshot delete query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("deleting snapshots: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("reading affected rows: %w", err)
	}

	return affected, nil
}
