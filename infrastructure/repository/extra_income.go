package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/sujin-dev/revu-manager-api/infrastructure/database/postgres"
	"github.com/sujin-dev/revu-manager-api/internal/domain"
)

const extraIncomesTable = "extra_incomes ei"

// ExtraIncomeRepository stores supplementary-income rows with the same
// loose jsonb payload convention as campaigns.
type ExtraIncomeRepository interface {
	ListByUser(userID int) ([]*domain.RawExtraIncomeRecord, error)
	Create(userID int, record *domain.RawExtraIncomeRecord) (int, error)
	Delete(userID, extraIncomeID int) error
}

type extraIncomeRepository struct {
	conn *postgres.Connection
}

func NewExtraIncomeRepository(conn *postgres.Connection) ExtraIncomeRepository {
	return &extraIncomeRepository{
		conn: conn,
	}
}

func (r *extraIncomeRepository) ListByUser(userID int) ([]*domain.RawExtraIncomeRecord, error) {
	query, args, err := squirrel.
		Select("ei.id, ei.payload").
		From(extraIncomesTable).
		Where(squirrel.Eq{"ei.user_id": userID}).
		OrderBy("ei.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building extra income list query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing extra incomes: %w", err)
	}
	defer rows.Close()

	records := make([]*domain.RawExtraIncomeRecord, 0)
	for rows.Next() {
		var id int
		var payload []byte

		if err := rows.Scan(&id, &payload); err != nil {
			return nil, fmt.Errorf("scanning extra income row: %w", err)
		}

		record := &domain.RawExtraIncomeRecord{}
		if len(payload) > 0 {
			_ = json.Unmarshal(payload, record)
		}
		record.ID = id
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating extra income rows: %w", err)
	}

	return records, nil
}

func (r *extraIncomeRepository) Create(userID int, record *domain.RawExtraIncomeRecord) (int, error) {
	payload, err := json.Marshal(record)
	if err != nil {
		return 0, fmt.Errorf("encoding extra income payload: %w", err)
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("extra_incomes").
		Columns("user_id", "payload").
		Values(userID, payload).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("building extra income insert query: %w", err)
	}

	var id int
	if err := r.conn.QueryRow(query, args...).Scan(&id); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return 0, fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return 0, fmt.Errorf("inserting extra income: %w", err)
	}

	return id, nil
}

func (r *extraIncomeRepository) Delete(userID, extraIncomeID int) error {
	query, args, err := squirrel.
		Delete("extra_incomes").
		Where(squirrel.Eq{"user_id": userID, "id": extraIncomeID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("building extra income delete query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("deleting extra income: %w", err)
	}

	return nil
}
