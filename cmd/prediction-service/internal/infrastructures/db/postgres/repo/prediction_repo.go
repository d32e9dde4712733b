package postgres

import (
	"context"
	"fmt"

	"github.com/flightforesight/flightforesight/cmd/prediction-service/internal/domain/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	db *pgxpool.Pool
}

func New(ctx context.Context, dsn string) (*Repository, error) {
	poolCfg, err := buildPoolConfig(dsn)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pgx pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return &Repository{db: pool}, nil
}

func buildPoolConfig(dsn string) (*pgxpool.Config, error) {
	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse pgx pool config: %w", err)
	}
	poolCfg.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	poolCfg.ConnConfig.StatementCacheCapacity = 0
	poolCfg.ConnConfig.DescriptionCacheCapacity = 0

	return poolCfg, nil
}

func (r *Repository) Close() {
	r.db.Close()
}

func (r *Repository) Save(ctx context.Context, record models.Record) error {
	const query = `
		INSERT INTO predictions (
			id,
			kind,
			origin_iata,
			destination_iata,
			value,
			features,
			created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	features := string(record.Features)
	if features == "" {
		features = "{}"
	}

	_, err := r.db.Exec(ctx, query,
		record.ID,
		string(record.Kind),
		record.OriginIATA,
		record.DestinationIATA,
		record.Value,
		features,
		record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert prediction: %w", err)
	}

	return nil
}

// ListRecent returns up to limit records, newest first. An empty kind
// matches every kind.
func (r *Repository) ListRecent(ctx context.Context, kind models.Kind, limit int) ([]models.Record, error) {
	if limit <= 0 {
		limit = 20
	}

	const query = `
		SELECT
			id::text,
			kind,
			origin_iata,
			destination_iata,
			value,
			features::text,
			created_at
		FROM predictions
		WHERE ($2 = '' OR kind = $2)
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit, string(kind))
	if err != nil {
		return nil, fmt.Errorf("query predictions: %w", err)
	}
	defer rows.Close()

	records := make([]models.Record, 0, limit)
	for rows.Next() {
		var (
			record     models.Record
			storedKind string
			features   string
		)

		if err := rows.Scan(
			&record.ID,
			&storedKind,
			&record.OriginIATA,
			&record.DestinationIATA,
			&record.Value,
			&features,
			&record.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan prediction: %w", err)
		}

		record.Kind = models.Kind(storedKind)
		record.Features = []byte(features)
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate predictions: %w", err)
	}

	return records, nil
}
