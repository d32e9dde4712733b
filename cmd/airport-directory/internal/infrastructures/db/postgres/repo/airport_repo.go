package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	derr "github.com/flightforesight/flightforesight/cmd/airport-directory/internal/domain/errors"
	"github.com/flightforesight/flightforesight/cmd/airport-directory/internal/domain/models"
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

func (r *Repository) GetByIATA(ctx context.Context, iata string) (models.Airport, error) {
	const query = `
		SELECT iata, name, city, latitude, longitude
		FROM airports
		WHERE iata = $1
	`

	var airport models.Airport
	err := r.db.QueryRow(ctx, query, iata).Scan(
		&airport.IATA,
		&airport.Name,
		&airport.City,
		&airport.Latitude,
		&airport.Longitude,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Airport{}, derr.ErrAirportNotFound
		}
		return models.Airport{}, fmt.Errorf("query airport by iata: %w", err)
	}

	return airport, nil
}

func (r *Repository) List(ctx context.Context, filter models.AirportFilter) ([]models.Airport, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}

	const query = `
		SELECT iata, name, city, latitude, longitude
		FROM airports
		WHERE $2 = ''
		   OR iata ILIKE $3
		   OR name ILIKE $3
		   OR city ILIKE $3
		ORDER BY iata ASC
		LIMIT $1
	`

	q := strings.TrimSpace(filter.Query)
	rows, err := r.db.Query(ctx, query, limit, q, likePattern(q))
	if err != nil {
		return nil, fmt.Errorf("query airports: %w", err)
	}
	defer rows.Close()

	airports := make([]models.Airport, 0, 64)
	for rows.Next() {
		var airport models.Airport
		if err := rows.Scan(
			&airport.IATA,
			&airport.Name,
			&airport.City,
			&airport.Latitude,
			&airport.Longitude,
		); err != nil {
			return nil, fmt.Errorf("scan airport: %w", err)
		}
		airports = append(airports, airport)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate airports: %w", err)
	}

	return airports, nil
}

func (r *Repository) Upsert(ctx context.Context, airport models.Airport) error {
	const query = `
		INSERT INTO airports (iata, name, city, latitude, longitude, updated_at)
		VALUES ($1, $2, $3, $4, $5, now())
		ON CONFLICT (iata) DO UPDATE SET
			name = EXCLUDED.name,
			city = EXCLUDED.city,
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude,
			updated_at = now()
	`

	_, err := r.db.Exec(ctx, query,
		airport.IATA,
		airport.Name,
		airport.City,
		airport.Latitude,
		airport.Longitude,
	)
	if err != nil {
		return fmt.Errorf("upsert airport: %w", err)
	}

	return nil
}

func (r *Repository) Delete(ctx context.Context, iata string) error {
	const query = `DELETE FROM airports WHERE iata = $1`

	tag, err := r.db.Exec(ctx, query, iata)
	if err != nil {
		return fmt.Errorf("delete airport: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return derr.ErrAirportNotFound
	}

	return nil
}

func (r *Repository) ListAirlines(ctx context.Context) ([]models.Airline, error) {
	const query = `
		SELECT code, name
		FROM airlines
		ORDER BY name ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query airlines: %w", err)
	}
	defer rows.Close()

	airlines := make([]models.Airline, 0, 16)
	for rows.Next() {
		var airline models.Airline
		if err := rows.Scan(&airline.Code, &airline.Name); err != nil {
			return nil, fmt.Errorf("scan airline: %w", err)
		}
		airlines = append(airlines, airline)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate airlines: %w", err)
	}

	return airlines, nil
}

func (r *Repository) UpsertAirline(ctx context.Context, airline models.Airline) error {
	const query = `
		INSERT INTO airlines (code, name, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (code) DO UPDATE SET
			name = EXCLUDED.name,
			updated_at = now()
	`

	if _, err := r.db.Exec(ctx, query, airline.Code, airline.Name); err != nil {
		return fmt.Errorf("upsert airline: %w", err)
	}

	return nil
}

// likePattern escapes ILIKE metacharacters so user input matches literally.
func likePattern(q string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + replacer.Replace(q) + "%"
}
