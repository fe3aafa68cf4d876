package repository

import (
	"context"
	"errors"

	"github.com/cinetick/movie-catalog/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresMovieRepository struct {
	db *pgxpool.Pool
}

func NewPostgresMovieRepository(db *pgxpool.Pool) *PostgresMovieRepository {
	return &PostgresMovieRepository{
		db: db,
	}
}

func (p *PostgresMovieRepository) GetAll(ctx context.Context) ([]domain.Movie, error) {
	query := `
		SELECT id, title, director, description, genre, show_date, location,
			total_seats, available_seats, price, version
		FROM movies
		ORDER BY id
	`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movies := make([]domain.Movie, 0)

	for rows.Next() {
		var movie domain.Movie

		err := rows.Scan(
			&movie.ID,
			&movie.Title,
			&movie.Director,
			&movie.Description,
			&movie.Genre,
			&movie.Date,
			&movie.Location,
			&movie.TotalSeats,
			&movie.AvailableSeats,
			&movie.Price,
			&movie.Version,
		)

		if err != nil {
			return nil, err
		}

		movies = append(movies, movie)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return movies, nil
}

func (p *PostgresMovieRepository) GetByID(ctx context.Context, id int) (domain.Movie, error) {
	query := `
		SELECT id, title, director, description, genre, show_date, location,
			total_seats, available_seats, price, version
		FROM movies
		WHERE id = $1
	`

	var movie domain.Movie

	err := p.db.QueryRow(ctx, query, id).Scan(
		&movie.ID,
		&movie.Title,
		&movie.Director,
		&movie.Description,
		&movie.Genre,
		&movie.Date,
		&movie.Location,
		&movie.TotalSeats,
		&movie.AvailableSeats,
		&movie.Price,
		&movie.Version,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Movie{}, domain.ErrRecordNotFound
		}

		return domain.Movie{}, err
	}

	return movie, nil
}

func (p *PostgresMovieRepository) Create(ctx context.Context, movie domain.Movie) (domain.Movie, error) {
	query := `
		INSERT INTO movies (title, director, description, genre, show_date, location,
			total_seats, available_seats, price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, version
	`

	err := p.db.QueryRow(
		ctx,
		query,
		movie.Title,
		movie.Director,
		movie.Description,
		movie.Genre,
		movie.Date,
		movie.Location,
		movie.TotalSeats,
		movie.AvailableSeats,
		movie.Price,
	).Scan(&movie.ID, &movie.Version)

	if err != nil {
		return domain.Movie{}, err
	}

	return movie, nil
}

// Update overwrites every movie field and bumps the record version. A missing
// row means the version moved underneath the caller (or the record was
// deleted) and is reported as an edit conflict; callers fetch the record
// first, so plain absence has already surfaced as ErrRecordNotFound.
func (p *PostgresMovieRepository) Update(ctx context.Context, movie domain.Movie) (domain.Movie, error) {
	query := `
		UPDATE movies
		SET title = $1, director = $2, description = $3, genre = $4, show_date = $5,
			location = $6, total_seats = $7, available_seats = $8, price = $9,
			version = version + 1
		WHERE id = $10 AND version = $11
		RETURNING version
	`

	err := p.db.QueryRow(
		ctx,
		query,
		movie.Title,
		movie.Director,
		movie.Description,
		movie.Genre,
		movie.Date,
		movie.Location,
		movie.TotalSeats,
		movie.AvailableSeats,
		movie.Price,
		movie.ID,
		movie.Version,
	).Scan(&movie.Version)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Movie{}, domain.ErrEditConflict
		}

		return domain.Movie{}, err
	}

	return movie, nil
}

func (p *PostgresMovieRepository) Delete(ctx context.Context, id int) error {
	query := `
		DELETE FROM movies
		WHERE id = $1
	`

	ct, err := p.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if ct.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

// UpsertAll writes the given movies keyed by their explicit ids, overwriting
// existing rows, and keeps the identity sequence ahead of the highest id so
// that later inserts do not collide with seeded rows.
func (p *PostgresMovieRepository) UpsertAll(ctx context.Context, movies []domain.Movie) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO movies (id, title, director, description, genre, show_date,
				location, total_seats, available_seats, price)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			ON CONFLICT (id) DO UPDATE
			SET title = EXCLUDED.title,
				director = EXCLUDED.director,
				description = EXCLUDED.description,
				genre = EXCLUDED.genre,
				show_date = EXCLUDED.show_date,
				location = EXCLUDED.location,
				total_seats = EXCLUDED.total_seats,
				available_seats = EXCLUDED.available_seats,
				price = EXCLUDED.price,
				version = movies.version + 1
		`

		for _, movie := range movies {
			_, err := tx.Exec(
				ctx,
				query,
				movie.ID,
				movie.Title,
				movie.Director,
				movie.Description,
				movie.Genre,
				movie.Date,
				movie.Location,
				movie.TotalSeats,
				movie.AvailableSeats,
				movie.Price,
			)

			if err != nil {
				return err
			}
		}

		_, err := tx.Exec(
			ctx,
			`SELECT setval(pg_get_serial_sequence('movies', 'id'), (SELECT COALESCE(MAX(id), 1) FROM movies))`,
		)

		return err
	})
}

func runInTx(ctx context.Context, db *pgxpool.Pool, fn func(tx pgx.Tx) error) error {
	var txOptions pgx.TxOptions

	tx, err := db.BeginTx(ctx, txOptions)
	if err != nil {
		return err
	}

	err = fn(tx)
	if err == nil {
		return tx.Commit(ctx)
	}

	rollbackErr := tx.Rollback(ctx)
	if rollbackErr != nil {
		return errors.Join(err, rollbackErr)
	}

	return err
}
