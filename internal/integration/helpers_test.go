package integration_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/cinetick/movie-catalog/internal/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func prepareRequest(method, url string, body io.Reader, headers map[string]string) (*http.Request, error) {
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req, nil
}

func compareResponse(t testing.TB, body io.Reader, expected string) {
	t.Helper()

	var got, want map[string]any

	err := json.NewDecoder(body).Decode(&got)
	require.NoError(t, err)

	err = json.Unmarshal([]byte(expected), &want)
	require.NoError(t, err)

	opts := cmpopts.IgnoreMapEntries(func(k string, v any) bool {
		return k == "timestamp" || k == "requestId"
	})

	if diff := cmp.Diff(want, got, opts); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func truncateMovies(t testing.TB, app *TestApp) {
	t.Helper()

	_, err := app.DB.Exec(context.Background(), "TRUNCATE movies RESTART IDENTITY")
	require.NoError(t, err)
}

func insertTestMovie(t testing.TB, app *TestApp, movie domain.Movie) domain.Movie {
	t.Helper()

	query := `
		INSERT INTO movies (title, director, description, genre, show_date, location, total_seats, available_seats, price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, version`

	err := app.DB.QueryRow(
		context.Background(),
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
	require.NoError(t, err)

	return movie
}

func defaultTestMovie() domain.Movie {
	return domain.Movie{
		Title:          TestMovieTitle,
		Director:       TestMovieDirector,
		Description:    TestMovieDescription,
		Genre:          TestMovieGenre,
		Date:           time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC),
		Location:       TestMovieLocation,
		TotalSeats:     TestMovieTotalSeats,
		AvailableSeats: TestMovieAvailableSeats,
		Price:          TestMoviePrice,
	}
}

func countMovies(t testing.TB, app *TestApp) int {
	t.Helper()

	var count int
	err := app.DB.QueryRow(context.Background(), "SELECT COUNT(*) FROM movies").Scan(&count)
	require.NoError(t, err)

	return count
}

func getMovieSeats(t testing.TB, app *TestApp, id int) int {
	t.Helper()

	var seats int
	err := app.DB.QueryRow(context.Background(), "SELECT available_seats FROM movies WHERE id = $1", id).Scan(&seats)
	require.NoError(t, err)

	return seats
}
