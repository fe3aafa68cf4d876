package app

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cinetick/movie-catalog/api"
	"github.com/cinetick/movie-catalog/internal/domain"
	"github.com/cinetick/movie-catalog/internal/mocks"
	"github.com/cinetick/movie-catalog/internal/validator"
	"github.com/oapi-codegen/runtime/types"
)

func newTestApplication(opts ...func(*Application)) *Application {
	app := &Application{
		validator: validator.NewValidator(),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		movieRepo: &mocks.MockMovieRepo{},
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

func executeRequest(t *testing.T, app *Application, method, url string, body any) *httptest.ResponseRecorder {
	t.Helper()

	jsonData, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}

	r := httptest.NewRequest(method, url, bytes.NewReader(jsonData))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	app.Routes().ServeHTTP(w, r)

	return w
}

func checkErrorResponse(t *testing.T, w *httptest.ResponseRecorder, tt struct {
	wantStatus     int
	wantErrMessage string
}) {
	t.Helper()

	if tt.wantStatus >= 200 && tt.wantStatus < 300 {
		return
	}

	switch tt.wantStatus {
	case http.StatusUnprocessableEntity:
		var validationResp api.ValidationErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&validationResp); err != nil {
			t.Fatalf("Failed to decode validation error response: %v", err)
		}

		errorSet := make(map[string]bool)
		for _, vErr := range validationResp.ValidationErrors {
			errorSet[vErr.Issue] = true
		}

		if !errorSet[tt.wantErrMessage] {
			t.Errorf("Expected validation error message '%s' not found in response", tt.wantErrMessage)
		}

	default:
		var errorResp api.ErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&errorResp); err != nil {
			t.Fatalf("Failed to decode error response: %v", err)
		}

		if tt.wantErrMessage != "" && errorResp.Message != tt.wantErrMessage {
			t.Errorf("Error message = %v, want %v", errorResp.Message, tt.wantErrMessage)
		}
	}
}

func dateOf(year int, month time.Month, day int) types.Date {
	return types.Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func testCatalog() []domain.Movie {
	return []domain.Movie{
		{
			ID:             1,
			Title:          "Inception",
			Director:       "Christopher Nolan",
			Description:    "A mind-bending thriller",
			Genre:          "Sci-Fi",
			Date:           time.Date(2010, time.July, 16, 0, 0, 0, 0, time.UTC),
			Location:       "IMAX Theater 1",
			TotalSeats:     200,
			AvailableSeats: 150,
			Price:          300,
			Version:        1,
		},
		{
			ID:             2,
			Title:          "The Dark Knight",
			Director:       "Christopher Nolan",
			Description:    "Gotham's hero faces a new foe",
			Genre:          "Action",
			Date:           time.Date(2008, time.July, 18, 0, 0, 0, 0, time.UTC),
			Location:       "IMAX Theater 2",
			TotalSeats:     250,
			AvailableSeats: 250,
			Price:          350,
			Version:        1,
		},
		{
			ID:             3,
			Title:          "Parasite",
			Director:       "Bong Joon-ho",
			Description:    "A commentary on class and inequality",
			Genre:          "Thriller",
			Date:           time.Date(2019, time.May, 30, 0, 0, 0, 0, time.UTC),
			Location:       "Cineplex 5",
			TotalSeats:     180,
			AvailableSeats: 120,
			Price:          280,
			Version:        2,
		},
	}
}
