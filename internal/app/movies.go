package app

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cinetick/movie-catalog/api"
	"github.com/cinetick/movie-catalog/internal/domain"
	"github.com/oapi-codegen/runtime/types"
)

func (app *Application) GetMovies(w http.ResponseWriter, r *http.Request) {
	filters, err := parseMovieFilters(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	movies, err := app.movieRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	movies = domain.FilterMovies(movies, filters)

	resp := api.MovieListResponse{
		Movies: toMovieResponses(movies),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetMovieByID(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "movieId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	movie, err := app.movieRepo.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toMovieResponse(movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var input api.NewMovieRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	// Seat counts are trusted as given; availableSeats above totalSeats is
	// the caller's responsibility.
	movie, err := app.movieRepo.Create(r.Context(), toMovie(input))
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/movies/%d", movie.ID))

	err = app.writeJSON(w, http.StatusCreated, toMovieResponse(movie), headers)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "movieId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var input api.NewMovieRequest

	err = app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	movie, err := app.movieRepo.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	// Full overwrite: every field comes from the request, identity and
	// version stay with the stored record.
	updated := toMovie(input)
	updated.ID = movie.ID
	updated.Version = movie.Version

	updated, err = app.movieRepo.Update(r.Context(), updated)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEditConflict):
			app.editConflictResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toMovieResponse(updated), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "movieId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.movieRepo.Delete(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.MessageResponse{
		Message: "movie successfully deleted",
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func parseMovieFilters(r *http.Request) (domain.MovieFilters, error) {
	query := r.URL.Query()

	filters := domain.MovieFilters{
		Title:    query.Get("title"),
		Location: query.Get("location"),
		Genre:    query.Get("genre"),
	}

	if rawDate := query.Get("date"); rawDate != "" {
		date, err := time.Parse("2006-01-02", rawDate)
		if err != nil {
			return domain.MovieFilters{}, fmt.Errorf("date filter must use the YYYY-MM-DD format")
		}

		filters.Date = &date
	}

	return filters, nil
}

func toMovie(input api.NewMovieRequest) domain.Movie {
	return domain.Movie{
		Title:          input.Title,
		Director:       input.Director,
		Description:    input.Description,
		Genre:          input.Genre,
		Date:           input.Date.Time,
		Location:       input.Location,
		TotalSeats:     input.TotalSeats,
		AvailableSeats: input.AvailableSeats,
		Price:          input.Price,
	}
}

func toMovieResponse(movie domain.Movie) api.MovieResponse {
	return api.MovieResponse{
		Id:             movie.ID,
		Title:          movie.Title,
		Director:       movie.Director,
		Description:    movie.Description,
		Genre:          movie.Genre,
		Date:           types.Date{Time: movie.Date},
		Location:       movie.Location,
		TotalSeats:     movie.TotalSeats,
		AvailableSeats: movie.AvailableSeats,
		Price:          movie.Price,
	}
}

func toMovieResponses(movies []domain.Movie) []api.MovieResponse {
	responses := make([]api.MovieResponse, len(movies))

	for i, movie := range movies {
		responses[i] = toMovieResponse(movie)
	}

	return responses
}
