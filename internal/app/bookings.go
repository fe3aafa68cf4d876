package app

import (
	"errors"
	"net/http"

	"github.com/cinetick/movie-catalog/api"
	"github.com/cinetick/movie-catalog/internal/domain"
	"github.com/oapi-codegen/runtime/types"
)

func (app *Application) GetBookingHistory(w http.ResponseWriter, r *http.Request) {
	movies, err := app.movieRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.BookingHistoryResponse{
		History: toBookingHistoryEntries(domain.BuildBookingHistory(movies)),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) BookTickets(w http.ResponseWriter, r *http.Request) {
	movieID, err := app.readIDParam(r, "movieId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	tickets, err := app.readIntParam(r, "tickets")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	payment, err := app.readIntParam(r, "payment")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	movie, err := app.movieRepo.GetByID(r.Context(), movieID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	booked, err := movie.Book(tickets, payment)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInsufficientSeats):
			app.insufficientSeatsResponse(w, r)
		case errors.Is(err, domain.ErrInvalidPayment):
			app.invalidPaymentResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	// The version check on the write catches a concurrent booking that read
	// the same seat count; the loser gets a conflict instead of silently
	// over-allocating seats.
	updated, err := app.movieRepo.Update(r.Context(), booked)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEditConflict):
			app.editConflictResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.BookingResponse{
		MovieId:        updated.ID,
		Tickets:        tickets,
		AmountPaid:     payment,
		RemainingSeats: updated.AvailableSeats,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toBookingHistoryEntries(records []domain.BookingRecord) []api.BookingHistoryEntry {
	entries := make([]api.BookingHistoryEntry, len(records))

	for i, record := range records {
		entries[i] = api.BookingHistoryEntry{
			Id:            record.MovieID,
			Title:         record.Title,
			Director:      record.Director,
			Description:   record.Description,
			Genre:         record.Genre,
			Date:          types.Date{Time: record.Date},
			Location:      record.Location,
			BookedTickets: record.BookedTickets,
			TotalPrice:    record.TotalPrice,
		}
	}

	return entries
}
