package domain

import (
	"context"
	"strings"
	"time"
)

type Movie struct {
	ID             int
	Title          string
	Director       string
	Description    string
	Genre          string
	Date           time.Time
	Location       string
	TotalSeats     int
	AvailableSeats int
	Price          int
	Version        int
}

// BookedTickets reports how many seats of the movie have been sold so far.
func (m Movie) BookedTickets() int {
	return m.TotalSeats - m.AvailableSeats
}

// Book validates a ticket purchase against the seat inventory and the exact
// ticket price, and returns a copy of the movie with the seats deducted.
// Seat availability is checked before the payment amount. The ticket count is
// not required to be positive; a zero-ticket purchase with a zero payment
// goes through as a no-op.
func (m Movie) Book(tickets, payment int) (Movie, error) {
	if tickets > m.AvailableSeats {
		return Movie{}, ErrInsufficientSeats
	}

	if payment != tickets*m.Price {
		return Movie{}, ErrInvalidPayment
	}

	m.AvailableSeats -= tickets

	return m, nil
}

// MovieFilters holds the optional catalog filters. Zero values mean the
// filter is absent; supplied filters combine with logical AND.
type MovieFilters struct {
	Title    string
	Date     *time.Time
	Location string
	Genre    string
}

func (f MovieFilters) IsZero() bool {
	return f.Title == "" && f.Date == nil && f.Location == "" && f.Genre == ""
}

func (f MovieFilters) Matches(m Movie) bool {
	if f.Title != "" && !containsFold(m.Title, f.Title) {
		return false
	}
	if f.Date != nil && !sameDate(m.Date, *f.Date) {
		return false
	}
	if f.Location != "" && !containsFold(m.Location, f.Location) {
		return false
	}
	if f.Genre != "" && !containsFold(m.Genre, f.Genre) {
		return false
	}

	return true
}

// FilterMovies returns the movies matching the supplied filters, preserving
// the input order. An absent filter never narrows the result.
func FilterMovies(movies []Movie, filters MovieFilters) []Movie {
	if filters.IsZero() {
		return movies
	}

	filtered := make([]Movie, 0)

	for _, movie := range movies {
		if filters.Matches(movie) {
			filtered = append(filtered, movie)
		}
	}

	return filtered
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()

	return ay == by && am == bm && ad == bd
}

// BookingRecord is a derived report row; it is computed from the current
// movie set and never persisted.
type BookingRecord struct {
	MovieID       int
	Title         string
	Director      string
	Description   string
	Genre         string
	Date          time.Time
	Location      string
	BookedTickets int
	TotalPrice    int
}

// BuildBookingHistory derives the booking report from the given movies,
// keeping the input order. Movies with no sold seats are left out.
func BuildBookingHistory(movies []Movie) []BookingRecord {
	history := make([]BookingRecord, 0)

	for _, movie := range movies {
		bookedTickets := movie.BookedTickets()
		if bookedTickets <= 0 {
			continue
		}

		history = append(history, BookingRecord{
			MovieID:       movie.ID,
			Title:         movie.Title,
			Director:      movie.Director,
			Description:   movie.Description,
			Genre:         movie.Genre,
			Date:          movie.Date,
			Location:      movie.Location,
			BookedTickets: bookedTickets,
			TotalPrice:    bookedTickets * movie.Price,
		})
	}

	return history
}

type MovieRepository interface {
	GetAll(ctx context.Context) ([]Movie, error)
	GetByID(ctx context.Context, id int) (Movie, error)
	Create(ctx context.Context, movie Movie) (Movie, error)
	Update(ctx context.Context, movie Movie) (Movie, error)
	Delete(ctx context.Context, id int) error
	UpsertAll(ctx context.Context, movies []Movie) error
}
