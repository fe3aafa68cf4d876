// Package api holds the request and response types of the movie catalog HTTP
// surface. Calendar dates travel as plain YYYY-MM-DD strings via types.Date.
package api

import (
	"time"

	"github.com/oapi-codegen/runtime/types"
)

type MovieResponse struct {
	Id             int        `json:"id"`
	Title          string     `json:"title"`
	Director       string     `json:"director"`
	Description    string     `json:"description"`
	Genre          string     `json:"genre"`
	Date           types.Date `json:"date"`
	Location       string     `json:"location"`
	TotalSeats     int        `json:"totalSeats"`
	AvailableSeats int        `json:"availableSeats"`
	Price          int        `json:"price"`
}

type MovieListResponse struct {
	Movies []MovieResponse `json:"movies"`
}

// NewMovieRequest carries every movie field except the id, which is assigned
// by the store on create or taken from the path on update. The update
// operation is a full overwrite, so omitted fields erase prior values and no
// field is marked required here.
type NewMovieRequest struct {
	Title          string     `json:"title"`
	Director       string     `json:"director"`
	Description    string     `json:"description"`
	Genre          string     `json:"genre"`
	Date           types.Date `json:"date"`
	Location       string     `json:"location"`
	TotalSeats     int        `json:"totalSeats" validate:"gte=0"`
	AvailableSeats int        `json:"availableSeats" validate:"gte=0"`
	Price          int        `json:"price" validate:"gte=0"`
}

type BookingHistoryEntry struct {
	Id            int        `json:"id"`
	Title         string     `json:"title"`
	Director      string     `json:"director"`
	Description   string     `json:"description"`
	Genre         string     `json:"genre"`
	Date          types.Date `json:"date"`
	Location      string     `json:"location"`
	BookedTickets int        `json:"bookedTickets"`
	TotalPrice    int        `json:"totalPrice"`
}

type BookingHistoryResponse struct {
	History []BookingHistoryEntry `json:"history"`
}

type BookingResponse struct {
	MovieId        int `json:"movieId"`
	Tickets        int `json:"tickets"`
	AmountPaid     int `json:"amountPaid"`
	RemainingSeats int `json:"remainingSeats"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	RequestId        string            `json:"requestId"`
	Timestamp        time.Time         `json:"timestamp"`
	ValidationErrors []ValidationError `json:"validationErrors"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}
