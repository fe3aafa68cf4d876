package domain

import "errors"

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrEditConflict      = errors.New("edit conflict")
	ErrInsufficientSeats = errors.New("not enough available seats")
	ErrInvalidPayment    = errors.New("payment amount does not match the ticket price")
)
