package search_rooms

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("search_rooms: invalid input data")

	// ErrInvalidDateRange возвращается, когда дата выезда не позже даты заезда
	ErrInvalidDateRange = errors.New("search_rooms: check-out must be after check-in")

	// ErrPastCheckIn возвращается, когда дата заезда в прошлом
	ErrPastCheckIn = errors.New("search_rooms: check-in date is in the past")

	// ErrUpstream возвращается при недоступности PMS
	ErrUpstream = errors.New("search_rooms: availability service unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("search_rooms: internal error")
)
