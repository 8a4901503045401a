package create_payment_order

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_payment_order: invalid input data")

	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("create_payment_order: reservation not found")

	// ErrAlreadyPaid возвращается, когда бронирование уже оплачено
	ErrAlreadyPaid = errors.New("create_payment_order: reservation is already paid")

	// ErrUpstream возвращается при недоступности платежного шлюза
	ErrUpstream = errors.New("create_payment_order: payment gateway unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_payment_order: internal error")
)
