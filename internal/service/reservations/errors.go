package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrOrderMismatch возвращается, когда платежный ордер не относится к бронированию
	ErrOrderMismatch = errors.New("payment order does not belong to this reservation")

	// ErrSignatureInvalid возвращается при неверной подписи платежа
	ErrSignatureInvalid = errors.New("payment signature verification failed")

	// ErrNotPayable возвращается, когда бронирование не ожидает оплаты
	ErrNotPayable = errors.New("reservation is not awaiting payment")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
