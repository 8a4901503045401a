package create_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInvalidDateRange возвращается, когда дата выезда не позже даты заезда
	ErrInvalidDateRange = errors.New("create_reservation: check-out must be after check-in")

	// ErrPastCheckIn возвращается, когда дата заезда в прошлом.
	// PMS жестко отклоняет прошедшие даты, поэтому запрос не отправляется
	ErrPastCheckIn = errors.New("create_reservation: check-in date is in the past")

	// ErrMissingGuestFields возвращается при незаполненных обязательных полях гостя
	ErrMissingGuestFields = errors.New("create_reservation: required guest fields missing")

	// ErrOccupancyNotAllowed возвращается, когда состав гостей не размещается
	// в выбранном номере
	ErrOccupancyNotAllowed = errors.New("create_reservation: party does not fit the selected room")

	// ErrPricingUnavailable возвращается, когда расчет стоимости дал ноль
	ErrPricingUnavailable = errors.New("create_reservation: pricing unavailable for this room")

	// ErrBookingRejected возвращается, когда PMS отклонил бронирование
	ErrBookingRejected = errors.New("create_reservation: booking rejected by PMS")

	// ErrUpstream возвращается при недоступности PMS
	ErrUpstream = errors.New("create_reservation: reservation service unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
