package quote_stay

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("quote_stay: invalid input data")

	// ErrInvalidDateRange возвращается, когда дата выезда не позже даты заезда
	ErrInvalidDateRange = errors.New("quote_stay: check-out must be after check-in")

	// ErrPastCheckIn возвращается, когда дата заезда в прошлом
	ErrPastCheckIn = errors.New("quote_stay: check-in date is in the past")

	// ErrOccupancyNotAllowed возвращается, когда состав гостей не размещается
	// в выбранном номере
	ErrOccupancyNotAllowed = errors.New("quote_stay: party does not fit the selected room")

	// ErrPricingUnavailable возвращается, когда у предложения нет ставок и
	// расчет дал нулевую сумму
	ErrPricingUnavailable = errors.New("quote_stay: pricing unavailable for this room")
)
