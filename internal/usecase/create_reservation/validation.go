package create_reservation

import (
	"fmt"
	"strings"
	"time"
)

// validateRequest валидирует входные данные запроса.
// Поля гостя проверяются отдельно билдером payload: это жесткое precondition
// вызова PMS, а не только валидация формы
func validateRequest(req *Request) error {
	if req.Offer == nil || req.Offer.RoomRateID == "" {
		return fmt.Errorf("%w: room offer is required", ErrInvalidInput)
	}

	if req.Adults < 1 {
		return fmt.Errorf("%w: at least one adult is required", ErrInvalidInput)
	}

	if req.Children < 0 {
		return fmt.Errorf("%w: children must not be negative", ErrInvalidInput)
	}

	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return fmt.Errorf("%w: check-in and check-out dates are required", ErrInvalidInput)
	}

	if !req.CheckOut.After(req.CheckIn) {
		return ErrInvalidDateRange
	}

	return nil
}

// validateGuest проверяет обязательные поля гостя
func validateGuest(req *Request) error {
	if missing := req.Guest.MissingFields(); len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingGuestFields, strings.Join(missing, ", "))
	}
	return nil
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня.
// Время суток игнорируется: заезд сегодня — валиден
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
