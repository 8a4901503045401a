package ezee

import "errors"

var (
	// ErrUnavailable возвращается при сетевых ошибках и 5xx от PMS
	ErrUnavailable = errors.New("ezee client: upstream unavailable")

	// ErrInvalidResponse возвращается при некорректном ответе от PMS
	ErrInvalidResponse = errors.New("ezee client: invalid response")

	// ErrSearchRejected возвращается, когда PMS отклонил поисковый запрос (success=false)
	ErrSearchRejected = errors.New("ezee client: search rejected")

	// ErrBookingRejected возвращается, когда PMS отклонил создание бронирования
	ErrBookingRejected = errors.New("ezee client: booking rejected")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("ezee client: internal error")
)
