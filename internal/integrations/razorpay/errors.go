package razorpay

import "errors"

var (
	// ErrUnavailable возвращается при сетевых ошибках и 5xx от платежного шлюза
	ErrUnavailable = errors.New("razorpay client: gateway unavailable")

	// ErrInvalidResponse возвращается при некорректном ответе шлюза
	ErrInvalidResponse = errors.New("razorpay client: invalid response")

	// ErrOrderRejected возвращается, когда шлюз отклонил создание платежного ордера
	ErrOrderRejected = errors.New("razorpay client: order rejected")

	// ErrSignatureMismatch возвращается при несовпадении подписи платежа
	ErrSignatureMismatch = errors.New("razorpay client: payment signature mismatch")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("razorpay client: internal error")
)
