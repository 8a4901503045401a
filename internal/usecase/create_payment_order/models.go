package create_payment_order

// Request модель запроса на создание платежного ордера
type Request struct {
	ReservationNo string
}

// Response созданный платежный ордер.
// Amount — сумма в пайсах, как ее ожидает платежный виджет
type Response struct {
	ReservationNo string
	OrderID       string
	Amount        int64
	Currency      string
	Receipt       string
}
