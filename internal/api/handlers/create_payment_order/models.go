package create_payment_order

import (
	createPaymentOrder "github.com/wildgrove/resort-booking-service/internal/usecase/create_payment_order"
)

// PaymentOrderResponse HTTP response model.
// Amount — сумма в пайсах, как ее ожидает платежный виджет
type PaymentOrderResponse struct {
	ReservationNo string `json:"reservationNo"`
	OrderID       string `json:"orderId"`
	Amount        int64  `json:"amount"`
	Currency      string `json:"currency"`
	Receipt       string `json:"receipt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createPaymentOrder.Response) *PaymentOrderResponse {
	return &PaymentOrderResponse{
		ReservationNo: resp.ReservationNo,
		OrderID:       resp.OrderID,
		Amount:        resp.Amount,
		Currency:      resp.Currency,
		Receipt:       resp.Receipt,
	}
}
