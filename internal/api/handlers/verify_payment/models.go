package verify_payment

import (
	"github.com/wildgrove/resort-booking-service/internal/domain"
	"github.com/wildgrove/resort-booking-service/internal/service/reservations/models"
)

// VerifyPaymentRequest HTTP request model. Поля приходят из callback
// платежного виджета после успешной оплаты
type VerifyPaymentRequest struct {
	ReservationNo     string `json:"reservationNo"`
	RazorpayOrderID   string `json:"razorpayOrderId"`
	RazorpayPaymentID string `json:"razorpayPaymentId"`
	RazorpaySignature string `json:"razorpaySignature"`
}

// VerifyPaymentResponse HTTP response model
type VerifyPaymentResponse struct {
	ReservationNo string `json:"reservationNo"`
	RoomName      string `json:"roomName"`
	CheckIn       string `json:"checkIn"`
	CheckOut      string `json:"checkOut"`
	Status        string `json:"status"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.ReservationResponse) *VerifyPaymentResponse {
	return &VerifyPaymentResponse{
		ReservationNo: resp.ReservationNo,
		RoomName:      resp.RoomName,
		CheckIn:       resp.CheckIn.Format(domain.DateFormat),
		CheckOut:      resp.CheckOut.Format(domain.DateFormat),
		Status:        resp.Status,
	}
}
