package create_payment_order

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/wildgrove/resort-booking-service/internal/infra/storage/reservation"
	"github.com/wildgrove/resort-booking-service/internal/integrations/razorpay"
)

// UseCase use case создания платежного ордера для бронирования.
// Сумма ордера берется из сохраненного расчета, не из запроса клиента:
// клиенту нечего решать о том, сколько платить
type UseCase struct {
	reservationRepo ReservationRepository
	gateway         PaymentGateway
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(reservationRepo ReservationRepository, gateway PaymentGateway, logger Logger) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		gateway:         gateway,
		logger:          logger,
	}
}

// Execute выполняет use case создания платежного ордера
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if strings.TrimSpace(req.ReservationNo) == "" {
		return nil, fmt.Errorf("%w: reservation number is required", ErrInvalidInput)
	}

	uc.logger.Info("CreatePaymentOrder: reservation no=%s", req.ReservationNo)

	// 1. Загружаем бронирование
	res, err := uc.reservationRepo.GetByReservationNo(ctx, req.ReservationNo)
	if err != nil {
		if errors.Is(err, reservation.ErrReservationNotFound) {
			uc.logger.Warn("CreatePaymentOrder: reservation no=%s not found", req.ReservationNo)
			return nil, ErrReservationNotFound
		}
		uc.logger.Error("CreatePaymentOrder: repository error for no=%s: %v", req.ReservationNo, err)
		return nil, fmt.Errorf("%w: failed to load reservation: %v", ErrInternal, err)
	}

	if !res.CanAcceptPayment() {
		uc.logger.Warn("CreatePaymentOrder: reservation no=%s in status %s cannot accept payment",
			req.ReservationNo, res.Status)
		return nil, ErrAlreadyPaid
	}

	// 2. Создаем ордер в платежном шлюзе на итоговую сумму расчета
	receipt := uuid.New().String()
	order, err := uc.gateway.CreateOrder(ctx, res.Total, res.Currency, receipt)
	if err != nil {
		if errors.Is(err, razorpay.ErrUnavailable) {
			uc.logger.Error("CreatePaymentOrder: gateway unavailable: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
		}
		uc.logger.Error("CreatePaymentOrder: order creation failed for no=%s: %v", req.ReservationNo, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 3. Привязываем ордер к бронированию
	if err := uc.reservationRepo.SetPaymentOrder(ctx, req.ReservationNo, order.ID); err != nil {
		uc.logger.Error("CreatePaymentOrder: failed to link order %s to reservation no=%s: %v",
			order.ID, req.ReservationNo, err)
		return nil, fmt.Errorf("%w: failed to link payment order: %v", ErrInternal, err)
	}

	uc.logger.Info("CreatePaymentOrder: order %s created for reservation no=%s, amount=%d %s",
		order.ID, req.ReservationNo, order.Amount, order.Currency)

	return &Response{
		ReservationNo: req.ReservationNo,
		OrderID:       order.ID,
		Amount:        order.Amount,
		Currency:      order.Currency,
		Receipt:       receipt,
	}, nil
}
