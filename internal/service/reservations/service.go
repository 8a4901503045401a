package reservations

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/wildgrove/resort-booking-service/internal/domain"
	reservationRepo "github.com/wildgrove/resort-booking-service/internal/infra/storage/reservation"
	"github.com/wildgrove/resort-booking-service/internal/service/reservations/models"
)

// Service сервис для работы с сохраненными бронированиями
type Service struct {
	reservationRepo ReservationRepository
	gateway         PaymentGateway
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	gateway PaymentGateway,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		gateway:         gateway,
		logger:          logger,
	}
}

// GetByReservationNo получает бронирование по номеру брони
func (s *Service) GetByReservationNo(ctx context.Context, reservationNo string) (*models.ReservationResponse, error) {
	if strings.TrimSpace(reservationNo) == "" {
		return nil, fmt.Errorf("%w: reservation number is required", ErrInvalidInput)
	}

	res, err := s.loadReservation(ctx, "GetByReservationNo", reservationNo)
	if err != nil {
		return nil, err
	}

	return models.FromDomainReservation(res), nil
}

// GetByEmail получает бронирования гостя по email
func (s *Service) GetByEmail(ctx context.Context, email string) ([]*models.ReservationResponse, error) {
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	s.logger.Info("GetByEmail: fetching reservations for %s", email)

	list, err := s.reservationRepo.GetByEmail(ctx, email)
	if err != nil {
		s.logger.Error("GetByEmail: repository error for %s: %v", email, err)
		return nil, fmt.Errorf("%w: GetByEmail - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByEmail: fetched %d reservations for %s", len(list), email)
	return models.FromDomainReservationList(list), nil
}

// ConfirmPayment проверяет подпись успешного платежа и помечает бронирование
// оплаченным. Подпись считается на секретном ключе шлюза, поэтому валидная
// подпись доказывает, что платеж действительно прошел через шлюз
func (s *Service) ConfirmPayment(ctx context.Context, reservationNo, orderID, paymentID, signature string) (*models.ReservationResponse, error) {
	if strings.TrimSpace(reservationNo) == "" || strings.TrimSpace(orderID) == "" ||
		strings.TrimSpace(paymentID) == "" || strings.TrimSpace(signature) == "" {
		return nil, fmt.Errorf("%w: reservation number, order, payment and signature are required", ErrInvalidInput)
	}

	s.logger.Info("ConfirmPayment: reservation no=%s, order=%s, payment=%s", reservationNo, orderID, paymentID)

	res, err := s.loadReservation(ctx, "ConfirmPayment", reservationNo)
	if err != nil {
		return nil, err
	}

	if !res.CanAcceptPayment() {
		s.logger.Warn("ConfirmPayment: reservation no=%s in status %s is not payable", reservationNo, res.Status)
		return nil, ErrNotPayable
	}

	if res.PaymentOrderID == nil || *res.PaymentOrderID != orderID {
		s.logger.Warn("ConfirmPayment: order %s does not belong to reservation no=%s", orderID, reservationNo)
		return nil, ErrOrderMismatch
	}

	if err := s.gateway.VerifyPaymentSignature(orderID, paymentID, signature); err != nil {
		s.logger.Warn("ConfirmPayment: signature verification failed for no=%s: %v", reservationNo, err)

		if updErr := s.reservationRepo.UpdateStatus(ctx, reservationNo, domain.StatusPaymentFailed); updErr != nil {
			s.logger.Error("ConfirmPayment: failed to mark no=%s payment_failed: %v", reservationNo, updErr)
		}
		return nil, ErrSignatureInvalid
	}

	if err := s.reservationRepo.UpdateStatus(ctx, reservationNo, domain.StatusPaid); err != nil {
		s.logger.Error("ConfirmPayment: failed to mark no=%s paid: %v", reservationNo, err)
		return nil, fmt.Errorf("%w: ConfirmPayment - update status: %v", ErrInternal, err)
	}

	res.Status = domain.StatusPaid
	s.logger.Info("ConfirmPayment: reservation no=%s marked paid", reservationNo)

	return models.FromDomainReservation(res), nil
}

func (s *Service) loadReservation(ctx context.Context, op, reservationNo string) (*domain.Reservation, error) {
	res, err := s.reservationRepo.GetByReservationNo(ctx, reservationNo)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("%s: reservation no=%s not found", op, reservationNo)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("%s: repository error for no=%s: %v", op, reservationNo, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return res, nil
}
