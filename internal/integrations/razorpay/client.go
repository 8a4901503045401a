package razorpay

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"
)

// Client клиент платежного шлюза Razorpay
type Client struct {
	baseURL    string
	keyID      string
	keySecret  string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента платежного шлюза
func NewClient(baseURL, keyID, keySecret string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:   baseURL,
		keyID:     keyID,
		keySecret: keySecret,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// AmountToPaise конвертирует сумму в рупиях в пайсы
func AmountToPaise(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// CreateOrder создает платежный ордер на указанную сумму.
// amount — итоговая сумма бронирования в рупиях, receipt — внутренний
// идентификатор для сверки
func (c *Client) CreateOrder(ctx context.Context, amount float64, currency, receipt string) (*Order, error) {
	reqBody := orderRequest{
		Amount:   AmountToPaise(amount),
		Currency: currency,
		Receipt:  receipt,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/orders", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.keyID, c.keySecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		// Продолжаем обработку
	case resp.StatusCode >= http.StatusInternalServerError:
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: status %d: %s", ErrUnavailable, resp.StatusCode, string(raw))
	default:
		var gwErr errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&gwErr); err == nil && gwErr.Error.Description != "" {
			return nil, fmt.Errorf("%w: %s (%s)", ErrOrderRejected, gwErr.Error.Description, gwErr.Error.Code)
		}
		return nil, fmt.Errorf("%w: unexpected status code %d", ErrOrderRejected, resp.StatusCode)
	}

	var order Order
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	c.log.Info("CreateOrder: order id=%s amount=%d %s receipt=%s", order.ID, order.Amount, order.Currency, order.Receipt)
	return &order, nil
}

// VerifyPaymentSignature проверяет подпись успешного платежа.
// Подпись — HMAC-SHA256 от "orderID|paymentID" на секретном ключе
func (c *Client) VerifyPaymentSignature(orderID, paymentID, signature string) error {
	mac := hmac.New(sha256.New, []byte(c.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return ErrSignatureMismatch
	}
	return nil
}
