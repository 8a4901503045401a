package ezee

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/wildgrove/resort-booking-service/internal/domain"
)

// Client клиент для работы с PMS (eZee)
type Client struct {
	baseURL    string
	hotelCode  string
	authCode   string
	httpClient *http.Client
	log        Logger
	metrics    MetricsRecorder
}

// NewClient создает новый экземпляр клиента PMS
func NewClient(baseURL, hotelCode, authCode string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:   baseURL,
		hotelCode: hotelCode,
		authCode:  authCode,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// WithMetrics подключает запись метрик запросов к PMS
func (c *Client) WithMetrics(rec MetricsRecorder) *Client {
	c.metrics = rec
	return c
}

func (c *Client) record(operation, outcome string, started time.Time) {
	if c.metrics != nil {
		c.metrics.RecordUpstream("ezee", operation, outcome, time.Since(started).Seconds())
	}
}

// SearchAvailability запрашивает доступные номера на указанный период
// и нормализует ответ в доменные RoomOffer
func (c *Client) SearchAvailability(ctx context.Context, query domain.StayQuery) ([]*domain.RoomOffer, error) {
	started := time.Now()

	reqBody := SearchRequest{
		HotelCode: c.hotelCode,
		AuthCode:  c.authCode,
		CheckIn:   query.CheckIn.Format(domain.DateFormat),
		CheckOut:  query.CheckOut.Format(domain.DateFormat),
		Rooms:     query.Rooms,
		Adults:    query.Adults,
		Children:  query.Children,
	}

	var resp searchResponse
	if err := c.post(ctx, "/availability", reqBody, &resp); err != nil {
		c.record("search", "error", started)
		return nil, err
	}

	if !resp.Success {
		c.record("search", "rejected", started)
		c.log.Warn("SearchAvailability: PMS rejected search: %s", resp.Message)
		return nil, fmt.Errorf("%w: %s", ErrSearchRejected, resp.Message)
	}

	offers := make([]*domain.RoomOffer, 0, len(resp.Data))
	for _, raw := range resp.Data {
		offers = append(offers, raw.toDomain())
	}

	c.record("search", "ok", started)
	c.log.Info("SearchAvailability: %d offers for %s..%s", len(offers),
		reqBody.CheckIn, reqBody.CheckOut)
	return offers, nil
}

// CreateReservation создает бронирование в PMS и возвращает номер брони
func (c *Client) CreateReservation(ctx context.Context, req *ReservationRequest) (string, error) {
	started := time.Now()

	req.HotelCode = c.hotelCode
	req.AuthCode = c.authCode

	var resp reservationResponse
	if err := c.post(ctx, "/reservations", req, &resp); err != nil {
		c.record("create_reservation", "error", started)
		return "", err
	}

	if !resp.Success || resp.Data.ReservationNo == "" {
		c.record("create_reservation", "rejected", started)
		c.log.Warn("CreateReservation: PMS rejected booking: %s", resp.Message)
		return "", fmt.Errorf("%w: %s", ErrBookingRejected, resp.Message)
	}

	c.record("create_reservation", "ok", started)
	c.log.Info("CreateReservation: created reservation no=%s", resp.Data.ReservationNo)
	return resp.Data.ReservationNo, nil
}

// post выполняет POST запрос к PMS и декодирует JSON ответ
func (c *Client) post(ctx context.Context, path string, body interface{}, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		// Продолжаем обработку
	case resp.StatusCode >= http.StatusInternalServerError:
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: status %d: %s", ErrUnavailable, resp.StatusCode, string(raw))
	default:
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(raw))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
