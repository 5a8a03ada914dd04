// Package pocketbase is the thin HTTP client for the record-store
// backend. It shapes requests, maps responses to domain types and sorts
// failures into the domain error taxonomy; it holds no workflow rules.
package pocketbase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/moshdev2213/letsbook/internal/domain"
)

const DefaultTimeout = 30 * time.Second

type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// page is the record store's pagination envelope. Only the first page is
// ever requested.
type page[T any] struct {
	Page       int `json:"page"`
	PerPage    int `json:"perPage"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
	Items      []T `json:"items"`
}

type userRecord struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	NIC      string `json:"nic"`
	Verified bool   `json:"verified"`
}

type authRequest struct {
	Identity string `json:"identity"`
	Password string `json:"password"`
}

type authResponse struct {
	Token  string     `json:"token"`
	Record userRecord `json:"record"`
}

type registerRequest struct {
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	Name            string `json:"name"`
	NIC             string `json:"nic"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"passwordConfirm"`
}

type trainRecord struct {
	ID          string `json:"id"`
	TrainName   string `json:"trainName"`
	TrainType   string `json:"trainType"`
	FromStation string `json:"fromStation"`
	ToStation   string `json:"toStation"`
	Seats       int    `json:"seats"`
}

// the backend spells schedule without the c
type scheduleRecord struct {
	ID       string `json:"id"`
	Schedule string `json:"shedule"`
}

type reservationBody struct {
	TrainID    string `json:"trainId"`
	ScheduleID string `json:"sheduleId"`
	Email      string `json:"email"`
	Reserved   string `json:"reserved"`
	Seats      int    `json:"seats"`
	Cancelled  int    `json:"canceled"`
}

type reservationRecord struct {
	ID         string `json:"id"`
	TrainID    string `json:"trainId"`
	ScheduleID string `json:"sheduleId"`
	Email      string `json:"email"`
	Reserved   string `json:"reserved"`
	Seats      int    `json:"seats"`
	Cancelled  int    `json:"canceled"`
	Created    string `json:"created"`
	Updated    string `json:"updated"`
}

// do runs one round trip: encode the body if any, attach the bearer
// token if any, then decode into out. Transport failures, timeouts
// included, surface as ErrUnavailable; 401/403 as ErrUnauthorized; 404
// as ErrNotFound; any other non-2xx also reads as ErrUnavailable, the
// traveler cannot act on an upstream status code.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, token string, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, u, &buf)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return domain.ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return domain.ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return fmt.Errorf("%w: unexpected status code: %d", domain.ErrUnavailable, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) Authenticate(ctx context.Context, identity, password string) (*domain.Session, error) {
	var data authResponse
	err := c.do(ctx, http.MethodPost, "/api/collections/users/auth-with-password", nil, "",
		authRequest{Identity: identity, Password: password}, &data)
	if err != nil {
		return nil, err
	}
	return &domain.Session{Token: data.Token, User: toUser(data.Record)}, nil
}

func (c *Client) Register(ctx context.Context, reg domain.Registration) (*domain.User, error) {
	var data userRecord
	err := c.do(ctx, http.MethodPost, "/api/collections/users/records", nil, "", registerRequest{
		Phone:           reg.Phone,
		Email:           reg.Email,
		Name:            reg.Name,
		NIC:             reg.NIC,
		Password:        reg.Password,
		PasswordConfirm: reg.Password,
	}, &data)
	if err != nil {
		return nil, err
	}
	u := toUser(data)
	return &u, nil
}

func (c *Client) UserByEmail(ctx context.Context, token, email string) ([]*domain.User, error) {
	query := url.Values{"filter": {fmt.Sprintf("email=%q", email)}}
	var data page[userRecord]
	if err := c.do(ctx, http.MethodGet, "/api/collections/users/records", query, token, nil, &data); err != nil {
		return nil, err
	}
	users := make([]*domain.User, 0, len(data.Items))
	for _, rec := range data.Items {
		u := toUser(rec)
		users = append(users, &u)
	}
	return users, nil
}

func (c *Client) UpdateUser(ctx context.Context, token string, user domain.User) (*domain.User, error) {
	var data userRecord
	err := c.do(ctx, http.MethodPatch, "/api/collections/users/records/"+user.ID, nil, token, userRecord{
		ID:       user.ID,
		Email:    user.Email,
		Name:     user.Name,
		Phone:    user.Phone,
		NIC:      user.NIC,
		Verified: user.Verified,
	}, &data)
	if err != nil {
		return nil, err
	}
	u := toUser(data)
	return &u, nil
}

func (c *Client) Trains(ctx context.Context, token string) ([]*domain.Train, error) {
	var data page[trainRecord]
	if err := c.do(ctx, http.MethodGet, "/api/collections/train/records", nil, token, nil, &data); err != nil {
		return nil, err
	}
	trains := make([]*domain.Train, 0, len(data.Items))
	for _, rec := range data.Items {
		trains = append(trains, &domain.Train{
			ID:          rec.ID,
			Name:        rec.TrainName,
			Type:        rec.TrainType,
			FromStation: rec.FromStation,
			ToStation:   rec.ToStation,
			Seats:       rec.Seats,
		})
	}
	return trains, nil
}

func (c *Client) SchedulesByLabel(ctx context.Context, token, label string) ([]*domain.ScheduleSlot, error) {
	query := url.Values{
		"filter": {fmt.Sprintf("shedule=%q", label)},
		"fields": {"id,shedule"},
	}
	var data page[scheduleRecord]
	if err := c.do(ctx, http.MethodGet, "/api/collections/shedule/records", query, token, nil, &data); err != nil {
		return nil, err
	}
	slots := make([]*domain.ScheduleSlot, 0, len(data.Items))
	for _, rec := range data.Items {
		slots = append(slots, &domain.ScheduleSlot{ID: rec.ID, Label: rec.Schedule})
	}
	return slots, nil
}

func (c *Client) CreateReservation(ctx context.Context, token string, draft domain.Draft) (*domain.Reservation, error) {
	var data reservationRecord
	err := c.do(ctx, http.MethodPost, "/api/collections/reservation/records", nil, token, toBody(draft), &data)
	if err != nil {
		return nil, err
	}
	return toReservation(data), nil
}

func (c *Client) Reservations(ctx context.Context, token string) ([]*domain.Reservation, error) {
	var data page[reservationRecord]
	if err := c.do(ctx, http.MethodGet, "/api/collections/reservation/records", nil, token, nil, &data); err != nil {
		return nil, err
	}
	out := make([]*domain.Reservation, 0, len(data.Items))
	for _, rec := range data.Items {
		out = append(out, toReservation(rec))
	}
	return out, nil
}

func (c *Client) UpdateReservation(ctx context.Context, token, id string, payload domain.Draft) (*domain.Reservation, error) {
	var data reservationRecord
	err := c.do(ctx, http.MethodPatch, "/api/collections/reservation/records/"+id, nil, token, toBody(payload), &data)
	if err != nil {
		return nil, err
	}
	return toReservation(data), nil
}

func toUser(rec userRecord) domain.User {
	return domain.User{
		ID:       rec.ID,
		Email:    rec.Email,
		Name:     rec.Name,
		Phone:    rec.Phone,
		NIC:      rec.NIC,
		Verified: rec.Verified,
	}
}

func toBody(d domain.Draft) reservationBody {
	return reservationBody{
		TrainID:    d.TrainID,
		ScheduleID: d.ScheduleID,
		Email:      d.Email,
		Reserved:   d.Reserved,
		Seats:      d.Seats,
		Cancelled:  d.Cancelled,
	}
}

func toReservation(rec reservationRecord) *domain.Reservation {
	return &domain.Reservation{
		ID:         rec.ID,
		TrainID:    rec.TrainID,
		ScheduleID: rec.ScheduleID,
		Email:      rec.Email,
		Reserved:   rec.Reserved,
		Seats:      rec.Seats,
		Cancelled:  rec.Cancelled,
		Created:    rec.Created,
		Updated:    rec.Updated,
	}
}
