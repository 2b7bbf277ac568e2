// File: clients/booking.go
package clients

import (
	"context"
	"net/url"
	"strconv"

	"hopehealth/models"
)

// BookingAPI fronts the booking backend.
type BookingAPI interface {
	FindAllBookings(ctx context.Context, searchText string, page, size int) (*models.BookingPage, error)
	CreateBooking(ctx context.Context, req models.BookingRequest) error
	GetAvailableDatesByDoctor(ctx context.Context, doctorID string) ([]string, error)
	GetBookingsByDate(ctx context.Context) ([]models.DailyBookingCount, error)
	UpdateBookingStatus(ctx context.Context, bookingID, status string) error
	UpdatePaymentStatus(ctx context.Context, bookingID, paymentStatus string) error
	DeleteBooking(ctx context.Context, bookingID string) error
}

// DefaultBookingClient implements BookingAPI.
type DefaultBookingClient struct {
	*apiClient
	BaseURL string
}

func NewBookingClient(baseURL string, tokens TokenSource) *DefaultBookingClient {
	return &DefaultBookingClient{apiClient: newAPIClient(tokens), BaseURL: baseURL}
}

func (c *DefaultBookingClient) FindAllBookings(ctx context.Context, searchText string, page, size int) (*models.BookingPage, error) {
	query := url.Values{
		"searchText": {searchText},
		"page":       {strconv.Itoa(page)},
		"size":       {strconv.Itoa(size)},
	}
	var result models.BookingPage
	if err := c.get(ctx, c.BaseURL+"/find-all-bookings", query, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *DefaultBookingClient) CreateBooking(ctx context.Context, req models.BookingRequest) error {
	return c.post(ctx, c.BaseURL+"/create-booking", req, nil)
}

func (c *DefaultBookingClient) GetAvailableDatesByDoctor(ctx context.Context, doctorID string) ([]string, error) {
	var dates []string
	if err := c.get(ctx, c.BaseURL+"/get-available-dates-by-doctor/"+doctorID, nil, &dates); err != nil {
		return nil, err
	}
	return dates, nil
}

func (c *DefaultBookingClient) GetBookingsByDate(ctx context.Context) ([]models.DailyBookingCount, error) {
	var result []models.DailyBookingCount
	if err := c.get(ctx, c.BaseURL+"/get-bookings-by-date", nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *DefaultBookingClient) UpdateBookingStatus(ctx context.Context, bookingID, status string) error {
	query := url.Values{"status": {status}}
	return c.put(ctx, c.BaseURL+"/update-booking-status/"+bookingID, query, nil, nil)
}

func (c *DefaultBookingClient) UpdatePaymentStatus(ctx context.Context, bookingID, paymentStatus string) error {
	query := url.Values{"paymentStatus": {paymentStatus}}
	return c.put(ctx, c.BaseURL+"/update-payment-status/"+bookingID, query, nil, nil)
}

func (c *DefaultBookingClient) DeleteBooking(ctx context.Context, bookingID string) error {
	return c.delete(ctx, c.BaseURL+"/delete-by-booking-id/"+bookingID, nil)
}
