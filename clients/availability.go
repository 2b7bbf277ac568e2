// File: clients/availability.go
package clients

import (
	"context"
	"net/url"

	"hopehealth/models"
)

// AvailabilityAPI fronts the availability backend.
type AvailabilityAPI interface {
	GetAvailabilitiesByDateAndDoctor(ctx context.Context, doctorID, date string) ([]string, error)
	FindSelectedDatesByDoctorID(ctx context.Context, doctorID string) ([]string, error)
	SaveAvailabilities(ctx context.Context, availability models.DoctorAvailability) error
}

// DefaultAvailabilityClient implements AvailabilityAPI.
type DefaultAvailabilityClient struct {
	*apiClient
	BaseURL string
}

func NewAvailabilityClient(baseURL string, tokens TokenSource) *DefaultAvailabilityClient {
	return &DefaultAvailabilityClient{apiClient: newAPIClient(tokens), BaseURL: baseURL}
}

// GetAvailabilitiesByDateAndDoctor returns the open time slots for a doctor
// on one calendar day, as "HH:mm" labels.
func (c *DefaultAvailabilityClient) GetAvailabilitiesByDateAndDoctor(ctx context.Context, doctorID, date string) ([]string, error) {
	query := url.Values{"date": {date}}
	var slots []string
	if err := c.get(ctx, c.BaseURL+"/get-availabilities-by-date-and-doctor/"+doctorID, query, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

func (c *DefaultAvailabilityClient) FindSelectedDatesByDoctorID(ctx context.Context, doctorID string) ([]string, error) {
	var dates []string
	if err := c.get(ctx, c.BaseURL+"/find-selected-dates-by-doctor-id/"+doctorID, nil, &dates); err != nil {
		return nil, err
	}
	return dates, nil
}

func (c *DefaultAvailabilityClient) SaveAvailabilities(ctx context.Context, availability models.DoctorAvailability) error {
	return c.post(ctx, c.BaseURL+"/save-availabilities", availability, nil)
}
