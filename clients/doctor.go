// File: clients/doctor.go
package clients

import (
	"context"
	"net/url"
	"strconv"

	"hopehealth/models"
)

// DoctorAPI fronts the doctor backend.
type DoctorAPI interface {
	FindAllDoctors(ctx context.Context, searchText string, page, size int) (*models.DoctorPage, error)
	FindDoctorsBySpecialization(ctx context.Context, specialization string) ([]models.Doctor, error)
	UpdateDoctor(ctx context.Context, doctorID string, update models.DoctorUpdate) error
	DeleteDoctor(ctx context.Context, doctorID, userID string) error
}

// DefaultDoctorClient implements DoctorAPI.
type DefaultDoctorClient struct {
	*apiClient
	BaseURL string
}

func NewDoctorClient(baseURL string, tokens TokenSource) *DefaultDoctorClient {
	return &DefaultDoctorClient{apiClient: newAPIClient(tokens), BaseURL: baseURL}
}

func (c *DefaultDoctorClient) FindAllDoctors(ctx context.Context, searchText string, page, size int) (*models.DoctorPage, error) {
	query := url.Values{
		"searchText": {searchText},
		"page":       {strconv.Itoa(page)},
		"size":       {strconv.Itoa(size)},
	}
	var result models.DoctorPage
	if err := c.get(ctx, c.BaseURL+"/find-all-doctors", query, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *DefaultDoctorClient) FindDoctorsBySpecialization(ctx context.Context, specialization string) ([]models.Doctor, error) {
	query := url.Values{"specialization": {specialization}}
	var result []models.Doctor
	if err := c.get(ctx, c.BaseURL+"/find-doctors-by-specialization", query, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *DefaultDoctorClient) UpdateDoctor(ctx context.Context, doctorID string, update models.DoctorUpdate) error {
	return c.put(ctx, c.BaseURL+"/update-doctor/"+doctorID, nil, update, nil)
}

func (c *DefaultDoctorClient) DeleteDoctor(ctx context.Context, doctorID, userID string) error {
	query := url.Values{"userId": {userID}}
	return c.delete(ctx, c.BaseURL+"/delete-doctor/"+doctorID, query)
}
