// File: clients/patient.go
package clients

import (
	"context"
	"net/url"
	"strconv"

	"hopehealth/models"
)

// PatientAPI fronts the patient backend's read endpoints.
type PatientAPI interface {
	FindAllPatients(ctx context.Context, searchText string, page, size int) (*models.PatientPage, error)
	FindPatientsByMonth(ctx context.Context, numberOfMonths int) ([]models.MonthlyPatientCount, error)
	FindPatientsByDate(ctx context.Context) ([]models.DailyPatientCount, error)
}

// DefaultPatientClient implements PatientAPI.
type DefaultPatientClient struct {
	*apiClient
	BaseURL string
}

func NewPatientClient(baseURL string, tokens TokenSource) *DefaultPatientClient {
	return &DefaultPatientClient{apiClient: newAPIClient(tokens), BaseURL: baseURL}
}

func (c *DefaultPatientClient) FindAllPatients(ctx context.Context, searchText string, page, size int) (*models.PatientPage, error) {
	query := url.Values{
		"searchText": {searchText},
		"page":       {strconv.Itoa(page)},
		"size":       {strconv.Itoa(size)},
	}
	var result models.PatientPage
	if err := c.get(ctx, c.BaseURL+"/find-all-patients", query, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *DefaultPatientClient) FindPatientsByMonth(ctx context.Context, numberOfMonths int) ([]models.MonthlyPatientCount, error) {
	query := url.Values{"NumberOfMonth": {strconv.Itoa(numberOfMonths)}}
	var result []models.MonthlyPatientCount
	if err := c.get(ctx, c.BaseURL+"/find-patients-by-month", query, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *DefaultPatientClient) FindPatientsByDate(ctx context.Context) ([]models.DailyPatientCount, error) {
	var result []models.DailyPatientCount
	if err := c.get(ctx, c.BaseURL+"/find-patients-by-date", nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}
