// File: clients/directory.go
package clients

import (
	"context"
	"net/url"
	"strconv"

	"hopehealth/models"
)

// SpecializationAPI fronts the specialization backend.
type SpecializationAPI interface {
	FindAllSpecializations(ctx context.Context, searchText string) ([]models.Specialization, error)
	CreateSpecialization(ctx context.Context, name string) error
}

// HospitalAPI fronts the hospital backend.
type HospitalAPI interface {
	FindAllHospitals(ctx context.Context, searchText string) ([]models.Hospital, error)
	SaveHospital(ctx context.Context, name string) error
}

// NewsAPI fronts the news backend.
type NewsAPI interface {
	CreateNews(ctx context.Context, news models.News) error
}

// HealthPackageAPI fronts the health-package backend.
type HealthPackageAPI interface {
	GetAllHealthPackages(ctx context.Context, searchText string, page, size int) (*models.HealthPackagePage, error)
	CreateHealthPackage(ctx context.Context, pkg models.HealthPackage) error
	DeletePackageByID(ctx context.Context, packageID string) error
}

// DefaultSpecializationClient implements SpecializationAPI.
type DefaultSpecializationClient struct {
	*apiClient
	BaseURL string
}

func NewSpecializationClient(baseURL string, tokens TokenSource) *DefaultSpecializationClient {
	return &DefaultSpecializationClient{apiClient: newAPIClient(tokens), BaseURL: baseURL}
}

func (c *DefaultSpecializationClient) FindAllSpecializations(ctx context.Context, searchText string) ([]models.Specialization, error) {
	query := url.Values{"searchText": {searchText}}
	var result []models.Specialization
	if err := c.get(ctx, c.BaseURL+"/find-all-specializations", query, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *DefaultSpecializationClient) CreateSpecialization(ctx context.Context, name string) error {
	return c.post(ctx, c.BaseURL+"/create-specialization", map[string]string{"specialization": name}, nil)
}

// DefaultHospitalClient implements HospitalAPI.
type DefaultHospitalClient struct {
	*apiClient
	BaseURL string
}

func NewHospitalClient(baseURL string, tokens TokenSource) *DefaultHospitalClient {
	return &DefaultHospitalClient{apiClient: newAPIClient(tokens), BaseURL: baseURL}
}

func (c *DefaultHospitalClient) FindAllHospitals(ctx context.Context, searchText string) ([]models.Hospital, error) {
	query := url.Values{"searchText": {searchText}}
	var result []models.Hospital
	if err := c.get(ctx, c.BaseURL+"/find-all-hospitals", query, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *DefaultHospitalClient) SaveHospital(ctx context.Context, name string) error {
	return c.post(ctx, c.BaseURL+"/save-hospital", map[string]string{"hospitalName": name}, nil)
}

// DefaultNewsClient implements NewsAPI.
type DefaultNewsClient struct {
	*apiClient
	BaseURL string
}

func NewNewsClient(baseURL string, tokens TokenSource) *DefaultNewsClient {
	return &DefaultNewsClient{apiClient: newAPIClient(tokens), BaseURL: baseURL}
}

func (c *DefaultNewsClient) CreateNews(ctx context.Context, news models.News) error {
	return c.post(ctx, c.BaseURL+"/create-news", news, nil)
}

// DefaultHealthPackageClient implements HealthPackageAPI.
type DefaultHealthPackageClient struct {
	*apiClient
	BaseURL string
}

func NewHealthPackageClient(baseURL string, tokens TokenSource) *DefaultHealthPackageClient {
	return &DefaultHealthPackageClient{apiClient: newAPIClient(tokens), BaseURL: baseURL}
}

func (c *DefaultHealthPackageClient) GetAllHealthPackages(ctx context.Context, searchText string, page, size int) (*models.HealthPackagePage, error) {
	query := url.Values{
		"searchText": {searchText},
		"page":       {strconv.Itoa(page)},
		"size":       {strconv.Itoa(size)},
	}
	var result models.HealthPackagePage
	if err := c.get(ctx, c.BaseURL+"/get-all-health-packages", query, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *DefaultHealthPackageClient) CreateHealthPackage(ctx context.Context, pkg models.HealthPackage) error {
	return c.post(ctx, c.BaseURL+"/create-health-package", pkg, nil)
}

func (c *DefaultHealthPackageClient) DeletePackageByID(ctx context.Context, packageID string) error {
	return c.delete(ctx, c.BaseURL+"/delete-package-by-id/"+packageID, nil)
}
