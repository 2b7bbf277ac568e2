// File: clients/user.go
package clients

import (
	"context"
	"net/http"
	"net/url"

	"hopehealth/models"
)

// UserAPI fronts the user backend: role verification, account registration
// and the credential updates shared by patients and doctors.
type UserAPI interface {
	VerifyAdminRole(ctx context.Context, accessToken string) error
	RegisterPatient(ctx context.Context, reg models.PatientRegistration) error
	RegisterDoctor(ctx context.Context, reg models.DoctorRegistration) error
	UpdateUser(ctx context.Context, userID string, update models.PatientUpdate) error
	UpdatePassword(ctx context.Context, userID, password, role string) error
	UpdateEmail(ctx context.Context, userID, email, role string) error
	DeleteUser(ctx context.Context, userID string) error
}

// DefaultUserClient implements UserAPI.
type DefaultUserClient struct {
	*apiClient
	BaseURL string
}

func NewUserClient(baseURL string, tokens TokenSource) *DefaultUserClient {
	return &DefaultUserClient{apiClient: newAPIClient(tokens), BaseURL: baseURL}
}

// VerifyAdminRole asks the user backend whether the token's subject holds
// the administrative role. It authenticates with the candidate token rather
// than the session's current one, so it can run before a login is committed.
func (c *DefaultUserClient) VerifyAdminRole(ctx context.Context, accessToken string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/visitor/verify-admin-role", nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Path: "/visitor/verify-admin-role"}
	}
	return nil
}

func (c *DefaultUserClient) RegisterPatient(ctx context.Context, reg models.PatientRegistration) error {
	return c.post(ctx, c.BaseURL+"/register-patient", reg, nil)
}

func (c *DefaultUserClient) RegisterDoctor(ctx context.Context, reg models.DoctorRegistration) error {
	return c.post(ctx, c.BaseURL+"/register-doctor", reg, nil)
}

func (c *DefaultUserClient) UpdateUser(ctx context.Context, userID string, update models.PatientUpdate) error {
	return c.put(ctx, c.BaseURL+"/update-user/"+userID, nil, update, nil)
}

func (c *DefaultUserClient) UpdatePassword(ctx context.Context, userID, password, role string) error {
	query := url.Values{"password": {password}, "role": {role}}
	return c.put(ctx, c.BaseURL+"/update-password/"+userID, query, nil, nil)
}

func (c *DefaultUserClient) UpdateEmail(ctx context.Context, userID, email, role string) error {
	query := url.Values{"email": {email}, "role": {role}}
	return c.put(ctx, c.BaseURL+"/update-email/"+userID, query, nil, nil)
}

func (c *DefaultUserClient) DeleteUser(ctx context.Context, userID string) error {
	return c.delete(ctx, c.BaseURL+"/delete-user/"+userID, nil)
}
