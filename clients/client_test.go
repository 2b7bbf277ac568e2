package clients

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"hopehealth/models"

	"github.com/stretchr/testify/require"
)

type staticTokens struct {
	token string
}

func (s staticTokens) AccessToken() string { return s.token }

func TestDoDecodesEnvelopeData(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"ok","data":{"patientList":[{"patientId":"p-1","name":"John"}],"patientCount":1}}`))
	}))
	defer server.Close()

	client := newAPIClient(staticTokens{token: "access-1"})
	var page models.PatientPage
	err := client.get(context.Background(), server.URL+"/find-all-patients", nil, &page)
	require.NoError(t, err)

	require.Equal(t, "Bearer access-1", gotAuth)
	require.Equal(t, 1, page.PatientCount)
	require.Len(t, page.PatientList, 1)
	require.Equal(t, "p-1", page.PatientList[0].PatientID)
}

func TestDoFailsFastOnMalformedData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"message":"ok","data":"not-an-object"}`))
	}))
	defer server.Close()

	client := newAPIClient(nil)
	var page models.PatientPage
	err := client.get(context.Background(), server.URL+"/find-all-patients", nil, &page)
	require.Error(t, err)
	require.Contains(t, err.Error(), "malformed data payload")
}

func TestDoFailsOnMissingData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"message":"ok"}`))
	}))
	defer server.Close()

	client := newAPIClient(nil)
	var page models.PatientPage
	err := client.get(context.Background(), server.URL+"/find-all-patients", nil, &page)
	require.Error(t, err)
	require.Contains(t, err.Error(), "no data")
}

func TestDoReturnsAPIErrorWithEnvelopeMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"booking already exists"}`))
	}))
	defer server.Close()

	client := newAPIClient(nil)
	err := client.post(context.Background(), server.URL+"/create-booking", map[string]string{}, nil)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusConflict, apiErr.StatusCode)
	require.Equal(t, "booking already exists", apiErr.Message)
	require.True(t, IsConflict(err))
}

func TestIdentityClientMapsInvalidGrant(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		require.Equal(t, "password", r.PostForm.Get("grant_type"))
		require.Equal(t, "admin-portal", r.PostForm.Get("client_id"))
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"invalid_grant","error_description":"Invalid user credentials"}`))
	}))
	defer server.Close()

	client := NewIdentityClient(server.URL, "admin-portal")
	_, err := client.PasswordGrant(context.Background(), "root.admin", "wrong")
	require.ErrorIs(t, err, ErrInvalidGrant)
}

func TestIdentityClientReturnsTokenPair(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		require.Equal(t, "refresh_token", r.PostForm.Get("grant_type"))
		require.Equal(t, "refresh-1", r.PostForm.Get("refresh_token"))
		w.Write([]byte(`{"access_token":"access-2","refresh_token":"refresh-2"}`))
	}))
	defer server.Close()

	client := NewIdentityClient(server.URL, "admin-portal")
	pair, err := client.RefreshGrant(context.Background(), "refresh-1")
	require.NoError(t, err)
	require.Equal(t, "access-2", pair.AccessToken)
	require.Equal(t, "refresh-2", pair.RefreshToken)
}
