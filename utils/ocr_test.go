package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOCRClient(serverURL string) *OCRClient {
	return &OCRClient{
		BaseURL:    serverURL,
		APIKey:     "test-key",
		Model:      "gpt-4o",
		HTTPClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func visionReply(t *testing.T, content string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "gpt-4o", payload["model"])

		resp := map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]interface{}{"content": content}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}
}

func TestExtractChequeDetails(t *testing.T) {
	server := httptest.NewServer(visionReply(t,
		`{"account_holder_name": "JOHN SMITH", "account_number": "123456789012", "ifsc": "HDFC0001234", "bank_name": "HDFC Bank"}`))
	defer server.Close()

	client := newTestOCRClient(server.URL)
	details, err := client.ExtractChequeDetails("aW1hZ2U=")
	require.NoError(t, err)
	assert.Equal(t, "JOHN SMITH", details.AccountHolderName)
	assert.Equal(t, "123456789012", details.AccountNumber)
	assert.Equal(t, "HDFC0001234", details.IFSC)
	assert.Equal(t, "HDFC Bank", details.BankName)
}

func TestExtractChequeDetailsStrayProse(t *testing.T) {
	// Models sometimes wrap the JSON in prose; the client must still find it.
	server := httptest.NewServer(visionReply(t,
		"Here are the details:\n```json\n{\"account_holder_name\": \"JOHN SMITH\", \"account_number\": \"123456789012\", \"ifsc\": \"HDFC0001234\", \"bank_name\": \"HDFC Bank\"}\n```"))
	defer server.Close()

	client := newTestOCRClient(server.URL)
	details, err := client.ExtractChequeDetails("aW1hZ2U=")
	require.NoError(t, err)
	assert.Equal(t, "123456789012", details.AccountNumber)
}

func TestExtractChequeDetailsNotFoundBlanked(t *testing.T) {
	server := httptest.NewServer(visionReply(t,
		`{"account_holder_name": "NOT_FOUND", "account_number": "123456789012", "ifsc": "NOT_FOUND", "bank_name": "HDFC Bank"}`))
	defer server.Close()

	client := newTestOCRClient(server.URL)
	details, err := client.ExtractChequeDetails("aW1hZ2U=")
	require.NoError(t, err)
	assert.Equal(t, "", details.AccountHolderName)
	assert.Equal(t, "", details.IFSC)
	assert.Equal(t, "123456789012", details.AccountNumber)
}

func TestExtractChequeDetailsServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := newTestOCRClient(server.URL)
	_, err := client.ExtractChequeDetails("aW1hZ2U=")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestExtractChequeDetailsNoJSON(t *testing.T) {
	server := httptest.NewServer(visionReply(t, "I could not read the image."))
	defer server.Close()

	client := newTestOCRClient(server.URL)
	_, err := client.ExtractChequeDetails("aW1hZ2U=")
	require.Error(t, err)
}

func TestExtractDocumentNumber(t *testing.T) {
	server := httptest.NewServer(visionReply(t, "  ABCDE1234F\n"))
	defer server.Close()

	client := newTestOCRClient(server.URL)
	number, err := client.ExtractDocumentNumber("aW1hZ2U=", "PAN")
	require.NoError(t, err)
	assert.Equal(t, "ABCDE1234F", number)
}
