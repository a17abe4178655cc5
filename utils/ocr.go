package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"loyalty-backend/config"
)

// ChequeDetails holds the fields the vision model reads off a cancelled
// cheque. Fields the model could not find come back empty.
type ChequeDetails struct {
	AccountHolderName string `json:"account_holder_name"`
	AccountNumber     string `json:"account_number"`
	IFSC              string `json:"ifsc"`
	BankName          string `json:"bank_name"`
}

// OCRClient calls an OpenAI-compatible vision endpoint to read text out of
// document images. It is treated as slow and unreliable: callers must keep
// it away from ledger commits.
type OCRClient struct {
	BaseURL    string
	APIKey     string
	Model      string
	HTTPClient *http.Client
}

// NewOCRClient builds a client from config. BaseURL defaults to the OpenAI
// API when unset.
func NewOCRClient(cfg *config.Config) *OCRClient {
	baseURL := cfg.OCRAPIURL
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	return &OCRClient{
		BaseURL:    baseURL,
		APIKey:     cfg.OCRAPIKey,
		Model:      cfg.OCRModel,
		HTTPClient: &http.Client{Timeout: 60 * time.Second},
	}
}

const chequePrompt = `You are a bank document OCR specialist. Extract the following details from this cancelled cheque image:

1. Account holder name (exactly as printed on cheque)
2. Account number (numeric only, no spaces or special characters)
3. IFSC code (11 characters, format: XXXX0XXXXXX)
4. Bank name

Return ONLY a valid JSON object with these exact keys:
{"account_holder_name": "...", "account_number": "...", "ifsc": "...", "bank_name": "..."}

If you cannot find any field with high confidence, use "NOT_FOUND" as the value.
Do not include any additional text, explanations, or formatting - ONLY the JSON object.`

// ExtractChequeDetails runs OCR over a base64-encoded cheque image.
func (c *OCRClient) ExtractChequeDetails(base64Image string) (*ChequeDetails, error) {
	content, err := c.visionCompletion(chequePrompt, base64Image)
	if err != nil {
		return nil, err
	}

	jsonStr, err := extractJSONObject(content)
	if err != nil {
		return nil, err
	}

	var details ChequeDetails
	if err := json.Unmarshal([]byte(jsonStr), &details); err != nil {
		return nil, fmt.Errorf("failed to parse OCR response: %v", err)
	}

	// The model reports misses as NOT_FOUND; blank them so callers only
	// have one absent-value shape to handle.
	details.AccountHolderName = clearNotFound(details.AccountHolderName)
	details.AccountNumber = clearNotFound(details.AccountNumber)
	details.IFSC = clearNotFound(details.IFSC)
	details.BankName = clearNotFound(details.BankName)

	return &details, nil
}

// ExtractDocumentNumber reads the document number off a KYC document image.
func (c *OCRClient) ExtractDocumentNumber(base64Image, documentType string) (string, error) {
	prompt := fmt.Sprintf(`You are a KYC assistant.
Extract ONLY the document number.

Document type: %s

Rules:
- PAN: 10 characters (ABCDE1234F)
- GST: 15 characters
- Address Proof: Aadhaar or official ID number
- Respond ONLY with the number`, documentType)

	content, err := c.visionCompletion(prompt, base64Image)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(content), nil
}

// visionCompletion posts a single-turn prompt + image to the chat
// completions endpoint and returns the raw message content.
func (c *OCRClient) visionCompletion(prompt, base64Image string) (string, error) {
	payload := map[string]interface{}{
		"model": c.Model,
		"messages": []map[string]interface{}{
			{
				"role": "user",
				"content": []map[string]interface{}{
					{"type": "text", "text": prompt},
					{
						"type": "image_url",
						"image_url": map[string]interface{}{
							"url":    "data:image/jpeg;base64," + base64Image,
							"detail": "high",
						},
					},
				},
			},
		},
		"max_tokens":  500,
		"temperature": 0,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, c.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("OCR request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("OCR service returned status %d", resp.StatusCode)
	}

	var parsed struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode OCR response: %v", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("OCR response contained no choices")
	}

	return parsed.Choices[0].Message.Content, nil
}

// extractJSONObject pulls the first {...} block out of a model reply that
// may carry stray prose around it.
func extractJSONObject(content string) (string, error) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end <= start {
		return "", fmt.Errorf("no JSON object found in OCR response")
	}
	return content[start : end+1], nil
}

func clearNotFound(s string) string {
	if strings.EqualFold(strings.TrimSpace(s), "NOT_FOUND") {
		return ""
	}
	return strings.TrimSpace(s)
}
