package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"agrivision/internal/models"
)

// AnalysisClient is the boundary to the external inference gateway. One
// attempt per call, no retries; any failure is total and the caller falls
// back to fixed values.
type AnalysisClient interface {
	AnalyzeActivity(ctx context.Context, req *models.CarbonAnalysisRequest) (*models.CarbonAnalysis, error)
	HealthCheck(ctx context.Context) error
}

type httpAnalysisClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewAnalysisClient creates an HTTP client for the inference gateway.
func NewAnalysisClient() (AnalysisClient, error) {
	baseURL := os.Getenv("AI_GATEWAY_URL")
	if baseURL == "" {
		return nil, errors.New("AI_GATEWAY_URL environment variable is not set")
	}

	return &httpAnalysisClient{
		baseURL: baseURL,
		apiKey:  os.Getenv("AI_GATEWAY_API_KEY"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

// AnalyzeActivity sends the full submission to the gateway and returns its
// schema-validated verdict.
func (c *httpAnalysisClient) AnalyzeActivity(ctx context.Context, req *models.CarbonAnalysisRequest) (*models.CarbonAnalysis, error) {
	if err := c.validateRequest(req); err != nil {
		return nil, err
	}

	jsonData, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal analysis request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	request, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/v1/analyze/carbon-credits", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	request.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		request.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("analysis call failed: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		var errorResponse struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if err := json.NewDecoder(response.Body).Decode(&errorResponse); err != nil {
			return nil, fmt.Errorf("gateway returned non-200 status code: %d", response.StatusCode)
		}
		return nil, fmt.Errorf("gateway error: %s", errorResponse.Error.Message)
	}

	var result models.CarbonAnalysis
	if err := json.NewDecoder(response.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode analysis response: %w", err)
	}

	if err := validateAnalysis(&result); err != nil {
		return nil, err
	}

	return &result, nil
}

// HealthCheck probes the gateway's health endpoint.
func (c *httpAnalysisClient) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	request, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"/v1/health", nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return fmt.Errorf("gateway unhealthy: status %d", response.StatusCode)
	}

	return nil
}

func (c *httpAnalysisClient) validateRequest(req *models.CarbonAnalysisRequest) error {
	if req.UserID == 0 {
		return errors.New("user id is required")
	}
	if req.ActivityType == "" {
		return errors.New("activity type is required")
	}
	if req.Area != nil && *req.Area < 0 {
		return errors.New("area cannot be negative")
	}
	return nil
}

// validateAnalysis rejects responses that do not match the expected schema. A
// malformed verdict is treated the same as a transport failure.
func validateAnalysis(a *models.CarbonAnalysis) error {
	if a.EstimatedCO2SavedKg < 0 {
		return errors.New("estimated CO2 saved cannot be negative")
	}
	if a.ReductionAdvice == "" {
		return errors.New("reduction advice missing from analysis")
	}
	return nil
}
