package cohere

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/trendforge/trendforge-backend/internal/pkg/envutil"
	"github.com/trendforge/trendforge-backend/internal/pkg/httpx"
	"github.com/trendforge/trendforge-backend/internal/pkg/logger"
)

// Client is the Cohere text-generation client used by content generation.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type client struct {
	log        *logger.Logger
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	maxRetries int
}

func NewClient(log *logger.Logger) (Client, error) {
	apiKey := strings.TrimSpace(os.Getenv("COHERE_API_KEY"))
	if apiKey == "" {
		return nil, fmt.Errorf("missing COHERE_API_KEY")
	}

	baseURL := envutil.GetEnv("COHERE_BASE_URL", "https://api.cohere.ai", log)
	baseURL = strings.TrimRight(baseURL, "/")

	model := envutil.GetEnv("COHERE_MODEL", "command", log)
	timeoutSec := envutil.GetEnvAsInt("COHERE_TIMEOUT_SECONDS", 30, log)
	maxRetries := envutil.GetEnvAsInt("COHERE_MAX_RETRIES", 2, log)

	return &client{
		log:        log.With("client", "CohereClient"),
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: time.Duration(timeoutSec) * time.Second},
		maxRetries: maxRetries,
	}, nil
}

type cohereHTTPError struct {
	StatusCode int
	Body       string
}

func (e *cohereHTTPError) Error() string {
	return fmt.Sprintf("cohere http %d: %s", e.StatusCode, e.Body)
}

func (e *cohereHTTPError) HTTPStatusCode() int {
	if e == nil {
		return 0
	}
	return e.StatusCode
}

type generateRequest struct {
	Model       string  `json:"model"`
	Prompt      string  `json:"prompt"`
	MaxTokens   int     `json:"max_tokens"`
	Temperature float64 `json:"temperature"`
}

type generateResponse struct {
	Generations []struct {
		Text string `json:"text"`
	} `json:"generations"`
}

func (c *client) doOnce(ctx context.Context, body any) (*http.Response, []byte, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return nil, nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/generate", &buf)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, err
	}

	raw, readErr := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if readErr != nil {
		return resp, nil, readErr
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp, raw, &cohereHTTPError{StatusCode: resp.StatusCode, Body: string(raw)}
	}
	return resp, raw, nil
}

func (c *client) Generate(ctx context.Context, prompt string) (string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", fmt.Errorf("prompt required")
	}

	reqBody := generateRequest{
		Model:       c.model,
		Prompt:      prompt,
		MaxTokens:   1000,
		Temperature: 0.7,
	}

	backoff := 1 * time.Second

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}

		resp, raw, err := c.doOnce(ctx, reqBody)
		if err == nil {
			var parsed generateResponse
			if uErr := json.Unmarshal(raw, &parsed); uErr != nil {
				return "", fmt.Errorf("cohere decode error: %w; raw=%s", uErr, string(raw))
			}
			if len(parsed.Generations) == 0 {
				return "", fmt.Errorf("cohere response missing generations")
			}
			text := strings.TrimSpace(parsed.Generations[0].Text)
			if text == "" {
				return "", fmt.Errorf("cohere returned empty generation")
			}
			return text, nil
		}

		if !httpx.IsRetryableError(err) {
			return "", err
		}
		if attempt == c.maxRetries {
			return "", err
		}

		sleepFor := httpx.RetryAfterDuration(resp, backoff, 10*time.Second)
		sleepFor = httpx.JitterSleep(sleepFor)

		c.log.Warn("Cohere request retrying",
			"attempt", attempt+1,
			"max_retries", c.maxRetries,
			"sleep", sleepFor.String(),
			"error", err.Error(),
		)

		time.Sleep(sleepFor)
		backoff *= 2
	}

	return "", fmt.Errorf("unreachable retry loop")
}
