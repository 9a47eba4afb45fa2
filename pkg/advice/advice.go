// Package advice talks to the external generator that produces encouragement
// payloads and background imagery. The generator is opaque: one request, one
// response, no retries. Callers decide how failures degrade.
package advice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"strings"
	"time"
)

// Advice is the structured encouragement payload for a daily focus.
type Advice struct {
	Quote         string   `json:"quote"`
	Encouragement string   `json:"encouragement"`
	Steps         []string `json:"steps"`
}

// PlaceholderImageURL is the fallback shown when background generation
// fails.
const PlaceholderImageURL = "https://picsum.photos/1920/1080"

// BackgroundCacheTTL is how long a generated background stays fresh.
const BackgroundCacheTTL = time.Hour

// qualitySuffix is appended to every background theme request.
const qualitySuffix = ", high resolution, cinematic lighting"

// themes the background generator can be asked for.
var themes = []string{
	"serene landscape",
	"abstract digital art",
	"beautiful nature",
	"calm morning sky",
	"peaceful forest",
	"tranquil ocean view",
}

// RandomTheme returns one of the fixed theme phrases with the quality suffix
// applied.
func RandomTheme() string {
	return themes[rand.Intn(len(themes))] + qualitySuffix
}

// ErrProvider marks a transport or provider-side failure.
var ErrProvider = errors.New("advice: provider failure")

// ErrMalformed marks a response the client could not decode. Surfaced to
// users identically to ErrProvider, but kept distinct for callers and tests.
var ErrMalformed = errors.New("advice: malformed response")

// Generator is the request/response contract with the external service.
type Generator interface {
	// GenerateBackground returns an image URL (or data URL) for the theme.
	GenerateBackground(ctx context.Context, theme string) (string, error)
	// GetAdvice returns the encouragement payload for a focus goal.
	GetAdvice(ctx context.Context, focus string) (*Advice, error)
}

// HTTPGenerator implements Generator against a JSON-over-HTTP endpoint.
type HTTPGenerator struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewHTTPGenerator builds a client for the given endpoint. The base URL is
// required; the key is optional.
func NewHTTPGenerator(baseURL, apiKey string) (*HTTPGenerator, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("advice: base URL is required")
	}
	return &HTTPGenerator{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

type backgroundRequest struct {
	Theme string `json:"theme"`
}

type backgroundResponse struct {
	ImageB64 string `json:"image"`
	ImageURL string `json:"imageUrl"`
}

// GenerateBackground asks the service for a background matching the theme.
func (g *HTTPGenerator) GenerateBackground(ctx context.Context, theme string) (string, error) {
	var resp backgroundResponse
	if err := g.post(ctx, "/v1/background", backgroundRequest{Theme: theme}, &resp); err != nil {
		return "", err
	}
	switch {
	case resp.ImageURL != "":
		return resp.ImageURL, nil
	case resp.ImageB64 != "":
		return "data:image/png;base64," + resp.ImageB64, nil
	}
	return "", fmt.Errorf("%w: empty image payload", ErrMalformed)
}

type adviceRequest struct {
	Focus string `json:"focus"`
}

// GetAdvice asks the service for encouragement on the focus goal.
func (g *HTTPGenerator) GetAdvice(ctx context.Context, focus string) (*Advice, error) {
	var resp Advice
	if err := g.post(ctx, "/v1/advice", adviceRequest{Focus: focus}, &resp); err != nil {
		return nil, err
	}
	if resp.Encouragement == "" && resp.Quote == "" && len(resp.Steps) == 0 {
		return nil, fmt.Errorf("%w: empty advice payload", ErrMalformed)
	}
	return &resp, nil
}

func (g *HTTPGenerator) post(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("advice: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("advice: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if g.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+g.apiKey)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrProvider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return fmt.Errorf("%w: status %d: %s", ErrProvider, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return nil
}
