package plantnet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"github.com/verdantly/gardenmate/internal/domain/identify"
)

const defaultBaseURL = "https://my-api.plantnet.org/v2/identify/all"

// Client sends photos to the PlantNet identification API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient builds an API client.
func NewClient(baseURL, apiKey string) *Client {
	endpoint := strings.TrimSpace(baseURL)
	if endpoint == "" {
		endpoint = defaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(endpoint, "/"),
		apiKey:  strings.TrimSpace(apiKey),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Classify uploads the image and maps PlantNet results to predictions
// ordered by descending score.
func (c *Client) Classify(ctx context.Context, image []byte, mimeType string) ([]identify.Prediction, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="images"; filename="photo"`)
	header.Set("Content-Type", mimeType)
	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("build identify payload: %w", err)
	}
	if _, err := part.Write(image); err != nil {
		return nil, fmt.Errorf("build identify payload: %w", err)
	}
	if err := writer.WriteField("organs", "auto"); err != nil {
		return nil, fmt.Errorf("build identify payload: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("build identify payload: %w", err)
	}

	query := url.Values{}
	query.Set("api-key", c.apiKey)
	endpoint := fmt.Sprintf("%s?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &buf)
	if err != nil {
		return nil, fmt.Errorf("build identify request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("identify request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		// PlantNet answers 404 when no species matches the photo.
		return nil, nil
	}
	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, fmt.Errorf("identify request error: status=%d body=%s", resp.StatusCode, string(payload))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read identify response: %w", err)
	}

	var raw apiResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decode identify response: %w", err)
	}

	return normalizeResults(raw.Results), nil
}

type apiResponse struct {
	Results []apiResult `json:"results"`
}

type apiResult struct {
	Score   float64    `json:"score"`
	Species apiSpecies `json:"species"`
}

type apiSpecies struct {
	ScientificName string   `json:"scientificNameWithoutAuthor"`
	CommonNames    []string `json:"commonNames"`
}

func normalizeResults(results []apiResult) []identify.Prediction {
	predictions := make([]identify.Prediction, 0, len(results))
	for _, result := range results {
		name := result.Species.ScientificName
		if len(result.Species.CommonNames) > 0 && strings.TrimSpace(result.Species.CommonNames[0]) != "" {
			name = result.Species.CommonNames[0]
		}
		if strings.TrimSpace(name) == "" {
			continue
		}
		predictions = append(predictions, identify.Prediction{
			Name:           name,
			ScientificName: result.Species.ScientificName,
			Confidence:     result.Score,
		})
	}
	return predictions
}

var _ identify.Classifier = (*Client)(nil)
