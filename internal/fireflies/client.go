package fireflies

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/fireflies-dl/errors"
	"github.com/johnquangdev/fireflies-dl/pkg/config"
)

const transcriptQuery = `
query GetTranscriptContent($id: String!) {
  transcript(id: $id) {
    title
    id
    transcript_url
    duration
    date
    participants
    sentences {
      text
      speaker_id
      speaker_name
      start_time
      end_time
    }
    summary {
      keywords
      action_items
      overview
      shorthand_bullet
    }
  }
}
`

// Client is a minimal client for the Fireflies GraphQL API
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewClient creates a Fireflies client using values from the provided config.
func NewClient(cfg *config.Config, logger *zap.Logger) *Client {
	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: cfg.HTTPTimeout},
		logger:  logger,
	}
}

type graphqlRequest struct {
	Query     string            `json:"query"`
	Variables map[string]string `json:"variables"`
}

type graphqlError struct {
	Message    string `json:"message"`
	Code       string `json:"code"`
	Extensions struct {
		Code string `json:"code"`
	} `json:"extensions"`
}

func (e graphqlError) errorCode() string {
	if e.Code != "" {
		return e.Code
	}
	return e.Extensions.Code
}

type transcriptResponse struct {
	Data struct {
		Transcript *Transcript `json:"transcript"`
	} `json:"data"`
	Errors []graphqlError `json:"errors"`
}

// GetTranscript fetches one transcript by ID with a single request.
// The raw response body is returned alongside the decoded transcript so
// callers can persist the payload exactly as received.
func (c *Client) GetTranscript(ctx context.Context, id string) (*Transcript, json.RawMessage, error) {
	body, err := json.Marshal(graphqlRequest{
		Query:     transcriptQuery,
		Variables: map[string]string{"id": id},
	})
	if err != nil {
		return nil, nil, apperrors.ErrAPI(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, nil, apperrors.ErrAPI(err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, nil, apperrors.ErrNetwork(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, apperrors.ErrNetwork(err)
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, nil, apperrors.ErrAuthentication()
	}
	if resp.StatusCode >= 400 {
		return nil, nil, apperrors.ErrAPI(fmt.Errorf("fireflies returned status %d", resp.StatusCode))
	}

	var tr transcriptResponse
	if err := json.Unmarshal(raw, &tr); err != nil {
		return nil, nil, apperrors.ErrAPI(err)
	}

	if len(tr.Errors) > 0 {
		for _, ge := range tr.Errors {
			switch ge.errorCode() {
			case "object_not_found":
				return nil, nil, apperrors.ErrTranscriptNotFound(id)
			case "invalid_api_key", "unauthorized", "forbidden":
				return nil, nil, apperrors.ErrAuthentication()
			}
		}
		return nil, nil, apperrors.ErrAPI(fmt.Errorf("graphql: %s", tr.Errors[0].Message))
	}
	if tr.Data.Transcript == nil {
		return nil, nil, apperrors.ErrTranscriptNotFound(id)
	}

	c.logger.Debug("transcript fetched",
		zap.String("id", id),
		zap.Int("sentences", len(tr.Data.Transcript.Sentences)))

	return tr.Data.Transcript, json.RawMessage(raw), nil
}
