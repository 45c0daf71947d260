// Package challonge is a thin client for the Challonge v1 REST API,
// covering the two calls the ingestion pipeline needs: listing the
// account's tournaments and fetching one tournament with its matches and
// participants. Failed calls are surfaced to the caller and never
// retried.
package challonge

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const DefaultBaseURL = "https://api.challonge.com/v1"

type ClientConfig struct {
	HTTPClient *http.Client
	BaseURL    string
	APIKey     string
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewClient(cfg ClientConfig) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     cfg.APIKey,
	}
}

// ListTournaments fetches all tournaments visible to the API key.
func (c *Client) ListTournaments() ([]Tournament, error) {
	endpoint := fmt.Sprintf("%s/tournaments.json", c.baseURL)

	params := url.Values{}
	params.Set("api_key", c.apiKey)

	var envelopes []tournamentEnvelope
	if err := c.getJSON(endpoint, params, &envelopes); err != nil {
		return nil, err
	}

	tournaments := make([]Tournament, 0, len(envelopes))
	for _, env := range envelopes {
		tournaments = append(tournaments, env.Tournament.unwrap())
	}

	return tournaments, nil
}

// GetTournament fetches one tournament by its url code, including matches
// and participants.
func (c *Client) GetTournament(code string) (*Tournament, error) {
	endpoint := fmt.Sprintf("%s/tournaments/%s.json", c.baseURL, url.PathEscape(code))

	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("include_matches", "1")
	params.Set("include_participants", "1")

	var envelope tournamentEnvelope
	if err := c.getJSON(endpoint, params, &envelope); err != nil {
		return nil, err
	}

	tournament := envelope.Tournament.unwrap()
	return &tournament, nil
}

func (c *Client) getJSON(endpoint string, params url.Values, out interface{}) error {
	req, err := http.NewRequest(http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("challonge request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("challonge returned status %d for %s", resp.StatusCode, endpoint)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("challonge response decode failed: %w", err)
	}

	return nil
}
