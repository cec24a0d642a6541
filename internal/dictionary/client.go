package dictionary

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// DefaultBaseURL is the dictionaryapi.dev lookup endpoint, templated by word.
const DefaultBaseURL = "https://api.dictionaryapi.dev/api/v2/entries/en"

const userAgent = "vocabsift/0.2"

// Client looks words up against a dictionaryapi.dev-compatible service.
// Transient failures (network errors, 5xx, rate limiting) are retried at a
// fixed interval up to MaxRetries; a 404 is a terminal not-found.
type Client struct {
	BaseURL       string
	MaxRetries    uint64
	RetryInterval time.Duration
	httpClient    *http.Client
}

// NewClient creates a dictionary client.
func NewClient(baseURL string, timeout time.Duration, maxRetries int, retryInterval time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if maxRetries < 0 {
		maxRetries = 0
	}
	return &Client{
		BaseURL:       baseURL,
		MaxRetries:    uint64(maxRetries),
		RetryInterval: retryInterval,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Define fetches the first available sense for word. It returns ErrNotFound
// when the service has no entry, and the last transport error when retries
// are exhausted.
func (c *Client) Define(ctx context.Context, word string) (*Definition, error) {
	endpoint := fmt.Sprintf("%s/%s", c.BaseURL, url.PathEscape(word))

	var def *Definition
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to create request: %w", err))
		}
		req.Header.Set("User-Agent", userAgent)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("dictionary request failed: %w", err)
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusNotFound:
			return backoff.Permanent(ErrNotFound)
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			return fmt.Errorf("dictionary returned status %d", resp.StatusCode)
		case resp.StatusCode != http.StatusOK:
			return backoff.Permanent(fmt.Errorf("dictionary returned status %d", resp.StatusCode))
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("failed to read dictionary response: %w", err)
		}

		parsed, err := parseEntries(body, word)
		if err != nil {
			return backoff.Permanent(err)
		}
		def = parsed
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(c.RetryInterval), c.MaxRetries),
		ctx,
	)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, err
	}
	return def, nil
}

// apiEntry mirrors the dictionaryapi.dev response payload.
type apiEntry struct {
	Word      string `json:"word"`
	Phonetic  string `json:"phonetic"`
	Phonetics []struct {
		Text string `json:"text"`
	} `json:"phonetics"`
	Meanings []struct {
		PartOfSpeech string `json:"partOfSpeech"`
		Definitions  []struct {
			Definition string `json:"definition"`
			Example    string `json:"example"`
		} `json:"definitions"`
	} `json:"meanings"`
}

// parseEntries extracts the first available phonetic, part of speech,
// definition, and example from a lookup payload. Each field is optional.
func parseEntries(body []byte, word string) (*Definition, error) {
	var entries []apiEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode dictionary response: %w", err)
	}
	if len(entries) == 0 {
		return nil, ErrNotFound
	}

	entry := entries[0]
	def := &Definition{
		Word:     word,
		Phonetic: entry.Phonetic,
	}
	if def.Phonetic == "" {
		for _, p := range entry.Phonetics {
			if p.Text != "" {
				def.Phonetic = p.Text
				break
			}
		}
	}
	if len(entry.Meanings) > 0 {
		meaning := entry.Meanings[0]
		def.POS = meaning.PartOfSpeech
		if len(meaning.Definitions) > 0 {
			def.Definition = meaning.Definitions[0].Definition
			def.Example = meaning.Definitions[0].Example
		}
	}
	return def, nil
}
