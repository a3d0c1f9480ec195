package dictionary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/at-ishikawa/meowdict/internal/dictionary/moedict"
	"github.com/avast/retry-go"
	"resty.dev/v3"
)

type Config struct {
	BaseURL        string
	ReverseBaseURL string
	RetryAttempts  uint
	RetryDelay     time.Duration
}

// Client talks to the dictionary service and to the services around it.
type Client struct {
	httpClient     *resty.Client
	reverseBaseURL string
	retryAttempts  uint
	retryDelay     time.Duration
}

// ReverseMatch is one candidate word of a reverse lookup.
type ReverseMatch struct {
	Correlation float64 `json:"correlation"`
	Word        string  `json:"word"`
}

var markerReplacer = strings.NewReplacer("`", "", "~", "")

func NewClient(config Config) *Client {
	client := resty.New()
	client.SetBaseURL(strings.TrimSuffix(config.BaseURL, "/"))

	retryDelay := config.RetryDelay
	if retryDelay <= 0 {
		retryDelay = 200 * time.Millisecond
	}
	return &Client{
		httpClient:     client,
		reverseBaseURL: config.ReverseBaseURL,
		retryAttempts:  config.RetryAttempts,
		retryDelay:     retryDelay,
	}
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

// Lookup fetches the dictionary entry of a term.
func (client *Client) Lookup(ctx context.Context, term string) (moedict.Entry, error) {
	var entry moedict.Entry
	body, err := client.get(ctx, "/a/{term}.json", func(request *resty.Request) {
		request.SetPathParam("term", term)
	})
	if errors.Is(err, ErrNotFound) {
		return entry, fmt.Errorf("could not find keyword: %s > %w", term, err)
	}
	if err != nil {
		return entry, fmt.Errorf("client.get(%s) > %w", term, err)
	}

	// The service marks emphasis with backticks and tildes inside the JSON strings.
	if err := json.Unmarshal([]byte(markerReplacer.Replace(body)), &entry); err != nil {
		return entry, &MalformedResponseError{Err: fmt.Errorf("json.Unmarshal(%s) > %w", term, err)}
	}
	return entry, nil
}

// ReverseLookup returns the words whose definitions match a description, best match first.
func (client *Client) ReverseLookup(ctx context.Context, description string) ([]ReverseMatch, error) {
	if client.reverseBaseURL == "" {
		return nil, fmt.Errorf("reverse.base_url > %w", ErrNotConfigured)
	}
	body, err := client.get(ctx, client.reverseBaseURL, func(request *resty.Request) {
		request.SetQueryParam("q", description)
	})
	if errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("could not find a word for: %s > %w", description, err)
	}
	if err != nil {
		return nil, fmt.Errorf("client.get(%s) > %w", description, err)
	}

	var matches []ReverseMatch
	if err := json.Unmarshal([]byte(body), &matches); err != nil {
		return nil, &MalformedResponseError{Err: fmt.Errorf("json.Unmarshal(%s) > %w", description, err)}
	}
	return matches, nil
}

// FetchJSON decodes the JSON document at url into v.
func (client *Client) FetchJSON(ctx context.Context, url string, v any) error {
	body, err := client.get(ctx, url, nil)
	if err != nil {
		return fmt.Errorf("client.get(%s) > %w", url, err)
	}
	if err := json.Unmarshal([]byte(body), v); err != nil {
		return &MalformedResponseError{Err: fmt.Errorf("json.Unmarshal(%s) > %w", url, err)}
	}
	return nil
}

func isRetryableStatus(statusCode int) bool {
	return statusCode == http.StatusTooManyRequests || statusCode >= http.StatusInternalServerError
}

func (client *Client) get(ctx context.Context, url string, prepare func(*resty.Request)) (string, error) {
	var body string
	err := retry.Do(
		func() error {
			request := client.httpClient.R().SetContext(ctx)
			if prepare != nil {
				prepare(request)
			}
			response, err := request.Get(url)
			if err != nil {
				return fmt.Errorf("httpClient.Get > %w", err)
			}

			statusCode := response.StatusCode()
			switch {
			case statusCode == http.StatusOK:
				body = response.String()
				return nil
			case statusCode == http.StatusNotFound:
				return retry.Unrecoverable(ErrNotFound)
			case isRetryableStatus(statusCode):
				return &ServiceError{StatusCode: statusCode, Body: response.String()}
			default:
				return retry.Unrecoverable(&ServiceError{StatusCode: statusCode, Body: response.String()})
			}
		},
		retry.Context(ctx),
		retry.Attempts(client.retryAttempts+1),
		retry.Delay(client.retryDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			slog.Default().Info("Retrying a request",
				"attempt", n+1,
				"url", url,
				"lastError", err)
		}),
	)
	return body, err
}
