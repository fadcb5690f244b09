package records

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client fetches record collections from the remote benchmark record store
// over HTTP. Each collection is served at GET {base}/v1/{collection} with
// offset-token pagination; the client follows offsets until the store stops
// returning one, so every Fetch* method yields the complete collection.
//
// The client performs no caching itself - see Cache and Load for the
// memoization layer.
type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
}

// defaultRequestTimeout bounds a single page request, not a whole fetch.
const defaultRequestTimeout = 30 * time.Second

// NewClient creates a record store client.
//
// Parameters:
//   - baseURL: root URL of the record store API (must not be empty)
//   - token: bearer token for authentication (may be empty for open stores)
func NewClient(baseURL, token string) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("record store base URL cannot be empty")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid record store base URL: %w", err)
	}

	return &Client{
		baseURL: baseURL,
		token:   token,
		httpc:   &http.Client{Timeout: defaultRequestTimeout},
	}, nil
}

// listEnvelope is the store's paginated response shape. A non-empty offset
// means more pages follow.
type listEnvelope struct {
	Records []json.RawMessage `json:"records"`
	Offset  string            `json:"offset"`
}

// listAll fetches every page of a collection, passing each raw record to the
// decode callback in server order.
func (c *Client) listAll(ctx context.Context, collection string, decode func(json.RawMessage) error) error {
	offset := ""
	for {
		env, err := c.listPage(ctx, collection, offset)
		if err != nil {
			return err
		}

		for _, raw := range env.Records {
			if err := decode(raw); err != nil {
				return err
			}
		}

		if env.Offset == "" {
			return nil
		}
		offset = env.Offset
	}
}

func (c *Client) listPage(ctx context.Context, collection, offset string) (*listEnvelope, error) {
	u := fmt.Sprintf("%s/v1/%s", c.baseURL, collection)
	if offset != "" {
		u += "?offset=" + url.QueryEscape(offset)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", collection, err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", collection, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("record store returned %d for %s: %s", resp.StatusCode, collection, string(body))
	}

	var env listEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("failed to decode %s response: %w", collection, err)
	}
	return &env, nil
}

// FetchOrganizations retrieves all organization records.
func (c *Client) FetchOrganizations(ctx context.Context) ([]Organization, error) {
	var out []Organization
	err := c.listAll(ctx, CollectionOrganizations, func(raw json.RawMessage) error {
		rec, err := decodeOrganization(raw)
		if err != nil {
			return err
		}
		out = append(out, rec)
		return nil
	})
	return out, err
}

// FetchModelGroups retrieves all model group records.
func (c *Client) FetchModelGroups(ctx context.Context) ([]ModelGroup, error) {
	var out []ModelGroup
	err := c.listAll(ctx, CollectionModelGroups, func(raw json.RawMessage) error {
		rec, err := decodeModelGroup(raw)
		if err != nil {
			return err
		}
		out = append(out, rec)
		return nil
	})
	return out, err
}

// FetchModels retrieves all model records.
func (c *Client) FetchModels(ctx context.Context) ([]Model, error) {
	var out []Model
	err := c.listAll(ctx, CollectionModels, func(raw json.RawMessage) error {
		rec, err := decodeModel(raw)
		if err != nil {
			return err
		}
		out = append(out, rec)
		return nil
	})
	return out, err
}

// FetchTasks retrieves all task records.
func (c *Client) FetchTasks(ctx context.Context) ([]Task, error) {
	var out []Task
	err := c.listAll(ctx, CollectionTasks, func(raw json.RawMessage) error {
		rec, err := decodeTask(raw)
		if err != nil {
			return err
		}
		out = append(out, rec)
		return nil
	})
	return out, err
}

// FetchBenchmarkRuns retrieves all benchmark run records.
func (c *Client) FetchBenchmarkRuns(ctx context.Context) ([]BenchmarkRun, error) {
	var out []BenchmarkRun
	err := c.listAll(ctx, CollectionRuns, func(raw json.RawMessage) error {
		rec, err := decodeBenchmarkRun(raw)
		if err != nil {
			return err
		}
		out = append(out, rec)
		return nil
	})
	return out, err
}

// FetchScores retrieves all score records.
func (c *Client) FetchScores(ctx context.Context) ([]Score, error) {
	var out []Score
	err := c.listAll(ctx, CollectionScores, func(raw json.RawMessage) error {
		rec, err := decodeScore(raw)
		if err != nil {
			return err
		}
		out = append(out, rec)
		return nil
	})
	return out, err
}
