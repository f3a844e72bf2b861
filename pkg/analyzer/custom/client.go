package custom

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/finners68/textract-proxy/pkg/analyzer"
)

var _ analyzer.Provider = (*Client)(nil)

// Client talks to any HTTP endpoint that answers with the engine's raw wire
// shapes (a Blocks array or ExpenseDocuments array).
type Client struct {
	client *http.Client

	url   string
	token string
}

type Option func(*Client)

func WithClient(client *http.Client) Option {
	return func(c *Client) {
		c.client = client
	}
}

func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

func New(url string, options ...Option) (*Client, error) {
	if url == "" {
		return nil, errors.New("invalid url")
	}

	c := &Client{
		client: http.DefaultClient,

		url: url,
	}

	for _, option := range options {
		option(c)
	}

	return c, nil
}

func (c *Client) Analyze(ctx context.Context, input analyzer.Input, options *analyzer.AnalyzeOptions) (*analyzer.Result, error) {
	if options == nil {
		options = new(analyzer.AnalyzeOptions)
	}

	mode := options.Mode

	if mode == "" {
		mode = analyzer.ModeExpense
	}

	if input.File == nil {
		return nil, errors.New("invalid input")
	}

	u, _ := url.Parse(strings.TrimRight(c.url, "/") + "/analyze")

	query := u.Query()
	query.Set("mode", string(mode))

	u.RawQuery = query.Encode()

	contentType := input.File.ContentType

	if contentType == "" {
		contentType = "application/octet-stream"
	}

	req, _ := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(input.File.Content))
	req.Header.Set("Content-Type", contentType)

	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, convertError(resp)
	}

	var result analyzer.Result

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	return &result, nil
}

func convertError(resp *http.Response) error {
	data, _ := io.ReadAll(resp.Body)

	if len(data) == 0 {
		return errors.New(http.StatusText(resp.StatusCode))
	}

	return errors.New(string(data))
}
