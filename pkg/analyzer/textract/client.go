package textract

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/finners68/textract-proxy/pkg/analyzer"

	"github.com/avast/retry-go/v4"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	awstextract "github.com/aws/aws-sdk-go-v2/service/textract"
	"github.com/aws/aws-sdk-go-v2/service/textract/types"
)

var _ analyzer.Provider = (*Client)(nil)

var errJobInProgress = errors.New("job in progress")

type Client struct {
	*Config
}

func New(options ...Option) (*Client, error) {
	cfg := &Config{
		pollInterval: 2 * time.Second,
		pollAttempts: 150,
	}

	for _, option := range options {
		option(cfg)
	}

	if cfg.client == nil {
		config, err := config.LoadDefaultConfig(context.Background())

		if err != nil {
			return nil, err
		}

		cfg.client = awstextract.NewFromConfig(config)
	}

	return &Client{
		Config: cfg,
	}, nil
}

// Analyze submits a document for analysis. Inline content runs through the
// synchronous API; blob-store objects run through the asynchronous API,
// polling the job status at a fixed interval until it is terminal.
func (c *Client) Analyze(ctx context.Context, input analyzer.Input, options *analyzer.AnalyzeOptions) (*analyzer.Result, error) {
	if options == nil {
		options = new(analyzer.AnalyzeOptions)
	}

	mode := options.Mode

	if mode == "" {
		mode = analyzer.ModeExpense
	}

	if input.Object != nil {
		return c.analyzeObject(ctx, *input.Object, mode)
	}

	if input.File != nil {
		return c.analyzeBytes(ctx, input.File.Content, mode)
	}

	return nil, errors.New("invalid input")
}

func (c *Client) analyzeBytes(ctx context.Context, content []byte, mode analyzer.Mode) (*analyzer.Result, error) {
	document := &types.Document{
		Bytes: content,
	}

	if mode == analyzer.ModeForms {
		resp, err := c.client.AnalyzeDocument(ctx, &awstextract.AnalyzeDocumentInput{
			Document: document,

			FeatureTypes: []types.FeatureType{
				types.FeatureTypeForms,
			},
		})

		if err != nil {
			return nil, err
		}

		return &analyzer.Result{
			Blocks: convertBlocks(resp.Blocks),
		}, nil
	}

	resp, err := c.client.AnalyzeExpense(ctx, &awstextract.AnalyzeExpenseInput{
		Document: document,
	})

	if err != nil {
		return nil, err
	}

	return &analyzer.Result{
		ExpenseDocuments: convertExpenseDocuments(resp.ExpenseDocuments),
	}, nil
}

func (c *Client) analyzeObject(ctx context.Context, object analyzer.Object, mode analyzer.Mode) (*analyzer.Result, error) {
	location := &types.DocumentLocation{
		S3Object: &types.S3Object{
			Bucket: aws.String(object.Bucket),
			Name:   aws.String(object.Key),
		},
	}

	if mode == analyzer.ModeForms {
		resp, err := c.client.StartDocumentAnalysis(ctx, &awstextract.StartDocumentAnalysisInput{
			DocumentLocation: location,

			FeatureTypes: []types.FeatureType{
				types.FeatureTypeForms,
			},
		})

		if err != nil {
			return nil, err
		}

		return c.pollForms(ctx, aws.ToString(resp.JobId))
	}

	resp, err := c.client.StartExpenseAnalysis(ctx, &awstextract.StartExpenseAnalysisInput{
		DocumentLocation: location,
	})

	if err != nil {
		return nil, err
	}

	return c.pollExpense(ctx, aws.ToString(resp.JobId))
}

func (c *Client) pollForms(ctx context.Context, jobID string) (*analyzer.Result, error) {
	var result *analyzer.Result

	err := c.poll(ctx, func() error {
		var blocks []types.Block
		var token *string

		for {
			resp, err := c.client.GetDocumentAnalysis(ctx, &awstextract.GetDocumentAnalysisInput{
				JobId: aws.String(jobID),

				NextToken: token,
			})

			if err != nil {
				return retry.Unrecoverable(err)
			}

			if err := checkStatus(resp.JobStatus, resp.StatusMessage); err != nil {
				return err
			}

			blocks = append(blocks, resp.Blocks...)

			if resp.NextToken == nil {
				break
			}

			token = resp.NextToken
		}

		result = &analyzer.Result{
			Blocks: convertBlocks(blocks),
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return result, nil
}

func (c *Client) pollExpense(ctx context.Context, jobID string) (*analyzer.Result, error) {
	var result *analyzer.Result

	err := c.poll(ctx, func() error {
		var documents []types.ExpenseDocument
		var token *string

		for {
			resp, err := c.client.GetExpenseAnalysis(ctx, &awstextract.GetExpenseAnalysisInput{
				JobId: aws.String(jobID),

				NextToken: token,
			})

			if err != nil {
				return retry.Unrecoverable(err)
			}

			if err := checkStatus(resp.JobStatus, resp.StatusMessage); err != nil {
				return err
			}

			documents = append(documents, resp.ExpenseDocuments...)

			if resp.NextToken == nil {
				break
			}

			token = resp.NextToken
		}

		result = &analyzer.Result{
			ExpenseDocuments: convertExpenseDocuments(documents),
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return result, nil
}

func (c *Client) poll(ctx context.Context, check retry.RetryableFunc) error {
	return retry.Do(check,
		retry.Context(ctx),
		retry.Attempts(c.pollAttempts),
		retry.Delay(c.pollInterval),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
	)
}

func checkStatus(status types.JobStatus, message *string) error {
	switch status {
	case types.JobStatusInProgress:
		return errJobInProgress

	case types.JobStatusFailed:
		if text := aws.ToString(message); text != "" {
			return retry.Unrecoverable(fmt.Errorf("%w: %s", analyzer.ErrAnalysisFailed, text))
		}

		return retry.Unrecoverable(analyzer.ErrAnalysisFailed)
	}

	// PARTIAL_SUCCESS still carries usable pages
	return nil
}
