// Package opensearch implements the TranscriptSearcher port against an
// AWS-hosted search index. Requests are SigV4-signed for the "es" service,
// the way the index's access policy requires.
package opensearch

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"

	"github.com/sia-ops/shiftsheet/internal/core/domain"
	"github.com/sia-ops/shiftsheet/internal/core/ports/driven"
	"github.com/sia-ops/shiftsheet/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.TranscriptSearcher = (*Client)(nil)

const (
	// indexSuffix names the per-namespace transcript index:
	// "{namespace}_sia_transcript_details".
	indexSuffix = "sia_transcript_details"

	// signingService is the SigV4 service name for the search domain.
	signingService = "es"

	defaultLimit   = 500
	requestTimeout = 30 * time.Second
)

// Config configures the search index client.
type Config struct {
	// Endpoint is the search domain URL, without a trailing slash.
	Endpoint string

	// Region is the AWS region the domain lives in.
	Region string
}

// Client queries the transcript search index.
type Client struct {
	cfg    Config
	http   *http.Client
	creds  aws.CredentialsProvider
	signer *v4.Signer
}

// NewClient creates a search index client. Credentials come from the AWS
// SDK default chain (environment, shared config, instance role).
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("%w: search endpoint is required", domain.ErrInvalidInput)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: requestTimeout},
		creds:  awsCfg.Credentials,
		signer: v4.NewSigner(),
	}, nil
}

// searchBody is the query envelope sent to the index.
type searchBody struct {
	Size  int         `json:"size"`
	Query searchQuery `json:"query"`
}

type searchQuery struct {
	Bool boolQuery `json:"bool"`
}

type boolQuery struct {
	Filter []map[string]any `json:"filter"`
}

// searchResponse is the subset of the response envelope we read.
type searchResponse struct {
	Hits struct {
		Hits []struct {
			Source domain.TranscriptRecord `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

// Search returns transcript documents whose processed-on falls inside the
// query's inclusive bounds.
func (c *Client) Search(ctx context.Context, q driven.SearchQuery) ([]domain.TranscriptRecord, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	filters := []map[string]any{
		{"range": map[string]any{"processed_on": map[string]any{
			"gte": q.From.UTC().Format(time.RFC3339),
			"lte": q.To.UTC().Format(time.RFC3339),
		}}},
	}
	if len(q.Agents) > 0 {
		filters = append(filters, map[string]any{
			"terms": map[string]any{"request.agent": q.Agents},
		})
	}

	body, err := json.Marshal(searchBody{
		Size:  limit,
		Query: searchQuery{Bool: boolQuery{Filter: filters}},
	})
	if err != nil {
		return nil, fmt.Errorf("encode query: %w", err)
	}

	index := fmt.Sprintf("%s_%s", q.Namespace, indexSuffix)
	url := fmt.Sprintf("%s/%s/_search", strings.TrimRight(c.cfg.Endpoint, "/"), index)
	logger.Debug("search index %s limit %d", index, limit)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if err := c.sign(ctx, req, body); err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("query search index: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("search index returned %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	var decoded searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	records := make([]domain.TranscriptRecord, 0, len(decoded.Hits.Hits))
	for _, hit := range decoded.Hits.Hits {
		records = append(records, hit.Source)
	}
	return records, nil
}

// sign attaches SigV4 headers for the search domain.
func (c *Client) sign(ctx context.Context, req *http.Request, body []byte) error {
	creds, err := c.creds.Retrieve(ctx)
	if err != nil {
		return fmt.Errorf("retrieve aws credentials: %w", err)
	}

	sum := sha256.Sum256(body)
	if err := c.signer.SignHTTP(ctx, creds, req, hex.EncodeToString(sum[:]),
		signingService, c.cfg.Region, time.Now()); err != nil {
		return fmt.Errorf("sign request: %w", err)
	}
	return nil
}
