package opensearch

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sia-ops/shiftsheet/internal/core/ports/driven"
)

// testClient builds a client with static credentials pointed at a test
// server, bypassing the SDK credential chain.
func testClient(endpoint string) *Client {
	return &Client{
		cfg:  Config{Endpoint: endpoint, Region: "ap-south-1"},
		http: &http.Client{Timeout: 5 * time.Second},
		creds: aws.CredentialsProviderFunc(func(context.Context) (aws.Credentials, error) {
			return aws.Credentials{AccessKeyID: "AKID", SecretAccessKey: "SECRET"}, nil
		}),
		signer: v4.NewSigner(),
	}
}

func testQuery() driven.SearchQuery {
	return driven.SearchQuery{
		Namespace: "qa",
		From:      time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		To:        time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
	}
}

func TestSearch_BuildsSignedRangeQuery(t *testing.T) {
	var gotPath string
	var gotBody searchBody
	var gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		_, _ = w.Write([]byte(`{"hits":{"hits":[
			{"_source":{"image_name":"a.tiff","processed_by":"devika"}},
			{"_source":{"image_name":"b.tiff"}}
		]}}`))
	}))
	defer srv.Close()

	client := testClient(srv.URL)
	records, err := client.Search(context.Background(), testQuery())
	require.NoError(t, err)

	require.Len(t, records, 2)
	assert.Equal(t, "a.tiff", *records[0].ImageName)
	assert.Equal(t, "devika", *records[0].ProcessedBy)
	assert.Nil(t, records[1].ProcessedBy)

	assert.Equal(t, "/qa_sia_transcript_details/_search", gotPath)
	assert.Contains(t, gotAuth, "AWS4-HMAC-SHA256")
	assert.Contains(t, gotAuth, "AKID")

	assert.Equal(t, defaultLimit, gotBody.Size)
	require.Len(t, gotBody.Query.Bool.Filter, 1)
	rangeFilter := gotBody.Query.Bool.Filter[0]["range"].(map[string]any)
	processedOn := rangeFilter["processed_on"].(map[string]any)
	assert.Equal(t, "2024-03-01T00:00:00Z", processedOn["gte"])
	assert.Equal(t, "2024-03-31T00:00:00Z", processedOn["lte"])
}

func TestSearch_AgentAllowListAddsTermsFilter(t *testing.T) {
	var gotBody searchBody
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"hits":{"hits":[]}}`))
	}))
	defer srv.Close()

	q := testQuery()
	q.Agents = []string{"scanner-07", "scanner-09"}
	q.Limit = 25

	_, err := testClient(srv.URL).Search(context.Background(), q)
	require.NoError(t, err)

	assert.Equal(t, 25, gotBody.Size)
	require.Len(t, gotBody.Query.Bool.Filter, 2)
	terms := gotBody.Query.Bool.Filter[1]["terms"].(map[string]any)
	assert.Equal(t, []any{"scanner-07", "scanner-09"}, terms["request.agent"])
}

func TestSearch_EmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"hits":{"hits":[]}}`))
	}))
	defer srv.Close()

	records, err := testClient(srv.URL).Search(context.Background(), testQuery())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestSearch_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":"index_not_found_exception"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Search(context.Background(), testQuery())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
	assert.Contains(t, err.Error(), "index_not_found_exception")
}

func TestSearch_UnreachableEndpoint(t *testing.T) {
	client := testClient("http://127.0.0.1:1")
	_, err := client.Search(context.Background(), testQuery())
	require.Error(t, err)
}

func TestNewClient_RequiresEndpoint(t *testing.T) {
	_, err := NewClient(context.Background(), Config{Region: "ap-south-1"})
	require.Error(t, err)
}
