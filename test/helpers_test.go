//go:build integration_test || all_tests

package test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/2beens/physioroutines/internal/document"

	"github.com/stretchr/testify/require"
)

// SetupTest drops the routines document, every test starts with no routines
// and no progress.
func (s *IntegrationTestSuite) SetupTest() {
	_, err := s.DB.Exec(`DELETE FROM document_store WHERE key = $1`, document.DefaultKey)
	require.NoError(s.T(), err)
}

func (s *IntegrationTestSuite) doRequest(
	ctx context.Context,
	method, path string,
	body any,
	expectedStatus int,
	out any,
) {
	var reqBody io.Reader
	if body != nil {
		bodyJson, err := json.Marshal(body)
		require.NoError(s.T(), err)
		reqBody = bytes.NewReader(bodyJson)
	}

	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, reqBody)
	require.NoError(s.T(), err)
	req.Header.Set("User-Agent", "test-agent")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.httpClient.Do(req)
	require.NoError(s.T(), err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(s.T(), err)
	require.Equal(s.T(), expectedStatus, resp.StatusCode, string(respBytes))

	if out != nil {
		require.NoError(s.T(), json.Unmarshal(respBytes, out))
	}
}

func (s *IntegrationTestSuite) storedDocument() *document.Document {
	var value string
	err := s.DB.QueryRow(`SELECT value FROM document_store WHERE key = $1`, document.DefaultKey).Scan(&value)
	require.NoError(s.T(), err)

	doc, err := document.Decode([]byte(value))
	require.NoError(s.T(), err)
	return doc
}
