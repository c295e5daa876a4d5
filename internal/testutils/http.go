package testutils

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type TestServer struct {
	*httptest.Server
	t      *testing.T
	client *http.Client
}

// NewTestServer serves handler; its client does not follow redirects so
// tests can assert on them.
func NewTestServer(t *testing.T, handler http.Handler) *TestServer {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return &TestServer{
		Server: server,
		t:      t,
		client: &http.Client{
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

func (ts *TestServer) GET(path string) *http.Response {
	resp, err := ts.client.Get(ts.URL + path)
	require.NoError(ts.t, err)
	return resp
}

func (ts *TestServer) PostForm(path string, form url.Values) *http.Response {
	resp, err := ts.client.Post(ts.URL+path, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	require.NoError(ts.t, err)
	return resp
}

// ReadBody drains and closes the response body.
func ReadBody(t *testing.T, resp *http.Response) string {
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}
