package license

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarag5/mlcookiecutter/internal/log"
)

const mitBody = "MIT License\n\nCopyright (c) [year] [fullname]\n\nPermission is hereby granted, free of charge, ..."

func newMockedResolver(t *testing.T, opts ...Option) (*Resolver, *httpmock.MockTransport) {
	t.Helper()
	transport := httpmock.NewMockTransport()
	client := &http.Client{Transport: transport}
	opts = append([]Option{WithBaseURL("https://licenses.example.com"), WithHTTPClient(client)}, opts...)
	return New(opts...), transport
}

func TestResolveSuccess(t *testing.T) {
	t.Parallel()
	r, transport := newMockedResolver(t)
	transport.RegisterResponder(http.MethodGet, "https://licenses.example.com/licenses/mit",
		httpmock.NewJsonResponderOrPanic(http.StatusOK, map[string]string{"key": "mit", "body": mitBody}))

	result := r.Resolve(context.Background(), "mit")
	assert.True(t, result.Available)
	assert.Equal(t, mitBody, result.Text)
	assert.Equal(t, 1, transport.GetTotalCallCount())
}

func TestResolveNotFound(t *testing.T) {
	t.Parallel()
	r, transport := newMockedResolver(t)
	transport.RegisterResponder(http.MethodGet, "https://licenses.example.com/licenses/not-a-real-license",
		httpmock.NewStringResponder(http.StatusNotFound, `{"message":"Not Found"}`))

	result := r.Resolve(context.Background(), "not-a-real-license")
	assert.False(t, result.Available)
	assert.Equal(t, "Failed to fetch license. Please add manually.", result.Text)
}

func TestResolveServerErrorIsNotRetried(t *testing.T) {
	t.Parallel()
	r, transport := newMockedResolver(t)
	transport.RegisterResponder(http.MethodGet, "https://licenses.example.com/licenses/mit",
		httpmock.NewStringResponder(http.StatusBadGateway, `upstream down`))

	result := r.Resolve(context.Background(), "mit")
	assert.Equal(t, Unavailable(), result)
	assert.Equal(t, 1, transport.GetTotalCallCount())
}

func TestResolveTransportErrorFoldsIntoPlaceholder(t *testing.T) {
	t.Parallel()
	var stdout, stderr bytes.Buffer
	r, transport := newMockedResolver(t, WithLogger(log.New(&stdout, &stderr, false)))
	transport.RegisterResponder(http.MethodGet, "https://licenses.example.com/licenses/mit",
		httpmock.NewErrorResponder(errors.New("dial tcp: connection refused")))

	result := r.Resolve(context.Background(), "mit")
	assert.Equal(t, Unavailable(), result)
	assert.Contains(t, stderr.String(), "Could not reach license service")
	assert.Contains(t, stderr.String(), "connection refused")
}

func TestResolveMalformedBody(t *testing.T) {
	t.Parallel()
	r, transport := newMockedResolver(t)
	transport.RegisterResponder(http.MethodGet, "https://licenses.example.com/licenses/mit",
		httpmock.NewStringResponder(http.StatusOK, `<html>not json</html>`))

	assert.Equal(t, Unavailable(), r.Resolve(context.Background(), "mit"))
}

func TestResolveCancelledContext(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		_, _ = w.Write([]byte(`{"body":"should not be returned"}`))
	}))
	defer server.Close()

	r := New(WithBaseURL(server.URL), WithHTTPClient(server.Client()))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Equal(t, Unavailable(), r.Resolve(ctx, "mit"))
}

func TestResolveSendsHeaders(t *testing.T) {
	t.Parallel()
	var got http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		got = req.Header.Clone()
		assert.Equal(t, "/licenses/apache-2.0", req.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"key":"apache-2.0","body":"Apache License"}`))
	}))
	defer server.Close()

	r := New(
		WithBaseURL(server.URL+"/"),
		WithHTTPClient(server.Client()),
		WithToken("secret-token"),
		WithUserAgent("mlcookiecutter/test"),
	)
	result := r.Resolve(context.Background(), "apache-2.0")

	assert.Equal(t, Body("Apache License"), result)
	require.NotNil(t, got)
	assert.Equal(t, "token secret-token", got.Get("Authorization"))
	assert.Equal(t, "application/vnd.github+json", got.Get("Accept"))
	assert.Equal(t, "mlcookiecutter/test", got.Get("User-Agent"))
}

func TestResolveWithoutTokenOmitsAuthorization(t *testing.T) {
	t.Parallel()
	r, transport := newMockedResolver(t)
	transport.RegisterResponder(http.MethodGet, "https://licenses.example.com/licenses/mit",
		func(req *http.Request) (*http.Response, error) {
			assert.Empty(t, req.Header.Get("Authorization"))
			return httpmock.NewJsonResponse(http.StatusOK, map[string]string{"body": mitBody})
		})

	assert.True(t, r.Resolve(context.Background(), "mit").Available)
}

func TestList(t *testing.T) {
	t.Parallel()
	r, transport := newMockedResolver(t)
	transport.RegisterResponder(http.MethodGet, "https://licenses.example.com/licenses",
		httpmock.NewStringResponder(http.StatusOK, `[
			{"key":"mit","name":"MIT License","spdx_id":"MIT"},
			{"key":"apache-2.0","name":"Apache License 2.0","spdx_id":"Apache-2.0"}
		]`))

	infos, err := r.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Info{
		{Key: "mit", Name: "MIT License", SPDXID: "MIT"},
		{Key: "apache-2.0", Name: "Apache License 2.0", SPDXID: "Apache-2.0"},
	}, infos)
}

func TestListErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		status  int
		wantErr string
	}{
		{"rate limited", http.StatusForbidden, "rate limit exceeded"},
		{"server error", http.StatusInternalServerError, "returned status 500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r, transport := newMockedResolver(t)
			transport.RegisterResponder(http.MethodGet, "https://licenses.example.com/licenses",
				httpmock.NewStringResponder(tt.status, `{}`))

			_, err := r.List(context.Background())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
