package daemon

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	servermodels "panel/internal/server/models"
	serverstore "panel/internal/server/store"
	"panel/pkg/platform/sentinel"
)

func nodeFor(t *testing.T, rawURL string, id int64) servermodels.Node {
	t.Helper()
	u, err := url.Parse(rawURL)
	require.NoError(t, err)
	host, port, err := net.SplitHostPort(u.Host)
	require.NoError(t, err)
	p, err := strconv.Atoi(port)
	require.NoError(t, err)
	return servermodels.Node{ID: id, Scheme: u.Scheme, FQDN: host, DaemonListen: p, DaemonSecret: "node-secret"}
}

func TestRevokeAccessKey(t *testing.T) {
	var gotMethod, gotPath, gotToken string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotToken = r.Header.Get("X-Access-Token")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	nodes := serverstore.NewInMemory()
	nodes.AddNode(nodeFor(t, srv.URL, 1))
	repo := NewRepository(nodes)

	server, err := repo.SetNode(context.Background(), 1)
	require.NoError(t, err)
	require.NoError(t, server.RevokeAccessKey(context.Background(), "i_abc"))

	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/v1/keys/i_abc", gotPath)
	assert.Equal(t, "node-secret", gotToken)
}

func TestRevokeAccessKeyErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"boom"}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	nodes := serverstore.NewInMemory()
	nodes.AddNode(nodeFor(t, srv.URL, 1))

	server, err := NewRepository(nodes).SetNode(context.Background(), 1)
	require.NoError(t, err)

	err = server.RevokeAccessKey(context.Background(), "i_abc")
	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.True(t, reqErr.HasResponse())
	assert.Equal(t, "500", reqErr.Code())
	assert.Contains(t, err.Error(), "boom")
	assert.NotContains(t, err.Error(), "i_abc", "key must not leak into errors")
}

func TestRevokeAccessKeyConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	nodes := serverstore.NewInMemory()
	nodes.AddNode(nodeFor(t, addr, 1))

	server, err := NewRepository(nodes, WithTimeout(2*time.Second)).SetNode(context.Background(), 1)
	require.NoError(t, err)

	err = server.RevokeAccessKey(context.Background(), "i_abc")
	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.False(t, reqErr.HasResponse())
	assert.Equal(t, CodeConnRefused, reqErr.Code())
	assert.NotContains(t, err.Error(), "i_abc")
}

func TestSetNodeUnknownNode(t *testing.T) {
	_, err := NewRepository(serverstore.NewInMemory()).SetNode(context.Background(), 42)
	require.ErrorIs(t, err, sentinel.ErrNotFound)

	var reqErr *RequestError
	assert.False(t, errors.As(err, &reqErr), "a missing node is not a daemon communication failure")
}

func TestRevokeAccessKeyRequiresKey(t *testing.T) {
	nodes := serverstore.NewInMemory()
	nodes.AddNode(servermodels.Node{ID: 1, FQDN: "localhost", DaemonListen: 1})
	server, err := NewRepository(nodes).SetNode(context.Background(), 1)
	require.NoError(t, err)
	assert.Error(t, server.RevokeAccessKey(context.Background(), ""))
}

func TestWithTimeoutLeavesCallerClient(t *testing.T) {
	nodes := serverstore.NewInMemory()
	shared := &http.Client{Timeout: time.Minute}

	repo := NewRepository(nodes, WithHTTPClient(shared), WithTimeout(time.Second))
	assert.Equal(t, time.Minute, shared.Timeout)
	assert.NotSame(t, shared, repo.http)
	assert.Equal(t, time.Second, repo.http.Timeout)

	repo = NewRepository(nodes, WithTimeout(time.Second), WithHTTPClient(shared))
	assert.Equal(t, time.Minute, shared.Timeout)
	assert.Equal(t, time.Second, repo.http.Timeout)

	repo = NewRepository(nodes, WithHTTPClient(shared))
	assert.Same(t, shared, repo.http)
}
