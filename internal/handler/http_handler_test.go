package handler_test

import (
	"context"
	"encoding/json"
	stdErr "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"backoff_retrier/internal/domain"
	apierr "backoff_retrier/internal/errors"
	"backoff_retrier/internal/handler"
	"backoff_retrier/internal/usecase"
)

type stubClient struct {
	head    uint64
	headErr error
	err     error
}

func (c *stubClient) HeadNumber(ctx context.Context) (uint64, error) {
	return c.head, c.headErr
}

func (c *stubClient) HeaderByNumber(ctx context.Context, number uint64) (domain.BlockHeader, error) {
	if c.err != nil {
		return domain.BlockHeader{}, c.err
	}
	return domain.BlockHeader{Number: number, Hash: "0xabc"}, nil
}

type dummyCache struct{}

func (c *dummyCache) Get(number uint64) (domain.BlockHeader, bool) { return domain.BlockHeader{}, false }
func (c *dummyCache) Add(number uint64, h domain.BlockHeader)       {}

func newRouter(client *stubClient) chi.Router {
	h := handler.NewHandler(usecase.NewHeaderUseCase(client, &dummyCache{}))
	r := chi.NewRouter()
	h.Register(r)
	return r
}

func TestHTTPHandler(t *testing.T) {
	zap.ReplaceGlobals(zap.NewNop())

	r := newRouter(&stubClient{head: 100})

	rec1 := httptest.NewRecorder()
	r.ServeHTTP(rec1, httptest.NewRequest(http.MethodGet, "/headers/1", nil))
	require.Equal(t, http.StatusOK, rec1.Code)

	var h domain.BlockHeader
	require.NoError(t, json.NewDecoder(rec1.Body).Decode(&h))
	assert.Equal(t, uint64(1), h.Number)
	assert.Equal(t, "0xabc", h.Hash)

	rec2 := httptest.NewRecorder()
	r.ServeHTTP(rec2, httptest.NewRequest(http.MethodGet, "/head", nil))
	require.Equal(t, http.StatusOK, rec2.Code)

	var head domain.Head
	require.NoError(t, json.NewDecoder(rec2.Body).Decode(&head))
	assert.Equal(t, uint64(100), head.Number)
}

func TestHTTPHandler_Errors(t *testing.T) {
	zap.ReplaceGlobals(zap.NewNop())

	tests := []struct {
		name       string
		client     *stubClient
		path       string
		wantStatus int
		wantMsg    string
	}{
		{"invalid number", &stubClient{head: 100}, "/headers/abc", http.StatusBadRequest, "invalid block number"},
		{"future block", &stubClient{head: 100}, "/headers/101", http.StatusBadRequest, "block in future"},
		{"not found", &stubClient{head: 100, err: apierr.ErrBlockNotFound}, "/headers/5", http.StatusNotFound, "block not found"},
		{"wrapped upstream", &stubClient{head: 100, err: wrap(apierr.ErrUpstreamUnavailable)}, "/headers/5", http.StatusBadGateway, "execution node unavailable"},
		{"unknown error", &stubClient{headErr: stdErr.New("boom")}, "/head", http.StatusInternalServerError, "internal error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			newRouter(tt.client).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body struct {
				Error string `json:"error"`
			}
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, tt.wantMsg, body.Error)
		})
	}
}

func wrap(err error) error {
	return &wrapped{err: err}
}

type wrapped struct{ err error }

func (w *wrapped) Error() string { return "rpc: " + w.err.Error() }
func (w *wrapped) Unwrap() error { return w.err }
