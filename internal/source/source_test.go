package source

import (
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"
	"time"

	transporthttp "github.com/gabapcia/moneroscan/internal/pkg/transport/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURL(t *testing.T) {
	assert.Equal(t,
		"https://raw.githubusercontent.com/monero-project/monero/master/src/hardforks/hardforks.cpp",
		URL(DefaultBaseURL, "master", HardForksPath),
	)
	assert.Equal(t,
		"http://host/base/release-v0.18/src/p2p/net_node.inl",
		URL("http://host/base/", "/release-v0.18/", "/"+SeedNodesPath),
	)
}

func TestTransportError(t *testing.T) {
	t.Run("with status", func(t *testing.T) {
		err := &TransportError{URL: "http://x", StatusCode: 404, Err: ErrUnexpectedStatus}
		assert.Equal(t, "fetch http://x: status 404: unexpected http status", err.Error())
		assert.ErrorIs(t, err, ErrUnexpectedStatus)
	})

	t.Run("without status", func(t *testing.T) {
		err := &TransportError{URL: "http://x", Err: assert.AnError}
		assert.Equal(t, "fetch http://x: "+assert.AnError.Error(), err.Error())
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestDocument_Lines(t *testing.T) {
	doc := Document{Text: "a\n\n  b  \nc"}
	assert.Equal(t, []string{"a", "", "  b  ", "c"}, slices.Collect(doc.Lines()))
}

func TestFetcher_Fetch(t *testing.T) {
	t.Run("returns the body on 200", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/release-v0.18/src/hardforks/hardforks.cpp", r.URL.Path)
			w.Write([]byte("const hardfork_t mainnet_hard_forks[] = {\n};\n"))
		}))
		defer server.Close()

		f := NewFetcher(transporthttp.NewClient(), server.URL)

		doc, err := f.Fetch(t.Context(), "release-v0.18", HardForksPath)
		require.NoError(t, err)
		assert.Equal(t, "release-v0.18", doc.Origin)
		assert.Equal(t, server.URL+"/release-v0.18/src/hardforks/hardforks.cpp", doc.URL)
		assert.Equal(t, "const hardfork_t mainnet_hard_forks[] = {\n};\n", doc.Text)
	})

	t.Run("non-200 status is a transport error", func(t *testing.T) {
		for _, status := range []int{http.StatusNotFound, http.StatusInternalServerError} {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(status)
				w.Write([]byte("404: Not Found"))
			}))

			f := NewFetcher(transporthttp.NewClient(), server.URL)

			doc, err := f.Fetch(t.Context(), "no-such-branch", HardForksPath)
			server.Close()

			var transportErr *TransportError
			require.ErrorAs(t, err, &transportErr)
			assert.Equal(t, status, transportErr.StatusCode)
			assert.ErrorIs(t, err, ErrUnexpectedStatus)
			assert.Empty(t, doc.Text, "no partial output on failure")
		}
	})

	t.Run("connection failure is a transport error", func(t *testing.T) {
		server := httptest.NewServer(nil)
		server.Close()

		f := NewFetcher(transporthttp.NewClient(transporthttp.WithTimeout(time.Second)), server.URL)

		_, err := f.Fetch(t.Context(), "master", SeedNodesPath)

		var transportErr *TransportError
		require.ErrorAs(t, err, &transportErr)
		assert.Zero(t, transportErr.StatusCode)
	})

	t.Run("timeout is a transport error", func(t *testing.T) {
		release := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		}))
		defer server.Close()
		defer close(release)

		f := NewFetcher(transporthttp.NewClient(transporthttp.WithTimeout(50*time.Millisecond)), server.URL)

		_, err := f.Fetch(t.Context(), "master", SeedNodesPath)

		var transportErr *TransportError
		assert.ErrorAs(t, err, &transportErr)
	})

	t.Run("empty base url falls back to the default", func(t *testing.T) {
		f := NewFetcher(transporthttp.NewClient(), "")
		assert.Equal(t, DefaultBaseURL, f.baseURL)
	})
}
