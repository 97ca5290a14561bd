// Package source downloads raw source files of the Monero project for a
// given branch. A fetch is a single bounded GET; any failure is reported
// as a *TransportError and the caller is expected to abort.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"net/http"
	"strings"

	"github.com/hashicorp/go-retryablehttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// DefaultBaseURL serves raw files of the monero repository, one directory
// per branch or tag.
const DefaultBaseURL = "https://raw.githubusercontent.com/monero-project/monero"

// Paths of the files the pipelines read, relative to the repository root.
const (
	HardForksPath = "src/hardforks/hardforks.cpp"
	SeedNodesPath = "src/p2p/net_node.inl"
)

// maxDocumentSize bounds how much of a response body is read.
const maxDocumentSize = 16 << 20

const instrumentationName = "github.com/gabapcia/moneroscan/internal/source"

// ErrUnexpectedStatus is the cause of a TransportError for non-200 responses.
var ErrUnexpectedStatus = errors.New("unexpected http status")

// TransportError describes a failed fetch: connection, DNS, timeout or a
// non-200 status. StatusCode is 0 when no response was received.
type TransportError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: status %d: %v", e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Document is the text of one fetched file. Origin is the branch it was
// read from.
type Document struct {
	Origin string
	URL    string
	Text   string
}

// Lines iterates the document line by line, without line terminators.
func (d Document) Lines() iter.Seq[string] {
	return strings.SplitSeq(d.Text, "\n")
}

// Fetcher retrieves source documents.
type Fetcher interface {
	// Fetch downloads path from branch.
	Fetch(ctx context.Context, branch, path string) (Document, error)
}

type fetcher struct {
	baseURL    string
	httpClient *retryablehttp.Client
	fetches    metric.Int64Counter
}

// Compile-time assertion that fetcher implements the Fetcher interface.
var _ Fetcher = (*fetcher)(nil)

// URL joins baseURL, branch and path into the address of a raw file.
func URL(baseURL, branch, path string) string {
	return strings.TrimRight(baseURL, "/") + "/" + strings.Trim(branch, "/") + "/" + strings.TrimLeft(path, "/")
}

// Fetch implements Fetcher.
func (f *fetcher) Fetch(ctx context.Context, branch, path string) (Document, error) {
	url := URL(f.baseURL, branch, path)

	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "source.Fetch",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("url.full", url), attribute.String("vcs.ref", branch)),
	)
	defer span.End()

	doc, err := f.get(ctx, url)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "fetch failed")
		f.fetches.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", "error")))
		return Document{}, err
	}

	doc.Origin = branch
	f.fetches.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", "ok")))
	return doc, nil
}

func (f *fetcher) get(ctx context.Context, url string) (Document, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Document{}, &TransportError{URL: url, Err: err}
	}

	res, err := f.httpClient.Do(req)
	if err != nil {
		return Document{}, &TransportError{URL: url, Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(res.Body, maxDocumentSize))
		return Document{}, &TransportError{URL: url, StatusCode: res.StatusCode, Err: ErrUnexpectedStatus}
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, maxDocumentSize))
	if err != nil {
		return Document{}, &TransportError{URL: url, StatusCode: res.StatusCode, Err: err}
	}

	return Document{URL: url, Text: string(body)}, nil
}

// NewFetcher returns a Fetcher reading files below baseURL with httpClient.
// The client's timeout bounds each fetch. An empty baseURL selects
// DefaultBaseURL.
func NewFetcher(httpClient *retryablehttp.Client, baseURL string) *fetcher {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	// The global meter is a no-op unless telemetry was initialized, and
	// instrument creation never fails on it.
	fetches, _ := otel.Meter(instrumentationName).Int64Counter(
		"moneroscan.source.fetches",
		metric.WithDescription("Number of source documents fetched, by outcome."),
	)

	return &fetcher{
		baseURL:    baseURL,
		httpClient: httpClient,
		fetches:    fetches,
	}
}
