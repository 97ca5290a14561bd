package monero

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/gabapcia/moneroscan/internal/infra/blockchain/monero"

var (
	// ErrNoResult is returned when the daemon answers without a result object.
	ErrNoResult = errors.New("daemon returned no result")

	// ErrNoTimestamp is returned when the block header carries no timestamp.
	ErrNoTimestamp = errors.New("block header has no timestamp")
)

type (
	// heightParams are the params of get_block_header_by_height.
	heightParams struct {
		Height uint64 `json:"height"`
	}

	// BlockHeaderResponse is the subset of a monerod block header used here.
	BlockHeaderResponse struct {
		Hash      string `json:"hash"`
		Height    uint64 `json:"height"`
		Timestamp *int64 `json:"timestamp"`
	}

	// blockHeaderResult is the result object of get_block_header_by_height.
	blockHeaderResult struct {
		BlockHeader *BlockHeaderResponse `json:"block_header"`
		Status      string               `json:"status"`
	}
)

// getBlockHeaderByHeight fetches the header of the block at height.
func (c *client) getBlockHeaderByHeight(ctx context.Context, height uint64) (BlockHeaderResponse, error) {
	data, err := c.conn.Call(ctx, "get_block_header_by_height", heightParams{Height: height})
	if err != nil {
		return BlockHeaderResponse{}, err
	}

	if len(data) == 0 || string(data) == "null" {
		return BlockHeaderResponse{}, ErrNoResult
	}

	var result blockHeaderResult
	if err := json.Unmarshal(data, &result); err != nil {
		return BlockHeaderResponse{}, err
	}

	if result.BlockHeader == nil {
		return BlockHeaderResponse{}, ErrNoResult
	}

	return *result.BlockHeader, nil
}

// BlockTimestamp implements hardfork.BlockHeaderSource using
// get_block_header_by_height.
func (c *client) BlockTimestamp(ctx context.Context, height uint64) (int64, error) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "monero.BlockTimestamp",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.Int64("monero.block.height", int64(height))),
	)
	defer span.End()

	header, err := c.getBlockHeaderByHeight(ctx, height)
	if err == nil && header.Timestamp == nil {
		err = ErrNoTimestamp
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "block header lookup failed")
		return 0, fmt.Errorf("block header at height %d: %w", height, err)
	}

	return *header.Timestamp, nil
}
