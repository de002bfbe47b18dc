package chain

import (
	"context"
	"fmt"
	"math/big"

	"potshot/internal/core"

	"github.com/ethereum/go-ethereum/common"
)

// Reader exposes the chain head and historic block hashes to the engine.
type Reader struct {
	client EthClient
}

func NewReader(client EthClient) *Reader {
	return &Reader{
		client: client,
	}
}

func (r *Reader) Head(ctx context.Context) (core.ChainHead, error) {
	header, err := r.client.HeaderByNumber(ctx, nil)
	if err != nil {
		return core.ChainHead{}, fmt.Errorf("fetch head header: %w", err)
	}

	return core.ChainHead{
		Height: header.Number.Uint64(),
		Hash:   header.Hash(),
		// MixDigest carries the prevRandao beacon value post-merge.
		Beacon:   header.MixDigest,
		Proposer: header.Coinbase,
		Time:     header.Time,
	}, nil
}

// BlockHash returns the hash of the block at height. Nodes only serve a
// bounded range of historic headers; past that the lookup fails.
func (r *Reader) BlockHash(ctx context.Context, height uint64) (common.Hash, error) {
	header, err := r.client.HeaderByNumber(ctx, new(big.Int).SetUint64(height))
	if err != nil {
		return common.Hash{}, fmt.Errorf("fetch header %d: %w", height, err)
	}
	return header.Hash(), nil
}
