package chain

import (
	"context"
	"fmt"

	"potshot/internal/core"

	"go.uber.org/zap"
)

// Entropy is the production randomness source: the hash of the block mined
// right after the commitment, folded with the current head's beacon value.
// When that block hash can no longer be retrieved, at the very edge of the
// reveal window, it falls back to the weaker head-derived mix.
type Entropy struct {
	logs   *zap.SugaredLogger
	reader *Reader
}

func NewEntropy(logger *zap.SugaredLogger, reader *Reader) *Entropy {
	return &Entropy{
		logs:   logger,
		reader: reader,
	}
}

func (e *Entropy) Roll(ctx context.Context, in core.RollInput) (uint64, error) {
	head, err := e.reader.Head(ctx)
	if err != nil {
		return 0, fmt.Errorf("read head for entropy: %w", err)
	}

	future, err := e.reader.BlockHash(ctx, in.CommitHeight+1)
	if err != nil {
		e.logs.Infow("future block hash unavailable, using fallback entropy",
			"error", err,
			"commit_height", in.CommitHeight,
			"head_height", head.Height)
		return core.FallbackRoll(head.Time, head.Beacon, head.Proposer, in), nil
	}

	return core.DeriveRoll(future, head.Beacon, in), nil
}
