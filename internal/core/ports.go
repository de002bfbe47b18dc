package core

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name ChainReader . ChainReader
type ChainReader interface {
	Head(ctx context.Context) (ChainHead, error)
}

//counterfeiter:generate -o fake -fake-name EntropySource . EntropySource
type EntropySource interface {
	// Roll returns a value in [0, BasisPoints) derived from the draw input.
	Roll(ctx context.Context, in RollInput) (uint64, error)
}

//counterfeiter:generate -o fake -fake-name PayoutSender . PayoutSender
type PayoutSender interface {
	Send(ctx context.Context, to common.Address, amount *uint256.Int) error
}

//counterfeiter:generate -o fake -fake-name EventSink . EventSink
type EventSink interface {
	Publish(event Event)
}
