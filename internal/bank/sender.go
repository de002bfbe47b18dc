package bank

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
	"go.uber.org/zap"
)

// payoutGasLimit is a plain-transfer stipend. Recipients that need more gas
// to accept funds fail the push payment and fall back to the pull claim.
const payoutGasLimit = 21000

// Sender pushes payouts as signed plain transfers from the operator wallet.
type Sender struct {
	logs    *zap.SugaredLogger
	client  TxClient
	key     *ecdsa.PrivateKey
	from    common.Address
	chainID *big.Int
}

func NewSender(logger *zap.SugaredLogger, client TxClient, hexKey string, chainID *big.Int) (*Sender, error) {
	key, err := crypto.HexToECDSA(hexKey)
	if err != nil {
		return nil, fmt.Errorf("parse payout key: %w", err)
	}

	return &Sender{
		logs:    logger,
		client:  client,
		key:     key,
		from:    crypto.PubkeyToAddress(key.PublicKey),
		chainID: chainID,
	}, nil
}

func (s *Sender) Send(ctx context.Context, to common.Address, amount *uint256.Int) error {
	nonce, err := s.client.PendingNonceAt(ctx, s.from)
	if err != nil {
		return fmt.Errorf("fetch nonce: %w", err)
	}

	gasPrice, err := s.client.SuggestGasPrice(ctx)
	if err != nil {
		return fmt.Errorf("suggest gas price: %w", err)
	}

	tx := types.NewTransaction(nonce, to, amount.ToBig(), payoutGasLimit, gasPrice, nil)
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(s.chainID), s.key)
	if err != nil {
		return fmt.Errorf("sign payout tx: %w", err)
	}

	if err := s.client.SendTransaction(ctx, signed); err != nil {
		return fmt.Errorf("send payout tx: %w", err)
	}

	s.logs.Infow("payout sent",
		"to", to.Hex(),
		"amount", amount,
		"nonce", nonce,
		"tx", signed.Hash().Hex())
	return nil
}
