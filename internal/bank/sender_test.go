package bank_test

import (
	"context"
	"errors"
	"math/big"

	"potshot/internal/bank"
	"potshot/internal/bank/fake"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Sender", func() {
	var (
		sender     *bank.Sender
		fakeClient *fake.TxClient
		ctx        context.Context
		fakeErr    error
		hexKey     string
		winner     common.Address
	)

	BeforeEach(func() {
		fakeClient = new(fake.TxClient)
		ctx = context.Background()
		fakeErr = errors.New("fake error")
		winner = common.HexToAddress("0xb0b0000000000000000000000000000000000002")

		key, err := crypto.GenerateKey()
		Expect(err).NotTo(HaveOccurred())
		hexKey = common.Bytes2Hex(crypto.FromECDSA(key))

		sender, err = bank.NewSender(zap.NewNop().Sugar(), fakeClient, hexKey, big.NewInt(5))
		Expect(err).NotTo(HaveOccurred())

		fakeClient.PendingNonceAtReturns(9, nil)
		fakeClient.SuggestGasPriceReturns(big.NewInt(1000000000), nil)
	})

	Describe("NewSender", func() {
		It("rejects a malformed key", func() {
			_, err := bank.NewSender(zap.NewNop().Sugar(), fakeClient, "not-a-key", big.NewInt(5))
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Send", func() {
		It("submits a signed plain transfer with the owed amount", func() {
			err := sender.Send(ctx, winner, uint256.NewInt(7))
			Expect(err).NotTo(HaveOccurred())

			Expect(fakeClient.SendTransactionCallCount()).To(Equal(1))
			_, tx := fakeClient.SendTransactionArgsForCall(0)
			Expect(tx.To()).NotTo(BeNil())
			Expect(*tx.To()).To(Equal(winner))
			Expect(tx.Value().Uint64()).To(Equal(uint64(7)))
			Expect(tx.Nonce()).To(Equal(uint64(9)))
			Expect(tx.Gas()).To(Equal(uint64(21000)))
		})

		It("fails when the nonce lookup fails", func() {
			fakeClient.PendingNonceAtReturns(0, fakeErr)
			err := sender.Send(ctx, winner, uint256.NewInt(7))
			Expect(err).To(MatchError(ContainSubstring("fake error")))
			Expect(fakeClient.SendTransactionCallCount()).To(Equal(0))
		})

		It("fails when the node rejects the transaction", func() {
			fakeClient.SendTransactionReturns(fakeErr)
			err := sender.Send(ctx, winner, uint256.NewInt(7))
			Expect(err).To(MatchError(ContainSubstring("fake error")))
		})
	})
})
