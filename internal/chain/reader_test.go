package chain_test

import (
	"context"
	"errors"
	"math/big"

	"potshot/internal/chain"
	"potshot/internal/chain/fake"
	"potshot/internal/core"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Reader", func() {
	var (
		reader     *chain.Reader
		fakeClient *fake.EthClient
		ctx        context.Context
		fakeErr    error
		header     *types.Header
	)

	BeforeEach(func() {
		fakeClient = new(fake.EthClient)
		ctx = context.Background()
		fakeErr = errors.New("fake error")
		reader = chain.NewReader(fakeClient)

		header = &types.Header{
			Number:    big.NewInt(1234),
			Time:      1700000000,
			Coinbase:  common.HexToAddress("0xfeed000000000000000000000000000000000006"),
			MixDigest: common.HexToHash("0x2222222222222222222222222222222222222222222222222222222222222222"),
		}
	})

	Describe("Head", func() {
		When("the node responds", func() {
			BeforeEach(func() {
				fakeClient.HeaderByNumberReturns(header, nil)
			})

			It("maps the header onto the chain head view", func() {
				head, err := reader.Head(ctx)
				Expect(err).NotTo(HaveOccurred())

				Expect(head.Height).To(Equal(uint64(1234)))
				Expect(head.Hash).To(Equal(header.Hash()))
				Expect(head.Beacon).To(Equal(header.MixDigest))
				Expect(head.Proposer).To(Equal(header.Coinbase))
				Expect(head.Time).To(Equal(uint64(1700000000)))

				_, number := fakeClient.HeaderByNumberArgsForCall(0)
				Expect(number).To(BeNil())
			})
		})

		When("the node fails", func() {
			BeforeEach(func() {
				fakeClient.HeaderByNumberReturns(nil, fakeErr)
			})

			It("wraps the error", func() {
				_, err := reader.Head(ctx)
				Expect(err).To(MatchError(ContainSubstring("fake error")))
			})
		})
	})

	Describe("BlockHash", func() {
		It("requests the exact height", func() {
			fakeClient.HeaderByNumberReturns(header, nil)

			hash, err := reader.BlockHash(ctx, 1234)
			Expect(err).NotTo(HaveOccurred())
			Expect(hash).To(Equal(header.Hash()))

			_, number := fakeClient.HeaderByNumberArgsForCall(0)
			Expect(number.Uint64()).To(Equal(uint64(1234)))
		})
	})
})

var _ = Describe("Entropy", func() {
	var (
		entropy    *chain.Entropy
		fakeClient *fake.EthClient
		ctx        context.Context
		in         core.RollInput
		head       *types.Header
		future     *types.Header
	)

	BeforeEach(func() {
		fakeClient = new(fake.EthClient)
		ctx = context.Background()
		entropy = chain.NewEntropy(zap.NewNop().Sugar(), chain.NewReader(fakeClient))

		head = &types.Header{
			Number:    big.NewInt(105),
			Time:      1700000000,
			Coinbase:  common.HexToAddress("0xfeed000000000000000000000000000000000006"),
			MixDigest: common.HexToHash("0x2222222222222222222222222222222222222222222222222222222222222222"),
		}
		future = &types.Header{
			Number: big.NewInt(101),
			Time:   1699999950,
		}

		in = core.RollInput{
			Secret:       []byte("a well kept secret"),
			Player:       common.HexToAddress("0xa11ce00000000000000000000000000000000001"),
			CommitHeight: 100,
			GlobalShots:  42,
			PlayerShots:  7,
		}
	})

	When("the future block hash is available", func() {
		BeforeEach(func() {
			fakeClient.HeaderByNumberReturnsOnCall(0, head, nil)
			fakeClient.HeaderByNumberReturnsOnCall(1, future, nil)
		})

		It("uses the primary derivation against the block after the commit", func() {
			roll, err := entropy.Roll(ctx, in)
			Expect(err).NotTo(HaveOccurred())
			Expect(roll).To(Equal(core.DeriveRoll(future.Hash(), head.MixDigest, in)))

			_, number := fakeClient.HeaderByNumberArgsForCall(1)
			Expect(number.Uint64()).To(Equal(uint64(101)))
		})
	})

	When("the future block hash lookup fails", func() {
		BeforeEach(func() {
			fakeClient.HeaderByNumberReturnsOnCall(0, head, nil)
			fakeClient.HeaderByNumberReturnsOnCall(1, nil, errors.New("pruned"))
		})

		It("falls back to the head-derived mix", func() {
			roll, err := entropy.Roll(ctx, in)
			Expect(err).NotTo(HaveOccurred())
			Expect(roll).To(Equal(core.FallbackRoll(head.Time, head.MixDigest, head.Coinbase, in)))
		})
	})

	When("the head itself is unreachable", func() {
		BeforeEach(func() {
			fakeClient.HeaderByNumberReturns(nil, errors.New("no node"))
		})

		It("fails so the reveal can be retried", func() {
			_, err := entropy.Roll(ctx, in)
			Expect(err).To(HaveOccurred())
		})
	})
})
