package core_test

import (
	"potshot/internal/core"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Randomness derivation", func() {
	var (
		futureHash common.Hash
		beacon     common.Hash
		in         core.RollInput
	)

	BeforeEach(func() {
		futureHash = common.HexToHash("0x1111111111111111111111111111111111111111111111111111111111111111")
		beacon = common.HexToHash("0x2222222222222222222222222222222222222222222222222222222222222222")
		in = core.RollInput{
			Secret:       []byte("a well kept secret"),
			Player:       common.HexToAddress("0xa11ce00000000000000000000000000000000001"),
			CommitHeight: 100,
			GlobalShots:  42,
			PlayerShots:  7,
		}
	})

	Describe("CommitmentDigest", func() {
		It("binds the secret to the participant", func() {
			other := common.HexToAddress("0xb0b0000000000000000000000000000000000002")
			Expect(core.CommitmentDigest(in.Secret, in.Player)).NotTo(Equal(core.CommitmentDigest(in.Secret, other)))
		})

		It("is deterministic", func() {
			Expect(core.CommitmentDigest(in.Secret, in.Player)).To(Equal(core.CommitmentDigest(in.Secret, in.Player)))
		})
	})

	Describe("DeriveRoll", func() {
		It("stays within the basis-point scale", func() {
			Expect(core.DeriveRoll(futureHash, beacon, in)).To(BeNumerically("<", core.BasisPoints))
		})

		It("is deterministic for identical inputs", func() {
			Expect(core.DeriveRoll(futureHash, beacon, in)).To(Equal(core.DeriveRoll(futureHash, beacon, in)))
		})

		It("changes with the future block hash", func() {
			otherHash := common.HexToHash("0x3333333333333333333333333333333333333333333333333333333333333333")
			Expect(core.DeriveRoll(futureHash, beacon, in)).NotTo(Equal(core.DeriveRoll(otherHash, beacon, in)))
		})

		It("changes with the global shot counter", func() {
			bumped := in
			bumped.GlobalShots++
			Expect(core.DeriveRoll(futureHash, beacon, in)).NotTo(Equal(core.DeriveRoll(futureHash, beacon, bumped)))
		})

		It("changes with the participant", func() {
			moved := in
			moved.Player = common.HexToAddress("0xb0b0000000000000000000000000000000000002")
			Expect(core.DeriveRoll(futureHash, beacon, in)).NotTo(Equal(core.DeriveRoll(futureHash, beacon, moved)))
		})
	})

	Describe("FallbackRoll", func() {
		It("stays within the basis-point scale", func() {
			proposer := common.HexToAddress("0xfeed000000000000000000000000000000000006")
			Expect(core.FallbackRoll(1700000000, beacon, proposer, in)).To(BeNumerically("<", core.BasisPoints))
		})

		It("differs from the primary derivation", func() {
			proposer := common.HexToAddress("0xfeed000000000000000000000000000000000006")
			Expect(core.FallbackRoll(1700000000, beacon, proposer, in)).NotTo(Equal(core.DeriveRoll(futureHash, beacon, in)))
		})
	})
})
