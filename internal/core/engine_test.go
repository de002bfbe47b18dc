package core_test

import (
	"context"
	"errors"
	"time"

	"potshot/internal/core"
	"potshot/internal/core/fake"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Engine", func() {
	var (
		engine      *core.Engine
		rules       core.Rules
		fakeChain   *fake.ChainReader
		fakeEntropy *fake.EntropySource
		fakeSender  *fake.PayoutSender
		fakeEvents  *fake.EventSink
		ctx         context.Context
		now         time.Time
		fakeErr     error

		alice = common.HexToAddress("0xa11ce00000000000000000000000000000000001")
		bob   = common.HexToAddress("0xb0b0000000000000000000000000000000000002")
		carol = common.HexToAddress("0xca201000000000000000000000000000000003")
		house = common.HexToAddress("0x0000000000000000000000000000000000000bee")
		admin = common.HexToAddress("0x0000000000000000000000000000000000000add")
	)

	secretFor := func(player common.Address) []byte {
		return append([]byte("secret-"), player.Bytes()...)
	}

	digestFor := func(player common.Address) common.Hash {
		return core.CommitmentDigest(secretFor(player), player)
	}

	BeforeEach(func() {
		ctx = context.Background()
		fakeChain = new(fake.ChainReader)
		fakeEntropy = new(fake.EntropySource)
		fakeSender = new(fake.PayoutSender)
		fakeEvents = new(fake.EventSink)
		fakeErr = errors.New("fake error")

		now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		core.TimeNow = func() time.Time { return now }

		rules = core.Rules{
			StakeWei:      uint256.NewInt(5),
			FirstStakeWei: uint256.NewInt(5),
			SponsorFeeWei: uint256.NewInt(2),
			MinPotWei:     uint256.NewInt(10),
			Cooldown:      time.Minute,
			WinShareBP:    7000,
			HouseShareBP:  3000,
			WinChanceBP:   2500,
			MaxWinners:    3,
			HouseAddr:     house,
			AdminAddr:     admin,
		}

		fakeChain.HeadReturns(core.ChainHead{Height: 100}, nil)
		// Losing roll unless a test forces a win.
		fakeEntropy.RollReturns(9999, nil)
	})

	AfterEach(func() {
		core.TimeNow = time.Now
	})

	JustBeforeEach(func() {
		var err error
		engine, err = core.NewEngine(zap.NewNop().Sugar(), rules, fakeChain, fakeEntropy, fakeSender, fakeEvents)
		Expect(err).NotTo(HaveOccurred())
	})

	// commitAt escrows the exact stake for player against the head at height.
	commitAt := func(player common.Address, height uint64) {
		fakeChain.HeadReturns(core.ChainHead{Height: height}, nil)
		ExpectWithOffset(1, engine.Commit(ctx, player, digestFor(player), new(uint256.Int).Set(rules.StakeWei))).To(Succeed())
	}

	Describe("NewEngine", func() {
		It("rejects shares that do not sum to 10000 basis points", func() {
			rules.HouseShareBP = 2999
			_, err := core.NewEngine(zap.NewNop().Sugar(), rules, fakeChain, fakeEntropy, fakeSender, fakeEvents)
			Expect(err).To(MatchError(core.ErrSharesNotWhole))
		})

		It("rejects a zero stake", func() {
			rules.StakeWei = uint256.NewInt(0)
			_, err := core.NewEngine(zap.NewNop().Sugar(), rules, fakeChain, fakeEntropy, fakeSender, fakeEvents)
			Expect(err).To(HaveOccurred())
		})

		It("rejects a cooldown above the maximum", func() {
			rules.Cooldown = 25 * time.Hour
			_, err := core.NewEngine(zap.NewNop().Sugar(), rules, fakeChain, fakeEntropy, fakeSender, fakeEvents)
			Expect(err).To(HaveOccurred())
		})

		It("rejects a win chance above the basis-point scale", func() {
			rules.WinChanceBP = 10001
			_, err := core.NewEngine(zap.NewNop().Sugar(), rules, fakeChain, fakeEntropy, fakeSender, fakeEvents)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Commit", func() {
		It("credits the full stake to the pot and updates player stats", func() {
			Expect(engine.Commit(ctx, alice, digestFor(alice), uint256.NewInt(5))).To(Succeed())

			Expect(engine.PotSize().Uint64()).To(Equal(uint64(5)))

			stats, ok := engine.PlayerStats(alice)
			Expect(ok).To(BeTrue())
			Expect(stats.Shots).To(Equal(uint64(1)))
			Expect(stats.TotalSpent.Uint64()).To(Equal(uint64(5)))
			Expect(stats.LastCommitAt).To(Equal(now))

			pending, ok := engine.PendingCommitmentOf(alice)
			Expect(ok).To(BeTrue())
			Expect(pending.Digest).To(Equal(digestFor(alice)))
			Expect(pending.Height).To(Equal(uint64(100)))
			Expect(pending.Amount.Uint64()).To(Equal(uint64(5)))

			Expect(fakeEvents.PublishCallCount()).To(Equal(1))
			Expect(fakeEvents.PublishArgsForCall(0).Type).To(Equal(core.EventCommitAccepted))
		})

		It("rejects a zero commitment digest", func() {
			err := engine.Commit(ctx, alice, common.Hash{}, uint256.NewInt(5))
			Expect(err).To(MatchError(core.ErrZeroCommitment))
			Expect(engine.PotSize().IsZero()).To(BeTrue())
		})

		It("rejects payment that is not exactly the stake", func() {
			Expect(engine.Commit(ctx, alice, digestFor(alice), uint256.NewInt(6))).To(MatchError(core.ErrWrongStake))
			Expect(engine.Commit(ctx, alice, digestFor(alice), uint256.NewInt(4))).To(MatchError(core.ErrWrongStake))
			Expect(engine.PotSize().IsZero()).To(BeTrue())
		})

		It("rejects a second commit before the cooldown elapses", func() {
			commitAt(alice, 100)

			now = now.Add(30 * time.Second)
			err := engine.Commit(ctx, alice, digestFor(alice), uint256.NewInt(5))
			Expect(err).To(MatchError(core.ErrCooldownActive))
			Expect(engine.CooldownRemaining(alice)).To(Equal(30 * time.Second))
		})

		It("rejects while a live commitment is pending even after the cooldown", func() {
			commitAt(alice, 100)

			now = now.Add(2 * time.Minute)
			fakeChain.HeadReturns(core.ChainHead{Height: 150}, nil)
			err := engine.Commit(ctx, alice, digestFor(alice), uint256.NewInt(5))
			Expect(err).To(MatchError(core.ErrCommitPending))
		})

		It("forfeits a stale commitment into the pot and accepts the new commit", func() {
			commitAt(alice, 100)
			Expect(engine.PotSize().Uint64()).To(Equal(uint64(5)))

			now = now.Add(2 * time.Minute)
			fakeChain.HeadReturns(core.ChainHead{Height: 357}, nil)
			Expect(engine.Commit(ctx, alice, digestFor(alice), uint256.NewInt(5))).To(Succeed())

			// Old stake stays in the pot, nothing refunded.
			Expect(engine.PotSize().Uint64()).To(Equal(uint64(10)))

			pending, ok := engine.PendingCommitmentOf(alice)
			Expect(ok).To(BeTrue())
			Expect(pending.Height).To(Equal(uint64(357)))

			var types []core.EventType
			for i := 0; i < fakeEvents.PublishCallCount(); i++ {
				types = append(types, fakeEvents.PublishArgsForCall(i).Type)
			}
			Expect(types).To(ContainElement(core.EventCommitExpired))
		})

		It("rejects while paused", func() {
			Expect(engine.Pause(admin)).To(Succeed())
			err := engine.Commit(ctx, alice, digestFor(alice), uint256.NewInt(5))
			Expect(err).To(MatchError(core.ErrPaused))
		})
	})

	Describe("CommitFirst", func() {
		It("accepts an overpayment and credits the full amount", func() {
			Expect(engine.CommitFirst(ctx, alice, digestFor(alice), uint256.NewInt(12))).To(Succeed())
			Expect(engine.PotSize().Uint64()).To(Equal(uint64(12)))

			stats, _ := engine.PlayerStats(alice)
			Expect(stats.TotalSpent.Uint64()).To(Equal(uint64(12)))
		})

		It("rejects when the pot is not empty", func() {
			commitAt(alice, 100)
			err := engine.CommitFirst(ctx, bob, digestFor(bob), uint256.NewInt(12))
			Expect(err).To(MatchError(core.ErrPotNotEmpty))
		})

		It("rejects payment below the first-stake minimum", func() {
			err := engine.CommitFirst(ctx, alice, digestFor(alice), uint256.NewInt(4))
			Expect(err).To(MatchError(core.ErrStakeTooLow))
		})
	})

	Describe("Reveal", func() {
		BeforeEach(func() {
			fakeChain.HeadReturns(core.ChainHead{Height: 100}, nil)
		})

		It("rejects when there is no pending commitment", func() {
			_, err := engine.Reveal(ctx, alice, secretFor(alice))
			Expect(err).To(MatchError(core.ErrNoCommitment))
		})

		It("rejects an empty secret", func() {
			commitAt(alice, 100)
			_, err := engine.Reveal(ctx, alice, nil)
			Expect(err).To(MatchError(core.ErrEmptySecret))
		})

		It("rejects before the minimum reveal delay has passed", func() {
			commitAt(alice, 100)
			fakeChain.HeadReturns(core.ChainHead{Height: 101}, nil)
			_, err := engine.Reveal(ctx, alice, secretFor(alice))
			Expect(err).To(MatchError(core.ErrRevealTooEarly))
		})

		It("rejects after the reveal window has closed", func() {
			commitAt(alice, 100)
			fakeChain.HeadReturns(core.ChainHead{Height: 357}, nil)
			_, err := engine.Reveal(ctx, alice, secretFor(alice))
			Expect(err).To(MatchError(core.ErrRevealTooLate))
		})

		It("rejects while the pot is below the resolution minimum, retryable later", func() {
			commitAt(alice, 100)
			fakeChain.HeadReturns(core.ChainHead{Height: 102}, nil)
			_, err := engine.Reveal(ctx, alice, secretFor(alice))
			Expect(err).To(MatchError(core.ErrPotBelowMinimum))

			// The commitment is untouched and resolves once the pot fills up.
			now = now.Add(2 * time.Minute)
			commitAt(bob, 102)
			fakeChain.HeadReturns(core.ChainHead{Height: 104}, nil)
			_, err = engine.Reveal(ctx, alice, secretFor(alice))
			Expect(err).NotTo(HaveOccurred())
		})

		It("rejects a secret whose digest does not match and leaves state unchanged", func() {
			commitAt(alice, 100)
			now = now.Add(2 * time.Minute)
			commitAt(bob, 100)
			fakeChain.HeadReturns(core.ChainHead{Height: 102}, nil)

			_, err := engine.Reveal(ctx, alice, []byte("wrong secret"))
			Expect(err).To(MatchError(core.ErrCommitMismatch))

			_, ok := engine.PendingCommitmentOf(alice)
			Expect(ok).To(BeTrue())
			Expect(engine.PotSize().Uint64()).To(Equal(uint64(10)))

			// Retry with the right secret succeeds.
			_, err = engine.Reveal(ctx, alice, secretFor(alice))
			Expect(err).NotTo(HaveOccurred())
		})

		It("rejects a secret committed by another participant", func() {
			commitAt(alice, 100)
			now = now.Add(2 * time.Minute)
			commitAt(bob, 100)
			fakeChain.HeadReturns(core.ChainHead{Height: 102}, nil)

			// Bob overheard Alice's secret; his digest binds his own address.
			_, err := engine.Reveal(ctx, bob, secretFor(alice))
			Expect(err).To(MatchError(core.ErrCommitMismatch))
		})

		It("never invokes the entropy source for a pot-seeding commit", func() {
			rules.MinPotWei = uint256.NewInt(5)
			var err error
			engine, err = core.NewEngine(zap.NewNop().Sugar(), rules, fakeChain, fakeEntropy, fakeSender, fakeEvents)
			Expect(err).NotTo(HaveOccurred())

			commitAt(alice, 100)
			fakeChain.HeadReturns(core.ChainHead{Height: 102}, nil)
			fakeEntropy.RollReturns(0, nil)

			res, revealErr := engine.Reveal(ctx, alice, secretFor(alice))
			Expect(revealErr).NotTo(HaveOccurred())
			Expect(res.Win).To(BeFalse())
			Expect(fakeEntropy.RollCallCount()).To(Equal(0))
			Expect(engine.PotSize().Uint64()).To(Equal(uint64(5)))
		})

		It("leaves state untouched when the entropy source fails", func() {
			commitAt(alice, 100)
			now = now.Add(2 * time.Minute)
			commitAt(bob, 100)
			fakeChain.HeadReturns(core.ChainHead{Height: 102}, nil)
			fakeEntropy.RollReturns(0, fakeErr)

			_, err := engine.Reveal(ctx, bob, secretFor(bob))
			Expect(err).To(MatchError(ContainSubstring("fake error")))

			_, ok := engine.PendingCommitmentOf(bob)
			Expect(ok).To(BeTrue())
			Expect(engine.PotSize().Uint64()).To(Equal(uint64(10)))
		})

		It("resolves a loss, clearing only the commitment", func() {
			commitAt(alice, 100)
			now = now.Add(2 * time.Minute)
			commitAt(bob, 100)
			fakeChain.HeadReturns(core.ChainHead{Height: 102}, nil)
			fakeEntropy.RollReturns(2500, nil) // threshold itself loses

			res, err := engine.Reveal(ctx, bob, secretFor(bob))
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Win).To(BeFalse())

			_, ok := engine.PendingCommitmentOf(bob)
			Expect(ok).To(BeFalse())
			Expect(engine.PotSize().Uint64()).To(Equal(uint64(10)))
			Expect(fakeSender.SendCallCount()).To(Equal(0))
		})

		Context("winning", func() {
			JustBeforeEach(func() {
				commitAt(alice, 100)
				now = now.Add(2 * time.Minute)
				commitAt(bob, 100)
				fakeChain.HeadReturns(core.ChainHead{Height: 102}, nil)
				fakeEntropy.RollReturns(2499, nil) // strictly below 2500 wins
			})

			It("splits the pot exactly, resets it, and pays the winner", func() {
				res, err := engine.Reveal(ctx, bob, secretFor(bob))
				Expect(err).NotTo(HaveOccurred())
				Expect(res.Win).To(BeTrue())
				Expect(res.Paid).To(BeTrue())

				// 10 * 7000/10000 = 7 to the winner, 3 to the house.
				Expect(res.Amount.Uint64()).To(Equal(uint64(7)))
				Expect(engine.PotSize().IsZero()).To(BeTrue())
				Expect(engine.HouseBalance().Uint64()).To(Equal(uint64(3)))

				stats, _ := engine.PlayerStats(bob)
				Expect(stats.TotalWon.Uint64()).To(Equal(uint64(7)))

				winners := engine.RecentWinners()
				Expect(winners).To(HaveLen(1))
				Expect(winners[0].Player).To(Equal(bob))
				Expect(winners[0].Amount.Uint64()).To(Equal(uint64(7)))

				Expect(fakeSender.SendCallCount()).To(Equal(1))
				_, to, amount := fakeSender.SendArgsForCall(0)
				Expect(to).To(Equal(bob))
				Expect(amount.Uint64()).To(Equal(uint64(7)))
			})

			It("completes the win bookkeeping even when the push payment fails", func() {
				fakeSender.SendReturns(fakeErr)

				res, err := engine.Reveal(ctx, bob, secretFor(bob))
				Expect(err).NotTo(HaveOccurred())
				Expect(res.Win).To(BeTrue())
				Expect(res.Paid).To(BeFalse())

				Expect(engine.PotSize().IsZero()).To(BeTrue())
				Expect(engine.RecentWinners()).To(HaveLen(1))
				Expect(engine.PendingPayoutOf(bob).Uint64()).To(Equal(uint64(7)))

				var types []core.EventType
				for i := 0; i < fakeEvents.PublishCallCount(); i++ {
					types = append(types, fakeEvents.PublishArgsForCall(i).Type)
				}
				Expect(types).To(ContainElement(core.EventPayoutFailed))
				Expect(types).To(ContainElement(core.EventJackpotWon))
			})
		})

		It("sends the rounding remainder to the house, down to a two-unit pot", func() {
			rules.StakeWei = uint256.NewInt(1)
			rules.FirstStakeWei = uint256.NewInt(1)
			rules.MinPotWei = uint256.NewInt(1)
			rules.WinShareBP = 9999
			rules.HouseShareBP = 1
			var err error
			engine, err = core.NewEngine(zap.NewNop().Sugar(), rules, fakeChain, fakeEntropy, fakeSender, fakeEvents)
			Expect(err).NotTo(HaveOccurred())

			commitAt(alice, 100)
			now = now.Add(2 * time.Minute)
			commitAt(bob, 100)
			fakeChain.HeadReturns(core.ChainHead{Height: 102}, nil)
			fakeEntropy.RollReturns(0, nil)

			res, revealErr := engine.Reveal(ctx, bob, secretFor(bob))
			Expect(revealErr).NotTo(HaveOccurred())
			Expect(res.Win).To(BeTrue())

			// floor(2 * 9999/10000) = 1 wins, 1 wei remainder to the house.
			Expect(res.Amount.Uint64()).To(Equal(uint64(1)))
			Expect(engine.HouseBalance().Uint64()).To(Equal(uint64(1)))
			Expect(engine.PotSize().IsZero()).To(BeTrue())
		})

		It("rejects while paused", func() {
			commitAt(alice, 100)
			Expect(engine.Pause(admin)).To(Succeed())
			fakeChain.HeadReturns(core.ChainHead{Height: 102}, nil)
			_, err := engine.Reveal(ctx, alice, secretFor(alice))
			Expect(err).To(MatchError(core.ErrPaused))
		})
	})

	Describe("winner history", func() {
		// winRound has seeder commit, winner commit, then winner reveal a
		// forced win at the given heights.
		winRound := func(seeder, winner common.Address, height uint64) {
			now = now.Add(2 * time.Minute)
			commitAt(seeder, height)
			now = now.Add(2 * time.Minute)
			commitAt(winner, height)
			fakeChain.HeadReturns(core.ChainHead{Height: height + 2}, nil)
			fakeEntropy.RollReturns(0, nil)
			res, err := engine.Reveal(ctx, winner, secretFor(winner))
			ExpectWithOffset(1, err).NotTo(HaveOccurred())
			ExpectWithOffset(1, res.Win).To(BeTrue())
		}

		It("keeps only the most recent records, newest first", func() {
			dave := common.HexToAddress("0xda4e000000000000000000000000000000000004")
			eve := common.HexToAddress("0xe0e0000000000000000000000000000000000005")

			// Each round is seeded by the previous winner, whose pending
			// commitment was cleared by the winning reveal.
			winRound(alice, bob, 100)
			winRound(bob, carol, 110)
			winRound(carol, dave, 120)
			winRound(dave, eve, 130)

			winners := engine.RecentWinners()
			Expect(winners).To(HaveLen(3))
			Expect(winners[0].Player).To(Equal(eve))
			Expect(winners[0].Height).To(Equal(uint64(132)))
			Expect(winners[1].Player).To(Equal(dave))
			Expect(winners[2].Player).To(Equal(carol))
		})
	})

	Describe("ExpireCommitment", func() {
		It("lets any caller reap a fully elapsed commitment, keeping the stake", func() {
			commitAt(alice, 100)
			fakeChain.HeadReturns(core.ChainHead{Height: 357}, nil)

			Expect(engine.ExpireCommitment(ctx, bob, alice)).To(Succeed())

			_, ok := engine.PendingCommitmentOf(alice)
			Expect(ok).To(BeFalse())
			Expect(engine.PotSize().Uint64()).To(Equal(uint64(5)))

			Expect(fakeEvents.PublishCallCount()).To(Equal(2))
			Expect(fakeEvents.PublishArgsForCall(1).Type).To(Equal(core.EventCommitExpired))
		})

		It("rejects while the window is still open", func() {
			commitAt(alice, 100)
			fakeChain.HeadReturns(core.ChainHead{Height: 356}, nil)
			Expect(engine.ExpireCommitment(ctx, bob, alice)).To(MatchError(core.ErrCommitStillLive))
		})

		It("rejects when there is nothing to reap", func() {
			Expect(engine.ExpireCommitment(ctx, bob, alice)).To(MatchError(core.ErrNoCommitment))
		})
	})

	Describe("ClaimPayout", func() {
		// owe gets bob a failed push payout of 7.
		owe := func() {
			commitAt(alice, 100)
			now = now.Add(2 * time.Minute)
			commitAt(bob, 100)
			fakeChain.HeadReturns(core.ChainHead{Height: 102}, nil)
			fakeEntropy.RollReturns(0, nil)
			fakeSender.SendReturns(fakeErr)
			_, err := engine.Reveal(ctx, bob, secretFor(bob))
			ExpectWithOffset(1, err).NotTo(HaveOccurred())
			fakeSender.SendReturns(nil)
		}

		It("pays exactly the owed amount and zeroes the balance", func() {
			owe()

			amount, err := engine.ClaimPayout(ctx, bob)
			Expect(err).NotTo(HaveOccurred())
			Expect(amount.Uint64()).To(Equal(uint64(7)))
			Expect(engine.PendingPayoutOf(bob).IsZero()).To(BeTrue())

			_, claimErr := engine.ClaimPayout(ctx, bob)
			Expect(claimErr).To(MatchError(core.ErrNothingOwed))
		})

		It("restores the balance when the claim transfer fails", func() {
			owe()
			fakeSender.SendReturns(fakeErr)

			_, err := engine.ClaimPayout(ctx, bob)
			Expect(err).To(MatchError(core.ErrSendFailed))
			Expect(engine.PendingPayoutOf(bob).Uint64()).To(Equal(uint64(7)))
		})

		It("stays reachable while paused", func() {
			owe()
			Expect(engine.Pause(admin)).To(Succeed())

			amount, err := engine.ClaimPayout(ctx, bob)
			Expect(err).NotTo(HaveOccurred())
			Expect(amount.Uint64()).To(Equal(uint64(7)))
		})
	})

	Describe("Sponsor", func() {
		It("routes the fee to house funds and records the metadata", func() {
			Expect(engine.Sponsor(ctx, carol, "carol's corner", "https://example.com", uint256.NewInt(2))).To(Succeed())

			Expect(engine.HouseBalance().Uint64()).To(Equal(uint64(2)))
			Expect(engine.PotSize().IsZero()).To(BeTrue())

			sponsor, ok := engine.RoundSponsor()
			Expect(ok).To(BeTrue())
			Expect(sponsor.Name).To(Equal("carol's corner"))
			Expect(sponsor.Sponsor).To(Equal(carol))
		})

		It("rejects the wrong fee", func() {
			err := engine.Sponsor(ctx, carol, "x", "", uint256.NewInt(3))
			Expect(err).To(MatchError(core.ErrWrongSponsorFee))
		})

		It("is cleared by the next win", func() {
			Expect(engine.Sponsor(ctx, carol, "carol's corner", "", uint256.NewInt(2))).To(Succeed())

			commitAt(alice, 100)
			now = now.Add(2 * time.Minute)
			commitAt(bob, 100)
			fakeChain.HeadReturns(core.ChainHead{Height: 102}, nil)
			fakeEntropy.RollReturns(0, nil)
			_, err := engine.Reveal(ctx, bob, secretFor(bob))
			Expect(err).NotTo(HaveOccurred())

			_, ok := engine.RoundSponsor()
			Expect(ok).To(BeFalse())
		})
	})

	Describe("WithdrawHouseFunds", func() {
		It("rejects a non-administrator", func() {
			_, err := engine.WithdrawHouseFunds(ctx, alice)
			Expect(err).To(MatchError(core.ErrNotAdmin))
		})

		It("rejects when nothing accrued", func() {
			_, err := engine.WithdrawHouseFunds(ctx, admin)
			Expect(err).To(MatchError(core.ErrNoHouseFunds))
		})

		It("sends the full balance to the house address", func() {
			Expect(engine.Sponsor(ctx, carol, "x", "", uint256.NewInt(2))).To(Succeed())

			amount, err := engine.WithdrawHouseFunds(ctx, admin)
			Expect(err).NotTo(HaveOccurred())
			Expect(amount.Uint64()).To(Equal(uint64(2)))
			Expect(engine.HouseBalance().IsZero()).To(BeTrue())

			_, to, sent := fakeSender.SendArgsForCall(0)
			Expect(to).To(Equal(house))
			Expect(sent.Uint64()).To(Equal(uint64(2)))
		})

		It("restores the balance when the transfer fails", func() {
			Expect(engine.Sponsor(ctx, carol, "x", "", uint256.NewInt(2))).To(Succeed())
			fakeSender.SendReturns(fakeErr)

			_, err := engine.WithdrawHouseFunds(ctx, admin)
			Expect(err).To(MatchError(core.ErrSendFailed))
			Expect(engine.HouseBalance().Uint64()).To(Equal(uint64(2)))
		})
	})

	Describe("Pause", func() {
		It("rejects a non-administrator", func() {
			Expect(engine.Pause(alice)).To(MatchError(core.ErrNotAdmin))
			Expect(engine.Unpause(alice)).To(MatchError(core.ErrNotAdmin))
		})

		It("gates sponsorship and withdrawal until unpaused", func() {
			Expect(engine.Pause(admin)).To(Succeed())
			Expect(engine.Paused()).To(BeTrue())

			Expect(engine.Sponsor(ctx, carol, "x", "", uint256.NewInt(2))).To(MatchError(core.ErrPaused))
			_, err := engine.WithdrawHouseFunds(ctx, admin)
			Expect(err).To(MatchError(core.ErrPaused))

			Expect(engine.Unpause(admin)).To(Succeed())
			Expect(engine.Sponsor(ctx, carol, "x", "", uint256.NewInt(2))).To(Succeed())
		})
	})

	Describe("realistic stakes", func() {
		BeforeEach(func() {
			rules.StakeWei = uint256.NewInt(500000000000000) // 0.0005 ether
			rules.FirstStakeWei = uint256.NewInt(500000000000000)
			rules.MinPotWei = uint256.NewInt(1000000000000000)
			rules.Cooldown = 60 * time.Second
		})

		It("goes from an empty pot to one stake, then rejects the immediate re-commit", func() {
			Expect(engine.PotSize().IsZero()).To(BeTrue())
			Expect(engine.Commit(ctx, alice, digestFor(alice), uint256.NewInt(500000000000000))).To(Succeed())
			Expect(engine.PotSize().Uint64()).To(Equal(uint64(500000000000000)))

			err := engine.Commit(ctx, alice, digestFor(alice), uint256.NewInt(500000000000000))
			Expect(err).To(MatchError(core.ErrCooldownActive))
		})
	})
})
