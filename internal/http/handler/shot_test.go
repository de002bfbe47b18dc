package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"potshot/internal/core"
	"potshot/internal/http/handler"
	"potshot/internal/http/handler/fake"
	"potshot/internal/repository"
)

const (
	aliceHex  = "0xa11ce000000000000000000000000000000000a1"
	digestHex = "0x290decd9548b62a8d60345a988386fc84ba6bc95484008f6362f93160ef3e563"
)

var _ = Describe("ShotHandler", func() {
	var (
		sh            *handler.ShotHandler
		fakeGame      *fake.GameService
		fakeValidator *fake.RequestValidator
		fakeBoard     *fake.Leaderboard
		w             *httptest.ResponseRecorder
		req           *http.Request

		alice common.Address
	)

	BeforeEach(func() {
		alice = common.HexToAddress(aliceHex)

		fakeGame = new(fake.GameService)
		fakeGame.PotSizeReturns(uint256.NewInt(15))
		fakeGame.HouseBalanceReturns(uint256.NewInt(6))
		fakeGame.PendingPayoutOfReturns(uint256.NewInt(0))
		fakeGame.RulesReturns(core.Rules{
			StakeWei:      uint256.NewInt(5),
			FirstStakeWei: uint256.NewInt(5),
			SponsorFeeWei: uint256.NewInt(2),
			MinPotWei:     uint256.NewInt(10),
			Cooldown:      time.Minute,
			WinShareBP:    7000,
			HouseShareBP:  3000,
			WinChanceBP:   2500,
			MaxWinners:    3,
		})

		fakeValidator = new(fake.RequestValidator)
		fakeValidator.DecodeAndValidateJSONPayloadStub = func(r *http.Request, object any) error {
			return json.NewDecoder(r.Body).Decode(object)
		}
		fakeBoard = new(fake.Leaderboard)

		w = httptest.NewRecorder()
		sh = handler.NewShotHandler(zap.NewNop().Sugar(), fakeValidator, fakeGame, fakeBoard)
	})

	Describe("HandleCommit", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"player":"` + aliceHex + `","digest":"` + digestHex + `","amountWei":"5"}`)
			req = httptest.NewRequest("POST", "/shot/commit", body)
		})

		JustBeforeEach(func() {
			sh.HandleCommit(w, req)
		})

		When("the commit is accepted", func() {
			It("forwards the shot to the game and reports the pot", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(fakeGame.CommitCallCount()).To(Equal(1))

				_, player, digest, paid := fakeGame.CommitArgsForCall(0)
				Expect(player).To(Equal(alice))
				Expect(digest).To(Equal(common.HexToHash(digestHex)))
				Expect(paid.Uint64()).To(Equal(uint64(5)))

				Expect(w.Body.String()).To(ContainSubstring(`"potWei":"15"`))
			})
		})

		When("the payload does not decode", func() {
			BeforeEach(func() {
				fakeValidator.DecodeAndValidateJSONPayloadStub = nil
				fakeValidator.DecodeAndValidateJSONPayloadReturns(errors.New("fake-error"))
			})

			It("returns 400 without touching the game", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeGame.CommitCallCount()).To(Equal(0))
			})
		})

		When("the player is still cooling down", func() {
			BeforeEach(func() {
				fakeGame.CommitReturns(core.ErrCooldownActive)
			})

			It("returns 429", func() {
				Expect(w.Code).To(Equal(http.StatusTooManyRequests))
				Expect(w.Body.String()).To(ContainSubstring(core.ErrCooldownActive.Error()))
			})
		})

		When("the game is paused", func() {
			BeforeEach(func() {
				fakeGame.CommitReturns(core.ErrPaused)
			})

			It("returns 409", func() {
				Expect(w.Code).To(Equal(http.StatusConflict))
			})
		})
	})

	Describe("HandleCommitFirst", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"player":"` + aliceHex + `","digest":"` + digestHex + `","amountWei":"12"}`)
			req = httptest.NewRequest("POST", "/shot/commit/first", body)
		})

		JustBeforeEach(func() {
			sh.HandleCommitFirst(w, req)
		})

		It("seeds the pot", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(fakeGame.CommitFirstCallCount()).To(Equal(1))

			_, _, _, paid := fakeGame.CommitFirstArgsForCall(0)
			Expect(paid.Uint64()).To(Equal(uint64(12)))
		})

		When("the pot is already seeded", func() {
			BeforeEach(func() {
				fakeGame.CommitFirstReturns(core.ErrPotNotEmpty)
			})

			It("returns 409", func() {
				Expect(w.Code).To(Equal(http.StatusConflict))
			})
		})
	})

	Describe("HandleReveal", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"player":"` + aliceHex + `","secret":"0x6c75636b79"}`)
			req = httptest.NewRequest("POST", "/shot/reveal", body)
		})

		JustBeforeEach(func() {
			sh.HandleReveal(w, req)
		})

		When("the reveal wins", func() {
			BeforeEach(func() {
				fakeGame.RevealReturns(core.RevealResult{
					Win:    true,
					Roll:   2410,
					Amount: uint256.NewInt(70),
					Paid:   true,
					Height: 140,
				}, nil)
			})

			It("reports the outcome", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				_, player, secret := fakeGame.RevealArgsForCall(0)
				Expect(player).To(Equal(alice))
				Expect(secret).To(Equal([]byte("lucky")))

				Expect(w.Body.String()).To(ContainSubstring(`"win":true`))
				Expect(w.Body.String()).To(ContainSubstring(`"amountWei":"70"`))
			})
		})

		When("the reveal loses", func() {
			BeforeEach(func() {
				fakeGame.RevealReturns(core.RevealResult{
					Roll:   8000,
					Height: 140,
				}, nil)
			})

			It("still returns 200", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring(`"win":false`))
			})
		})

		When("the reveal window has not opened", func() {
			BeforeEach(func() {
				fakeGame.RevealReturns(core.RevealResult{}, core.ErrRevealTooEarly)
			})

			It("returns 425", func() {
				Expect(w.Code).To(Equal(http.StatusTooEarly))
			})
		})

		When("the reveal window has closed", func() {
			BeforeEach(func() {
				fakeGame.RevealReturns(core.RevealResult{}, core.ErrRevealTooLate)
			})

			It("returns 410", func() {
				Expect(w.Code).To(Equal(http.StatusGone))
			})
		})

		When("the secret does not match", func() {
			BeforeEach(func() {
				fakeGame.RevealReturns(core.RevealResult{}, core.ErrCommitMismatch)
			})

			It("returns 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
			})
		})
	})

	Describe("HandleClaim", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"player":"` + aliceHex + `"}`)
			req = httptest.NewRequest("POST", "/shot/claim", body)
		})

		JustBeforeEach(func() {
			sh.HandleClaim(w, req)
		})

		When("a payout is owed", func() {
			BeforeEach(func() {
				fakeGame.ClaimPayoutReturns(uint256.NewInt(70), nil)
			})

			It("pays it out", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring(`"amountWei":"70"`))
			})
		})

		When("nothing is owed", func() {
			BeforeEach(func() {
				fakeGame.ClaimPayoutReturns(nil, core.ErrNothingOwed)
			})

			It("returns 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})
	})

	Describe("HandleExpire", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"caller":"` + aliceHex + `","owner":"` + aliceHex + `"}`)
			req = httptest.NewRequest("POST", "/shot/expire", body)
		})

		JustBeforeEach(func() {
			sh.HandleExpire(w, req)
		})

		It("reaps the stale commitment", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(fakeGame.ExpireCommitmentCallCount()).To(Equal(1))
		})

		When("the commitment is still live", func() {
			BeforeEach(func() {
				fakeGame.ExpireCommitmentReturns(core.ErrCommitStillLive)
			})

			It("returns 409", func() {
				Expect(w.Code).To(Equal(http.StatusConflict))
			})
		})
	})

	Describe("HandleSponsor", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"sponsor":"` + aliceHex + `","name":"Lucky Llama","url":"https://llama.example","feeWei":"2"}`)
			req = httptest.NewRequest("POST", "/shot/sponsor", body)
		})

		JustBeforeEach(func() {
			sh.HandleSponsor(w, req)
		})

		It("forwards the sponsorship", func() {
			Expect(w.Code).To(Equal(http.StatusOK))

			_, sponsor, name, url, fee := fakeGame.SponsorArgsForCall(0)
			Expect(sponsor).To(Equal(alice))
			Expect(name).To(Equal("Lucky Llama"))
			Expect(url).To(Equal("https://llama.example"))
			Expect(fee.Uint64()).To(Equal(uint64(2)))
		})

		When("the fee is wrong", func() {
			BeforeEach(func() {
				fakeGame.SponsorReturns(core.ErrWrongSponsorFee)
			})

			It("returns 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
			})
		})
	})

	Describe("HandleGetPot", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/shot/pot", nil)
		})

		JustBeforeEach(func() {
			sh.HandleGetPot(w, req)
		})

		It("reports the pot, house balance and pause state", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring(`"potWei":"15"`))
			Expect(w.Body.String()).To(ContainSubstring(`"houseWei":"6"`))
			Expect(w.Body.String()).To(ContainSubstring(`"paused":false`))
		})

		When("a sponsor backs the round", func() {
			BeforeEach(func() {
				fakeGame.RoundSponsorReturns(core.RoundSponsor{
					Sponsor: alice,
					Name:    "Lucky Llama",
					Set:     true,
				}, true)
			})

			It("includes the sponsor", func() {
				Expect(w.Body.String()).To(ContainSubstring("Lucky Llama"))
			})
		})
	})

	Describe("HandleGetRules", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/shot/rules", nil)
		})

		It("exposes the rule set", func() {
			sh.HandleGetRules(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring(`"stakeWei":"5"`))
			Expect(w.Body.String()).To(ContainSubstring(`"winChanceBp":2500`))
			Expect(w.Body.String()).To(ContainSubstring(`"cooldownSeconds":60`))
		})
	})

	Describe("HandleGetPlayer", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/shot/player/"+aliceHex, nil)
			req.SetPathValue("address", aliceHex)
		})

		JustBeforeEach(func() {
			sh.HandleGetPlayer(w, req)
		})

		When("the player has a history", func() {
			BeforeEach(func() {
				fakeGame.PlayerStatsReturns(core.PlayerStats{
					Address:    alice,
					Shots:      4,
					TotalSpent: uint256.NewInt(20),
					TotalWon:   uint256.NewInt(70),
				}, true)
				fakeGame.CooldownRemainingReturns(30 * time.Second)
				fakeGame.PendingPayoutOfReturns(uint256.NewInt(7))
				fakeGame.PendingCommitmentOfReturns(core.PendingCommitment{
					Digest: common.HexToHash(digestHex),
					Height: 100,
					Amount: uint256.NewInt(5),
				}, true)
			})

			It("returns the full player view", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring(`"shots":4`))
				Expect(w.Body.String()).To(ContainSubstring(`"totalSpentWei":"20"`))
				Expect(w.Body.String()).To(ContainSubstring(`"totalWonWei":"70"`))
				Expect(w.Body.String()).To(ContainSubstring(`"cooldownSeconds":30`))
				Expect(w.Body.String()).To(ContainSubstring(`"pendingPayoutWei":"7"`))
				Expect(w.Body.String()).To(ContainSubstring(digestHex))
			})
		})

		When("the player is unknown", func() {
			It("returns zeroes", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring(`"shots":0`))
				Expect(w.Body.String()).To(ContainSubstring(`"totalSpentWei":"0"`))
			})
		})

		When("the address is malformed", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/shot/player/zzz", nil)
				req.SetPathValue("address", "zzz")
			})

			It("returns 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
			})
		})
	})

	Describe("HandleGetWinners", func() {
		BeforeEach(func() {
			fakeGame.RecentWinnersReturns([]core.WinnerRecord{
				{
					Player: alice,
					Amount: uint256.NewInt(70),
					Height: 140,
					When:   time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC),
				},
			})
			req = httptest.NewRequest("GET", "/shot/winners", nil)
		})

		It("lists recent winners", func() {
			sh.HandleGetWinners(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring(alice.Hex()))
			Expect(w.Body.String()).To(ContainSubstring(`"amountWei":"70"`))
			Expect(w.Body.String()).To(ContainSubstring(`"height":140`))
		})
	})

	Describe("HandleGetWinnerLog", func() {
		BeforeEach(func() {
			fakeBoard.WinnerHistoryReturns([]repository.Winner{
				{
					ID:        1,
					Address:   alice.Hex(),
					AmountWei: "70",
					Height:    140,
				},
			}, nil)
			req = httptest.NewRequest("GET", "/shot/winners/history", nil)
		})

		It("returns the archived winners", func() {
			sh.HandleGetWinnerLog(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(fakeBoard.WinnerHistoryArgsForCall(0)).To(Equal(100))
			Expect(w.Body.String()).To(ContainSubstring(alice.Hex()))
		})
	})

	Describe("HandleGetLeaderboard", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/shot/leaderboard", nil)
		})

		JustBeforeEach(func() {
			sh.HandleGetLeaderboard(w, req)
		})

		When("the read model is reachable", func() {
			BeforeEach(func() {
				fakeBoard.TopPlayersReturns([]repository.Player{
					{
						Address:       alice.Hex(),
						Shots:         42,
						TotalSpentWei: "210",
						TotalWonWei:   "70",
					},
				}, nil)
			})

			It("returns the top players", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(fakeBoard.TopPlayersArgsForCall(0)).To(Equal(25))
				Expect(w.Body.String()).To(ContainSubstring(`"Shots":42`))
			})
		})

		When("the read model is down", func() {
			BeforeEach(func() {
				fakeBoard.TopPlayersReturns(nil, errors.New("no connection"))
			})

			It("returns 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})
})
