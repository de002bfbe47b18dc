package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"potshot/internal/http/middleware"
	"potshot/internal/http/payload"
)

var (
	CommitShot      = "POST /shot/commit"
	CommitFirstShot = "POST /shot/commit/first"
	RevealShot      = "POST /shot/reveal"
	ClaimShot       = "POST /shot/claim"
	ExpireShot      = "POST /shot/expire"
	SponsorRound    = "POST /shot/sponsor"
	GetPot          = "GET /shot/pot"
	GetRules        = "GET /shot/rules"
	GetPlayer       = "GET /shot/player/{address}"
	GetWinners      = "GET /shot/winners"
	GetWinnerLog    = "GET /shot/winners/history"
	GetLeaderboard  = "GET /shot/leaderboard"
)

const (
	leaderboardLimit = 25
	winnerLogLimit   = 100
)

type ShotHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	game             GameService
	board            Leaderboard
}

func NewShotHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, gameService GameService, leaderboard Leaderboard) *ShotHandler {
	return &ShotHandler{
		logs:             logger,
		requestValidator: requestValidator,
		game:             gameService,
		board:            leaderboard,
	}
}

func (h *ShotHandler) HandleCommit(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var request payload.CommitRequest
	err := h.requestValidator.DecodeAndValidateJSONPayload(r, &request)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not take the shot",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", CommitShot,
			"request_id", requestId)
		return
	}

	err = h.game.Commit(r.Context(), request.Address(), request.DigestHash(), request.Amount())
	if err != nil {
		h.respond(w, Response{
			Message: "Could not take the shot",
			Error:   err.Error(),
		}, statusFromError(err),
			requestId)
		h.logs.Errorw("commit rejected",
			"error", err,
			"player", request.Player,
			"handler", CommitShot,
			"request_id", requestId)
		return
	}

	h.logs.Infow("commitment accepted",
		"player", request.Player,
		"handler", CommitShot,
		"request_id", requestId)

	h.respond(w, Response{
		Message: "Shot committed",
		Data: map[string]string{
			"potWei": h.game.PotSize().Dec(),
		},
	}, http.StatusOK, requestId)
}

func (h *ShotHandler) HandleCommitFirst(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var request payload.CommitRequest
	err := h.requestValidator.DecodeAndValidateJSONPayload(r, &request)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not seed the pot",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", CommitFirstShot,
			"request_id", requestId)
		return
	}

	err = h.game.CommitFirst(r.Context(), request.Address(), request.DigestHash(), request.Amount())
	if err != nil {
		h.respond(w, Response{
			Message: "Could not seed the pot",
			Error:   err.Error(),
		}, statusFromError(err),
			requestId)
		h.logs.Errorw("seeding commit rejected",
			"error", err,
			"player", request.Player,
			"handler", CommitFirstShot,
			"request_id", requestId)
		return
	}

	h.logs.Infow("pot seeded",
		"player", request.Player,
		"handler", CommitFirstShot,
		"request_id", requestId)

	h.respond(w, Response{
		Message: "Pot seeded",
		Data: map[string]string{
			"potWei": h.game.PotSize().Dec(),
		},
	}, http.StatusOK, requestId)
}

func (h *ShotHandler) HandleReveal(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var request payload.RevealRequest
	err := h.requestValidator.DecodeAndValidateJSONPayload(r, &request)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not reveal",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", RevealShot,
			"request_id", requestId)
		return
	}

	result, err := h.game.Reveal(r.Context(), request.Address(), request.SecretBytes())
	if err != nil {
		h.respond(w, Response{
			Message: "Could not reveal",
			Error:   err.Error(),
		}, statusFromError(err),
			requestId)
		h.logs.Errorw("reveal rejected",
			"error", err,
			"player", request.Player,
			"handler", RevealShot,
			"request_id", requestId)
		return
	}

	h.logs.Infow("reveal resolved",
		"player", request.Player,
		"win", result.Win,
		"roll", result.Roll,
		"handler", RevealShot,
		"request_id", requestId)

	h.respond(w, Response{
		Message: "Reveal resolved",
		Data:    newRevealView(result),
	}, http.StatusOK, requestId)
}

func (h *ShotHandler) HandleClaim(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var request payload.ClaimRequest
	err := h.requestValidator.DecodeAndValidateJSONPayload(r, &request)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not claim payout",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", ClaimShot,
			"request_id", requestId)
		return
	}

	amount, err := h.game.ClaimPayout(r.Context(), request.Address())
	if err != nil {
		h.respond(w, Response{
			Message: "Could not claim payout",
			Error:   err.Error(),
		}, statusFromError(err),
			requestId)
		h.logs.Errorw("claim rejected",
			"error", err,
			"player", request.Player,
			"handler", ClaimShot,
			"request_id", requestId)
		return
	}

	h.logs.Infow("payout claimed",
		"player", request.Player,
		"amount_wei", amount.Dec(),
		"handler", ClaimShot,
		"request_id", requestId)

	h.respond(w, Response{
		Message: "Payout sent",
		Data: map[string]string{
			"amountWei": amount.Dec(),
		},
	}, http.StatusOK, requestId)
}

func (h *ShotHandler) HandleExpire(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var request payload.ExpireRequest
	err := h.requestValidator.DecodeAndValidateJSONPayload(r, &request)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not expire commitment",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", ExpireShot,
			"request_id", requestId)
		return
	}

	err = h.game.ExpireCommitment(r.Context(), request.CallerAddress(), request.OwnerAddress())
	if err != nil {
		h.respond(w, Response{
			Message: "Could not expire commitment",
			Error:   err.Error(),
		}, statusFromError(err),
			requestId)
		h.logs.Errorw("expire rejected",
			"error", err,
			"owner", request.Owner,
			"handler", ExpireShot,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{
		Message: "Commitment expired, stake forfeited to the pot",
	}, http.StatusOK, requestId)
}

func (h *ShotHandler) HandleSponsor(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var request payload.SponsorRequest
	err := h.requestValidator.DecodeAndValidateJSONPayload(r, &request)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not sponsor the round",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", SponsorRound,
			"request_id", requestId)
		return
	}

	err = h.game.Sponsor(r.Context(), request.Address(), request.Name, request.URL, request.Fee())
	if err != nil {
		h.respond(w, Response{
			Message: "Could not sponsor the round",
			Error:   err.Error(),
		}, statusFromError(err),
			requestId)
		h.logs.Errorw("sponsorship rejected",
			"error", err,
			"sponsor", request.Sponsor,
			"handler", SponsorRound,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{
		Message: "Round sponsored",
	}, http.StatusOK, requestId)
}

func (h *ShotHandler) HandleGetPot(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	view := potView{
		PotWei:   h.game.PotSize().Dec(),
		HouseWei: h.game.HouseBalance().Dec(),
		Paused:   h.game.Paused(),
	}
	if sponsor, ok := h.game.RoundSponsor(); ok {
		view.Sponsor = &sponsorView{
			Sponsor: sponsor.Sponsor.Hex(),
			Name:    sponsor.Name,
			URL:     sponsor.URL,
		}
	}

	h.respond(w, view, http.StatusOK, requestId)
}

func (h *ShotHandler) HandleGetRules(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	h.respond(w, newRulesView(h.game.Rules()), http.StatusOK, requestId)
}

func (h *ShotHandler) HandleGetPlayer(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	address := r.PathValue("address")
	if !common.IsHexAddress(address) {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   "address parameter is not a hex address",
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("invalid address parameter",
			"address", address,
			"handler", GetPlayer,
			"request_id", requestId)
		return
	}

	player := common.HexToAddress(address)
	view := playerView{
		Address:          player.Hex(),
		TotalSpentWei:    "0",
		TotalWonWei:      "0",
		CooldownSeconds:  h.game.CooldownRemaining(player).Seconds(),
		PendingPayoutWei: h.game.PendingPayoutOf(player).Dec(),
	}

	if stats, ok := h.game.PlayerStats(player); ok {
		view.Shots = stats.Shots
		view.TotalSpentWei = stats.TotalSpent.Dec()
		view.TotalWonWei = stats.TotalWon.Dec()
	}

	if commitment, ok := h.game.PendingCommitmentOf(player); ok {
		view.Commitment = &commitmentView{
			Digest:    commitment.Digest.Hex(),
			Height:    commitment.Height,
			AmountWei: commitment.Amount.Dec(),
		}
	}

	h.respond(w, view, http.StatusOK, requestId)
}

func (h *ShotHandler) HandleGetWinners(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	resp := map[string][]winnerView{
		"winners": newWinnerViews(h.game.RecentWinners()),
	}

	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *ShotHandler) HandleGetWinnerLog(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	winners, err := h.board.WinnerHistory(winnerLogLimit)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not load the winner history",
			Error:   err.Error(),
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to load winner history",
			"error", err,
			"handler", GetWinnerLog,
			"request_id", requestId)
		return
	}

	resp := map[string]any{
		"winners": winners,
	}

	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *ShotHandler) HandleGetLeaderboard(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	players, err := h.board.TopPlayers(leaderboardLimit)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not load the leaderboard",
			Error:   err.Error(),
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to load leaderboard",
			"error", err,
			"handler", GetLeaderboard,
			"request_id", requestId)
		return
	}

	resp := map[string]any{
		"players": players,
	}

	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *ShotHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

func requestID(r *http.Request) string {
	value := r.Context().Value(middleware.RequestIDKey)
	if value == nil {
		return ""
	}

	return value.(string)
}
