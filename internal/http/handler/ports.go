package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/common"
	gojwt "github.com/golang-jwt/jwt"
	"github.com/holiman/uint256"

	"potshot/internal/core"
	"potshot/internal/repository"
	"potshot/pkg/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name GameService . GameService
type GameService interface {
	Commit(ctx context.Context, player common.Address, digest common.Hash, paid *uint256.Int) error
	CommitFirst(ctx context.Context, player common.Address, digest common.Hash, paid *uint256.Int) error
	Reveal(ctx context.Context, player common.Address, secret []byte) (core.RevealResult, error)
	ExpireCommitment(ctx context.Context, caller, owner common.Address) error
	ClaimPayout(ctx context.Context, caller common.Address) (*uint256.Int, error)
	Sponsor(ctx context.Context, sponsor common.Address, name, url string, fee *uint256.Int) error
	WithdrawHouseFunds(ctx context.Context, caller common.Address) (*uint256.Int, error)
	Pause(caller common.Address) error
	Unpause(caller common.Address) error
	PotSize() *uint256.Int
	HouseBalance() *uint256.Int
	PlayerStats(player common.Address) (core.PlayerStats, bool)
	CooldownRemaining(player common.Address) time.Duration
	PendingCommitmentOf(player common.Address) (core.PendingCommitment, bool)
	PendingPayoutOf(player common.Address) *uint256.Int
	RecentWinners() []core.WinnerRecord
	Rules() core.Rules
	RoundSponsor() (core.RoundSponsor, bool)
	Paused() bool
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeAndValidateJSONPayload(r *http.Request, object any) error
}

//counterfeiter:generate -o fake -fake-name TokenService . TokenService
type TokenService interface {
	Generate(data jwt.TokenInfo) *gojwt.Token
	Sign(token *gojwt.Token) (string, error)
	Validate(token string) (gojwt.MapClaims, error)
}

//counterfeiter:generate -o fake -fake-name Leaderboard . Leaderboard
type Leaderboard interface {
	TopPlayers(limit int) ([]repository.Player, error)
	WinnerHistory(limit int) ([]repository.Winner, error)
}
