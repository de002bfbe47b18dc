package cmd

import (
	"fmt"
	"math/big"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap/zapcore"

	"potshot/internal/bank"
	"potshot/internal/chain"
	"potshot/internal/config"
	"potshot/internal/core"
	"potshot/internal/db"
	"potshot/internal/http/handler"
	"potshot/internal/http/middleware"
	"potshot/internal/http/payload"
	"potshot/internal/http/server"
	"potshot/internal/repository"
	"potshot/pkg/jwt"
	"potshot/pkg/log"
)

func Start() error {
	logger := log.NewZapLogger("potshot", zapcore.InfoLevel)

	config, err := config.NewAppConfig()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// event mirror feeding the leaderboard and audit trail
	mirror, err := repository.NewMirror(logger, dbConn)
	if err != nil {
		logger.Errorw("failed to start event mirror", "error", err)
		return err
	}
	defer mirror.Close()

	// jwt service
	jwtService := jwt.NewJWTService([]byte(config.JWTSecret))

	client, err := ethclient.Dial(config.NodeURL)
	if err != nil {
		logger.Errorw("node connection failed", "error", err)
		return err
	}

	reader := chain.NewReader(client)
	entropy := chain.NewEntropy(logger, reader)

	sender, err := bank.NewSender(logger, client, config.PayoutPrivateKey, big.NewInt(config.ChainID))
	if err != nil {
		logger.Errorw("failed to create payout sender", "error", err)
		return err
	}

	// game engine
	engine, err := core.NewEngine(
		logger,
		config.Rules,
		reader,
		entropy,
		sender,
		mirror)
	if err != nil {
		logger.Errorw("failed to create game engine", "error", err)
		return err
	}

	// handlers
	shotHlr := handler.NewShotHandler(
		logger,
		payload.DecodeValidator{},
		engine,
		mirror)
	adminHlr := handler.NewAdminHandler(
		logger,
		payload.DecodeValidator{},
		jwtService,
		engine,
		config.AdminPasswordHash)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.CommitShot, shotHlr.HandleCommit)
	mux.HandleFunc(handler.CommitFirstShot, shotHlr.HandleCommitFirst)
	mux.HandleFunc(handler.RevealShot, shotHlr.HandleReveal)
	mux.HandleFunc(handler.ClaimShot, shotHlr.HandleClaim)
	mux.HandleFunc(handler.ExpireShot, shotHlr.HandleExpire)
	mux.HandleFunc(handler.SponsorRound, shotHlr.HandleSponsor)
	mux.HandleFunc(handler.GetPot, shotHlr.HandleGetPot)
	mux.HandleFunc(handler.GetRules, shotHlr.HandleGetRules)
	mux.HandleFunc(handler.GetPlayer, shotHlr.HandleGetPlayer)
	mux.HandleFunc(handler.GetWinners, shotHlr.HandleGetWinners)
	mux.HandleFunc(handler.GetWinnerLog, shotHlr.HandleGetWinnerLog)
	mux.HandleFunc(handler.GetLeaderboard, shotHlr.HandleGetLeaderboard)
	mux.HandleFunc(handler.AdminLogin, adminHlr.HandleLogin)
	mux.HandleFunc(handler.AdminPause, adminHlr.HandlePause)
	mux.HandleFunc(handler.AdminUnpause, adminHlr.HandleUnpause)
	mux.HandleFunc(handler.AdminWithdraw, adminHlr.HandleWithdraw)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
