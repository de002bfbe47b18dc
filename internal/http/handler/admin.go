package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"potshot/internal/http/payload"
	"potshot/pkg/jwt"
)

var (
	AdminLogin    = "POST /shot/admin/login"
	AdminPause    = "POST /shot/admin/pause"
	AdminUnpause  = "POST /shot/admin/unpause"
	AdminWithdraw = "POST /shot/admin/withdraw"
)

const (
	authTokenHeader  = "AUTH_TOKEN"
	operatorTokenTTL = 12 * time.Hour
	adminSubject     = "potshot-admin"
)

var ErrIncorrectPassword error = errors.New("incorrect operator password")
var errMissingToken error = errors.New("AUTH_TOKEN header is required")

// AdminHandler serves the operator routes. Mutations on these routes
// run on behalf of the configured admin address, so a valid operator
// token stands in for an admin signature.
type AdminHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	tokens           TokenService
	game             GameService
	passwordHash     []byte
}

func NewAdminHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, tokenService TokenService, gameService GameService, passwordHash string) *AdminHandler {
	return &AdminHandler{
		logs:             logger,
		requestValidator: requestValidator,
		tokens:           tokenService,
		game:             gameService,
		passwordHash:     []byte(passwordHash),
	}
}

func (h *AdminHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var request payload.LoginRequest
	err := h.requestValidator.DecodeAndValidateJSONPayload(r, &request)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not authenticate",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", AdminLogin,
			"request_id", requestId)
		return
	}

	err = bcrypt.CompareHashAndPassword(h.passwordHash, []byte(request.Password))
	if err != nil {
		h.respond(w, Response{
			Message: "Login failed",
			Error:   ErrIncorrectPassword.Error(),
		}, http.StatusUnauthorized,
			requestId)
		h.logs.Errorw("operator login failed",
			"operator", request.Operator,
			"handler", AdminLogin,
			"request_id", requestId)
		return
	}

	token, err := h.tokens.Sign(h.tokens.Generate(jwt.TokenInfo{
		Operator:   request.Operator,
		Subject:    adminSubject,
		Expiration: operatorTokenTTL,
	}))
	if err != nil {
		h.respond(w, Response{
			Message: "Login failed",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to sign operator token",
			"error", err,
			"handler", AdminLogin,
			"request_id", requestId)
		return
	}

	resp := map[string]string{
		"token": token,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *AdminHandler) HandlePause(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	if err := h.authorize(r); err != nil {
		h.respondUnauthorized(w, err, AdminPause, requestId)
		return
	}

	err := h.game.Pause(h.game.Rules().AdminAddr)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not pause the game",
			Error:   err.Error(),
		}, statusFromError(err),
			requestId)
		h.logs.Errorw("pause rejected",
			"error", err,
			"handler", AdminPause,
			"request_id", requestId)
		return
	}

	h.logs.Infow("game paused", "handler", AdminPause, "request_id", requestId)
	h.respond(w, Response{
		Message: "Game paused",
	}, http.StatusOK, requestId)
}

func (h *AdminHandler) HandleUnpause(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	if err := h.authorize(r); err != nil {
		h.respondUnauthorized(w, err, AdminUnpause, requestId)
		return
	}

	err := h.game.Unpause(h.game.Rules().AdminAddr)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not unpause the game",
			Error:   err.Error(),
		}, statusFromError(err),
			requestId)
		h.logs.Errorw("unpause rejected",
			"error", err,
			"handler", AdminUnpause,
			"request_id", requestId)
		return
	}

	h.logs.Infow("game unpaused", "handler", AdminUnpause, "request_id", requestId)
	h.respond(w, Response{
		Message: "Game unpaused",
	}, http.StatusOK, requestId)
}

func (h *AdminHandler) HandleWithdraw(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	if err := h.authorize(r); err != nil {
		h.respondUnauthorized(w, err, AdminWithdraw, requestId)
		return
	}

	amount, err := h.game.WithdrawHouseFunds(r.Context(), h.game.Rules().AdminAddr)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not withdraw house funds",
			Error:   err.Error(),
		}, statusFromError(err),
			requestId)
		h.logs.Errorw("withdrawal rejected",
			"error", err,
			"handler", AdminWithdraw,
			"request_id", requestId)
		return
	}

	h.logs.Infow("house funds withdrawn",
		"amount_wei", amount.Dec(),
		"handler", AdminWithdraw,
		"request_id", requestId)

	h.respond(w, Response{
		Message: "House funds withdrawn",
		Data: map[string]string{
			"amountWei": amount.Dec(),
		},
	}, http.StatusOK, requestId)
}

func (h *AdminHandler) authorize(r *http.Request) error {
	token := r.Header.Get(authTokenHeader)
	if token == "" {
		return errMissingToken
	}

	_, err := h.tokens.Validate(token)
	if err != nil {
		return fmt.Errorf("validate operator token: %w", err)
	}

	return nil
}

func (h *AdminHandler) respondUnauthorized(w http.ResponseWriter, err error, route, requestId string) {
	h.respond(w, Response{
		Message: "Authentication failed",
		Error:   err.Error(),
	}, http.StatusUnauthorized,
		requestId)
	h.logs.Errorw("unauthorized admin request",
		"error", err,
		"handler", route,
		"request_id", requestId)
}

func (h *AdminHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}
