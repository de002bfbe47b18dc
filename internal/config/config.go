package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"potshot/internal/core"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	apiPortEnvKey      = "API_PORT"
	ethNodeEnvKey      = "ETH_NODE_URL"
	chainIDEnvKey      = "CHAIN_ID"
	dbConnEnvKey       = "DB_CONNECTION_URL"
	jwtSecretEnvKey    = "JWT_SECRET"
	adminPassEnvKey    = "ADMIN_PASSWORD_HASH"
	payoutKeyEnvKey    = "PAYOUT_PRIVATE_KEY"
	stakeEnvKey        = "STAKE_WEI"
	firstStakeEnvKey   = "FIRST_STAKE_WEI"
	sponsorFeeEnvKey   = "SPONSOR_FEE_WEI"
	minPotEnvKey       = "MIN_POT_WEI"
	cooldownEnvKey     = "COOLDOWN_SECONDS"
	winShareEnvKey     = "WIN_SHARE_BP"
	houseShareEnvKey   = "HOUSE_SHARE_BP"
	winChanceEnvKey    = "WIN_CHANCE_BP"
	maxWinnersEnvKey   = "MAX_WINNERS"
	houseAddressEnvKey = "HOUSE_ADDRESS"
	adminAddressEnvKey = "ADMIN_ADDRESS"
)

// App holds everything the process needs at startup: the collaborator
// endpoints plus the immutable game rules. Rules are read from the
// environment once and never change while the process runs.
type App struct {
	Port              string
	NodeURL           string
	ChainID           int64
	DBConnectionURL   string
	JWTSecret         string
	AdminPasswordHash string
	PayoutPrivateKey  string
	Rules             core.Rules
}

func NewAppConfig() (App, error) {
	port, err := lookup(apiPortEnvKey)
	if err != nil {
		return App{}, err
	}

	nodeURL, err := lookup(ethNodeEnvKey)
	if err != nil {
		return App{}, err
	}

	chainID, err := lookupInt(chainIDEnvKey)
	if err != nil {
		return App{}, err
	}

	dbConn, err := lookup(dbConnEnvKey)
	if err != nil {
		return App{}, err
	}

	jwtSecret, err := lookup(jwtSecretEnvKey)
	if err != nil {
		return App{}, err
	}

	adminPassHash, err := lookup(adminPassEnvKey)
	if err != nil {
		return App{}, err
	}

	payoutKey, err := lookup(payoutKeyEnvKey)
	if err != nil {
		return App{}, err
	}

	rules, err := lookupRules()
	if err != nil {
		return App{}, err
	}

	return App{
		Port:              port,
		NodeURL:           nodeURL,
		ChainID:           chainID,
		DBConnectionURL:   dbConn,
		JWTSecret:         jwtSecret,
		AdminPasswordHash: adminPassHash,
		PayoutPrivateKey:  payoutKey,
		Rules:             rules,
	}, nil
}

func lookupRules() (core.Rules, error) {
	stake, err := lookupAmount(stakeEnvKey)
	if err != nil {
		return core.Rules{}, err
	}

	firstStake, err := lookupAmount(firstStakeEnvKey)
	if err != nil {
		return core.Rules{}, err
	}

	sponsorFee, err := lookupAmount(sponsorFeeEnvKey)
	if err != nil {
		return core.Rules{}, err
	}

	minPot, err := lookupAmount(minPotEnvKey)
	if err != nil {
		return core.Rules{}, err
	}

	cooldownSeconds, err := lookupUint(cooldownEnvKey)
	if err != nil {
		return core.Rules{}, err
	}

	winShare, err := lookupUint(winShareEnvKey)
	if err != nil {
		return core.Rules{}, err
	}

	houseShare, err := lookupUint(houseShareEnvKey)
	if err != nil {
		return core.Rules{}, err
	}

	winChance, err := lookupUint(winChanceEnvKey)
	if err != nil {
		return core.Rules{}, err
	}

	maxWinners, err := lookupInt(maxWinnersEnvKey)
	if err != nil {
		return core.Rules{}, err
	}

	houseAddr, err := lookupAddress(houseAddressEnvKey)
	if err != nil {
		return core.Rules{}, err
	}

	adminAddr, err := lookupAddress(adminAddressEnvKey)
	if err != nil {
		return core.Rules{}, err
	}

	return core.Rules{
		StakeWei:      stake,
		FirstStakeWei: firstStake,
		SponsorFeeWei: sponsorFee,
		MinPotWei:     minPot,
		Cooldown:      time.Duration(cooldownSeconds) * time.Second,
		WinShareBP:    winShare,
		HouseShareBP:  houseShare,
		WinChanceBP:   winChance,
		MaxWinners:    int(maxWinners),
		HouseAddr:     houseAddr,
		AdminAddr:     adminAddr,
	}, nil
}

func lookup(key string) (string, error) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return "", fmt.Errorf("%w: %s", errEnvVarNotFound, key)
	}

	return value, nil
}

func lookupAmount(key string) (*uint256.Int, error) {
	raw, err := lookup(key)
	if err != nil {
		return nil, err
	}

	amount, err := uint256.FromDecimal(raw)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", key, err)
	}

	return amount, nil
}

func lookupUint(key string) (uint64, error) {
	raw, err := lookup(key)
	if err != nil {
		return 0, err
	}

	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}

	return value, nil
}

func lookupInt(key string) (int64, error) {
	raw, err := lookup(key)
	if err != nil {
		return 0, err
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}

	return value, nil
}

func lookupAddress(key string) (common.Address, error) {
	raw, err := lookup(key)
	if err != nil {
		return common.Address{}, err
	}

	if !common.IsHexAddress(raw) {
		return common.Address{}, fmt.Errorf("parse %s: %q is not a hex address", key, raw)
	}

	return common.HexToAddress(raw), nil
}
