package payload

import (
	"regexp"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
	"github.com/jellydator/validation"
)

var (
	addressRegex = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)
	digestRegex  = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)
	secretRegex  = regexp.MustCompile(`^0x([0-9a-fA-F]{2})+$`)
	amountRegex  = regexp.MustCompile(`^[0-9]+$`)
)

// CommitRequest carries a new shot: the player, the commitment digest
// and the stake that was paid in.
type CommitRequest struct {
	Player    string `json:"player"`
	Digest    string `json:"digest"`
	AmountWei string `json:"amountWei"`
}

func (c CommitRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Player, validation.Required, validation.Match(addressRegex)),
		validation.Field(&c.Digest, validation.Required, validation.Match(digestRegex)),
		validation.Field(&c.AmountWei, validation.Required, validation.Match(amountRegex)),
	)
}

func (c CommitRequest) Address() common.Address {
	return common.HexToAddress(c.Player)
}

func (c CommitRequest) DigestHash() common.Hash {
	return common.HexToHash(c.Digest)
}

func (c CommitRequest) Amount() *uint256.Int {
	amount, _ := uint256.FromDecimal(c.AmountWei)
	return amount
}

// RevealRequest opens a commitment with the original secret bytes,
// hex encoded.
type RevealRequest struct {
	Player string `json:"player"`
	Secret string `json:"secret"`
}

func (r RevealRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Player, validation.Required, validation.Match(addressRegex)),
		validation.Field(&r.Secret, validation.Required, validation.Match(secretRegex)),
	)
}

func (r RevealRequest) Address() common.Address {
	return common.HexToAddress(r.Player)
}

func (r RevealRequest) SecretBytes() []byte {
	secret, _ := hexutil.Decode(r.Secret)
	return secret
}

// ClaimRequest asks the vault to pay out whatever the caller is owed.
type ClaimRequest struct {
	Player string `json:"player"`
}

func (c ClaimRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Player, validation.Required, validation.Match(addressRegex)),
	)
}

func (c ClaimRequest) Address() common.Address {
	return common.HexToAddress(c.Player)
}

// ExpireRequest reaps another player's stale commitment.
type ExpireRequest struct {
	Caller string `json:"caller"`
	Owner  string `json:"owner"`
}

func (e ExpireRequest) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.Caller, validation.Required, validation.Match(addressRegex)),
		validation.Field(&e.Owner, validation.Required, validation.Match(addressRegex)),
	)
}

func (e ExpireRequest) CallerAddress() common.Address {
	return common.HexToAddress(e.Caller)
}

func (e ExpireRequest) OwnerAddress() common.Address {
	return common.HexToAddress(e.Owner)
}

// SponsorRequest attaches display metadata to the current round.
type SponsorRequest struct {
	Sponsor string `json:"sponsor"`
	Name    string `json:"name"`
	URL     string `json:"url"`
	FeeWei  string `json:"feeWei"`
}

func (s SponsorRequest) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Sponsor, validation.Required, validation.Match(addressRegex)),
		validation.Field(&s.Name, validation.Required, validation.Length(1, 64)),
		validation.Field(&s.URL, validation.Length(0, 256)),
		validation.Field(&s.FeeWei, validation.Required, validation.Match(amountRegex)),
	)
}

func (s SponsorRequest) Address() common.Address {
	return common.HexToAddress(s.Sponsor)
}

func (s SponsorRequest) Fee() *uint256.Int {
	fee, _ := uint256.FromDecimal(s.FeeWei)
	return fee
}

// LoginRequest authenticates an operator for the admin routes.
type LoginRequest struct {
	Operator string `json:"operator"`
	Password string `json:"password"`
}

func (l LoginRequest) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Operator, validation.Required),
		validation.Field(&l.Password, validation.Required),
	)
}
