package core

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
)

// RollInput carries everything a draw folds into its digest. The future
// block hash is supplied by the entropy source, not the caller: it did not
// exist when the secret was committed, so neither side could have chosen
// the secret around it.
type RollInput struct {
	Secret       []byte
	Player       common.Address
	CommitHeight uint64
	GlobalShots  uint64
	PlayerShots  uint64
}

// CommitmentDigest binds a secret to a specific participant. Revealing an
// overheard secret from another address recomputes to a different digest.
func CommitmentDigest(secret []byte, player common.Address) common.Hash {
	return crypto.Keccak256Hash(secret, player.Bytes())
}

// DeriveRoll reduces the draw digest modulo the basis-point scale. futureHash
// must be the hash of a block mined strictly after the commitment; beacon is
// the current head's supplementary entropy.
func DeriveRoll(futureHash common.Hash, beacon common.Hash, in RollInput) uint64 {
	digest := crypto.Keccak256(
		futureHash.Bytes(),
		in.Secret,
		in.Player.Bytes(),
		counterBytes(in.GlobalShots),
		counterBytes(in.PlayerShots),
		beacon.Bytes(),
	)
	return reduceRoll(digest)
}

// FallbackRoll is the weaker derivation used when the future block hash is
// no longer retrievable at the edge of the lookup limit.
func FallbackRoll(blockTime uint64, beacon common.Hash, proposer common.Address, in RollInput) uint64 {
	digest := crypto.Keccak256(
		counterBytes(blockTime),
		beacon.Bytes(),
		proposer.Bytes(),
		in.Secret,
		in.Player.Bytes(),
		counterBytes(in.GlobalShots),
		counterBytes(in.PlayerShots),
	)
	return reduceRoll(digest)
}

func reduceRoll(digest []byte) uint64 {
	value := new(uint256.Int).SetBytes(digest)
	return value.Mod(value, uint256.NewInt(BasisPoints)).Uint64()
}

func counterBytes(v uint64) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	return buf[:]
}
