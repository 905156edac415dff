package wgkey

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/curve25519"
)

// KeyPair holds a WireGuard key pair in the base64 form wg(8) exchanges.
type KeyPair struct {
	Private string
	Public  string
}

// NewKeyPair generates a Curve25519 key pair the way wg genkey / wg pubkey
// do: 32 random bytes, clamped, public key derived from the basepoint.
func NewKeyPair() (KeyPair, error) {
	var private [curve25519.ScalarSize]byte
	if _, err := rand.Read(private[:]); err != nil {
		return KeyPair{}, fmt.Errorf("failed to generate private key: %v", err)
	}
	clamp(private[:])

	return fromPrivate(private[:])
}

func fromPrivate(private []byte) (KeyPair, error) {
	public, err := curve25519.X25519(private, curve25519.Basepoint)
	if err != nil {
		return KeyPair{}, fmt.Errorf("failed to derive public key: %v", err)
	}

	return KeyPair{
		Private: base64.StdEncoding.EncodeToString(private),
		Public:  base64.StdEncoding.EncodeToString(public),
	}, nil
}

func clamp(private []byte) {
	private[0] &= 248
	private[31] = (private[31] & 127) | 64
}
