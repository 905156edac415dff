package wgkey

import (
	"encoding/base64"
	"testing"
)

func TestNewKeyPair(t *testing.T) {
	pair, err := NewKeyPair()
	if err != nil {
		t.Fatal(err)
	}

	private, err := base64.StdEncoding.DecodeString(pair.Private)
	if err != nil || len(private) != 32 {
		t.Fatalf("unexpected private key %q: %v", pair.Private, err)
	}
	public, err := base64.StdEncoding.DecodeString(pair.Public)
	if err != nil || len(public) != 32 {
		t.Fatalf("unexpected public key %q: %v", pair.Public, err)
	}

	// wg genkey clamping
	if private[0]&7 != 0 {
		t.Fatal("low bits of private key not cleared")
	}
	if private[31]&128 != 0 || private[31]&64 == 0 {
		t.Fatal("high bits of private key not clamped")
	}
}

func TestNewKeyPair_Distinct(t *testing.T) {
	a, err := NewKeyPair()
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewKeyPair()
	if err != nil {
		t.Fatal(err)
	}
	if a.Private == b.Private || a.Public == b.Public {
		t.Fatal("expected distinct key pairs")
	}
}

func TestFromPrivate_Deterministic(t *testing.T) {
	private := make([]byte, 32)
	private[0] = 8
	clamp(private)

	a, err := fromPrivate(private)
	if err != nil {
		t.Fatal(err)
	}
	b, err := fromPrivate(private)
	if err != nil {
		t.Fatal(err)
	}
	if a.Public != b.Public {
		t.Fatal("expected deterministic public key")
	}
}
