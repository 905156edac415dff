package probe

import (
	"context"
	"testing"
	"time"

	"golang.org/x/net/icmp"
	"golang.org/x/net/ipv4"
)

func TestReachable_NoAddresses(t *testing.T) {
	p := NewICMPProberWithTimeout(time.Second)
	if _, err := p.Reachable(context.Background(), nil); err == nil {
		t.Fatal("expected error for empty address list")
	}
}

func TestReachable_RejectsNonIPv4(t *testing.T) {
	p := NewICMPProberWithTimeout(50 * time.Millisecond)
	if _, err := p.Reachable(context.Background(), []string{"not-an-ip"}); err == nil {
		t.Fatal("expected error when no address can answer")
	}
}

func TestNewEchoRequest(t *testing.T) {
	request, err := newEchoRequest()
	if err != nil {
		t.Fatal(err)
	}

	message, err := icmp.ParseMessage(ipv4.ICMPTypeEcho.Protocol(), request)
	if err != nil {
		t.Fatal(err)
	}
	if message.Type != ipv4.ICMPTypeEcho {
		t.Fatalf("expected echo request, got %v", message.Type)
	}
	echo, ok := message.Body.(*icmp.Echo)
	if !ok || string(echo.Data) != "wgns" {
		t.Fatalf("unexpected body: %#v", message.Body)
	}
}
