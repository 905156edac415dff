package probe

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"time"

	"golang.org/x/net/icmp"
	"golang.org/x/net/ipv4"
	"golang.org/x/sync/errgroup"
)

const defaultTimeout = 3 * time.Second

// errAnswered cancels the remaining probes once any address has replied.
var errAnswered = errors.New("answered")

// ICMPProber sends echo requests over whatever the default route is, which
// after isolation means through the tunnel. Requires a raw ICMP socket.
type ICMPProber struct {
	timeout time.Duration
}

func NewICMPProber() Contract {
	return &ICMPProber{timeout: defaultTimeout}
}

func NewICMPProberWithTimeout(timeout time.Duration) Contract {
	return &ICMPProber{timeout: timeout}
}

func (p *ICMPProber) Reachable(ctx context.Context, addrs []string) (string, error) {
	if len(addrs) == 0 {
		return "", errors.New("no addresses to probe")
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	answers := make(chan string, len(addrs))
	g, ctx := errgroup.WithContext(ctx)
	for _, addr := range addrs {
		g.Go(func() error {
			if err := p.echo(ctx, addr); err != nil {
				// an unanswered probe is not a group failure
				return nil
			}
			answers <- addr
			return errAnswered
		})
	}

	if err := g.Wait(); err != nil && !errors.Is(err, errAnswered) {
		return "", err
	}

	select {
	case addr := <-answers:
		return addr, nil
	default:
		return "", fmt.Errorf("none of %d addresses answered within %v", len(addrs), p.timeout)
	}
}

func (p *ICMPProber) echo(ctx context.Context, addr string) error {
	ip := net.ParseIP(addr)
	if ip == nil || ip.To4() == nil {
		return fmt.Errorf("not an IPv4 address: %s", addr)
	}

	conn, listenErr := icmp.ListenPacket("ip4:icmp", "")
	if listenErr != nil {
		return fmt.Errorf("failed to open ICMP socket: %v", listenErr)
	}
	defer func() {
		_ = conn.Close()
	}()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}
	stop := context.AfterFunc(ctx, func() {
		_ = conn.SetDeadline(time.Now())
	})
	defer stop()

	request, marshalErr := newEchoRequest()
	if marshalErr != nil {
		return marshalErr
	}
	if _, writeErr := conn.WriteTo(request, &net.IPAddr{IP: ip}); writeErr != nil {
		return fmt.Errorf("failed to send echo to %s: %v", addr, writeErr)
	}

	buffer := make([]byte, 1500)
	for {
		n, peer, readErr := conn.ReadFrom(buffer)
		if readErr != nil {
			return fmt.Errorf("no reply from %s: %v", addr, readErr)
		}
		if peer.String() != ip.String() {
			continue
		}

		message, parseErr := icmp.ParseMessage(ipv4.ICMPTypeEchoReply.Protocol(), buffer[:n])
		if parseErr != nil {
			continue
		}
		if message.Type == ipv4.ICMPTypeEchoReply {
			return nil
		}
	}
}

func newEchoRequest() ([]byte, error) {
	message := icmp.Message{
		Type: ipv4.ICMPTypeEcho,
		Code: 0,
		Body: &icmp.Echo{
			ID:   os.Getpid() & 0xffff,
			Seq:  1,
			Data: []byte("wgns"),
		},
	}

	request, err := message.Marshal(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal echo request: %v", err)
	}
	return request, nil
}
