package uptime

import (
	"context"
	"fmt"
	"net"
	"os"
	"time"

	"golang.org/x/net/icmp"
	"golang.org/x/net/ipv4"
)

const protocolICMP = 1

// ICMPProber pings the screen controller with a single ICMP echo. Requires
// raw socket privileges; deployments without them use the HTTP prober.
type ICMPProber struct {
	timeout time.Duration
}

func NewICMPProber(timeout time.Duration) *ICMPProber {
	return &ICMPProber{timeout: timeout}
}

func (p *ICMPProber) Probe(ctx context.Context, address string) error {
	host := address
	if h, _, err := net.SplitHostPort(address); err == nil {
		host = h
	}

	addrs, err := net.DefaultResolver.LookupIP(ctx, "ip4", host)
	if err != nil {
		return fmt.Errorf("failed to resolve %q: %w", host, err)
	}

	if len(addrs) == 0 {
		return fmt.Errorf("no ipv4 address for %q", host)
	}

	conn, err := icmp.ListenPacket("ip4:icmp", "0.0.0.0")
	if err != nil {
		return fmt.Errorf("failed to open icmp socket: %w", err)
	}
	defer conn.Close()

	deadline := time.Now().Add(p.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	if err := conn.SetDeadline(deadline); err != nil {
		return fmt.Errorf("failed to set deadline: %w", err)
	}

	msg := icmp.Message{
		Type: ipv4.ICMPTypeEcho,
		Code: 0,
		Body: &icmp.Echo{
			ID:   os.Getpid() & 0xffff,
			Seq:  1,
			Data: []byte("screenwatch-probe"),
		},
	}

	payload, err := msg.Marshal(nil)
	if err != nil {
		return fmt.Errorf("failed to marshal echo request: %w", err)
	}

	dst := &net.IPAddr{IP: addrs[0]}

	if _, err := conn.WriteTo(payload, dst); err != nil {
		return fmt.Errorf("failed to send echo request: %w", err)
	}

	reply := make([]byte, 1500)

	for {
		n, peer, err := conn.ReadFrom(reply)
		if err != nil {
			return fmt.Errorf("no echo reply from %s: %w", dst, err)
		}

		if peer.String() != dst.String() {
			continue
		}

		parsed, err := icmp.ParseMessage(protocolICMP, reply[:n])
		if err != nil {
			continue
		}

		if parsed.Type == ipv4.ICMPTypeEchoReply {
			return nil
		}
	}
}
