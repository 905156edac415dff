// Package netfilter installs the optional nftables leak guard.
//
// The isolation already makes the physical interfaces unreachable from the
// root namespace; the guard additionally drops egress over any other
// device that might appear there (virtual bridges, usb tethering) while
// the host is isolated. Pure netlink via google/nftables, no shell-out.
package netfilter

import (
	"fmt"

	nft "github.com/google/nftables"
	"github.com/google/nftables/expr"
)

const (
	tableName = "wgns"
	chainName = "output"
)

// LeakGuard is a stateful nftables-backed output filter.
type LeakGuard struct {
	conn *nft.Conn
}

// NewLeakGuard opens a netlink connection. Requires CAP_NET_ADMIN.
func NewLeakGuard() (*LeakGuard, error) {
	conn, err := nft.New()
	if err != nil {
		return nil, fmt.Errorf("nftables conn: %w", err)
	}
	return &LeakGuard{conn: conn}, nil
}

// NewLeakGuardFromConn is handy for tests/injected connections.
func NewLeakGuardFromConn(conn *nft.Conn) *LeakGuard {
	return &LeakGuard{conn: conn}
}

func (g *LeakGuard) Enable(tunName string) error {
	table := g.conn.AddTable(&nft.Table{
		Family: nft.TableFamilyINet,
		Name:   tableName,
	})

	policy := nft.ChainPolicyDrop
	chain := g.conn.AddChain(&nft.Chain{
		Name:     chainName,
		Table:    table,
		Type:     nft.ChainTypeFilter,
		Hooknum:  nft.ChainHookOutput,
		Priority: nft.ChainPriorityFilter,
		Policy:   &policy,
	})

	for _, devName := range []string{"lo", tunName} {
		g.conn.AddRule(&nft.Rule{
			Table: table,
			Chain: chain,
			Exprs: exprAcceptOIF(devName),
		})
	}

	if err := g.conn.Flush(); err != nil {
		return fmt.Errorf("failed to install leak guard: %w", err)
	}
	return nil
}

func (g *LeakGuard) Disable() error {
	tables, err := g.conn.ListTables()
	if err != nil {
		return fmt.Errorf("list tables: %w", err)
	}

	for _, table := range tables {
		if table.Family == nft.TableFamilyINet && table.Name == tableName {
			g.conn.DelTable(table)
			if flushErr := g.conn.Flush(); flushErr != nil {
				return fmt.Errorf("failed to remove leak guard: %w", flushErr)
			}
			return nil
		}
	}

	// nothing installed
	return nil
}

// nft string operands are NUL-terminated.
func zstr(s string) []byte { return append([]byte(s), 0x00) }

func exprAcceptOIF(devName string) []expr.Any {
	return []expr.Any{
		&expr.Meta{Key: expr.MetaKeyOIFNAME, Register: 1},
		&expr.Cmp{Op: expr.CmpOpEq, Register: 1, Data: zstr(devName)},
		&expr.Verdict{Kind: expr.VerdictAccept},
	}
}
