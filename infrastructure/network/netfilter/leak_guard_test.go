package netfilter

import (
	"bytes"
	"testing"

	"github.com/google/nftables/expr"
)

func TestZstr(t *testing.T) {
	got := zstr("wgvpn0")
	if !bytes.Equal(got, []byte{'w', 'g', 'v', 'p', 'n', '0', 0x00}) {
		t.Fatalf("unexpected operand: %v", got)
	}
}

func TestExprAcceptOIF(t *testing.T) {
	exprs := exprAcceptOIF("wgvpn0")
	if len(exprs) != 3 {
		t.Fatalf("expected 3 expressions, got %d", len(exprs))
	}

	meta, ok := exprs[0].(*expr.Meta)
	if !ok || meta.Key != expr.MetaKeyOIFNAME {
		t.Fatalf("expected OIFNAME meta load, got %#v", exprs[0])
	}

	cmp, ok := exprs[1].(*expr.Cmp)
	if !ok || cmp.Op != expr.CmpOpEq || !bytes.Equal(cmp.Data, zstr("wgvpn0")) {
		t.Fatalf("expected equality against device name, got %#v", exprs[1])
	}

	verdict, ok := exprs[2].(*expr.Verdict)
	if !ok || verdict.Kind != expr.VerdictAccept {
		t.Fatalf("expected accept verdict, got %#v", exprs[2])
	}
}
