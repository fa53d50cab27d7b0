package app

import (
	"testing"

	"github.com/jackc/pgx/v5"
)

func TestReadSnapshotTxSettings(t *testing.T) {
	s := readSnapshotTxSettings()

	opts := s.TxOpts()
	if opts.IsoLevel != pgx.RepeatableRead {
		t.Errorf("expected repeatable read, got %q", opts.IsoLevel)
	}
	if opts.AccessMode != pgx.ReadOnly {
		t.Errorf("expected read only, got %q", opts.AccessMode)
	}
}

func TestTXSettingsIsPgxSettings(t *testing.T) {
	sp := newServiceProvider()

	first := sp.TXSettings()
	if first == nil {
		t.Fatal("expected settings")
	}
	if _, ok := first.(interface{ TxOpts() pgx.TxOptions }); !ok {
		t.Errorf("expected pgx driver settings, got %T", first)
	}
	if sp.txSettings == nil {
		t.Errorf("expected settings to be kept in the provider")
	}
}
