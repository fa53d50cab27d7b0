package req

import (
	"strings"
	"testing"
)

type payload struct {
	Games int `json:"games"`
}

func TestDecode(t *testing.T) {
	got, err := Decode[payload](strings.NewReader(`{"games": 120}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Games != 120 {
		t.Errorf("expected 120, got %d", got.Games)
	}

	if _, err := Decode[payload](strings.NewReader(`{"games": 1, "extra": true}`)); err == nil {
		t.Error("expected error for unknown field")
	}
	if _, err := Decode[payload](strings.NewReader(`not json`)); err == nil {
		t.Error("expected error for malformed body")
	}
}
