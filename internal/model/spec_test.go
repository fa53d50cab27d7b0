package model

import (
	"errors"
	"testing"
)

func regSpec(probs ...float64) MachineSpec {
	spec := MachineSpec{Key: "test", Signal: SignalReg}
	for i, p := range probs {
		spec.Settings = append(spec.Settings, SettingSpec{Setting: i + 1, RegProb: p})
	}
	return spec
}

func TestMachineSpecValidate(t *testing.T) {
	valid := regSpec(1/400.0, 1/380.0, 1/350.0, 1/320.0, 1/300.0, 1/280.0)
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	noKey := valid
	noKey.Key = ""

	badSignal := valid
	badSignal.Signal = "cherry"

	short := regSpec(1/400.0, 1/380.0, 1/350.0)

	unordered := regSpec(1/400.0, 1/380.0, 1/350.0, 1/320.0, 1/300.0, 1/280.0)
	unordered.Settings[0].Setting, unordered.Settings[1].Setting = 2, 1

	zero := regSpec(1/400.0, 1/380.0, 1/350.0, 1/320.0, 1/300.0, 1/280.0)
	zero.Signal = SignalBig

	one := regSpec(1/400.0, 1/380.0, 1/350.0, 1/320.0, 1/300.0, 1)

	badPriors := valid
	badPriors.Priors = []float64{0.5, 0.5, 0, 0, 0, 0}

	tests := []struct {
		name string
		spec MachineSpec
	}{
		{"empty key", noKey},
		{"unknown signal", badSignal},
		{"too few settings", short},
		{"settings out of order", unordered},
		{"signal without probability", zero},
		{"probability equals one", one},
		{"invalid priors", badPriors},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.spec.Validate(); !errors.Is(err, ErrInvalidSpec) {
				t.Errorf("expected ErrInvalidSpec, got %v", err)
			}
		})
	}
}

func TestMachineSpecHitSource(t *testing.T) {
	spec := regSpec(1/400.0, 1/380.0, 1/350.0, 1/320.0, 1/300.0, 1/280.0)
	spec.Signal = ""
	if got := spec.HitSource(); got != SignalReg {
		t.Errorf("expected default reg, got %s", got)
	}

	total := MachineSpec{Key: "total", Signal: SignalReg}
	for i := 1; i <= SettingsCount; i++ {
		total.Settings = append(total.Settings, SettingSpec{Setting: i, TotalProb: 1 / (200.0 - float64(i))})
	}
	if got := total.HitSource(); got != SignalTotal {
		t.Errorf("expected fallback to total, got %s", got)
	}
	if err := total.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if p := total.HitProbability(0); p != 1/199.0 {
		t.Errorf("expected total probability, got %v", p)
	}
}

func TestValidatePriors(t *testing.T) {
	tests := []struct {
		name    string
		priors  []float64
		wantErr bool
	}{
		{"uniform", []float64{1.0 / 6, 1.0 / 6, 1.0 / 6, 1.0 / 6, 1.0 / 6, 1.0 / 6}, false},
		{"skewed", []float64{0.5, 0.2, 0.1, 0.1, 0.05, 0.05}, false},
		{"too short", []float64{0.5, 0.5}, true},
		{"zero", []float64{0, 0.2, 0.2, 0.2, 0.2, 0.2}, true},
		{"negative", []float64{-0.1, 0.3, 0.2, 0.2, 0.2, 0.2}, true},
		{"not normalized", []float64{0.2, 0.2, 0.2, 0.2, 0.2, 0.2}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePriors(tt.priors)
			if tt.wantErr && !errors.Is(err, ErrInvalidPriors) {
				t.Errorf("expected ErrInvalidPriors, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
