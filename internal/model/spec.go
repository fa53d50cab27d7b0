package model

import (
	"fmt"
	"math"
)

// SettingsCount Количество настроек автомата (1-6)
const SettingsCount = 6

// BonusSignal - какой бонус используется как сигнал для оценки настройки
type BonusSignal string

const (
	SignalReg   BonusSignal = "reg"
	SignalBig   BonusSignal = "big"
	SignalTotal BonusSignal = "total"
)

// SettingSpec - теоретические вероятности за одну игру для одной настройки.
// 0 - значение не задано.
type SettingSpec struct {
	Setting    int
	BigProb    float64
	RegProb    float64
	TotalProb  float64
	PayoutRate float64 // теоретический процент выплат
}

type MachineSpec struct {
	Key      string
	Name     string
	Aliases  []string
	Signal   BonusSignal
	Settings []SettingSpec // строго по возрастанию 1..6
	Priors   []float64     // пусто - равномерное распределение
}

// HitProbability - теоретическая вероятность сигнала для i-й настройки
func (s MachineSpec) HitProbability(i int) float64 {
	st := s.Settings[i]
	switch s.HitSource() {
	case SignalBig:
		return st.BigProb
	case SignalTotal:
		return st.TotalProb
	}
	return st.RegProb
}

// HitSource - какой счетчик сравнивается с теоретической вероятностью.
// REG без заданных значений переходит на общую вероятность бонуса.
func (s MachineSpec) HitSource() BonusSignal {
	sig := s.EffectiveSignal()
	if sig == SignalReg && len(s.Settings) > 0 && s.Settings[0].RegProb == 0 {
		return SignalTotal
	}
	return sig
}

// EffectiveSignal - сигнал с учетом значения по умолчанию (REG)
func (s MachineSpec) EffectiveSignal() BonusSignal {
	if s.Signal == "" {
		return SignalReg
	}
	return s.Signal
}

// Validate проверяет спецификацию. Вероятность 0 или 1 дает ln(0) в оценке,
// поэтому такие спецификации отклоняются при регистрации.
func (s MachineSpec) Validate() error {
	if s.Key == "" {
		return fmt.Errorf("%w: empty key", ErrInvalidSpec)
	}
	switch s.EffectiveSignal() {
	case SignalReg, SignalBig, SignalTotal:
	default:
		return fmt.Errorf("%w: %s: unknown signal %q", ErrInvalidSpec, s.Key, s.Signal)
	}
	if len(s.Settings) != SettingsCount {
		return fmt.Errorf("%w: %s: expected %d settings, got %d", ErrInvalidSpec, s.Key, SettingsCount, len(s.Settings))
	}

	for i, st := range s.Settings {
		if st.Setting != i+1 {
			return fmt.Errorf("%w: %s: settings must be listed 1..%d in order", ErrInvalidSpec, s.Key, SettingsCount)
		}
		for _, p := range []float64{st.BigProb, st.RegProb, st.TotalProb} {
			if p != 0 && !openUnit(p) {
				return fmt.Errorf("%w: %s: setting %d: probability %v out of (0, 1)", ErrInvalidSpec, s.Key, st.Setting, p)
			}
		}
		if p := s.HitProbability(i); !openUnit(p) {
			return fmt.Errorf("%w: %s: setting %d: no %s probability", ErrInvalidSpec, s.Key, st.Setting, s.HitSource())
		}
	}

	if len(s.Priors) > 0 {
		if err := ValidatePriors(s.Priors); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidSpec, s.Key, err)
		}
	}
	return nil
}

// priorsTolerance Допустимое отклонение суммы априорных вероятностей от 1
const priorsTolerance = 1e-6

// ValidatePriors - 6 положительных весов с суммой 1
func ValidatePriors(priors []float64) error {
	if len(priors) != SettingsCount {
		return fmt.Errorf("%w: expected %d values, got %d", ErrInvalidPriors, SettingsCount, len(priors))
	}
	var sum float64
	for _, p := range priors {
		if !(p > 0) || math.IsInf(p, 0) {
			return fmt.Errorf("%w: value %v is not positive", ErrInvalidPriors, p)
		}
		sum += p
	}
	if math.Abs(sum-1) > priorsTolerance {
		return fmt.Errorf("%w: sum is %v, expected 1", ErrInvalidPriors, sum)
	}
	return nil
}

func openUnit(p float64) bool {
	return p > 0 && p < 1
}
