package spec_repo

import (
	"fmt"
	"strings"
	"sync"
	"unicode"

	"pachislot_analytics/internal/model"
	"pachislot_analytics/internal/repository"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Реестр спецификаций автоматов.
// Поиск только по точному совпадению нормализованного имени, без подстрок.
type SpecRepo struct {
	mtx   sync.RWMutex
	specs map[string]model.MachineSpec // по ключу спецификации
	index map[string]string            // нормализованное имя -> ключ
	order []string
}

// NewSpecRepository Конструктор реестра, сразу регистрирует переданные спецификации
func NewSpecRepository(specs ...model.MachineSpec) (repository.SpecRepository, error) {
	r := &SpecRepo{
		specs: make(map[string]model.MachineSpec),
		index: make(map[string]string),
	}
	for _, spec := range specs {
		if err := r.Register(spec); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register Проверяет спецификацию и добавляет ее в реестр.
// Спецификация с тем же ключом заменяется.
func (r *SpecRepo) Register(spec model.MachineSpec) error {
	if err := spec.Validate(); err != nil {
		return err
	}

	names := append([]string{spec.Key, spec.Name}, spec.Aliases...)

	r.mtx.Lock()
	defer r.mtx.Unlock()

	for _, name := range names {
		n := NormalizeName(name)
		if n == "" {
			continue
		}
		if owner, ok := r.index[n]; ok && owner != spec.Key {
			return fmt.Errorf("%w: %s: name %q already used by %s", model.ErrInvalidSpec, spec.Key, name, owner)
		}
	}

	if _, ok := r.specs[spec.Key]; ok {
		// Убираем старые имена заменяемой спецификации
		for n, owner := range r.index {
			if owner == spec.Key {
				delete(r.index, n)
			}
		}
	} else {
		r.order = append(r.order, spec.Key)
	}

	r.specs[spec.Key] = cloneSpec(spec)
	for _, name := range names {
		if n := NormalizeName(name); n != "" {
			r.index[n] = spec.Key
		}
	}
	return nil
}

func (r *SpecRepo) Get(key string) (model.MachineSpec, bool) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	spec, ok := r.specs[key]
	if !ok {
		return model.MachineSpec{}, false
	}
	return cloneSpec(spec), true
}

// Lookup Ищет спецификацию по названию автомата из базы
func (r *SpecRepo) Lookup(machineName string) (model.MachineSpec, bool) {
	n := NormalizeName(machineName)
	if n == "" {
		return model.MachineSpec{}, false
	}

	r.mtx.RLock()
	defer r.mtx.RUnlock()

	key, ok := r.index[n]
	if !ok {
		return model.MachineSpec{}, false
	}
	return cloneSpec(r.specs[key]), true
}

// List Все спецификации в порядке регистрации
func (r *SpecRepo) List() []model.MachineSpec {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	specs := make([]model.MachineSpec, 0, len(r.order))
	for _, key := range r.order {
		specs = append(specs, cloneSpec(r.specs[key]))
	}
	return specs
}

// NormalizeName приводит название к ключу поиска:
// NFKC (полноширинные символы в обычные), casefold, без пробелов и пунктуации.
func NormalizeName(name string) string {
	// Caser хранит состояние, поэтому создается на каждый вызов
	s := cases.Fold().String(norm.NFKC.String(name))
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || unicode.IsPunct(r) || unicode.IsSymbol(r) {
			return -1
		}
		return r
	}, s)
}

func cloneSpec(spec model.MachineSpec) model.MachineSpec {
	spec.Aliases = append([]string(nil), spec.Aliases...)
	spec.Settings = append([]model.SettingSpec(nil), spec.Settings...)
	spec.Priors = append([]float64(nil), spec.Priors...)
	return spec
}
