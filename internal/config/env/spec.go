package env

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"pachislot_analytics/internal/config"
	"pachislot_analytics/internal/model"

	"gopkg.in/yaml.v3"
)

const (
	specPathEnvName = "SPEC_CONFIG_PATH"

	defaultSpecPath = "config.yaml"
)

type specConfig struct {
	path string
}

func NewSpecConfig() (config.SpecConfig, error) {
	path := os.Getenv(specPathEnvName)
	if len(path) == 0 {
		path = defaultSpecPath
	}
	return &specConfig{path: path}, nil
}

func (cfg *specConfig) Path() string {
	return cfg.path
}

// yamlSpecFile Структура файла config.yaml
type yamlSpecFile struct {
	Machines []yamlMachineSpec `yaml:"machines"`
}

type yamlMachineSpec struct {
	Key      string            `yaml:"key"`
	Name     string            `yaml:"name"`
	Aliases  []string          `yaml:"aliases"`
	Signal   string            `yaml:"signal"`
	Priors   []float64         `yaml:"priors"`
	Settings []yamlSettingSpec `yaml:"settings"`
}

// Вероятности задаются знаменателем: reg: 366.0 означает 1/366.0
type yamlSettingSpec struct {
	Setting int     `yaml:"setting"`
	Big     float64 `yaml:"big"`
	Reg     float64 `yaml:"reg"`
	Total   float64 `yaml:"total"`
	Payout  float64 `yaml:"payout"`
}

// NewMachineSpecsFromYAML читает спецификации автоматов из YAML.
// Если файла нет - возвращает пустой список без ошибки.
func NewMachineSpecsFromYAML(path string) ([]model.MachineSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read spec config: %w", err)
	}

	var file yamlSpecFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse spec config: %w", err)
	}

	specs := make([]model.MachineSpec, 0, len(file.Machines))
	for _, m := range file.Machines {
		spec := model.MachineSpec{
			Key:      m.Key,
			Name:     m.Name,
			Aliases:  m.Aliases,
			Signal:   model.BonusSignal(m.Signal),
			Priors:   m.Priors,
			Settings: make([]model.SettingSpec, 0, len(m.Settings)),
		}
		for _, s := range m.Settings {
			spec.Settings = append(spec.Settings, model.SettingSpec{
				Setting:    s.Setting,
				BigProb:    oneIn(s.Big),
				RegProb:    oneIn(s.Reg),
				TotalProb:  oneIn(s.Total),
				PayoutRate: s.Payout,
			})
		}
		specs = append(specs, spec)
	}

	return specs, nil
}

// oneIn переводит знаменатель в вероятность, 0 - не задано.
// Знаменатель <= 1 дает вероятность >= 1, такую спецификацию отклонит Validate.
func oneIn(denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return 1 / denominator
}
