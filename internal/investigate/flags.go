package investigate

import (
	"errors"
	"flag"
	"os"
)

const (
	pgDSNEnvName    = "PG_DSN"
	specPathEnvName = "SPEC_CONFIG_PATH"

	defaultSpecPath = "config.yaml"
)

type Config struct {
	DSN       string
	MachineID int64
	SpecPath  string
}

// ParseFlags разбирает флаги, DSN и путь к спецификациям берутся из env, если не заданы
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("investigate", flag.ContinueOnError)
	fs.StringVar(&cfg.DSN, "d", "", "Postgres DSN (default $PG_DSN)")
	fs.Int64Var(&cfg.MachineID, "m", 0, "Machine id")
	fs.StringVar(&cfg.SpecPath, "specs", "", "Machine spec YAML (default $SPEC_CONFIG_PATH or config.yaml)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.DSN == "" {
		cfg.DSN = os.Getenv(pgDSNEnvName)
	}
	if cfg.DSN == "" {
		return Config{}, errors.New("database DSN required (use -d or PG_DSN env)")
	}
	if cfg.MachineID <= 0 {
		return Config{}, errors.New("machine id required (use -m)")
	}

	if cfg.SpecPath == "" {
		cfg.SpecPath = os.Getenv(specPathEnvName)
	}
	if cfg.SpecPath == "" {
		cfg.SpecPath = defaultSpecPath
	}

	return cfg, nil
}
