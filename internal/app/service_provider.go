package app

import (
	"context"
	"log/slog"

	"pachislot_analytics/internal/api"
	analysisAPI "pachislot_analytics/internal/api/analysis"
	estimationAPI "pachislot_analytics/internal/api/estimation"
	"pachislot_analytics/internal/config"
	"pachislot_analytics/internal/config/env"
	"pachislot_analytics/internal/middleware"
	"pachislot_analytics/internal/repository"
	"pachislot_analytics/internal/repository/event_repo"
	"pachislot_analytics/internal/repository/machine_repo"
	"pachislot_analytics/internal/repository/record_repo"
	"pachislot_analytics/internal/repository/spec_repo"
	"pachislot_analytics/internal/service"
	"pachislot_analytics/internal/service/analysis"
	"pachislot_analytics/internal/service/estimation"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/avito-tech/go-transaction-manager/trm/v2/settings"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ServiceProvider struct {
	//TXManager
	txManager  trm.Manager
	txSettings trm.Settings

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Storage
	machineRepo repository.MachineRepository
	recordRepo  repository.RecordRepository
	eventRepo   repository.EventDayRepository

	// Machine specs
	specCfg  config.SpecConfig
	specRepo repository.SpecRepository

	// Analysis bits
	analysisServ service.AnalysisService
	analysisHand *analysisAPI.Handler

	// Estimation bits
	estimationServ service.EstimationService
	estimationHand *estimationAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}

		sp.txManager = m
	}

	return sp.txManager
}

// TXSettings Чтения анализа идут в REPEATABLE READ READ ONLY,
// чтобы автомат, записи и дни мероприятий были из одного снимка
func (sp *ServiceProvider) TXSettings() trm.Settings {
	if sp.txSettings == nil {
		sp.txSettings = readSnapshotTxSettings()
	}
	return sp.txSettings
}

func readSnapshotTxSettings() trmpgx.Settings {
	return trmpgx.MustSettings(
		settings.Must(),
		trmpgx.WithTxOptions(pgx.TxOptions{
			IsoLevel:   pgx.RepeatableRead,
			AccessMode: pgx.ReadOnly,
		}),
	)
}

func (sp *ServiceProvider) MachineRepository(ctx context.Context) repository.MachineRepository {
	if sp.machineRepo == nil {
		sp.machineRepo = machine_repo.NewMachineRepository(sp.DBClient(ctx))
	}
	return sp.machineRepo
}

func (sp *ServiceProvider) RecordRepository(ctx context.Context) repository.RecordRepository {
	if sp.recordRepo == nil {
		sp.recordRepo = record_repo.NewRecordRepository(sp.DBClient(ctx))
	}
	return sp.recordRepo
}

func (sp *ServiceProvider) EventDayRepository(ctx context.Context) repository.EventDayRepository {
	if sp.eventRepo == nil {
		sp.eventRepo = event_repo.NewEventDayRepository(sp.DBClient(ctx))
	}
	return sp.eventRepo
}

func (sp *ServiceProvider) SpecCfg() config.SpecConfig {
	if sp.specCfg == nil {
		cfg, err := env.NewSpecConfig()
		if err != nil {
			panic("failed to get spec config: " + err.Error())
		}
		sp.specCfg = cfg
	}
	return sp.specCfg
}

// SpecRepository Встроенные спецификации, поверх них - из YAML
func (sp *ServiceProvider) SpecRepository() repository.SpecRepository {
	if sp.specRepo == nil {
		r, err := spec_repo.NewSpecRepository(spec_repo.DefaultSpecs()...)
		if err != nil {
			panic("failed to register built-in specs: " + err.Error())
		}

		path := sp.SpecCfg().Path()
		specs, err := env.NewMachineSpecsFromYAML(path)
		if err != nil {
			panic("failed to load machine specs: " + err.Error())
		}
		if specs == nil {
			slog.Info("machine spec file not found, using built-in specs", "path", path)
		}
		for _, spec := range specs {
			if err := r.Register(spec); err != nil {
				panic("failed to register machine spec: " + err.Error())
			}
		}

		sp.specRepo = r
	}
	return sp.specRepo
}

func (sp *ServiceProvider) AnalysisService(ctx context.Context) service.AnalysisService {
	if sp.analysisServ == nil {
		sp.analysisServ = analysis.NewAnalysisService(
			sp.MachineRepository(ctx),
			sp.RecordRepository(ctx),
			sp.EventDayRepository(ctx),
			sp.TXManager(ctx),
			sp.TXSettings(),
		)
	}
	return sp.analysisServ
}

func (sp *ServiceProvider) AnalysisHandler(ctx context.Context) *analysisAPI.Handler {
	if sp.analysisHand == nil {
		sp.analysisHand = analysisAPI.NewHandler(analysisAPI.HandlerDeps{
			Serv: sp.AnalysisService(ctx),
		})
	}
	return sp.analysisHand
}

func (sp *ServiceProvider) EstimationService(ctx context.Context) service.EstimationService {
	if sp.estimationServ == nil {
		sp.estimationServ = estimation.NewEstimationService(sp.AnalysisService(ctx), sp.SpecRepository())
	}
	return sp.estimationServ
}

func (sp *ServiceProvider) EstimationHandler(ctx context.Context) *estimationAPI.Handler {
	if sp.estimationHand == nil {
		sp.estimationHand = estimationAPI.NewHandler(estimationAPI.HandlerDeps{Serv: sp.EstimationService(ctx)})
	}
	return sp.estimationHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		r.Use(middleware.Logging)
		r.Use(chimw.Recoverer)

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", middleware.RequestIDHeader},
			ExposedHeaders:   []string{middleware.RequestIDHeader},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		r.Get("/health", api.Health)

		// Machine endpoints
		analysisHandler := sp.AnalysisHandler(ctx)
		estimationHandler := sp.EstimationHandler(ctx)
		r.Route("/machines", func(rr chi.Router) {
			rr.Get("/", analysisHandler.ListMachines)
			rr.Route("/{machineID}", func(m chi.Router) {
				m.Get("/analysis", analysisHandler.Analyze)
				m.Get("/daily-summary", analysisHandler.DailySummary)
				m.Get("/cabinets/{machineNo}/history", analysisHandler.CabinetHistory)
				m.Get("/estimation", estimationHandler.EstimateMachine)
			})
		})

		// Spec endpoints
		r.Route("/specs", func(rr chi.Router) {
			rr.Get("/", estimationHandler.ListSpecs)
			rr.Post("/{specKey}/estimate", estimationHandler.Estimate)
		})

		sp.router = r
	}

	return sp.router
}

// Close Закрывает пул соединений, если он был создан
func (sp *ServiceProvider) Close() {
	if sp.dbClient != nil {
		sp.dbClient.Close()
	}
}
