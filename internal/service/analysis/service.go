package analysis

import (
	"pachislot_analytics/internal/repository"
	"pachislot_analytics/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	machineRepo repository.MachineRepository
	recordRepo  repository.RecordRepository
	eventRepo   repository.EventDayRepository
	txManager   trm.Manager
	txSettings  trm.Settings // все чтения одного запроса - из одного снимка
}

// NewAnalysisService Сервис агрегирования данных по автоматам. Только чтение.
// txSettings передаются в каждую транзакцию чтения, для pgx это REPEATABLE READ READ ONLY.
func NewAnalysisService(
	machineRepo repository.MachineRepository,
	recordRepo repository.RecordRepository,
	eventRepo repository.EventDayRepository,
	txManager trm.Manager,
	txSettings trm.Settings,
) service.AnalysisService {
	return &serv{
		machineRepo: machineRepo,
		recordRepo:  recordRepo,
		eventRepo:   eventRepo,
		txManager:   txManager,
		txSettings:  txSettings,
	}
}
