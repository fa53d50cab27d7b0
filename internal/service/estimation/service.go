package estimation

import (
	"pachislot_analytics/internal/repository"
	"pachislot_analytics/internal/service"
)

// defaultWorkers Сколько тумб оцениваются параллельно
const defaultWorkers = 8

type serv struct {
	analysisServ service.AnalysisService
	specRepo     repository.SpecRepository
	workers      int
}

func NewEstimationService(
	analysisServ service.AnalysisService,
	specRepo repository.SpecRepository,
) service.EstimationService {
	return &serv{
		analysisServ: analysisServ,
		specRepo:     specRepo,
		workers:      defaultWorkers,
	}
}
