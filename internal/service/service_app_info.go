package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-git-save/internal/logger"
	"github.com/MKhiriev/go-git-save/models"
	"k8s.io/utils/clock"
)

type appInfoService struct {
	build     models.AppBuildInfo
	clock     clock.PassiveClock
	startedAt time.Time

	logger *logger.Logger
}

// NewAppInfoService records the start time of the process. A nil clk selects
// the real clock.
func NewAppInfoService(build models.AppBuildInfo, clk clock.PassiveClock, logger *logger.Logger) AppInfoService {
	if clk == nil {
		clk = clock.RealClock{}
	}
	return &appInfoService{
		build:     build,
		clock:     clk,
		startedAt: clk.Now(),
		logger:    logger,
	}
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.build.BuildVersion()
}

func (s *appInfoService) Health(ctx context.Context) models.HealthStatus {
	return models.HealthStatus{
		Status:  "ok",
		Version: s.build.BuildVersion(),
		Commit:  s.build.BuildCommit(),
		Uptime:  s.clock.Since(s.startedAt).Truncate(time.Second).String(),
	}
}
