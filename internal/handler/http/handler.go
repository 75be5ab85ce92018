package http

import (
	"sync"

	"github.com/koji-m/Bluedog/internal/client"
	"github.com/koji-m/Bluedog/internal/logger"
	"github.com/koji-m/Bluedog/internal/metrics"
	"github.com/koji-m/Bluedog/internal/utils"
	"github.com/koji-m/Bluedog/models"
)

type Handler struct {
	backend   *client.Backend
	metrics   *metrics.Metrics
	buildInfo models.AppBuildInfo
	ids       *utils.UUIDGenerator

	// mu serialises backend calls.
	mu sync.Mutex

	logger *logger.Logger
}

// NewHandler builds the bridge handler. m may be nil, in which case /metrics
// is not mounted and requests are not observed.
func NewHandler(backend *client.Backend, m *metrics.Metrics, buildInfo models.AppBuildInfo, logger *logger.Logger) *Handler {
	logger.Info().Bool("metrics", m != nil).Msg("http handler created")
	return &Handler{
		backend:   backend,
		metrics:   m,
		buildInfo: buildInfo,
		ids:       utils.NewUUIDGenerator(),
		logger:    logger,
	}
}
