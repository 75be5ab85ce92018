package service

import (
	"github.com/koji-m/Bluedog/internal/adapter"
	"github.com/koji-m/Bluedog/internal/config"
	"github.com/koji-m/Bluedog/internal/logger"
	"github.com/koji-m/Bluedog/internal/store"
)

type ClientServices struct {
	SessionManager SessionManager
	FeedService    FeedService
}

func NewClientServices(
	limits config.ClientFeed,
	newStorage store.SessionStorageFactory,
	newAdapter adapter.Factory,
	observer FeedObserver,
	logger *logger.Logger,
) *ClientServices {
	sessions := NewSessionManager(newStorage, newAdapter, logger)

	return &ClientServices{
		SessionManager: sessions,
		FeedService:    NewFeedService(sessions, limits, observer, logger),
	}
}
