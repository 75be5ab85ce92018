// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/koji-m/Bluedog/internal/adapter"
	"github.com/koji-m/Bluedog/internal/logger"
	"github.com/koji-m/Bluedog/internal/store"
	"github.com/koji-m/Bluedog/internal/utils"
	"github.com/koji-m/Bluedog/models"
)

type sessionManager struct {
	newStorage store.SessionStorageFactory
	newAdapter adapter.Factory

	storage store.SessionStorage
	client  adapter.ServerAdapter

	logger *logger.Logger
}

func NewSessionManager(newStorage store.SessionStorageFactory, newAdapter adapter.Factory, logger *logger.Logger) SessionManager {
	return &sessionManager{
		newStorage: newStorage,
		newAdapter: newAdapter,
		logger:     logger,
	}
}

func (m *sessionManager) Configure(dir string) error {
	path, err := utils.LocalPath(strings.TrimSpace(dir))
	if err != nil {
		return fmt.Errorf("resolve storage dir: %w", err)
	}

	storage, err := m.newStorage(path)
	if err != nil {
		return fmt.Errorf("open session storage: %w", err)
	}

	m.storage = storage
	m.client = nil

	m.logger.Debug().Str("dir", storage.Dir()).Msg("session storage configured")

	return nil
}

func (m *sessionManager) Client(ctx context.Context) (adapter.ServerAdapter, error) {
	if m.client != nil {
		return m.client, nil
	}
	if m.storage == nil {
		return nil, ErrNotConfigured
	}

	token, err := m.storage.Load()
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}

	session, err := models.ImportSession(token)
	if err != nil {
		m.logger.Warn().Err(err).Msg("persisted session is unreadable")
		return nil, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}

	client := m.newAdapter(m)
	if _, err = client.ResumeSession(ctx, session); err != nil {
		return nil, mapAdapterError(err)
	}
	m.client = client

	return client, nil
}

func (m *sessionManager) SignIn(ctx context.Context, identifier, secret string) models.StatusResult {
	if m.storage == nil {
		return errorResult(ErrNotConfigured)
	}

	identifier = strings.TrimPrefix(strings.TrimSpace(identifier), "@")
	if identifier == "" || secret == "" {
		return models.StatusResult{Status: models.StatusError, Message: "identifier and password are required"}
	}

	client := m.newAdapter(m)
	if _, err := client.CreateSession(ctx, identifier, secret); err != nil {
		m.logger.Warn().Err(err).Str("identifier", identifier).Msg("sign-in failed")
		return errorResult(err)
	}
	m.client = client

	return models.StatusResult{Status: models.StatusOK}
}

func (m *sessionManager) OnTokenChanged(event models.SessionEvent, session models.Session) error {
	if event != models.SessionCreate && event != models.SessionRefresh {
		return nil
	}
	if m.storage == nil {
		return ErrNotConfigured
	}

	token, err := session.Export()
	if err != nil {
		return fmt.Errorf("export session: %w", err)
	}
	if err = m.storage.Save(token); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	m.logger.Debug().Str("event", string(event)).Str("did", session.DID).Msg("session persisted")

	return nil
}

func (m *sessionManager) SignOut() {
	if m.storage != nil {
		if err := m.storage.Delete(); err != nil {
			m.logger.Warn().Err(err).Msg("delete persisted session")
		}
	}
	m.client = nil
}

func (m *sessionManager) Session() (models.Session, bool) {
	if m.client == nil {
		return models.Session{}, false
	}
	return m.client.Session()
}

func errorResult(err error) models.StatusResult {
	return models.StatusResult{Status: models.StatusError, Message: err.Error()}
}
