// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/koji-m/Bluedog/internal/logger"
)

// SessionFileName is the name of the token file inside the storage directory.
const SessionFileName = "session"

type sessionFileStorage struct {
	dir    string
	path   string
	logger *logger.Logger
}

// NewSessionFileStorage returns a storage keeping the token in
// dir/session. dir is created (0700) if absent.
func NewSessionFileStorage(dir string, logger *logger.Logger) (SessionStorage, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, ErrEmptyStorageDir
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create storage dir %s: %w", dir, err)
	}

	return &sessionFileStorage{
		dir:    dir,
		path:   filepath.Join(dir, SessionFileName),
		logger: logger,
	}, nil
}

// NewSessionFileStorageFactory returns a [SessionStorageFactory] building
// file storages that log through logger.
func NewSessionFileStorageFactory(logger *logger.Logger) SessionStorageFactory {
	return func(dir string) (SessionStorage, error) {
		return NewSessionFileStorage(dir, logger)
	}
}

func (s *sessionFileStorage) Dir() string {
	return s.dir
}

func (s *sessionFileStorage) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn().Err(err).Str("path", s.path).Msg("session file unreadable, treating as signed out")
		}
		return "", ErrSessionNotFound
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", ErrSessionNotFound
	}

	return token, nil
}

func (s *sessionFileStorage) Save(token string) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("create storage dir %s: %w", s.dir, err)
	}

	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}

	s.logger.Debug().Str("path", s.path).Msg("session saved")
	return nil
}

func (s *sessionFileStorage) Delete() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}

	s.logger.Debug().Str("path", s.path).Msg("session deleted")
	return nil
}
