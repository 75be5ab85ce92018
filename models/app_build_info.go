// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// buildInfoUnset replaces build metadata the linker did not inject.
const buildInfoUnset = "N/A"

// AppBuildInfo is the version metadata injected with -ldflags at build time.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: orUnset(buildVersion),
		buildDate:    orUnset(buildDate),
		buildCommit:  orUnset(buildCommit),
	}
}

func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

func (a AppBuildInfo) BuildDate() string {
	return a.buildDate
}

func (a AppBuildInfo) BuildCommit() string {
	return a.buildCommit
}

// MarshalJSON encodes the bridge's /api/version body.
func (a AppBuildInfo) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Version string `json:"version"`
		Date    string `json:"date"`
		Commit  string `json:"commit"`
	}{a.buildVersion, a.buildDate, a.buildCommit})
}

func orUnset(v string) string {
	if v == "" {
		return buildInfoUnset
	}
	return v
}
