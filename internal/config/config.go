// Copyright (c) 2025 rdsq
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package config resolves the flag-or-environment dual-source inputs into a
// single Options value at the CLI boundary. Everything past this package
// receives plain values; in particular the resolver never reads ambient
// state. Nothing is persisted between invocations.
package config

import (
	"os"
	"strings"
)

// Environment variable fallbacks for the selection hints and region.
const (
	EnvRegion   = "AWS_DEFAULT_REGION"
	EnvCluster  = "AWS_RDS_CLUSTER"
	EnvUser     = "AWS_RDS_USER"
	EnvDatabase = "AWS_RDS_DATABASE"
)

// DefaultRegion is used when neither the flag nor AWS_DEFAULT_REGION is set.
const DefaultRegion = "us-east-1"

// Input carries the raw flag values from the CLI layer. RegionSet reports
// whether the region flag was given explicitly, since its default would
// otherwise shadow the environment fallback.
type Input struct {
	Profile   string
	Region    string
	RegionSet bool
	ClusterID string
	UserID    string
	Database  string
	Format    string
	Verbosity int
	SQL       string
}

// Options is the fully resolved invocation configuration. Empty hint fields
// mean "unset, let the resolver decide".
type Options struct {
	Profile   string
	Region    string
	ClusterID string
	UserID    string
	Database  string
	Format    string
	Verbosity int
	SQL       string
}

// Resolve applies environment fallbacks to the raw flag values.
// Precedence: explicit flag, then environment variable, then default.
func Resolve(in Input) Options {
	region := strings.TrimSpace(in.Region)
	if !in.RegionSet {
		if env := strings.TrimSpace(os.Getenv(EnvRegion)); env != "" {
			region = env
		}
	}
	if region == "" {
		region = DefaultRegion
	}

	return Options{
		Profile:   strings.TrimSpace(in.Profile),
		Region:    region,
		ClusterID: fallback(in.ClusterID, EnvCluster),
		UserID:    fallback(in.UserID, EnvUser),
		Database:  fallback(in.Database, EnvDatabase),
		Format:    strings.TrimSpace(in.Format),
		Verbosity: in.Verbosity,
		SQL:       strings.TrimSpace(in.SQL),
	}
}

// fallback returns the explicit value when set, otherwise the environment
// variable's value.
func fallback(explicit, envKey string) string {
	if v := strings.TrimSpace(explicit); v != "" {
		return v
	}
	return strings.TrimSpace(os.Getenv(envKey))
}
