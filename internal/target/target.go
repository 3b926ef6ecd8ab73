// Copyright (c) 2025 rdsq
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package target assembles two resolution outcomes into a single executable
// query target. Assembly short-circuits on the cluster outcome first, so a
// cluster failure is always the one reported even when user resolution also
// failed.
package target

// Outcome is the result of one resolution pass: either an identifier with
// its ARN, or an error.
type Outcome struct {
	ID  string
	ARN string
	Err error
}

// Target is everything needed to execute one statement through the Data API.
// It is built once per invocation and never mutated.
type Target struct {
	ClusterID  string
	ClusterARN string
	UserID     string
	SecretARN  string
	Database   string
	Region     string
	SQL        string
}

// Assemble combines the cluster and user outcomes with the passthrough
// fields. The cluster error wins over the user error; a Target is only
// constructed when both resolutions succeeded.
func Assemble(cluster, user Outcome, database, region, sql string) (*Target, error) {
	if cluster.Err != nil {
		return nil, cluster.Err
	}
	if user.Err != nil {
		return nil, user.Err
	}
	return &Target{
		ClusterID:  cluster.ID,
		ClusterARN: cluster.ARN,
		UserID:     user.ID,
		SecretARN:  user.ARN,
		Database:   database,
		Region:     region,
		SQL:        sql,
	}, nil
}
