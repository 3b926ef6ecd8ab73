// Copyright (c) 2025 rdsq
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package discovery enumerates the candidate clusters and credential secrets
// available in the current account and region. It owns the AWS list calls;
// the selection logic lives in internal/resolve and never sees the network.
//
// Candidate order is whatever the AWS APIs returned. Resolution errors quote
// that order back to the user, who tends to recognize their own naming
// conventions in it, so it is never re-sorted.
package discovery

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"golang.org/x/sync/errgroup"

	"rdsq/cli/internal/errors"
	"rdsq/cli/internal/logging"
)

// Cluster is one DB cluster candidate.
type Cluster struct {
	ID         string
	ARN        string
	ResourceID string
}

// Secret is one Secrets Manager entry. Not every secret is a DB credential;
// filtering happens in SecretsForCluster.
type Secret struct {
	Name string
	ARN  string
}

// Provider lists candidates from RDS and Secrets Manager.
type Provider struct {
	rds     rds.DescribeDBClustersAPIClient
	secrets secretsmanager.ListSecretsAPIClient
}

// New creates a Provider backed by real AWS clients.
func New(cfg aws.Config) *Provider {
	return &Provider{
		rds:     rds.NewFromConfig(cfg),
		secrets: secretsmanager.NewFromConfig(cfg),
	}
}

// Fetch lists clusters and secrets concurrently. The two calls are
// independent, so this is purely a latency optimization; both lists are
// complete before either is resolved against.
func (p *Provider) Fetch(ctx context.Context) ([]Cluster, []Secret, error) {
	var (
		clusters []Cluster
		secrets  []Secret
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		clusters, err = p.Clusters(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		secrets, err = p.Secrets(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return clusters, secrets, nil
}

// Clusters returns every DB cluster in the region, in API order.
func (p *Provider) Clusters(ctx context.Context) ([]Cluster, error) {
	var out []Cluster
	pager := rds.NewDescribeDBClustersPaginator(p.rds, &rds.DescribeDBClustersInput{})
	for pager.HasMorePages() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, errors.Wrap(errors.ClusterLookup, "Failed to lookup clusters", err)
		}
		for _, c := range page.DBClusters {
			out = append(out, Cluster{
				ID:         aws.ToString(c.DBClusterIdentifier),
				ARN:        aws.ToString(c.DBClusterArn),
				ResourceID: aws.ToString(c.DbClusterResourceId),
			})
		}
	}
	logging.Debugf("discovered %d cluster(s)", len(out))
	return out, nil
}

// Secrets returns every Secrets Manager entry in the region, in API order.
func (p *Provider) Secrets(ctx context.Context) ([]Secret, error) {
	var out []Secret
	pager := secretsmanager.NewListSecretsPaginator(p.secrets, &secretsmanager.ListSecretsInput{})
	for pager.HasMorePages() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, errors.Wrap(errors.SecretLookup, "Failed to lookup secrets", err)
		}
		for _, s := range page.SecretList {
			out = append(out, Secret{
				Name: aws.ToString(s.Name),
				ARN:  aws.ToString(s.ARN),
			})
		}
	}
	logging.Debugf("discovered %d secret(s)", len(out))
	return out, nil
}

// IDs projects clusters to their identifiers, preserving order.
func IDs(clusters []Cluster) []string {
	ids := make([]string, len(clusters))
	for i, c := range clusters {
		ids[i] = c.ID
	}
	return ids
}

// Find returns the cluster with the given identifier. The identifier is
// expected to come from a successful resolution over IDs(clusters).
func Find(id string, clusters []Cluster) (Cluster, bool) {
	for _, c := range clusters {
		if c.ID == id {
			return c, true
		}
	}
	return Cluster{}, false
}
