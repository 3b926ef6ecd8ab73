// Copyright (c) 2025 rdsq
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for rdsq.
// The root command takes one SQL statement, resolves which cluster and which
// credential secret to run it against, executes it through the RDS Data API
// and renders the result to stdout. All resolution failures surface as a
// single "Error: ..." line on stderr with a non-zero exit.
package cmd

import (
	"fmt"
	"os"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/spf13/cobra"

	"rdsq/cli/internal/config"
	"rdsq/cli/internal/dataapi"
	"rdsq/cli/internal/discovery"
	"rdsq/cli/internal/logging"
	"rdsq/cli/internal/render"
	"rdsq/cli/internal/resolve"
	"rdsq/cli/internal/target"
)

var (
	flagProfile   string
	flagRegion    string
	flagCluster   string
	flagUser      string
	flagDatabase  string
	flagFormat    string
	flagVerbosity int
	showVersion   bool
)

// rootCmd is the whole CLI surface: rdsq [flags] "SQL".
var rootCmd = &cobra.Command{
	Use:   "rdsq [flags] SQL",
	Short: "Query an Amazon RDS database through the Data API",
	Long: `rdsq executes one SQL statement against an Aurora cluster through the
RDS Data API. The target cluster and credential secret are discovered from
the account; when exactly one candidate exists it is used implicitly,
otherwise a -c / -u hint selects one. Results print to stdout as CSV by
default, or as JSON with -f json.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			return nil
		}
		return cobra.ExactArgs(1)(cmd, args)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Printf("rdsq %s\n", Version)
			return nil
		}

		opts := config.Resolve(config.Input{
			Profile:   flagProfile,
			Region:    flagRegion,
			RegionSet: cmd.Flags().Changed("aws-region"),
			ClusterID: flagCluster,
			UserID:    flagUser,
			Database:  flagDatabase,
			Format:    flagFormat,
			Verbosity: flagVerbosity,
			SQL:       args[0],
		})
		logging.Setup(opts.Verbosity)

		if opts.SQL == "" {
			return fmt.Errorf("empty SQL query")
		}
		if opts.Profile != "" {
			os.Setenv("AWS_PROFILE", opts.Profile)
		}

		ctx := cmd.Context()
		cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(opts.Region))
		if err != nil {
			return err
		}
		logging.Infof("region %s", opts.Region)

		clusters, secrets, err := discovery.New(cfg).Fetch(ctx)
		if err != nil {
			return err
		}

		clusterOut, cluster := resolveCluster(opts.ClusterID, clusters)
		var userOut target.Outcome
		if clusterOut.Err == nil {
			// The credential candidates derive from the resolved cluster's
			// resource ID; when the cluster did not resolve the assembler
			// reports its error first and never looks at this outcome.
			userOut = resolveUser(opts.UserID, cluster.ResourceID, secrets)
		}

		tgt, err := target.Assemble(clusterOut, userOut, opts.Database, opts.Region, opts.SQL)
		if err != nil {
			return err
		}
		logging.Infof("cluster %s, user %s", tgt.ClusterID, tgt.UserID)

		res, err := dataapi.New(cfg).Execute(ctx, tgt)
		if err != nil {
			return err
		}
		return render.Render(os.Stdout, render.ParseFormat(opts.Format), res)
	},
}

// resolveCluster narrows the cluster candidates to one. On success the
// matched cluster is returned alongside the outcome so the caller can derive
// the credential candidates from its resource ID.
func resolveCluster(hint string, clusters []discovery.Cluster) (target.Outcome, discovery.Cluster) {
	id, err := resolve.Resolve(hint, discovery.IDs(clusters), resolve.LabelDB)
	if err != nil {
		return target.Outcome{Err: err}, discovery.Cluster{}
	}
	c, _ := discovery.Find(id, clusters)
	return target.Outcome{ID: c.ID, ARN: c.ARN}, c
}

// resolveUser narrows the credential secrets of the resolved cluster to one
// DB user.
func resolveUser(hint, clusterResourceID string, secrets []discovery.Secret) target.Outcome {
	dbSecrets := discovery.SecretsForCluster(clusterResourceID, secrets)
	userID, err := resolve.Resolve(hint, discovery.UserIDs(dbSecrets), resolve.LabelDBUser)
	if err != nil {
		return target.Outcome{Err: err}
	}
	s, _ := discovery.FindSecret(userID, dbSecrets)
	return target.Outcome{ID: userID, ARN: s.ARN}
}

// Execute runs the CLI application. Any error prints as a single line on
// stderr; stdout stays untouched on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&flagProfile, "aws-profile", "p", "", "AWS source profile to use, referencing an entry in ~/.aws/config")
	rootCmd.Flags().StringVarP(&flagRegion, "aws-region", "r", config.DefaultRegion, "AWS region to target (env "+config.EnvRegion+")")
	rootCmd.Flags().StringVarP(&flagCluster, "db-cluster-identifier", "c", "", "RDS cluster identifier (env "+config.EnvCluster+")")
	rootCmd.Flags().StringVarP(&flagUser, "db-user-identifier", "u", "", "DB user identifier, really the credential secret name (env "+config.EnvUser+")")
	rootCmd.Flags().StringVarP(&flagDatabase, "database", "d", "", "database name (env "+config.EnvDatabase+")")
	rootCmd.Flags().StringVarP(&flagFormat, "format", "f", "csv", `output format, one of "csv", "json", "raw"`)
	rootCmd.Flags().CountVarP(&flagVerbosity, "verbose", "v", "increase logging verbosity (-v, -vv)")
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show version information")
}
