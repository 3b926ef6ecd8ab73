// Copyright (c) 2025 rdsq
// Licensed under the MIT License. See LICENSE file in the project root for details.

package discovery

import "strings"

// credentialPrefix is the naming convention the RDS console uses for
// cluster credential secrets: rds-db-credentials/<clusterResourceID>/<user>.
const credentialPrefix = "rds-db-credentials/"

// SecretsForCluster filters secrets down to the credential secrets of one
// cluster, keyed by its immutable resource ID. Order is preserved.
func SecretsForCluster(resourceID string, secrets []Secret) []Secret {
	prefix := credentialPrefix + resourceID + "/"
	var out []Secret
	for _, s := range secrets {
		if strings.HasPrefix(s.Name, prefix) {
			out = append(out, s)
		}
	}
	return out
}

// UserID extracts the DB user identifier from a credential secret name,
// the third path segment of rds-db-credentials/<clusterResourceID>/<user>.
func UserID(s Secret) string {
	parts := strings.SplitN(s.Name, "/", 3)
	return parts[len(parts)-1]
}

// UserIDs projects credential secrets to their DB user identifiers,
// preserving order.
func UserIDs(secrets []Secret) []string {
	ids := make([]string, len(secrets))
	for i, s := range secrets {
		ids[i] = UserID(s)
	}
	return ids
}

// FindSecret returns the credential secret whose user identifier matches.
func FindSecret(userID string, secrets []Secret) (Secret, bool) {
	for _, s := range secrets {
		if UserID(s) == userID {
			return s, true
		}
	}
	return Secret{}, false
}
