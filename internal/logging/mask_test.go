// Copyright (c) 2025 rdsq
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"testing"
)

func TestMask(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "password parameter",
			input:    "password=secret123",
			expected: "password=***",
		},
		{
			name:     "password in secret payload",
			input:    `{"username": "admin", "password": "Secret123"}`,
			expected: `{"username": "admin", "password": ***}`,
		},
		{
			name:     "token",
			input:    "token=abc123xyz",
			expected: "token=***",
		},
		{
			name:     "bearer token",
			input:    "Authorization: Bearer abc.def-ghi",
			expected: "Authorization: Bearer ***",
		},
		{
			name:     "API key",
			input:    "apikey=sk_test_123456",
			expected: "apikey=***",
		},
		{
			name:     "plain text untouched",
			input:    "discovered 2 cluster(s)",
			expected: "discovered 2 cluster(s)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Mask(tt.input)
			if result != tt.expected {
				t.Errorf("Mask() = %v, want %v", result, tt.expected)
			}
		})
	}
}
