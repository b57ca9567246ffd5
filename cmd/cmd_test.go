package cmd

import (
	"os"
	"testing"
)

func TestExecute(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	// Define tests
	tests := []struct {
		name string
		args []string
	}{
		{
			name: "version",
			args: []string{"cmd", "version"},
		},
		{
			name: "resolve",
			args: []string{"cmd",
				"resolve", "--dry-run",
				"--resolver-url", "http://localhost:8080/1.0/identifiers/{did}",
				"did:key:z6MkpTHR8VNsBxYAAWHut2Geadd9jSwuBV8xRoAnwWsdvktH",
			},
		},
		{
			name: "resolve with timeout",
			args: []string{"cmd",
				"resolve", "--dry-run",
				"--resolver-url", "http://localhost:8080/1.0/identifiers/{did}",
				"--timeout", "5s",
				"did:sov:WRfXPg8dantKVubE3HX8pw",
			},
		},
	}

	// Iterate tests
	for _, test := range tests {
		os.Args = test.args
		rootCmd.SilenceUsage = true
		rootCmd.SilenceErrors = true

		t.Run(test.name, func(t *testing.T) {
			if err := rootCmd.Execute(); err != nil {
				t.Errorf("Test error = %v", err)
			}
		})
	}
}
