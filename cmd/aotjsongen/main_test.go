package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "aotjson.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("dir: ../../model\ntypes: [Missing]\n"), 0o600))

	testCases := []struct {
		description string
		args        []string
		expectErr   string
		expectFile  string
	}{
		{description: "unknown flag", args: []string{"-bogus"}, expectErr: "flag provided but not defined"},
		{description: "no types", args: []string{"-dir", "../../model"}, expectErr: "no types specified"},
		{description: "bad case", args: []string{"-type", "Location", "-case", "zigzag"}, expectErr: "unsupported case format"},
		{description: "missing config", args: []string{"-config", filepath.Join(dir, "none.yaml")}, expectErr: "reading config"},
		{description: "config type not found", args: []string{"-config", configPath}, expectErr: "type Missing not found"},
		{
			description: "flags override config",
			args:        []string{"-config", configPath, "-type", "Location", "-output", filepath.Join(dir, "location_aotjson.go")},
			expectFile:  filepath.Join(dir, "location_aotjson.go"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			err := run(tc.args)
			if tc.expectErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectErr)
				return
			}
			require.NoError(t, err)
			data, err := os.ReadFile(tc.expectFile)
			require.NoError(t, err)
			assert.Contains(t, string(data), "aotjson.Register[Location](LocationConverter{})")
			assert.NotContains(t, string(data), "IndexViewModel")
		})
	}
}
