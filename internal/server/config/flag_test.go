package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"cmd",
				"-a", "127.0.0.1:9091", "-m", ":9999", "-d", "db", "-s", "secret", "-t", "5",
				"-k", "kek", "-l", "salt", "-x", "2",
				"-u", "user", "-p", "password", "-b", "bucket", "-g", "us-west-1", "-e", "http://endpoint",
			},
			expected: &Config{
				EndpointAddrGRPC:      "127.0.0.1:9091",
				MetricsAddr:           ":9999",
				DatabaseDSN:           "db",
				SecretKey:             "secret",
				TokenValidityDuration: 5 * time.Minute,
				KEKSecret:             "kek",
				KEKSalt:               "salt",
				PresignExpiry:         2 * time.Minute,
				S3RootUser:            "user",
				S3RootPassword:        "password",
				S3Bucket:              "bucket",
				S3Region:              "us-west-1",
				S3BaseEndpoint:        "http://endpoint",
			},
		},
		{
			name:        "non-numeric duration",
			args:        []string{"cmd", "-t", "soon"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args
			config := &Config{}

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(config) })
				return
			}
			require.NotPanics(t, func() { parseFlags(config) })
			assert.Empty(t, cmp.Diff(tt.expected, config))
		})
	}
}

func TestParseFlags_IgnoresForeignFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"cmd", "-c", "conf.json", "-a", ":1", "-unknown", "x"}

	c := &Config{}
	c.LoadDefaults()
	require.NotPanics(t, func() { parseFlags(c) })
	assert.Equal(t, ":1", c.EndpointAddrGRPC)
	assert.Equal(t, 24*time.Hour, c.TokenValidityDuration)
}
