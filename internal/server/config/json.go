package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/tdfs/internal/flagx"
	"github.com/dmitrijs2005/tdfs/internal/timex"
)

// JsonConfig is the on-disk shape of the server config. Durations accept
// "15m" style strings or integer nanoseconds.
type JsonConfig struct {
	EndpointAddrGRPC      string         `json:"endpoint_addr_grpc"`
	MetricsAddr           string         `json:"metrics_addr"`
	DatabaseDSN           string         `json:"database_dsn"`
	SecretKey             string         `json:"secret_key"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
	KEKSecret             string         `json:"kek_secret"`
	KEKSalt               string         `json:"kek_salt"`
	PresignExpiry         timex.Duration `json:"presign_expiry"`
	S3RootUser            string         `json:"s3_root_user"`
	S3RootPassword        string         `json:"s3_root_password"`
	S3Bucket              string         `json:"s3_bucket"`
	S3Region              string         `json:"s3_region"`
	S3BaseEndpoint        string         `json:"s3_base_endpoint"`
}

// parseJson overlays config with the JSON file named by -c/-config, if any.
// Keys absent from the file keep their current values. Unreadable or
// invalid files panic, matching flag parsing.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	// prefill with current values so that missing keys are kept
	c := &JsonConfig{
		EndpointAddrGRPC:      config.EndpointAddrGRPC,
		MetricsAddr:           config.MetricsAddr,
		DatabaseDSN:           config.DatabaseDSN,
		SecretKey:             config.SecretKey,
		TokenValidityDuration: timex.Duration{Duration: config.TokenValidityDuration},
		KEKSecret:             config.KEKSecret,
		KEKSalt:               config.KEKSalt,
		PresignExpiry:         timex.Duration{Duration: config.PresignExpiry},
		S3RootUser:            config.S3RootUser,
		S3RootPassword:        config.S3RootPassword,
		S3Bucket:              config.S3Bucket,
		S3Region:              config.S3Region,
		S3BaseEndpoint:        config.S3BaseEndpoint,
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	config.EndpointAddrGRPC = c.EndpointAddrGRPC
	config.MetricsAddr = c.MetricsAddr
	config.DatabaseDSN = c.DatabaseDSN
	config.SecretKey = c.SecretKey
	config.TokenValidityDuration = c.TokenValidityDuration.Duration
	config.KEKSecret = c.KEKSecret
	config.KEKSalt = c.KEKSalt
	config.PresignExpiry = c.PresignExpiry.Duration
	config.S3RootUser = c.S3RootUser
	config.S3RootPassword = c.S3RootPassword
	config.S3Bucket = c.S3Bucket
	config.S3Region = c.S3Region
	config.S3BaseEndpoint = c.S3BaseEndpoint
}
