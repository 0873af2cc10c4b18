package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/tdfs/internal/flagx"
	"github.com/dmitrijs2005/tdfs/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
type JsonConfig struct {
	ServerEndpointAddr string         `json:"server_endpoint_addr"`
	UserID             string         `json:"user_id"`
	UserToken          string         `json:"user_token"`
	RequestTimeout     timex.Duration `json:"request_timeout"`
	LocalDB            string         `json:"local_db"`
}

// parseJson overlays cfg with values loaded from the JSON file named by -c or
// -config. Keys absent from the file keep their current values. Panics on
// read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	jc := JsonConfig{
		ServerEndpointAddr: cfg.ServerEndpointAddr,
		UserID:             cfg.UserID,
		UserToken:          cfg.UserToken,
		RequestTimeout:     timex.Duration{Duration: cfg.RequestTimeout},
		LocalDB:            cfg.LocalDB,
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	cfg.UserID = jc.UserID
	cfg.UserToken = jc.UserToken
	cfg.RequestTimeout = jc.RequestTimeout.Duration
	cfg.LocalDB = jc.LocalDB
}
