package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/authkeeper/internal/flagx"
	"github.com/dmitrijs2005/authkeeper/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so intervals can be either strings like "8h" or integer
// nanoseconds. After parsing, values are copied into the runtime Config.
type JsonConfig struct {
	IdentityEndpointAddr string         `json:"identity_endpoint_addr"`
	DatabaseDSN          string         `json:"database_dsn"`
	S3RootUser           string         `json:"s3_root_user"`
	S3RootPassword       string         `json:"s3_root_password"`
	S3Bucket             string         `json:"s3_bucket"`
	S3Region             string         `json:"s3_region"`
	S3BaseEndpoint       string         `json:"s3_base_endpoint"`
	SessionIdleTimeout   timex.Duration `json:"session_idle_timeout"`
	InitTimeout          timex.Duration `json:"init_timeout"`
	ResolverAttempts     int            `json:"resolver_attempts"`
	ResolverDelay        timex.Duration `json:"resolver_delay"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JsonConfigFlags().
//  2. If empty, no JSON is loaded and the function returns.
//
// Only non-empty JSON values overlay the existing Config so a partial file
// does not wipe defaults. Intended usage is: defaults -> parseJson ->
// parseFlags, where later stages override earlier ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.IdentityEndpointAddr != "" {
		cfg.IdentityEndpointAddr = jc.IdentityEndpointAddr
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.S3RootUser != "" {
		cfg.S3RootUser = jc.S3RootUser
	}
	if jc.S3RootPassword != "" {
		cfg.S3RootPassword = jc.S3RootPassword
	}
	if jc.S3Bucket != "" {
		cfg.S3Bucket = jc.S3Bucket
	}
	if jc.S3Region != "" {
		cfg.S3Region = jc.S3Region
	}
	if jc.S3BaseEndpoint != "" {
		cfg.S3BaseEndpoint = jc.S3BaseEndpoint
	}
	if jc.SessionIdleTimeout.Duration != 0 {
		cfg.SessionIdleTimeout = time.Duration(jc.SessionIdleTimeout.Duration)
	}
	if jc.InitTimeout.Duration != 0 {
		cfg.InitTimeout = time.Duration(jc.InitTimeout.Duration)
	}
	if jc.ResolverAttempts > 0 {
		cfg.ResolverAttempts = jc.ResolverAttempts
	}
	if jc.ResolverDelay.Duration != 0 {
		cfg.ResolverDelay = time.Duration(jc.ResolverDelay.Duration)
	}
}
