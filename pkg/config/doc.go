// Package config loads application settings from defaults, an optional YAML
// file and environment variables, in that order of precedence.
//
// A .env file in the working directory is loaded first via godotenv, and
// environment variables are parsed with caarlos0/env.
//
// A YAML file looks like this:
//
//	translit:
//	  transliteration_system: iso9
//	  use_iconv: false
//	server:
//	  address: ":8080"
//	  shutdown_timeout: 10s
//	  request_timeout: 5s
//	log:
//	  level: debug
//	  format: text
//
// Environment variables:
//
//	TRANSLITERATION_SYSTEM  passport2013 | bgn_pcgn | iso9 (default passport2013)
//	TRANSLIT_USE_ICONV      use ASCII folding instead of tables (default false)
//	TRANSLIT_CONFIG         path of the YAML file
//	HTTP_ADDR               listen address (default :8080)
//	HTTP_SHUTDOWN_TIMEOUT   graceful shutdown timeout (default 30s)
//	HTTP_REQUEST_TIMEOUT    per-request timeout (default 10s)
//	LOG_LEVEL, LOG_FORMAT   logger settings
//	SENTRY_DSN              enables Sentry reporting
//
// Usage:
//
//	cfg, err := config.Load("")
//	if err != nil {
//		log.Fatal(err)
//	}
//	tr := cyrillic.New(cfg.Translit)
package config
