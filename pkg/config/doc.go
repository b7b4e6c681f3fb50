// Package config loads environment variables into tagged structs.
//
// It is a thin layer over github.com/caarlos0/env with two additions: a
// one-time .env autoload via github.com/joho/godotenv, and a per-type
// cache so repeated loads of the same config type are stable across the
// process.
//
//	var cfg cookie.Config
//	config.MustLoad(&cfg)
//	store := cookie.NewFromConfig(jar, cfg)
package config
