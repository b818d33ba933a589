// Package config loads env-tagged configuration structs from the
// process environment, with an optional .env file for development.
//
// Every component of the toolkit declares its own small Config struct
// (for example notifier.Config or the Redis store config) and loads it
// independently:
//
//	var cfg notifier.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// Load caches per type: the environment is read once and every caller
// sees the same values for the lifetime of the process.
package config
