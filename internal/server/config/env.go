package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/dmitrijs2005/textfix/internal/flagx"
	"github.com/joho/godotenv"
)

const envPrefix = "TEXTFIX_"

// parseEnv overlays cfg with TEXTFIX_* variables. A dotenv file named by
// -e/-env is loaded first; variables already set in the process win over
// the file. Unset variables leave the field untouched.
func parseEnv(cfg *Config) {
	if path := flagx.EnvFileFlag(); path != "" {
		if err := godotenv.Load(path); err != nil {
			panic(err)
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: envPrefix}); err != nil {
		panic(err)
	}
}
