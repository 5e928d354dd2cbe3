package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/textfix/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line
// flags; see the package doc for the list. os.Args is filtered with
// flagx.FilterArgs so -c/-config, -e/-env and foreign flags are ignored.
// Duration flags are whole minutes.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-t", "-o", "-k", "-m", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	accessTokenValidityDuration := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access_token_validity_duration (in minutes)")
	otpValidity := fs.Int("o", int(config.OTPValidity.Minutes()), "otp_validity (in minutes)")

	fs.StringVar(&config.Corrector, "k", config.Corrector, "corrector: rules or openai")
	fs.StringVar(&config.OpenAIModel, "m", config.OpenAIModel, "OpenAI model")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.AccessTokenValidityDuration = time.Duration(*accessTokenValidityDuration) * time.Minute
	config.OTPValidity = time.Duration(*otpValidity) * time.Minute
}
