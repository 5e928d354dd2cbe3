package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/textfix/internal/flagx"
	"github.com/dmitrijs2005/textfix/internal/timex"
)

// JsonConfig is a DTO used only for reading JSON configuration files.
// Durations use timex.Duration so both "1m" and integer nanoseconds parse.
// Pointer fields tell an absent key from an empty one.
type JsonConfig struct {
	EndpointAddrHTTP            *string         `json:"endpoint_addr_http"`
	DatabaseDSN                 *string         `json:"database_dsn"`
	SecretKey                   *string         `json:"secret_key"`
	AccessTokenValidityDuration *timex.Duration `json:"access_token_validity_duration"`
	OTPValidity                 *timex.Duration `json:"otp_validity"`
	OTPSendInterval             *timex.Duration `json:"otp_send_interval"`
	OTPSendBurst                *int            `json:"otp_send_burst"`
	RequireVerifiedEmail        *bool           `json:"require_verified_email"`
	AllowedOrigins              []string        `json:"allowed_origins"`
	RequestTimeout              *timex.Duration `json:"request_timeout"`
	Corrector                   *string         `json:"corrector"`
	OpenAIModel                 *string         `json:"openai_model"`
	OpenAIBaseURL               *string         `json:"openai_base_url"`
	LogLevel                    *string         `json:"log_level"`
	LogFormat                   *string         `json:"log_format"`
}

// parseJson loads configuration values from the JSON file named by -c or
// -config into config. Without the flag nothing is loaded. If the file
// cannot be read or contains invalid JSON, the function panics.
//
// The OpenAI API key is deliberately absent: it comes from the environment.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	c.apply(config)
}

func (c *JsonConfig) apply(config *Config) {
	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	setDuration(&config.AccessTokenValidityDuration, c.AccessTokenValidityDuration)
	setDuration(&config.OTPValidity, c.OTPValidity)
	setDuration(&config.OTPSendInterval, c.OTPSendInterval)
	if c.OTPSendBurst != nil {
		config.OTPSendBurst = *c.OTPSendBurst
	}
	if c.RequireVerifiedEmail != nil {
		config.RequireVerifiedEmail = *c.RequireVerifiedEmail
	}
	if c.AllowedOrigins != nil {
		config.AllowedOrigins = c.AllowedOrigins
	}
	setDuration(&config.RequestTimeout, c.RequestTimeout)
	setString(&config.Corrector, c.Corrector)
	setString(&config.OpenAIModel, c.OpenAIModel)
	setString(&config.OpenAIBaseURL, c.OpenAIBaseURL)
	setString(&config.LogLevel, c.LogLevel)
	setString(&config.LogFormat, c.LogFormat)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setDuration(dst *time.Duration, v *timex.Duration) {
	if v != nil {
		*dst = v.Duration
	}
}
