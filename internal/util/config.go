package util

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	AllowedOrigins          []string      `mapstructure:"ALLOWED_ORIGINS"`
	HTTPServerAddress       string        `mapstructure:"HTTP_SERVER_ADDRESS"`
	RedisServerAddress      string        `mapstructure:"REDIS_SERVER_ADDRESS"`
	ShopBaseURL             string        `mapstructure:"SHOP_BASE_URL"`
	SenditBaseURL           string        `mapstructure:"SENDIT_BASE_URL"`
	SenditPublicKey         string        `mapstructure:"SENDIT_PUBLIC_KEY"`
	SenditSecretKey         string        `mapstructure:"SENDIT_SECRET_KEY"`
	SenditPickupDistrictID  int64         `mapstructure:"SENDIT_PICKUP_DISTRICT_ID"`
	SenditStockDelivery     bool          `mapstructure:"SENDIT_STOCK_DELIVERY"`
	DistrictRefreshInterval time.Duration `mapstructure:"DISTRICT_REFRESH_INTERVAL"`
	PaypalBaseURL           string        `mapstructure:"PAYPAL_BASE_URL"`
	PaypalClientID          string        `mapstructure:"PAYPAL_CLIENT_ID"`
	PaypalClientSecret      string        `mapstructure:"PAYPAL_CLIENT_SECRET"`
	PaypalCurrency          string        `mapstructure:"PAYPAL_CURRENCY"`
	PaypalExchangeRate      float64       `mapstructure:"PAYPAL_EXCHANGE_RATE"`
	GmailSMTPUsername       string        `mapstructure:"GMAIL_SMTP_USERNAME"`
	GmailSMTPPassword       string        `mapstructure:"GMAIL_SMTP_PASSWORD"`
	DiscordBotToken         string        `mapstructure:"DISCORD_BOT_TOKEN"`
	DiscordChannelID        string        `mapstructure:"DISCORD_CHANNEL_ID"`
	MetaPixelID             string        `mapstructure:"META_PIXEL_ID"`
	MetaAccessToken         string        `mapstructure:"META_ACCESS_TOKEN"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	// Set defaults for non-sensitive config
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000"})
	viper.SetDefault("HTTP_SERVER_ADDRESS", "0.0.0.0:8080")
	viper.SetDefault("SHOP_BASE_URL", "https://welovepadel.ma")
	viper.SetDefault("SENDIT_BASE_URL", "https://app.sendit.ma/api/v1")
	viper.SetDefault("SENDIT_STOCK_DELIVERY", true)
	viper.SetDefault("DISTRICT_REFRESH_INTERVAL", "6h")
	viper.SetDefault("PAYPAL_BASE_URL", "https://api-m.sandbox.paypal.com")
	// PayPal does not settle in MAD; totals are converted at a configured rate.
	viper.SetDefault("PAYPAL_CURRENCY", "EUR")
	viper.SetDefault("PAYPAL_EXCHANGE_RATE", 0.092)

	// Prefer environment variables over config file
	viper.AutomaticEnv()

	// Load config file
	viper.SetConfigFile(path)
	if err = viper.ReadInConfig(); err != nil {
		return
	}

	// Unmarshal config into struct
	err = viper.UnmarshalExact(&config)
	if err != nil {
		return
	}

	// Validate required configuration
	err = validateConfig(config)
	return
}

func validateConfig(config Config) error {
	if config.RedisServerAddress == "" {
		return fmt.Errorf("REDIS_SERVER_ADDRESS is required")
	}
	if config.SenditPublicKey == "" {
		return fmt.Errorf("SENDIT_PUBLIC_KEY is required")
	}
	if config.SenditSecretKey == "" {
		return fmt.Errorf("SENDIT_SECRET_KEY is required")
	}
	if config.SenditPickupDistrictID <= 0 {
		return fmt.Errorf("SENDIT_PICKUP_DISTRICT_ID must be a positive district id")
	}
	if config.PaypalClientID == "" {
		return fmt.Errorf("PAYPAL_CLIENT_ID is required")
	}
	if config.PaypalClientSecret == "" {
		return fmt.Errorf("PAYPAL_CLIENT_SECRET is required")
	}

	return nil
}
