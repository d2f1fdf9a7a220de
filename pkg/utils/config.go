package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Pricing  PricingConfig
	Admin    AdminConfig
	OTP      OTPConfig
}

type AppConfig struct {
	Name         string
	Port         string
	Debug        bool
	LogPath      string
	AirportsFile string
	ImportDir    string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type PricingConfig struct {
	BaseSeatPrice int
}

type AdminConfig struct {
	// OwnerEmail is the single address that registers as admin.
	OwnerEmail string
}

type OTPConfig struct {
	Length int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "airport-ops")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("AIRPORTS_FILE", "airports.json")
	viper.SetDefault("IMPORT_DIR", ".")
	viper.SetDefault("BASE_SEAT_PRICE", 5000)
	viper.SetDefault("OWNER_ADMIN_EMAIL", "admin@mail.com")
	viper.SetDefault("OTP_LENGTH", 6)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:         viper.GetString("APP_NAME"),
			Port:         viper.GetString("PORT"),
			Debug:        viper.GetBool("DEBUG"),
			LogPath:      viper.GetString("LOG_PATH"),
			AirportsFile: viper.GetString("AIRPORTS_FILE"),
			ImportDir:    viper.GetString("IMPORT_DIR"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Pricing: PricingConfig{
			BaseSeatPrice: viper.GetInt("BASE_SEAT_PRICE"),
		},
		Admin: AdminConfig{
			OwnerEmail: viper.GetString("OWNER_ADMIN_EMAIL"),
		},
		OTP: OTPConfig{
			Length: viper.GetInt("OTP_LENGTH"),
		},
	}

	return config, nil
}
