package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`
	RedisDraftDB   int    `mapstructure:"REDIS_DRAFT_DB"`

	// Identity provider (Keycloak) settings.
	IdpTokenURL string `mapstructure:"IDP_TOKEN_URL"`
	IdpClientID string `mapstructure:"IDP_CLIENT_ID"`

	// Token refresh cycle, in seconds.
	TokenRefreshInterval int `mapstructure:"TOKEN_REFRESH_INTERVAL"`

	// Backend service base URLs.
	UserAPIURL           string `mapstructure:"USER_API_URL"`
	PatientAPIURL        string `mapstructure:"PATIENT_API_URL"`
	DoctorAPIURL         string `mapstructure:"DOCTOR_API_URL"`
	BookingAPIURL        string `mapstructure:"BOOKING_API_URL"`
	AvailabilityAPIURL   string `mapstructure:"AVAILABILITY_API_URL"`
	SpecializationAPIURL string `mapstructure:"SPECIALIZATION_API_URL"`
	HospitalAPIURL       string `mapstructure:"HOSPITAL_API_URL"`
	NewsAPIURL           string `mapstructure:"NEWS_API_URL"`
	HealthPackageAPIURL  string `mapstructure:"HEALTH_PACKAGE_API_URL"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8085")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("REDIS_DRAFT_DB", 1)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("IDP_TOKEN_URL", "http://localhost:8080/realms/hope-health/protocol/openid-connect/token")
	viper.SetDefault("IDP_CLIENT_ID", "admin-portal")
	viper.SetDefault("TOKEN_REFRESH_INTERVAL", 240)
	viper.SetDefault("USER_API_URL", "http://localhost:9091/api/users")
	viper.SetDefault("PATIENT_API_URL", "http://localhost:9092/api/patients")
	viper.SetDefault("DOCTOR_API_URL", "http://localhost:9093/api/doctors")
	viper.SetDefault("BOOKING_API_URL", "http://localhost:9094/api/bookings")
	viper.SetDefault("AVAILABILITY_API_URL", "http://localhost:9094/api/availabilities")
	viper.SetDefault("SPECIALIZATION_API_URL", "http://localhost:9093/api/specializations")
	viper.SetDefault("HOSPITAL_API_URL", "http://localhost:9093/api/hospitals")
	viper.SetDefault("NEWS_API_URL", "http://localhost:9096/api/news")
	viper.SetDefault("HEALTH_PACKAGE_API_URL", "http://localhost:9095/api/health-packages")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
