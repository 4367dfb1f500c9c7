package configs

import (
	"errors"

	"fintrack/internal/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	DB struct {
		DSN string `mapstructure:"dsn"`
	} `mapstructure:"db"`
	JWT struct {
		Secret     string `mapstructure:"secret"`
		TTLMinutes int    `mapstructure:"ttl_minutes"`
	} `mapstructure:"jwt"`
	Bcrypt struct {
		Cost int `mapstructure:"cost"`
	} `mapstructure:"bcrypt"`
}

var AppConfig Config

// LoadConfig reads configs/config.yaml, a local .env file and the process
// environment, in increasing priority. A missing yaml file is fine as long
// as the environment supplies the required keys.
func LoadConfig() {
	// .env is a developer convenience; absent in production.
	_ = godotenv.Load()

	viper.AddConfigPath("./configs")
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("jwt.ttl_minutes", 60)
	viper.SetDefault("bcrypt.cost", bcrypt.DefaultCost)

	viper.AutomaticEnv()
	_ = viper.BindEnv("db.dsn", "DB_DSN")
	_ = viper.BindEnv("jwt.secret", "JWT_SECRET")
	_ = viper.BindEnv("server.port", "PORT")

	var fileLookupError viper.ConfigFileNotFoundError
	if err := viper.ReadInConfig(); err != nil && !errors.As(err, &fileLookupError) {
		logger.Log.Fatal("failed to read config", zap.Error(err))
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		logger.Log.Fatal("failed to unmarshal config", zap.Error(err))
	}

	if AppConfig.JWT.Secret == "" {
		logger.Log.Fatal("jwt.secret is required")
	}
	if AppConfig.DB.DSN == "" {
		logger.Log.Fatal("db.dsn is required")
	}
}
