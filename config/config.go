package config

import (
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Server     ServerConfig
	Mongo      MongoConfig
	Redis      RedisConfig
	Cloudinary CloudinaryConfig
}

type ServerConfig struct {
	Port    string `env:"PORT" envDefault:"8080"`
	GinMode string `env:"GIN_MODE" envDefault:"debug"`
}

type MongoConfig struct {
	URI      string `env:"MONGODB_URI,required,notEmpty"`
	Database string `env:"MONGODB_DATABASE" envDefault:"eventdeck"`
}

type RedisConfig struct {
	Host     string `env:"REDIS_HOST" envDefault:"localhost"`
	Port     string `env:"REDIS_PORT" envDefault:"6379"`
	Password string `env:"REDIS_PASSWORD" envDefault:""`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

// CloudinaryConfig 圖片上傳憑證，三個值缺一不可
type CloudinaryConfig struct {
	CloudName string `env:"CLOUDINARY_CLOUD_NAME,required,notEmpty"`
	APIKey    string `env:"CLOUDINARY_API_KEY,required,notEmpty"`
	APISecret string `env:"CLOUDINARY_API_SECRET,required,notEmpty"`
}

// Load 解析環境變數。必填值缺少時回傳錯誤，由 main 作為致命錯誤處理
func Load() (*Config, error) {
	// production 以外環境允許從 .env 載入
	if os.Getenv("GO_ENV") != "production" {
		_ = godotenv.Load()
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
