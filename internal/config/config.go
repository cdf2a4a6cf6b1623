package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	HTTPAddr      string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	RedisHost     string
	RedisPort     string
	SessionSecret string
	UploadDir     string
	GinMode       string
	LogLevel      string
	LogJSON       bool
}

// Load reads configuration from the environment with APP_-prefixed
// overrides, e.g. APP_DB_HOST, APP_UPLOAD_DIR.
func Load() *Config {
	v := viper.New()
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("http_addr", ":8080")
	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", "3306")
	v.SetDefault("db_user", "hosteluser")
	v.SetDefault("db_password", "hostelpassword")
	v.SetDefault("db_name", "hostel_management")
	v.SetDefault("redis_host", "localhost")
	v.SetDefault("redis_port", "6379")
	v.SetDefault("session_secret", "default-secret-key-change-me")
	v.SetDefault("upload_dir", "static/uploads")
	v.SetDefault("gin_mode", "debug")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_json", false)

	return &Config{
		HTTPAddr:      v.GetString("http_addr"),
		DBHost:        v.GetString("db_host"),
		DBPort:        v.GetString("db_port"),
		DBUser:        v.GetString("db_user"),
		DBPassword:    v.GetString("db_password"),
		DBName:        v.GetString("db_name"),
		RedisHost:     v.GetString("redis_host"),
		RedisPort:     v.GetString("redis_port"),
		SessionSecret: v.GetString("session_secret"),
		UploadDir:     v.GetString("upload_dir"),
		GinMode:       v.GetString("gin_mode"),
		LogLevel:      v.GetString("log_level"),
		LogJSON:       v.GetBool("log_json"),
	}
}
