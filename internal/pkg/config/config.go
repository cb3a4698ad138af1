package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server  ServerConfig
	Engine  EngineConfig
	Upload  UploadConfig
	Cleanup CleanupConfig
}

type ServerConfig struct {
	Port string
	Host string
}

type EngineConfig struct {
	FFmpegPath string
	WorkDir    string
}

type UploadConfig struct {
	MaxFileSize int64 // bytes
}

type CleanupConfig struct {
	MaxAge time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "3000"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Engine: EngineConfig{
			FFmpegPath: getEnv("ENGINE_FFMPEG_PATH", "ffmpeg"),
			WorkDir:    getEnv("ENGINE_WORK_DIR", "engine_workspace"),
		},
		Upload: UploadConfig{
			MaxFileSize: getEnvAsInt64("UPLOAD_MAX_FILE_SIZE", 512*1024*1024), // 512MB
		},
		Cleanup: CleanupConfig{
			MaxAge: getEnvAsDuration("CLEANUP_MAX_AGE", time.Hour),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
