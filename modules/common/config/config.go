package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config 구조체 - 모든 환경변수를 담음
type Config struct {
	// App
	AppEnv string

	// Redis (비어있으면 AI 사용량 제한 없음)
	RedisHost     string
	RedisPort     string
	RedisUsername string
	RedisPassword string
	RedisUseTLS   bool

	// Supabase
	SupabaseURL        string
	SupabaseServiceKey string
	SupabaseBucket     string

	// Gemini API (비어있으면 템플릿 플래너만 사용)
	GeminiAPIKey string
	GeminiModel  string

	// AI 플랜 세션당 사용량 (0 = 무제한)
	AIPlanQuotaPerSession int

	// Server
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	envFileLoaded bool
}

// LoadConfig - .env(있으면) + 환경변수 로드
// .env 파일 유무는 EnvFileLoaded로 확인
func LoadConfig() (*Config, error) {
	envErr := godotenv.Load()

	cfg := &Config{
		AppEnv: getEnv("APP_ENV", "production"),

		RedisHost:     getEnv("REDIS_HOST", ""),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisUsername: getEnv("REDIS_USERNAME", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisUseTLS:   getEnvBool("REDIS_USE_TLS", false),

		SupabaseURL:        strings.TrimRight(getEnv("SUPABASE_URL", ""), "/"),
		SupabaseServiceKey: getEnv("SUPABASE_SERVICE_KEY", ""),
		SupabaseBucket:     getEnv("SUPABASE_BUCKET", "story-album"),

		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.0-flash-lite"),

		AIPlanQuotaPerSession: getEnvInt("AI_PLAN_QUOTA_PER_SESSION", 0),

		Port:         getEnv("PORT", "8080"),
		ReadTimeout:  time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 30)) * time.Second,
		WriteTimeout: time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 120)) * time.Second,
	}
	cfg.envFileLoaded = envErr == nil

	if cfg.AIPlanQuotaPerSession < 0 {
		return nil, fmt.Errorf("AI_PLAN_QUOTA_PER_SESSION must be >= 0, got %d", cfg.AIPlanQuotaPerSession)
	}

	return cfg, nil
}

// Validate - serve 실행에 필요한 필수 환경변수 검증
func (c *Config) Validate() error {
	var errs []error
	if c.SupabaseURL == "" {
		errs = append(errs, errors.New("SUPABASE_URL is required"))
	}
	if c.SupabaseServiceKey == "" {
		errs = append(errs, errors.New("SUPABASE_SERVICE_KEY is required"))
	}
	if c.Port == "" {
		errs = append(errs, errors.New("PORT is required"))
	}
	return errors.Join(errs...)
}

// EnvFileLoaded - .env 파일에서 값을 읽었는지 여부
func (c *Config) EnvFileLoaded() bool {
	return c.envFileLoaded
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) GeminiEnabled() bool {
	return c.GeminiAPIKey != ""
}

func (c *Config) RedisEnabled() bool {
	return c.RedisHost != ""
}

// GetRedisAddr - Redis 연결 문자열 생성
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}

// getEnv - 환경변수 가져오기 (기본값 지원)
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt - 정수 환경변수 (파싱 실패 시 기본값)
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getEnvBool - bool 환경변수 (파싱 실패 시 기본값)
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
