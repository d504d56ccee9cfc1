package env

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"personal-brand-crew/internal/application/port/output"

	"github.com/joho/godotenv"
)

var _ output.ConfigPort = (*EnvService)(nil)

const (
	KeyOpenAIAPIKey  = "OPENAI_API_KEY"
	KeyOpenAIModel   = "OPENAI_MODEL_NAME"
	KeyOpenAIBaseURL = "OPENAI_BASE_URL"
	KeySerpAPIKey    = "SERPAPI_API_KEY"
	KeyLogLevel      = "LOG_LEVEL"
)

type EnvService struct {
	lookup func(string) (string, bool)
}

// NewEnvService loads .env and then overlays .env.<APP_ENV>.
func NewEnvService() *EnvService {
	appEnv := os.Getenv("APP_ENV")
	if appEnv == "" {
		appEnv = "dev"
	}

	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Info: no .env file with secrets found (this is OK for CI/CD)")
	}

	envFile := fmt.Sprintf(".env.%s", appEnv)
	if err := godotenv.Overload(envFile); err != nil {
		log.Printf("Info: no %s overrides loaded", envFile)
	}

	return &EnvService{lookup: os.LookupEnv}
}

// NewFromMap serves values from m only; the process environment is ignored.
func NewFromMap(m map[string]string) *EnvService {
	return &EnvService{lookup: func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}}
}

// NewFromFile parses a dotenv file without touching the process environment.
func NewFromFile(path string) (*EnvService, error) {
	m, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return NewFromMap(m), nil
}

func (e *EnvService) Get(key string) string {
	v, _ := e.lookup(key)
	return v
}

func (e *EnvService) Require(key string) (string, error) {
	val := e.Get(key)
	if val == "" {
		return "", fmt.Errorf("ENV %s is missing", key)
	}
	return val, nil
}

func (e *EnvService) GetWithDefault(key string, defaultValue string) string {
	if val := e.Get(key); val != "" {
		return val
	}
	return defaultValue
}

func (e *EnvService) GetBool(key string, defaultValue bool) bool {
	val := e.Get(key)
	if val == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func (e *EnvService) GetInt(key string, defaultValue int) int {
	val := e.Get(key)
	if val == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return parsed
}
