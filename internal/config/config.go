package config

import (
	"fmt"
	"os"
)

type Config struct {
	Port string

	// Translation service (DashScope, OpenAI-compatible endpoint)
	DashScopeKey     string
	DashScopeBaseURL string
	TranslateModel   string

	// Speech recognition service
	ASRProvider string
	ASRAPIURL   string
	ASRModel    string
	ASRDevice   string // "gpu"/"cpu"; empty means auto-detect
	OpenAIKey   string

	// Working directories
	WorkDir   string // normalized audio artifacts
	UploadDir string // raw uploaded files
	ReportDir string // generated markdown reports
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:             getEnv("PORT", "8080"),
		DashScopeKey:     os.Getenv("DASHSCOPE_API_KEY"),
		DashScopeBaseURL: getEnv("DASHSCOPE_BASE_URL", "https://dashscope-intl.aliyuncs.com/compatible-mode/v1"),
		TranslateModel:   getEnv("TRANSLATE_MODEL", "qwen-plus"),
		ASRProvider:      getEnv("ASR_PROVIDER", "paraformer"),
		ASRAPIURL:        getEnv("ASR_API_URL", "http://localhost:9000/asr"),
		ASRModel:         getEnv("ASR_MODEL", "iic/speech_paraformer-large_asr_nat-zh-cn-16k-common-vocab8404-pytorch"),
		ASRDevice:        os.Getenv("ASR_DEVICE"),
		OpenAIKey:        os.Getenv("OPENAI_API_KEY"),
		WorkDir:          getEnv("WORK_DIR", "work"),
		UploadDir:        getEnv("UPLOAD_DIR", "uploads"),
		ReportDir:        getEnv("REPORT_DIR", "."),
	}

	// Validate required environment variables. The translation credential is
	// checked up front even though individual requests may skip translation.
	if cfg.DashScopeKey == "" {
		return nil, fmt.Errorf("DASHSCOPE_API_KEY is required. Get your key at https://dashscope-intl.aliyuncs.com/compatible-mode/v1 and set it as environment variable:\n  Linux/Mac: export DASHSCOPE_API_KEY=\"your_key\"\n  Windows PowerShell: $env:DASHSCOPE_API_KEY=\"your_key\"")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
