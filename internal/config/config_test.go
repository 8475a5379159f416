package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_RequiresDashScopeKey(t *testing.T) {
	t.Setenv("DASHSCOPE_API_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DASHSCOPE_API_KEY is required")
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DASHSCOPE_API_KEY", "sk-test")
	t.Setenv("PORT", "")
	t.Setenv("ASR_PROVIDER", "")
	t.Setenv("TRANSLATE_MODEL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "sk-test", cfg.DashScopeKey)
	assert.Equal(t, "https://dashscope-intl.aliyuncs.com/compatible-mode/v1", cfg.DashScopeBaseURL)
	assert.Equal(t, "qwen-plus", cfg.TranslateModel)
	assert.Equal(t, "paraformer", cfg.ASRProvider)
	assert.Equal(t, ".", cfg.ReportDir)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DASHSCOPE_API_KEY", "sk-test")
	t.Setenv("PORT", "9999")
	t.Setenv("ASR_PROVIDER", "whisper")
	t.Setenv("ASR_DEVICE", "gpu")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9999", cfg.Port)
	assert.Equal(t, "whisper", cfg.ASRProvider)
	assert.Equal(t, "gpu", cfg.ASRDevice)
}
