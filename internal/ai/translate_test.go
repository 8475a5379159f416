package ai

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenBudget_FloorForShortText(t *testing.T) {
	assert.Equal(t, 512, TokenBudget(""))
	assert.Equal(t, 512, TokenBudget("短"))
	assert.Equal(t, 512, TokenBudget(strings.Repeat("a", 393))) // 393*1.3 = 510.9
}

func TestTokenBudget_ScalesInMidRange(t *testing.T) {
	// 1000 chars * 1.3 = 1300
	assert.Equal(t, 1300, TokenBudget(strings.Repeat("a", 1000)))
	// 500 chars * 1.3 = 650
	assert.Equal(t, 650, TokenBudget(strings.Repeat("a", 500)))
	// rounding: 401*1.3 = 521.3 -> 521; 397*1.3 = 516.1 -> 516
	assert.Equal(t, 521, TokenBudget(strings.Repeat("a", 401)))
	assert.Equal(t, 516, TokenBudget(strings.Repeat("a", 397)))
}

func TestTokenBudget_CapForLongText(t *testing.T) {
	assert.Equal(t, 2048, TokenBudget(strings.Repeat("a", 1576))) // 1576*1.3 = 2048.8
	assert.Equal(t, 2048, TokenBudget(strings.Repeat("a", 10000)))
}

func TestTokenBudget_CountsRunesNotBytes(t *testing.T) {
	// 1000 CJK runes are 3000 bytes; the budget must follow the rune count
	assert.Equal(t, 1300, TokenBudget(strings.Repeat("中", 1000)))
}

func TestTokenBudget_AlwaysWithinBounds(t *testing.T) {
	for _, n := range []int{0, 1, 100, 393, 394, 1000, 1575, 1576, 50000} {
		budget := TokenBudget(strings.Repeat("x", n))
		assert.GreaterOrEqual(t, budget, 512)
		assert.LessOrEqual(t, budget, 2048)
	}
}

func TestBuildPrompt_ContainsInstructionAndText(t *testing.T) {
	prompt := BuildPrompt("你好世界")

	assert.True(t, strings.HasPrefix(prompt,
		"Translate the following Chinese text into fluent, natural English. Be complete and do not summarize:\n\n"))
	assert.True(t, strings.HasSuffix(prompt, "你好世界"))
}

func TestResult_OutputFoldsFailure(t *testing.T) {
	ok := Result{Text: "Hello world"}
	assert.Equal(t, "Hello world", ok.Output())

	failed := Result{Err: errors.New("connection refused")}
	assert.Equal(t, "Translation failed: connection refused", failed.Output())
}
