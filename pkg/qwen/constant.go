package qwen

import "time"

const (
	DefaultModel   = "qwen-plus"
	DefaultBaseURL = "https://dashscope-intl.aliyuncs.com/compatible-mode/v1"
	DefaultTimeout = 30 * time.Second

	chatCompletionsPath = "/chat/completions"
)
