package openaicompat

import "time"

// Known vendor endpoints speaking the chat-completions protocol.
const (
	QwenBaseURL     = "https://dashscope-intl.aliyuncs.com/compatible-mode/v1"
	DeepSeekBaseURL = "https://api.deepseek.com/v1"
	OpenAIBaseURL   = "https://api.openai.com/v1"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 60 * time.Second

	// MIMETypeJSON requests a JSON object response.
	MIMETypeJSON = "application/json"
)
