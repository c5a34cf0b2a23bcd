package classifier

import "customer-support-router/internal/model"

// Log prefixes
const (
	LogPrefixClassify = "internal.classifier.Classify"
)

// PromptClassifierSystem is the single system instruction sent with every query.
const PromptClassifierSystem = `You are a customer support router. Classify the incoming query into exactly ONE category:

- REFUND_REQUEST: refunds, returns, refund status questions
- TECHNICAL_SUPPORT: technical issues, bugs, app crashes, login problems
- GENERAL_CHIT_CHAT: everything else (greetings, compliments, general questions)

Respond with ONLY the category name in ALL CAPS. Nothing else.`

// Classifier configuration
const (
	DefaultMaxTokens = 10
	FallbackIntent   = model.IntentGeneralChitChat
)

// Fallback reasons
const (
	ReasonProviderError = "provider_error"
	ReasonEmptyResponse = "empty_response"
	ReasonUnknownLabel  = "unknown_label"
)
