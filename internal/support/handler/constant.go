package handler

import "time"

// Log prefixes
const (
	LogPrefixRefund      = "internal.support.handler.Refund"
	LogPrefixTechSupport = "internal.support.handler.TechSupport"
	LogPrefixChat        = "internal.support.handler.Chat"
)

// Refund responses
const (
	MsgOrderIDMissing    = "I could not identify an order id in your message. Please include it, for example ORD12345 or #12345."
	MsgOrderNotFound     = "Order not found"
	msgRefundStatus      = "Refund status for order %s: %s"
	msgRefundUnavailable = "Refund status is temporarily unavailable for order %s. Please try again later."
)

// Technical support defaults
const (
	DefaultExternalTimeout  = 5 * time.Second
	DefaultFallbackTicketID = "TECH-PENDING"
	DefaultFallbackSolution = "Please try restarting the application and clearing the cache."
	msgTicketFooter         = "%s\n\nYour support ticket: %s"
)

// General chat defaults
const (
	PromptChatSystem     = "You are a friendly customer support agent. Answer briefly and helpfully."
	DefaultChatFallback  = "Thanks for reaching out! I'm having trouble responding right now, but a member of our support team will get back to you shortly."
	DefaultChatMaxTokens = 300
)

// Fallback reasons
const (
	reasonLookupFailed  = "lookup_failed"
	reasonCallFailed    = "call_failed"
	reasonCircuitOpen   = "circuit_open"
	reasonProviderError = "provider_error"
	reasonEmptyResponse = "empty_response"
)
