package constants

import "errors"

// Configuration errors.
var (
	ErrUnknownService     = errors.New("unknown service")
	ErrUnknownConfigKey   = errors.New("unknown configuration key")
	ErrEmptyToken         = errors.New("token must not be empty")
	ErrInvalidOutput      = errors.New("invalid output format, use table, json or yaml")
	ErrNotATerminal       = errors.New("stdin is not a terminal, pass --token instead")
	ErrNoWorkflowProvided = errors.New("no workflow JSON provided, use --file or pipe it on stdin")
)

// Validation errors.
var (
	ErrInvalidWebhookID    = errors.New("invalid webhook id")
	ErrInvalidWebhookTopic = errors.New("invalid webhook topic")
	ErrURLRequired         = errors.New("--url flag is required")
	ErrTopicRequired       = errors.New("--topic flag is required")
)
