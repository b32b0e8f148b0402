// Package models lists the OpenAI chat models usable for word translation
// with the configured API key.
package models
