// Package translation provides single-word translation between any two
// languages through pluggable providers (Google web endpoint, OpenAI,
// Gemini), optional circuit breaking and rate limiting around them, and the
// persistent per language pair translation cache.
package translation
