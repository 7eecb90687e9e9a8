// Copyright (c) 2025 BeefMusic.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package assistant is the client for the BeefMusic composing assistant,
// an OpenAI-compatible chat-completions API with a fixed Spanish,
// urban-music system prompt. The base URL is configurable so a local
// compatible server works in development.
package assistant
