// Package openai implements the ai.Embedder interface against
// OpenAI-compatible embedding APIs, including local servers such as Ollama,
// LocalAI and vLLM.
package openai
