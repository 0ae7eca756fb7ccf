// Package provider adapts hosted chat-completion APIs to a single Model interface.
//
// Clients are built from an explicit Config, never read the environment on their
// own, do not retry, and do not cache. A missing credential is reported by
// Complete rather than at construction so callers see every provider failure at
// the same point.
package provider

import (
	"context"
	"fmt"
	"strings"
)

// Temperature is the sampling temperature used for every provider.
const Temperature = 0.7

// Kind identifies a model backend.
type Kind int

const (
	Gemini Kind = iota
	Anthropic
	OpenAI
)

var kindTokens = map[Kind]string{
	Gemini:    "gemini",
	Anthropic: "anthropic",
	OpenAI:    "openai",
}

// Kinds lists every supported provider.
func Kinds() []Kind {
	return []Kind{Gemini, Anthropic, OpenAI}
}

// ParseKind matches a provider token case-insensitively. Unknown tokens are rejected.
func ParseKind(s string) (Kind, error) {
	token := strings.ToLower(strings.TrimSpace(s))
	for k, t := range kindTokens {
		if t == token {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown provider %q (want gemini, anthropic or openai)", s)
}

func (k Kind) String() string {
	if t, ok := kindTokens[k]; ok {
		return t
	}
	return fmt.Sprintf("provider(%d)", int(k))
}

// Request is a single rendered prompt. Schema is optional; providers that
// support structured output use it to constrain the response.
type Request struct {
	Prompt     string
	SchemaName string
	Schema     map[string]any
}

// Model sends one prompt and returns the raw response text.
type Model interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// ModelFunc adapts a function to Model.
type ModelFunc func(ctx context.Context, req Request) (string, error)

func (f ModelFunc) Complete(ctx context.Context, req Request) (string, error) {
	return f(ctx, req)
}

var constructors = map[Kind]func(Settings) Model{
	Gemini:    func(s Settings) Model { return NewGemini(s) },
	Anthropic: func(s Settings) Model { return NewAnthropic(s) },
	OpenAI:    func(s Settings) Model { return NewOpenAI(s) },
}

// New returns the client for kind configured from cfg.
func New(kind Kind, cfg Config) (Model, error) {
	ctor, ok := constructors[kind]
	if !ok {
		return nil, fmt.Errorf("no client for %s", kind)
	}
	return ctor(cfg.For(kind)), nil
}
