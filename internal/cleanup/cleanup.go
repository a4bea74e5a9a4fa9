// Package cleanup sends career excerpts through a text-generation provider
// for OCR noise removal.
package cleanup

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/parldata/bioharvest/internal/llm"
	"github.com/parldata/bioharvest/internal/logger"
)

// Result is the outcome of a cleanup call: either cleaned text or an error
// message. Callers must check OK before reading Text so an error message is
// never mistaken for content.
type Result struct {
	text   string
	errMsg string
}

// Ok wraps cleaned text.
func Ok(text string) Result {
	return Result{text: text}
}

// Err wraps a failure message.
func Err(msg string) Result {
	return Result{errMsg: msg}
}

// OK reports whether the call produced content.
func (r Result) OK() bool {
	return r.errMsg == ""
}

// Text returns the cleaned content. Empty for error results.
func (r Result) Text() string {
	return r.text
}

// ErrMessage returns the failure message. Empty for content results.
func (r Result) ErrMessage() string {
	return r.errMsg
}

// Cleaner rewrites excerpts using a fixed prompt template and a provider.
type Cleaner struct {
	provider llm.Provider
	template string

	// unavailable is set when no provider could be configured (missing or
	// empty API key). Every call then degrades to an Err result instead
	// of failing the run.
	unavailable string
}

// New creates a Cleaner from a provider and the prompt template at path.
// A missing template is a hard error: the pipeline must abort before
// processing any file.
func New(provider llm.Provider, templatePath string) (*Cleaner, error) {
	template, err := LoadTemplate(templatePath)
	if err != nil {
		return nil, err
	}
	return &Cleaner{provider: provider, template: template}, nil
}

// Unavailable creates a Cleaner whose every call returns Err(msg). Used when
// the API key file is missing or empty.
func Unavailable(msg string) *Cleaner {
	return &Cleaner{unavailable: msg}
}

// LoadTemplate reads the fixed cleanup prompt from path.
func LoadTemplate(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read prompt template: %w", err)
	}
	template := strings.TrimSpace(string(data))
	if template == "" {
		return "", fmt.Errorf("prompt template %s is empty", path)
	}
	return template, nil
}

// Clean sends one excerpt through the provider. Empty excerpts pass through
// unchanged. Any failure is returned as an Err result, never as a Go error.
func (c *Cleaner) Clean(ctx context.Context, excerpt string) Result {
	if strings.TrimSpace(excerpt) == "" {
		return Ok(excerpt)
	}
	if c.unavailable != "" {
		return Err(c.unavailable)
	}

	resp, err := c.provider.Complete(ctx, llm.CompletionRequest{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: c.template + "\n\n" + excerpt},
		},
	})
	if err != nil {
		logger.Warn("cleanup call failed", "provider", c.provider.Name(), "error", err)
		return Err(fmt.Sprintf("An error occurred while generating the response: %v", err))
	}

	return Ok(strings.TrimSpace(resp.Content))
}
