// Package observability provides hooks for metrics, tracing, and logging.
//
// Consumers register hooks at startup to receive events about bouquet
// generation, artifact rendering, cache lookups and mail delivery. Every
// hook defaults to a no-op, so libraries can call them unconditionally.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    observability.SetMailHooks(&myMailHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Pipeline().OnGenerateStart(ctx, seed)
//	// ... compose the bouquet ...
//	observability.Pipeline().OnGenerateComplete(ctx, seed, blooms, duration)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the generate → render pipeline.
type PipelineHooks interface {
	// Generate events
	OnGenerateStart(ctx context.Context, seed string)
	OnGenerateComplete(ctx context.Context, seed string, blooms int, duration time.Duration)

	// Render events
	OnRenderStart(ctx context.Context, seed string, formats []string)
	OnRenderComplete(ctx context.Context, seed string, formats []string, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from artifact cache operations. format is the
// artifact format (png, pdf).
type CacheHooks interface {
	OnCacheHit(ctx context.Context, format string)
	OnCacheMiss(ctx context.Context, format string)
	OnCacheSet(ctx context.Context, format string, size int)
}

// =============================================================================
// Mail Hooks
// =============================================================================

// MailHooks receives events from SMTP delivery.
type MailHooks interface {
	// OnSendAttempt records one delivery attempt, starting at 1.
	OnSendAttempt(ctx context.Context, host string, attempt int)

	// OnSendComplete records the final outcome after retries.
	OnSendComplete(ctx context.Context, host string, size int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnGenerateStart(context.Context, string)                                   {}
func (NoopPipelineHooks) OnGenerateComplete(context.Context, string, int, time.Duration)            {}
func (NoopPipelineHooks) OnRenderStart(context.Context, string, []string)                           {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, string, []string, time.Duration, error) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopMailHooks is a no-op implementation of MailHooks.
type NoopMailHooks struct{}

func (NoopMailHooks) OnSendAttempt(context.Context, string, int)                         {}
func (NoopMailHooks) OnSendComplete(context.Context, string, int, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	cacheHooks    CacheHooks    = NoopCacheHooks{}
	mailHooks     MailHooks     = NoopMailHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any pipeline operations.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// SetMailHooks registers custom mail hooks.
func SetMailHooks(h MailHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		mailHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Mail returns the registered mail hooks.
func Mail() MailHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return mailHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
	cacheHooks = NoopCacheHooks{}
	mailHooks = NoopMailHooks{}
}
