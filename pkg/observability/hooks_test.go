package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	p := NoopPipelineHooks{}
	p.OnGenerateStart(ctx, "2024-01-01")
	p.OnGenerateComplete(ctx, "2024-01-01", 14, time.Millisecond)
	p.OnRenderStart(ctx, "2024-01-01", []string{"svg"})
	p.OnRenderComplete(ctx, "2024-01-01", []string{"svg"}, time.Second, nil)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "png")
	c.OnCacheMiss(ctx, "pdf")
	c.OnCacheSet(ctx, "png", 1024)

	m := NoopMailHooks{}
	m.OnSendAttempt(ctx, "smtp.gmail.com", 1)
	m.OnSendComplete(ctx, "smtp.gmail.com", 2048, time.Second, nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() should return NoopPipelineHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := Mail().(NoopMailHooks); !ok {
		t.Error("Mail() should return NoopMailHooks by default")
	}

	customPipeline := &testPipelineHooks{}
	SetPipelineHooks(customPipeline)
	if Pipeline() != customPipeline {
		t.Error("SetPipelineHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	customMail := &testMailHooks{}
	SetMailHooks(customMail)
	if Mail() != customMail {
		t.Error("SetMailHooks should set custom hooks")
	}

	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Reset() should restore NoopPipelineHooks")
	}
	if _, ok := Mail().(NoopMailHooks); !ok {
		t.Error("Reset() should restore NoopMailHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testPipelineHooks{}
	SetPipelineHooks(custom)
	SetPipelineHooks(nil)

	if Pipeline() != custom {
		t.Error("SetPipelineHooks(nil) should be ignored")
	}

	Reset()
}

type testPipelineHooks struct{ NoopPipelineHooks }
type testCacheHooks struct{ NoopCacheHooks }
type testMailHooks struct{ NoopMailHooks }
