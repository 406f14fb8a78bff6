package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	p := NoopPipelineHooks{}
	p.OnResolveStart(ctx, "junit:junit:4.13", "https://repo1.maven.org/maven2/junit/junit/4.13/junit-4.13.pom")
	p.OnFetchComplete(ctx, "https://repo1.maven.org/maven2/junit/junit/4.13/junit-4.13.pom", 1024, time.Second, nil)
	p.OnResolveComplete(ctx, "junit:junit:4.13", 1, time.Second, nil)

	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "GET", "repo1.maven.org", "/maven2/junit/junit/4.13/junit-4.13.pom")
	h.OnResponse(ctx, "GET", "repo1.maven.org", "/maven2/junit/junit/4.13/junit-4.13.pom", 200, time.Second)
	h.OnError(ctx, "GET", "repo1.maven.org", "/maven2/junit/junit/4.13/junit-4.13.pom", nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() should return NoopPipelineHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	customPipeline := &testPipelineHooks{}
	SetPipelineHooks(customPipeline)
	if Pipeline() != customPipeline {
		t.Error("SetPipelineHooks should set custom hooks")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Reset() should restore NoopPipelineHooks")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("Reset() should restore NoopHTTPHooks")
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
type testHTTPHooks struct{ NoopHTTPHooks }
