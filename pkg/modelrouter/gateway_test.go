package modelrouter_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"cortex-workspace/pkg/modelrouter"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockProvider struct {
	name    string
	timeout time.Duration
	result  *modelrouter.Result
	err     error
	delay   time.Duration
}

func (m *mockProvider) Complete(ctx context.Context, req *modelrouter.Request) (*modelrouter.Result, error) {
	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

func (m *mockProvider) Name() string { return m.name }

func (m *mockProvider) Timeout() time.Duration {
	if m.timeout == 0 {
		return time.Second
	}
	return m.timeout
}

func defaults() modelrouter.Defaults {
	return modelrouter.Defaults{
		TaskModel: modelrouter.ModelKimiK2Latest,
		ChatModel: modelrouter.ModelKimiK2Latest,
	}
}

func TestNewGateway_RejectsUnknownDefaults(t *testing.T) {
	_, err := modelrouter.NewGateway(nil, modelrouter.Defaults{
		TaskModel: "no-such-model",
		ChatModel: modelrouter.ModelKimiK2Latest,
	}, &mockLogger{})
	if !errors.Is(err, modelrouter.ErrUnsupportedModel) {
		t.Fatalf("err = %v, want ErrUnsupportedModel", err)
	}
}

func TestComplete_UnsupportedModel(t *testing.T) {
	gw, err := modelrouter.NewGateway(nil, defaults(), &mockLogger{})
	if err != nil {
		t.Fatalf("NewGateway: %v", err)
	}

	_, err = gw.Complete(context.Background(), &modelrouter.Request{Model: "made-up"})
	if !errors.Is(err, modelrouter.ErrUnsupportedModel) {
		t.Fatalf("err = %v, want ErrUnsupportedModel", err)
	}
}

func TestComplete_ProviderNotConfigured(t *testing.T) {
	// Registry knows the model, but no kimi adapter is wired.
	gw, err := modelrouter.NewGateway(map[modelrouter.Family]modelrouter.Provider{}, defaults(), &mockLogger{})
	if err != nil {
		t.Fatalf("NewGateway: %v", err)
	}

	_, err = gw.Complete(context.Background(), &modelrouter.Request{Model: modelrouter.ModelKimiK2Latest})
	if !errors.Is(err, modelrouter.ErrProviderNotConfigured) {
		t.Fatalf("err = %v, want ErrProviderNotConfigured", err)
	}

	var perr *modelrouter.ProviderError
	if !errors.As(err, &perr) {
		t.Fatal("expected a ProviderError wrapper")
	}
	if perr.Provider != "kimi" {
		t.Errorf("provider = %q, want kimi", perr.Provider)
	}
}

func TestComplete_Success(t *testing.T) {
	provider := &mockProvider{
		name: "kimi",
		result: &modelrouter.Result{
			Content:      "ok",
			Model:        modelrouter.ModelKimiK2Latest,
			FinishReason: modelrouter.FinishStop,
		},
	}
	gw, err := modelrouter.NewGateway(map[modelrouter.Family]modelrouter.Provider{
		modelrouter.FamilyKimi: provider,
	}, defaults(), &mockLogger{})
	if err != nil {
		t.Fatalf("NewGateway: %v", err)
	}

	result, err := gw.Complete(context.Background(), &modelrouter.Request{Model: modelrouter.ModelKimiK2Latest})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if result.Content != "ok" {
		t.Errorf("content = %q", result.Content)
	}
}

func TestComplete_TimeoutClassified(t *testing.T) {
	provider := &mockProvider{
		name:    "kimi",
		timeout: 20 * time.Millisecond,
		delay:   200 * time.Millisecond,
	}
	gw, err := modelrouter.NewGateway(map[modelrouter.Family]modelrouter.Provider{
		modelrouter.FamilyKimi: provider,
	}, defaults(), &mockLogger{})
	if err != nil {
		t.Fatalf("NewGateway: %v", err)
	}

	_, err = gw.Complete(context.Background(), &modelrouter.Request{Model: modelrouter.ModelKimiK2Latest})
	if !errors.Is(err, modelrouter.ErrTimeout) {
		t.Fatalf("err = %v, want ErrTimeout", err)
	}
}

func TestComplete_ProtocolClassified(t *testing.T) {
	provider := &mockProvider{
		name: "openrouter",
		err:  errors.New("status 500: upstream exploded"),
	}
	gw, err := modelrouter.NewGateway(map[modelrouter.Family]modelrouter.Provider{
		modelrouter.FamilyOpenRouter: provider,
	}, modelrouter.Defaults{
		TaskModel: modelrouter.ModelGPT5,
		ChatModel: modelrouter.ModelGPT5,
	}, &mockLogger{})
	if err != nil {
		t.Fatalf("NewGateway: %v", err)
	}

	_, err = gw.Complete(context.Background(), &modelrouter.Request{Model: modelrouter.ModelGPT5})
	if !errors.Is(err, modelrouter.ErrProtocol) {
		t.Fatalf("err = %v, want ErrProtocol", err)
	}
	if errors.Is(err, modelrouter.ErrTimeout) {
		t.Fatal("protocol failure must not classify as timeout")
	}
}

func TestComplete_CallerCancellationClassifiedAsTimeout(t *testing.T) {
	provider := &mockProvider{
		name:    "kimi",
		timeout: time.Second,
		delay:   time.Second,
	}
	gw, err := modelrouter.NewGateway(map[modelrouter.Family]modelrouter.Provider{
		modelrouter.FamilyKimi: provider,
	}, defaults(), &mockLogger{})
	if err != nil {
		t.Fatalf("NewGateway: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err = gw.Complete(ctx, &modelrouter.Request{Model: modelrouter.ModelKimiK2Latest})
	if !errors.Is(err, modelrouter.ErrTimeout) {
		t.Fatalf("err = %v, want timeout-class failure on cancellation", err)
	}
}

func TestSupportedAndDefaults(t *testing.T) {
	gw, err := modelrouter.NewGateway(nil, defaults(), &mockLogger{})
	if err != nil {
		t.Fatalf("NewGateway: %v", err)
	}

	models := gw.Supported()
	if len(models) != 8 {
		t.Fatalf("supported = %d models, want 8", len(models))
	}
	if models[0].ID != modelrouter.ModelKimiK2Latest {
		t.Errorf("first model = %q, want display order preserved", models[0].ID)
	}

	if !gw.IsSupported(modelrouter.ModelClaudeSonnet4) {
		t.Error("claude-sonnet-4 should be supported")
	}
	if gw.IsSupported("nope") {
		t.Error("unknown id should not be supported")
	}
	if gw.DefaultTaskModel() != modelrouter.ModelKimiK2Latest || gw.DefaultChatModel() != modelrouter.ModelKimiK2Latest {
		t.Error("defaults not exposed")
	}
}

func TestNormalizeFinishReason(t *testing.T) {
	cases := map[string]modelrouter.FinishReason{
		"stop":           modelrouter.FinishStop,
		"":               modelrouter.FinishStop,
		"length":         modelrouter.FinishLength,
		"content_filter": modelrouter.FinishOther,
	}
	for raw, want := range cases {
		if got := modelrouter.NormalizeFinishReason(raw); got != want {
			t.Errorf("NormalizeFinishReason(%q) = %q, want %q", raw, got, want)
		}
	}
}
