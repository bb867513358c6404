package usecase_test

import (
	"context"
	"strings"
	"testing"

	"cortex-workspace/internal/chat"
	"cortex-workspace/internal/chat/usecase"
	"cortex-workspace/internal/model"
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

type mockGateway struct {
	content   string
	err       error
	supported map[string]bool
	lastReq   *modelrouter.Request
}

func (m *mockGateway) Complete(ctx context.Context, req *modelrouter.Request) (*modelrouter.Result, error) {
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return &modelrouter.Result{Content: m.content, Model: req.Model, FinishReason: modelrouter.FinishStop}, nil
}

func (m *mockGateway) DefaultChatModel() string { return "kimi-k2-latest" }

func (m *mockGateway) IsSupported(model string) bool { return m.supported[model] }

func newUseCase(gw *mockGateway) chat.UseCase {
	return usecase.New(&mockLogger{}, gw)
}

func TestDispatch_ActionPassthrough(t *testing.T) {
	gw := &mockGateway{content: `{"response_type":"action","content":"ok","action_details":{"type":"create_task","params":{"title":"X"}}}`}
	uc := newUseCase(gw)

	out := uc.Dispatch(context.Background(), model.Scope{UserID: "u1"}, chat.DispatchInput{Text: "帮我创建一个任务X"})

	if out.ResponseType != chat.ResponseAction {
		t.Fatalf("response type = %q, want action", out.ResponseType)
	}
	if out.Content != "ok" {
		t.Errorf("content = %q", out.Content)
	}
	if out.Action == nil || out.Action.Type != "create_task" {
		t.Fatalf("action = %+v", out.Action)
	}
	if out.Action.Params["title"] != "X" {
		t.Errorf("params = %+v", out.Action.Params)
	}
}

func TestDispatch_PlainTextBecomesMessage(t *testing.T) {
	gw := &mockGateway{content: "今天的天气很好，适合安排户外任务。"}
	uc := newUseCase(gw)

	out := uc.Dispatch(context.Background(), model.Scope{}, chat.DispatchInput{Text: "今天天气怎么样"})

	if out.ResponseType != chat.ResponseMessage {
		t.Fatalf("response type = %q, want message", out.ResponseType)
	}
	if out.Content != gw.content {
		t.Errorf("content = %q, want raw model text", out.Content)
	}
	if out.Action != nil {
		t.Error("no action should be fabricated from plain text")
	}
}

func TestDispatch_ActionWithoutTypeDowngraded(t *testing.T) {
	gw := &mockGateway{content: `{"response_type":"action","content":"我来处理","action_details":{"params":{}}}`}
	uc := newUseCase(gw)

	out := uc.Dispatch(context.Background(), model.Scope{}, chat.DispatchInput{Text: "做点什么"})

	if out.ResponseType != chat.ResponseMessage {
		t.Fatalf("untyped action should downgrade to message, got %q", out.ResponseType)
	}
	if out.Action != nil {
		t.Error("downgraded reply must not carry an action")
	}
	if out.Content != "我来处理" {
		t.Errorf("content = %q", out.Content)
	}
}

func TestDispatch_GatewayFailureBecomesMessage(t *testing.T) {
	gw := &mockGateway{err: &modelrouter.ProviderError{Provider: "kimi", Err: modelrouter.ErrTimeout}}
	uc := newUseCase(gw)

	out := uc.Dispatch(context.Background(), model.Scope{}, chat.DispatchInput{Text: "你好"})

	if out.ResponseType != chat.ResponseMessage {
		t.Fatalf("response type = %q, want message", out.ResponseType)
	}
	if !strings.HasPrefix(out.Content, chat.ErrorReplyPrefix) {
		t.Errorf("content = %q, want prefix %q", out.Content, chat.ErrorReplyPrefix)
	}
	if out.Action != nil {
		t.Error("failure reply must not carry an action")
	}
}

func TestDispatch_HistoryCappedAtFive(t *testing.T) {
	gw := &mockGateway{content: "好的"}
	uc := newUseCase(gw)

	var history []chat.Turn
	for i := 0; i < 8; i++ {
		history = append(history, chat.Turn{Role: chat.RoleUser, Content: string(rune('a' + i))})
	}

	uc.Dispatch(context.Background(), model.Scope{}, chat.DispatchInput{Text: "继续", History: history})

	// system + 5 history + current user turn
	if len(gw.lastReq.Messages) != 7 {
		t.Fatalf("messages = %d, want 7", len(gw.lastReq.Messages))
	}
	if gw.lastReq.Messages[1].Content != "d" {
		t.Errorf("history should keep the most recent turns, first kept = %q", gw.lastReq.Messages[1].Content)
	}
	if last := gw.lastReq.Messages[6]; last.Role != "user" || last.Content != "继续" {
		t.Errorf("last message = %+v", last)
	}
}

func TestDispatch_ModelOverride(t *testing.T) {
	gw := &mockGateway{content: "好的", supported: map[string]bool{"openai/gpt-5": true}}
	uc := newUseCase(gw)

	uc.Dispatch(context.Background(), model.Scope{}, chat.DispatchInput{Text: "你好", Model: "openai/gpt-5"})
	if gw.lastReq.Model != "openai/gpt-5" {
		t.Errorf("model = %q, want override honored", gw.lastReq.Model)
	}

	uc.Dispatch(context.Background(), model.Scope{}, chat.DispatchInput{Text: "你好", Model: "no-such-model"})
	if gw.lastReq.Model != "kimi-k2-latest" {
		t.Errorf("model = %q, want default for unknown override", gw.lastReq.Model)
	}
}

func TestDispatch_PromptCarriesOverviewAndViewing(t *testing.T) {
	gw := &mockGateway{content: "好的"}
	uc := newUseCase(gw)

	uc.Dispatch(context.Background(), model.Scope{}, chat.DispatchInput{
		Text: "这个笔记讲了什么",
		Overview: &chat.DataOverview{
			NotesCount: 12,
			TasksCount: 7,
			Categories: []string{"工作", "生活"},
		},
		Viewing: &chat.ViewingContext{
			Kind:    chat.ViewingNote,
			Title:   "烤鸭笔记",
			Content: "先买材料",
		},
	})

	system := gw.lastReq.Messages[0]
	if system.Role != "system" {
		t.Fatalf("first message role = %q", system.Role)
	}
	for _, want := range []string{"12", "7", "工作, 生活", "烤鸭笔记", "先买材料"} {
		if !strings.Contains(system.Content, want) {
			t.Errorf("system prompt missing %q", want)
		}
	}
}

func TestDispatch_JSONMissingContentFallsBackToRaw(t *testing.T) {
	raw := `{"response_type":"message"}`
	gw := &mockGateway{content: raw}
	uc := newUseCase(gw)

	out := uc.Dispatch(context.Background(), model.Scope{}, chat.DispatchInput{Text: "hi"})
	if out.Content != raw {
		t.Errorf("content = %q, want raw reply when content field missing", out.Content)
	}
}
