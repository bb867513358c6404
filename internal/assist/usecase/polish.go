package usecase

import (
	"context"
	"fmt"

	"cortex-workspace/internal/assist"
	"cortex-workspace/internal/model"
	"cortex-workspace/pkg/modelrouter"
)

var stylePrompts = map[assist.Style]string{
	assist.StyleProfessional: "你是一个专业的文本润色助手。请将文本优化为正式、专业的风格，适合商务文档、学术论文等正式场合。使用准确的术语，保持严谨的语言风格。",
	assist.StyleCasual:       "你是一个文本润色助手。请将文本优化为口语化、亲切自然的风格，适合日常交流。使用简单易懂的表达，让文本更加贴近生活。",
	assist.StyleLively:       "你是一个文本润色助手。请将文本优化为活泼生动的风格，增加趣味性和感染力，适合创意内容。可以适当使用生动的比喻和富有表现力的词汇。",
	assist.StyleConcise:      "你是一个文本润色助手。请将文本精简提炼，去除冗余表达，突出核心要点。保持简洁明了，每句话都要有价值。",
	assist.StyleDetailed:     "你是一个文本润色助手。请扩充丰富文本内容，增加细节描述和具体说明，使内容更加充实完整。适当补充背景信息和详细解释。",
}

// PolishText rewrites the text in the requested style via the chat default
// model. An unknown style maps to the professional register.
func (uc *implUseCase) PolishText(ctx context.Context, sc model.Scope, input assist.PolishInput) (assist.PolishOutput, error) {
	prompt, ok := stylePrompts[input.Style]
	if !ok {
		prompt = stylePrompts[assist.StyleProfessional]
	}

	req := &modelrouter.Request{
		Model: uc.gateway.DefaultChatModel(),
		Messages: []modelrouter.Message{
			{Role: "system", Content: prompt},
			{Role: "user", Content: "请按照指定风格润色以下文本，保持原意不变：\n\n" + input.Text},
		},
	}

	result, err := uc.gateway.Complete(ctx, req)
	if err != nil {
		uc.l.Warnf(ctx, "text polish failed: user_id=%s style=%s error=%v", sc.UserID, input.Style, err)
		return assist.PolishOutput{}, fmt.Errorf("polish text: %w", err)
	}

	return assist.PolishOutput{Text: result.Content}, nil
}
