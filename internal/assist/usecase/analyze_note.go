package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"cortex-workspace/internal/assist"
	"cortex-workspace/internal/model"
	"cortex-workspace/pkg/modelrouter"
)

const promptCategorizeNote = `你是一个智能笔记分类助手。根据笔记的标题和内容，推荐合适的分类、文件夹和标签。

分类指导：
- 工作：工作任务、会议记录、项目计划、业务相关内容
- 学习：学习笔记、课程内容、知识总结、技能提升
- 生活：日常生活、饮食、购物、娱乐、旅行、个人感受
- 健康：运动、健身、医疗、养生、心理健康
- 财务：理财、投资、预算、消费记录
- 灵感：创意想法、随想、计划、目标设定

示例：
- "我要吃烤鸭" → 分类：生活，文件夹：日常/用餐计划，标签：[今日伙食, 烤鸭, 用餐计划]
- "项目进度汇报" → 分类：工作，文件夹：项目管理，标签：[项目, 进度, 汇报]
- "学习Python" → 分类：学习，文件夹：编程学习，标签：[Python, 编程, 学习笔记]

请根据内容准确分类，返回JSON格式：{"category": "分类名", "folder": "文件夹名", "tags": ["标签1", "标签2"]}`

const maxNoteContentRunes = 500

// AnalyzeNote suggests a filing for a note. Any failure on the model path
// yields the default filing; when the caller supplies a category whitelist,
// off-list suggestions are forced onto its first entry.
func (uc *implUseCase) AnalyzeNote(ctx context.Context, sc model.Scope, input assist.AnalyzeNoteInput) assist.NoteFiling {
	req := &modelrouter.Request{
		Model: uc.gateway.DefaultChatModel(),
		Messages: []modelrouter.Message{
			{Role: "system", Content: promptCategorizeNote},
			{Role: "user", Content: fmt.Sprintf("标题：%s\n内容：%s", input.Title, truncateRunes(input.Content, maxNoteContentRunes))},
		},
	}

	result, err := uc.gateway.Complete(ctx, req)
	if err != nil {
		uc.l.Warnf(ctx, "note analysis degraded to default filing: user_id=%s error=%v", sc.UserID, err)
		return defaultFiling()
	}

	var filing assist.NoteFiling
	if err := json.Unmarshal([]byte(sanitizeJSONResponse(result.Content)), &filing); err != nil {
		uc.l.Warnf(ctx, "unusable note analysis output: raw=%q error=%v", result.Content, err)
		return defaultFiling()
	}

	if filing.Category == "" {
		filing.Category = assist.DefaultCategory
	}
	if filing.Folder == "" {
		filing.Folder = assist.DefaultFolder
	}
	if filing.Tags == nil {
		filing.Tags = []string{}
	}

	return constrainCategory(filing, input.Categories)
}

// constrainCategory forces the suggestion onto the caller's whitelist. The
// first entry is the designated catch-all.
func constrainCategory(filing assist.NoteFiling, whitelist []string) assist.NoteFiling {
	if len(whitelist) == 0 {
		return filing
	}
	for _, known := range whitelist {
		if known == filing.Category {
			return filing
		}
	}
	filing.Category = whitelist[0]
	return filing
}

func defaultFiling() assist.NoteFiling {
	return assist.NoteFiling{
		Category: assist.DefaultCategory,
		Folder:   assist.DefaultFolder,
		Tags:     assist.DefaultTags(),
	}
}

var codeFenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// sanitizeJSONResponse removes markdown code fences and surrounding prose
// that LLMs often add around JSON output.
func sanitizeJSONResponse(text string) string {
	matches := codeFenceRe.FindStringSubmatch(text)
	if len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return text
	}
	end := strings.LastIndexAny(text, "]}")
	if end == -1 || end < start {
		return text
	}
	return strings.TrimSpace(text[start : end+1])
}

// truncateRunes bounds prompt size for long note bodies.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
