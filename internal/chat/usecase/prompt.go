package usecase

import (
	"fmt"
	"strings"

	"cortex-workspace/internal/chat"
)

const promptChatHeader = `你是Cortex AI工作区的智能助理，专门帮助用户管理笔记和任务。

用户数据概览：
- 笔记数量：%d
- 任务数量：%d
- 分类：%s

你的能力包括：
1. 回答关于笔记和任务的问题
2. 执行创建、修改任务的指令
3. 提供工作建议和时间管理建议
4. 通用知识问答和内容创作

当用户要求创建或修改数据时，请分析是否为指令操作：
- 如果是创建任务的指令，返回action类型的响应
- 如果是普通对话，返回message类型的响应

对于action类型，请严格按照以下格式返回JSON：
{
    "response_type": "action",
    "content": "给用户的回复消息",
    "action_details": {
        "type": "create_task",
        "params": {
            "title": "任务标题",
            "description": "任务描述",
            "start_time": "2024-01-01T10:00:00",
            "end_time": "2024-01-01T11:00:00",
            "priority": "medium",
            "category_id": "分类ID（如果能确定的话）"
        }
    }
}

对于普通对话，返回：
{
    "response_type": "message",
    "content": "回复内容"
}

请用友好、专业的语气与用户交流。`

// buildChatPrompt assembles the system prompt from the workspace overview and
// the optional viewing context. Missing overview fields render as zero/empty,
// never as an error.
func buildChatPrompt(input chat.DispatchInput) string {
	var notes, tasks int
	var categories []string
	if input.Overview != nil {
		notes = input.Overview.NotesCount
		tasks = input.Overview.TasksCount
		categories = input.Overview.Categories
	}

	prompt := fmt.Sprintf(promptChatHeader, notes, tasks, strings.Join(categories, ", "))

	if v := input.Viewing; v != nil {
		switch v.Kind {
		case chat.ViewingNote:
			prompt += fmt.Sprintf("\n\n当前正在查看的笔记：\n标题：%s\n内容：%s", v.Title, truncateRunes(v.Content, 500))
		case chat.ViewingTask:
			prompt += fmt.Sprintf("\n\n当前正在查看的任务：\n标题：%s\n描述：%s\n状态：%s\n优先级：%s", v.Title, v.Content, v.Status, v.Priority)
		}
	}

	return prompt
}

// truncateRunes bounds prompt size for long note bodies.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
