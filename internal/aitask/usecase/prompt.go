package usecase

import (
	"fmt"
	"strings"
	"time"

	"cortex-workspace/internal/aitask"
)

const (
	// Low temperature and a bounded budget keep the model on the JSON rails.
	parseTemperature = 0.2
	parseMaxTokens   = 2048

	maxSubtasks = 3
)

const promptTaskParsing = `你是一个智能任务解析助手。根据用户的自然语言描述，解析出任务的详细信息。

你需要智能判断用户描述是否包含多个独立的任务，如果包含多个任务，请拆分为独立的任务。

请严格按照以下JSON格式返回：

如果是单个任务：
{
  "title": "任务标题（简洁明了）",
  "description": "详细描述（包含任务的具体内容和要求）",
  "priority": "high/medium/low",
  "start_time": "YYYY-MM-DDTHH:MM:SS或null（开始时间）",
  "end_time": "YYYY-MM-DDTHH:MM:SS或null（结束时间）",
  "due_date": "YYYY-MM-DD或null（截止日期）",
  "category": "工作/学习/生活或其他分类",
  "tags": ["标签1", "标签2"],
  "subtasks": ["子任务1", "子任务2"],
  "time_range": "flexible/specific/deadline"
}

如果是多个任务：
{
  "tasks": [
    {
      "title": "任务1标题",
      "description": "任务1描述",
      "priority": "high/medium/low",
      "start_time": "YYYY-MM-DDTHH:MM:SS或null",
      "end_time": "YYYY-MM-DDTHH:MM:SS或null",
      "due_date": "YYYY-MM-DD或null",
      "category": "工作/学习/生活或其他分类",
      "tags": ["标签1", "标签2"],
      "subtasks": ["子任务1", "子任务2"],
      "time_range": "flexible/specific/deadline"
    }
  ]
}

解析规则：
1. 智能识别多任务：如果描述中包含多个动作或目标（如"看抖音，买材料，学习做烤鸭"），拆分为独立任务
2. title：提取核心任务名称，不超过30字
3. description：保留原始描述，补充必要的上下文信息
4. priority：根据"紧急"、"重要"、"优先级"等关键词判断
5. time_range：
   - "flexible"：灵活时间，只需要截止日期
   - "specific"：具体时间段，需要开始和结束时间
   - "deadline"：仅截止日期
6. start_time/end_time：解析具体时间点，如"明天下午3点"
7. due_date：解析截止日期，如"本周内"、"下周五"、"3天内"
8. category：根据内容判断分类
9. tags：提取关键词作为标签
10. subtasks：识别包含的子任务或步骤

示例：
输入："今天下班，看抖音，买材料，淘宝买设备，学习做烤鸭，和同事一起，3天内搞定"
应该拆分为：
- 看抖音（娱乐）
- 买材料（购物）
- 淘宝买设备（购物）
- 学习做烤鸭（学习）
每个任务都设置3天内的截止日期。`

// buildParsePrompt appends caller context to the base parsing prompt: known
// projects, the split hint, and the reference time used for relative dates.
func buildParsePrompt(pc *aitask.ParseContext, ref time.Time) string {
	var b strings.Builder
	b.WriteString(promptTaskParsing)

	if pc != nil {
		if len(pc.Projects) > 0 {
			b.WriteString(fmt.Sprintf("\n\n可用项目：%s", strings.Join(pc.Projects, "、")))
		}
		if pc.SplitTasks {
			b.WriteString("\n\n用户明确希望将描述拆分为多个独立任务。")
		}
	}
	b.WriteString(fmt.Sprintf("\n当前时间：%s", ref.Format(time.RFC3339)))

	return b.String()
}
