package modelrouter

// Family identifies a provider family an adapter implements.
type Family string

const (
	FamilyKimi       Family = "kimi"
	FamilyOpenRouter Family = "openrouter"
)

// Public model identifiers.
const (
	ModelKimiK2Latest  = "kimi-k2-latest"
	ModelMoonshotV18K  = "moonshot-v1-8k"
	ModelGPT5          = "openai/gpt-5"
	ModelGPT4o         = "openai/gpt-4o"
	ModelDeepSeekV31   = "deepseek/deepseek-chat-v3.1"
	ModelGeminiFlash   = "google/gemini-2.5-flash"
	ModelGeminiPro     = "google/gemini-2.5-pro"
	ModelClaudeSonnet4 = "anthropic/claude-sonnet-4"
)

// ModelInfo describes one registered model.
type ModelInfo struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Vendor string `json:"provider"`
	Family Family `json:"-"`
}

// supportedModels is the static routing table: public identifier to provider
// family. Order is the display order of the models endpoint.
var supportedModels = []ModelInfo{
	{ID: ModelKimiK2Latest, Name: "Kimi K2 (latest)", Vendor: "Moonshot", Family: FamilyKimi},
	{ID: ModelMoonshotV18K, Name: "Kimi (Moonshot V1 8K)", Vendor: "Moonshot", Family: FamilyKimi},
	{ID: ModelGPT5, Name: "GPT-5", Vendor: "OpenAI", Family: FamilyOpenRouter},
	{ID: ModelGPT4o, Name: "GPT-4o", Vendor: "OpenAI", Family: FamilyOpenRouter},
	{ID: ModelDeepSeekV31, Name: "DeepSeek Chat V3.1", Vendor: "DeepSeek", Family: FamilyOpenRouter},
	{ID: ModelGeminiFlash, Name: "Gemini 2.5 Flash", Vendor: "Google", Family: FamilyOpenRouter},
	{ID: ModelGeminiPro, Name: "Gemini 2.5 Pro", Vendor: "Google", Family: FamilyOpenRouter},
	{ID: ModelClaudeSonnet4, Name: "Claude Sonnet 4", Vendor: "Anthropic", Family: FamilyOpenRouter},
}

// modelTable returns the routing table keyed by identifier.
func modelTable() map[string]ModelInfo {
	table := make(map[string]ModelInfo, len(supportedModels))
	for _, m := range supportedModels {
		table[m.ID] = m
	}
	return table
}
