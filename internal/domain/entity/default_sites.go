package entity

// DefaultListName selects one of the built-in site lists.
type DefaultListName string

const (
	// DefaultListStandard is the 13-entry list shipped with the registry.
	DefaultListStandard DefaultListName = "standard"
	// DefaultListExtended adds the extra AI assistants shipped with the panel.
	DefaultListExtended DefaultListName = "extended"
)

// Site categories used by the built-in lists.
const (
	CategoryAI            = "ai"
	CategoryProductivity  = "productivity"
	CategoryDevelopment   = "development"
	CategoryEntertainment = "entertainment"
	CategoryCustom        = "custom"
)

// DefaultSites returns a fresh copy of the named built-in list.
// Unknown names return the standard list.
func DefaultSites(name DefaultListName) SiteList {
	if name == DefaultListExtended {
		return extendedSites()
	}
	return standardSites()
}

func standardSites() SiteList {
	return SiteList{
		{ID: "chatgpt", URL: "https://chatgpt.com", Title: "ChatGPT", Icon: "logos/chat_gpt.png", Category: CategoryAI},
		{ID: "claude", URL: "https://claude.ai/new", Title: "Claude", Icon: "logos/claude.png", Category: CategoryAI},
		{ID: "gemini", URL: "https://gemini.google.com/app", Title: "Gemini", Icon: "logos/gemini.png", Category: CategoryAI},
		{ID: "aistudio", URL: "https://aistudio.google.com/", Title: "Google AI Studio", Icon: "logos/aistudio.png", Category: CategoryAI},
		{ID: "grok", URL: "https://grok.com", Title: "Grok", Icon: "logos/grok.png", Category: CategoryAI},
		{ID: "perplexity", URL: "https://www.perplexity.ai/", Title: "Perplexity", Icon: "logos/perplexity.png", Category: CategoryAI},
		{ID: "notion", URL: "https://www.notion.so", Title: "Notion", Icon: "logos/notion.png", Category: CategoryProductivity},
		{ID: "github", URL: "https://github.com", Title: "Github", Icon: "logos/github.png", Category: CategoryDevelopment},
		{ID: "huggingface", URL: "https://huggingface.co/", Title: "Hugging Face", Icon: "logos/huggingface.png", Category: CategoryDevelopment},
		{ID: "colab", URL: "https://colab.research.google.com/", Title: "Colab", Icon: "logos/colab.png", Category: CategoryDevelopment},
		{ID: "runpod", URL: "https://console.runpod.io/", Title: "RunPod", Icon: "logos/runpod.png", Category: CategoryDevelopment},
		{ID: "youtube", URL: "https://www.youtube.com", Title: "YouTube", Icon: "logos/youtube.png", Category: CategoryEntertainment},
		{ID: "youtube_music", URL: "https://music.youtube.com/", Title: "YouTube Music", Icon: "logos/youtube_music.png", Category: CategoryEntertainment},
	}
}

func extendedSites() SiteList {
	std := standardSites()
	extra := SiteList{
		{ID: "kimi", URL: "https://www.kimi.com/", Title: "Kimi", Icon: "logos/kimi.png", Category: CategoryAI},
		{ID: "qwen", URL: "https://chat.qwen.ai/", Title: "Qwen", Icon: "logos/qwen.png", Category: CategoryAI},
		{ID: "deepseek", URL: "https://chat.deepseek.com", Title: "Deepseek", Icon: "logos/deepseek.png", Category: CategoryAI},
		{ID: "manus", URL: "https://manus.im/app", Title: "Manus", Icon: "logos/manus.png", Category: CategoryAI},
	}

	// extra assistants go right after the standard AI block (perplexity)
	aiEnd := std.IndexOfURL("https://www.perplexity.ai/") + 1
	out := make(SiteList, 0, len(std)+len(extra))
	out = append(out, std[:aiEnd]...)
	out = append(out, extra...)
	return append(out, std[aiEnd:]...)
}
