// Package survey holds the static form configuration: the closed option
// sets used for validation and UI listing, and the prize tier table.
package survey

type FunQuestion struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

var FunQuestions = []FunQuestion{
	{
		ID:       "editor",
		Question: "Favorite code editor?",
		Options:  []string{"VS Code", "Neovim", "JetBrains", "Other"},
	},
	{
		ID:       "indentation",
		Question: "Tabs or spaces?",
		Options:  []string{"Tabs", "Spaces"},
	},
	{
		ID:       "darkmode",
		Question: "Dark mode preference?",
		Options:  []string{"Always", "Sometimes", "Never"},
	},
}

var LLMOptions = []string{
	"GPT-4o (multi-modal)",
	"GPT-5",
	"GPT-4 Classic",
	"Claude 3 Opus",
	"Claude 3 Haiku",
	"Claude Ultra",
	"Claude 4-sonnet",
	"Llama 3",
	"Vicuna",
	"Mistral",
	"Mixtral",
	"Anthropic’s Redwood",
	"Google Gemini",
	"OpenAI’s GPT-3.5",
	"OpenAI’s GPT-3",
	"Other",
}

var FrameworkOptions = []string{
	"React",
	"Next.js",
	"Vue",
	"Svelte",
	"Angular",
	"Other",
}

type PrizeTier struct {
	ID          string `json:"id"`
	Threshold   int    `json:"threshold"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// PrizeTiers is ordered ascending by threshold.
var PrizeTiers = []PrizeTier{
	{
		ID:          "tier1",
		Threshold:   15,
		Title:       "Foods of Seattle Pouch",
		Description: "First milestone!",
		Image:       "/images/prizes/pouch-prize.jpg",
	},
	{
		ID:          "tier2",
		Threshold:   25,
		Title:       "Sub Pop Beanie",
		Description: "Building momentum!",
		Image:       "/images/prizes/beanie.webp",
	},
	{
		ID:          "tier3",
		Threshold:   50,
		Title:       "Kurt Cobain Shirt",
		Description: "Halfway there!",
		Image:       "/images/prizes/kurt-prize.jpg",
	},
	{
		ID:          "tier4",
		Threshold:   100,
		Title:       "AudioBox Casette Player/Recorder",
		Description: "Ultimate achievement unlocked!",
		Image:       "/images/prizes/boombox-prize.jpg",
	},
}

func ValidLLM(option string) bool {
	for _, o := range LLMOptions {
		if o == option {
			return true
		}
	}
	return false
}

func ValidFramework(option string) bool {
	for _, o := range FrameworkOptions {
		if o == option {
			return true
		}
	}
	return false
}

func FunQuestionByID(id string) (FunQuestion, bool) {
	for _, q := range FunQuestions {
		if q.ID == id {
			return q, true
		}
	}
	return FunQuestion{}, false
}
