package copilot

import "strings"

// PromptPair is what goes to the gateway: a fixed system prompt and a user
// message rendered from the validated fields.
type PromptPair struct {
	System string
	User   string
}

// User-message templates, one per action. Rendering is deterministic:
// identical validated requests produce byte-identical pairs. An absent
// optional field drops its whole line; contentType and frequency instead
// fall back to their documented defaults ("post", "daily").
var userTemplates = map[Action]func(f map[string]string) string{
	ActionIdeation: func(f map[string]string) string {
		var b strings.Builder
		b.WriteString("Creator Profile:\n")
		b.WriteString("- Niche: " + f["niche"] + "\n")
		b.WriteString("- Platform: " + f["platform"] + "\n")
		b.WriteString("- Experience Level: " + f["experience"] + "\n")
		b.WriteString("- Growth Goal: " + f["goal"] + "\n")
		if topic, ok := f["topic"]; ok {
			b.WriteString("- Specific topic interest: " + topic + "\n")
		}
		b.WriteString("\nGenerate 5 personalized content ideas.")
		return b.String()
	},

	ActionCreation: func(f map[string]string) string {
		return "Content Idea: " + f["idea"] + "\n" +
			"Tone/Style: " + f["tone"] + "\n" +
			"Platform: " + f["platform"] + "\n" +
			"Niche: " + f["niche"] + "\n\n" +
			"Generate compelling content for this idea."
	},

	ActionOptimization: func(f map[string]string) string {
		contentType := f["contentType"]
		if contentType == "" {
			contentType = "post"
		}
		return "Content to analyze:\n" +
			"\"\"\"\n" + f["content"] + "\n\"\"\"\n\n" +
			"Platform: " + f["platform"] + "\n" +
			"Content Type: " + contentType + "\n\n" +
			"Analyze this content and provide optimization feedback."
	},

	ActionPlanning: func(f map[string]string) string {
		frequency := f["frequency"]
		if frequency == "" {
			frequency = "daily"
		}
		return "Creator Profile:\n" +
			"- Niche: " + f["niche"] + "\n" +
			"- Platform: " + f["platform"] + "\n" +
			"- Experience Level: " + f["experience"] + "\n" +
			"- Growth Goal: " + f["goal"] + "\n" +
			"- Preferred posting frequency: " + frequency + "\n\n" +
			"Generate a 7-day content calendar."
	},

	ActionProfile: func(f map[string]string) string {
		return "Creator Information:\n" +
			"- Niche: " + f["niche"] + "\n" +
			"- Platform: " + f["platform"] + "\n" +
			"- Experience Level: " + f["experience"] + "\n" +
			"- Growth Goal: " + f["goal"] + "\n\n" +
			"Generate a personalized creator profile analysis."
	},
}

// Render looks up the prompt pair for a validated request. Pure, no I/O.
func Render(req Request) PromptPair {
	return PromptPair{
		System: systemPrompts[req.Action],
		User:   userTemplates[req.Action](req.Fields),
	}
}
