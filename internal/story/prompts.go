// internal/story/prompts.go
//
// The prompt catalog shown on each slot's review screen before the user
// chooses how to tell their story.

package story

import "github.com/ganghq/profile360/internal/draft"

// PromptSection groups prompts under a heading; only the current-life
// slot uses more than one section.
type PromptSection struct {
	Title   string
	Prompts []string
}

// PromptSet is the guidance content for one story slot.
type PromptSet struct {
	Title     string
	Subtitle  string
	Icon      string
	Intro     string
	Highlight string
	Sections  []PromptSection
}

// Prompts returns the catalog entry for slot.
func Prompts(slot draft.Slot) PromptSet {
	switch slot {
	case draft.SlotEarlyLife:
		return PromptSet{
			Title:    "Your Early Life",
			Subtitle: "Tell gang members the story of your early life",
			Icon:     "🌱",
			Sections: []PromptSection{{
				Prompts: []string{
					"Places where you were born and grew up",
					"Various cities you lived in and experienced",
					"Family and parents",
					"Who were your friends — what did you do together?",
					"What were the things that interested you?",
					"Educational institutes you attended — schools, colleges, universities. Give some idea of timelines.",
					"Anything else that feels natural",
				},
			}},
		}
	case draft.SlotProfessional:
		return PromptSet{
			Title:     "Your Mid/Professional Life",
			Subtitle:  "Share your mid-life journey — the choices, challenges, and growth",
			Icon:      "💼",
			Intro:     "Share your mid-life journey — the choices you made, the challenges you faced, and how they shaped who you are today:",
			Highlight: "Cover everything except what you are doing right now",
			Sections: []PromptSection{{
				Prompts: []string{
					"Years in your professional journey",
					"Jobs and roles — titles, organisations, duration, locations",
					"Key learnings and experiences that stand out",
					"Personal milestones — family, relationships, life decisions",
					"Challenges you navigated — personally and professionally",
					"Choices that shaped your path — ones you made and ones you didn't",
				},
			}},
		}
	case draft.SlotCurrent:
		return PromptSet{
			Title:    "Your Current Life",
			Subtitle: "Tell us about your life and work right now",
			Icon:     "✨",
			Sections: []PromptSection{
				{
					Title:   "Personal",
					Prompts: []string{"Location / base, family, friends, areas of interest"},
				},
				{
					Title: "Professional",
					Prompts: []string{
						"Name of your current organisation and your work profile",
						"How and when did you start this journey / role?",
						"What work does the organisation do — problems solved via products, solutions, services",
						"Current state — progress in terms of products, customers, revenues, team size",
						"Anything interesting about your organisation / startup, team etc.",
					},
				},
			},
		}
	default:
		panic("story: unknown slot " + string(slot))
	}
}

// Title returns the short display name used on the processing and
// selection screens.
func Title(slot draft.Slot) string {
	switch slot {
	case draft.SlotEarlyLife:
		return "Early Life"
	case draft.SlotProfessional:
		return "Mid/Professional Life"
	case draft.SlotCurrent:
		return "Current Life"
	default:
		panic("story: unknown slot " + string(slot))
	}
}
