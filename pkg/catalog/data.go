package catalog

// The catalog content. Order here defines home-screen order. The first text
// in each pool is the canonical phrasing; later entries are variants rolled
// in at random so repeat visits stay fresh.
var categories = []category{
	{
		point: StuckPoint{ID: "decision-paralysis", Title: "Decision Paralysis", Icon: "⎇"},
		intro: "You don't need to solve it all right now. You just need to shift your thinking. Let's start there.",
		prompts: pools{
			entry: []string{
				"What is the actual decision you're trying to make, in one sentence?",
				"Name the decision in front of you as plainly as you can.",
			},
			unblocker: []string{
				"What's the real question you might be avoiding asking yourself?",
				"What would you decide if you trusted yourself completely?",
			},
			momentum: []string{
				"What is the smallest possible step that could make the decision easier?",
				"What one piece of information would make this choice simpler?",
			},
		},
		outro: "You've just made space to think. That matters. Well done.",
	},
	{
		point: StuckPoint{ID: "mental-fog", Title: "Mental Fog", Icon: "☁"},
		intro: "Clarity isn't found, it's created. Let's create a small clearing in the fog.",
		prompts: pools{
			entry: []string{
				"What feels foggy right now—but also important?",
				"Where does the fog feel thickest today?",
			},
			unblocker: []string{
				"If the fog had a voice, what would it be whispering?",
				"What are you pretending not to know?",
			},
			momentum: []string{
				"What is one thing you know to be true, even in this fog?",
				"What single thought feels solid enough to stand on?",
			},
		},
		outro: "You've invited clarity. The fog may not be gone, but you've found your footing within it.",
	},
	{
		point: StuckPoint{ID: "too-many-options", Title: "Too Many Options", Icon: "◎"},
		intro: "The goal isn't to find the 'perfect' path, but to choose a good one and start walking. Let's simplify.",
		prompts: pools{
			entry: []string{
				"List 3-5 of the options occupying your mind. Just name them.",
				"Which options keep coming back, no matter how often you set them down?",
			},
			unblocker: []string{
				"Which option feels most energizing, even if it seems less practical?",
				"If one option quietly disappeared, which would you miss the least?",
			},
			momentum: []string{
				"How could you test one of these options on a tiny scale this week?",
				"What is the cheapest experiment that would teach you something real?",
			},
		},
		outro: "You've turned a tangled mess into distinct paths. The power is in choosing one to try.",
	},
	{
		point: StuckPoint{ID: "stuck-at-the-start", Title: "Stuck at the Start", Icon: "➣"},
		intro: "The beginning is often the hardest part. Let's forget the mountain top and just focus on the first step.",
		prompts: pools{
			entry: []string{
				"What does the finished version of this project or task look like?",
				"Describe what 'done' would feel like, in a sentence or two.",
			},
			unblocker: []string{
				"What is the story you're telling yourself about why you can't start?",
				"What's the worst that honestly happens if your first attempt is rough?",
			},
			momentum: []string{
				"What would a ridiculously small, can't fail first step look like?",
				"What could you do in the next ten minutes that counts as starting?",
			},
		},
		outro: "You've broken the inertia. The first step isn't just progress; it's a statement.",
	},
	{
		point: StuckPoint{ID: "lost-momentum", Title: "I've Lost Momentum", Icon: "↻"},
		intro: "Momentum is a cycle, not a straight line. It's okay to pause. Now, let's gently restart the engine.",
		prompts: pools{
			entry: []string{
				"Where were you when you last felt momentum? What were you doing?",
				"Think back to the last time this felt easy. What was different?",
			},
			unblocker: []string{
				"What changed between then and now? Be honest and kind to yourself.",
				"What are you demanding of yourself that you wouldn't demand of a friend?",
			},
			momentum: []string{
				"What is one small action that could recreate a tiny piece of that past feeling?",
				"What's the gentlest way back in—a five-minute version of the old habit?",
			},
		},
		outro: "You've honored the pause and chosen to begin again. That is the essence of momentum.",
	},
}
