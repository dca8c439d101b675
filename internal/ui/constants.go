package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconBrain = "🧠"
	IconMoon  = "🌙"
	IconSun   = "🌞"
	IconStart = "▶"
	IconScore = "✅"
	IconLevel = "🔢"
)

// Text fragments
const (
	AppTitle         = IconBrain + " Memory Span Challenge"
	SetPlaceholder   = "Select a Cognitive Set"
	StartLabel       = IconStart + " Start Focus Test"
	SubmitLabel      = "Submit"
	ResetLabel       = "Reset"
	InputPlaceholder = "e.g. 5-7-3-1"
	ScoreFormat      = IconScore + " Score: %d"
	LevelFormat      = IconLevel + " Level: %d"
	ValidationTitle  = "Digit Span"
	InputFormatHint  = "Use single digits separated by '-'"
)

// Welcome text shown while no session is running
const (
	WelcomeHeading = "Welcome to the Digit Span Test"
	WelcomeBody    = "This test measures your short-term memory capacity.\n\n" +
		"• Forward (▶️): Repeat the sequence exactly as shown.\n" +
		"• Backward (◀️): Repeat the sequence in reverse order.\n" +
		"• Sequences start short and get longer as you succeed."
	WelcomeFooter = "Select a Set and click Start Focus Test to begin."
)

// Layout sizing
const (
	CardCornerRadius float32 = 40
	CardPadding      float32 = 24
	SequenceTextSize float32 = 56
	EntryMinWidth    float32 = 320
)
