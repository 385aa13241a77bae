package icon

// Icon names a symbol of the registry.
type Icon int

const (
	Success Icon = iota
	Fail
	Warn
	Progress
	Mark
	Question
	Link
	Live
	Popular
	HD
	Clock
	Sport
	Source
	Stream
)

var icons = map[Icon]*iconDef{
	Success: {
		emoji:   "🎉",
		nerd:    "",
		plain:   "OK",
		kaomoji: "(ᵔ◡ᵔ)",
		squares: "🟩",
	},
	Fail: {
		emoji:   "💀",
		nerd:    "",
		plain:   "ERR",
		kaomoji: "(╯°□°）╯︵ ┻━┻",
		squares: "🟥",
	},
	Warn: {
		emoji:   "⚠️",
		nerd:    "",
		plain:   "!",
		kaomoji: "(・_・;)",
		squares: "🟨",
	},
	Progress: {
		emoji:   "👨‍🍳",
		nerd:    "",
		plain:   "...",
		kaomoji: "(o_ _)ﾉ",
		squares: "🟦",
	},
	Mark: {
		emoji:   "🦋",
		nerd:    "",
		plain:   "*",
		kaomoji: "(◕‿◕)",
		squares: "🟪",
	},
	Question: {
		emoji:   "🤨",
		nerd:    "",
		plain:   "?",
		kaomoji: "(・・ )?",
		squares: "🟧",
	},
	Link: {
		emoji:   "🔗",
		nerd:    "",
		plain:   "->",
		kaomoji: "(っ˘ڡ˘ς)",
		squares: "⬜",
	},
	Live: {
		emoji:   "🔴",
		nerd:    "",
		plain:   "LIVE",
		kaomoji: "(ﾉ◕ヮ◕)ﾉ",
		squares: "🟥",
	},
	Popular: {
		emoji:   "🔥",
		nerd:    "",
		plain:   "HOT",
		kaomoji: "(ง'̀-'́)ง",
		squares: "🟧",
	},
	HD: {
		emoji:   "📺",
		nerd:    "",
		plain:   "HD",
		kaomoji: "(⌐■_■)",
		squares: "🟩",
	},
	Clock: {
		emoji:   "⏰",
		nerd:    "",
		plain:   "@",
		kaomoji: "(￣ω￣;)",
		squares: "⬛",
	},
	Sport: {
		emoji:   "🏟️",
		nerd:    "",
		plain:   "#",
		kaomoji: "ᕦ(ò_óˇ)ᕤ",
		squares: "🟫",
	},
	Source: {
		emoji:   "📡",
		nerd:    "",
		plain:   "~",
		kaomoji: "(•̀ᴗ•́)و",
		squares: "🟦",
	},
	Stream: {
		emoji:   "🎬",
		nerd:    "",
		plain:   ">",
		kaomoji: "(☞ﾟヮﾟ)☞",
		squares: "🟩",
	},
}
