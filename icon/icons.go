package icon

// Icon identifies a UI symbol.
type Icon int

const (
	Lua Icon = iota + 1
	Go
	Success
	Fail
	Mark
	Progress
	Search
	Link
	Play
	Episode
	Movie
	Subtitle
)

var icons = map[Icon]*iconDef{
	Lua: {
		emoji:   "🌙",
		nerd:    "",
		plain:   "Lua",
		kaomoji: "(=^･ω･^=)",
		squares: "🟦",
	},
	Go: {
		emoji:   "🐹",
		nerd:    "",
		plain:   "Go",
		kaomoji: "ʕ◔ϖ◔ʔ",
		squares: "🟩",
	},
	Success: {
		emoji:   "🎉",
		nerd:    " ",
		plain:   "Success",
		kaomoji: "(ᵔ◡ᵔ)",
		squares: "🟩",
	},
	Fail: {
		emoji:   "💀",
		nerd:    " ",
		plain:   "Fail",
		kaomoji: "(╯°□°）╯︵ ┻━┻",
		squares: "🟥",
	},
	Mark: {
		emoji:   "✅",
		nerd:    " ",
		plain:   "*",
		kaomoji: "(* ^ ω ^)",
		squares: "🟪",
	},
	Progress: {
		emoji:   "⏳",
		nerd:    " ",
		plain:   "...",
		kaomoji: "(・_・;)",
		squares: "🟨",
	},
	Search: {
		emoji:   "🔍",
		nerd:    " ",
		plain:   "?",
		kaomoji: "(・・ ) ?",
		squares: "🟦",
	},
	Link: {
		emoji:   "🔗",
		nerd:    " ",
		plain:   "->",
		kaomoji: "(｡•̀ᴗ-)✧",
		squares: "🟫",
	},
	Play: {
		emoji:   "▶️",
		nerd:    " ",
		plain:   ">",
		kaomoji: "(ﾉ◕ヮ◕)ﾉ*:･ﾟ✧",
		squares: "🟧",
	},
	Episode: {
		emoji:   "📺",
		nerd:    " ",
		plain:   "#",
		kaomoji: "(⌐■_■)",
		squares: "⬜",
	},
	Movie: {
		emoji:   "🎬",
		nerd:    " ",
		plain:   "[M]",
		kaomoji: "(☞ﾟヮﾟ)☞",
		squares: "⬛",
	},
	Subtitle: {
		emoji:   "💬",
		nerd:    " ",
		plain:   "[S]",
		kaomoji: "(„• ֊ •„)",
		squares: "🟪",
	},
}
