package view

// Color is one palette entry.
type Color struct {
	Name string
	Hex  string
}

// Palette is the fixed set of card backgrounds, cycled by card position.
var Palette = [8]Color{
	{Name: "orange", Hex: "#f97316"},
	{Name: "teal", Hex: "#14b8a6"},
	{Name: "purple", Hex: "#a855f7"},
	{Name: "pink", Hex: "#ec4899"},
	{Name: "blue", Hex: "#3b82f6"},
	{Name: "green", Hex: "#22c55e"},
	{Name: "red", Hex: "#ef4444"},
	{Name: "yellow", Hex: "#eab308"},
}

// ColorAt returns the background for the card at position i.
func ColorAt(i int) Color {
	n := len(Palette)
	return Palette[((i%n)+n)%n]
}
