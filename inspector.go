package htmlrag

// Profile summarizes a document for reporting how much an optimization
// removed and how much visible text survived it.
type Profile struct {
	Title      string
	Bytes      int
	Elements   int
	Attributes int

	// TextBytes is the size of the visible text with whitespace collapsed.
	// Script and style content is not counted.
	TextBytes int
}

// Reduction returns the fraction of bytes removed going from p to after.
func (p *Profile) Reduction(after *Profile) float64 {
	if p == nil || after == nil || p.Bytes == 0 {
		return 0
	}
	return 1 - float64(after.Bytes)/float64(p.Bytes)
}

// Inspector computes document profiles.
type Inspector interface {
	Inspect(html string) (*Profile, error)
}
