package types

import "fmt"

// Log levels
const (
	LogDebug = "debug"
	LogInfo  = "info"
	LogWarn  = "warn"
	LogError = "error"
)

// Metadata describes the tool itself
type Metadata struct {
	Title   string
	Version string
	Date    string
	Author  string
}

// About returns the tool metadata
func About() Metadata {
	return Metadata{
		Title:   "Relay controller tool",
		Version: "1.0.0",
		Date:    "15-Nov-2019",
		Author:  "Sani Sasa Burgic - sani.sasa.burgic@gmail.com",
	}
}

// Banner renders the metadata block printed on startup
func (m Metadata) Banner() string {
	return fmt.Sprintf("\n%s\n\nVersion : %s\nDate    : %s\nAuthor  : %s\n\n",
		m.Title, m.Version, m.Date, m.Author)
}
