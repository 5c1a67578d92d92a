package bmeta

import (
	"fmt"
	"io"
)

const defaultBuildMeta = "N/A" // Значение по умолчанию

// Info метаданные сборки, задаются через -ldflags.
type Info struct {
	Version string
	Date    string
	Commit  string
}

func (i Info) withDefaults() Info {
	if i.Version == "" {
		i.Version = defaultBuildMeta
	}
	if i.Date == "" {
		i.Date = defaultBuildMeta
	}
	if i.Commit == "" {
		i.Commit = defaultBuildMeta
	}
	return i
}

// Fprint Распечатывает версию, дату и комит сборки в w.
func Fprint(w io.Writer, info Info) {
	meta := info.withDefaults()
	_, _ = fmt.Fprintf(w, "Build version: %s\n", meta.Version)
	_, _ = fmt.Fprintf(w, "Build date: %s\n", meta.Date)
	_, _ = fmt.Fprintf(w, "Build commit: %s\n", meta.Commit)
}
