package menu

const (
	colReset  = "\033[0m"
	colBold   = "\033[1m"
	colGreen  = "\033[32m"
	colRed    = "\033[31m"
	colYellow = "\033[33m"
	colCyan   = "\033[36m"
)

// style wraps text in ANSI colours when enabled.
type style struct {
	enabled bool
}

func (s style) c(code, text string) string {
	if !s.enabled {
		return text
	}
	return code + text + colReset
}

func (s style) bold(text string) string { return s.c(colBold, text) }
func (s style) good(text string) string { return s.c(colGreen, text) }
func (s style) warn(text string) string { return s.c(colYellow, text) }
func (s style) bad(text string) string  { return s.c(colRed, text) }
func (s style) cyan(text string) string { return s.c(colCyan, text) }
