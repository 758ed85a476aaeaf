package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/hanoi/pkg/errors"
)

// =============================================================================
// Styles
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorRed    = lipgloss.Color("167")
	colorWhite  = lipgloss.Color("255")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")
)

// Styles shared by the play view and status output.
var (
	StyleTitle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	StyleDim    = lipgloss.NewStyle().Foreground(colorDim)
	StyleValue  = lipgloss.NewStyle().Foreground(colorWhite)
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	styleHeader      = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)
)

// =============================================================================
// Status Output
// =============================================================================

// status is the kind of a one-line message: an icon and how to color it.
type status struct {
	icon      string
	iconStyle lipgloss.Style
	text      *lipgloss.Style // nil leaves the message unstyled
}

var (
	warningText = lipgloss.NewStyle().Foreground(colorYellow)

	statusSuccess = status{"✓", lipgloss.NewStyle().Foreground(colorGreen), nil}
	statusError   = status{"✗", lipgloss.NewStyle().Foreground(colorRed), nil}
	statusWarning = status{"!", lipgloss.NewStyle().Foreground(colorYellow), &warningText}
	statusInfo    = status{"›", lipgloss.NewStyle().Foreground(colorGray), nil}
)

func (s status) print(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if s.text != nil {
		msg = s.text.Render(msg)
	}
	fmt.Fprintln(w, s.iconStyle.Render(s.icon)+" "+msg)
}

func printSuccess(w io.Writer, format string, args ...any) { statusSuccess.print(w, format, args...) }
func printError(w io.Writer, format string, args ...any)   { statusError.print(w, format, args...) }
func printWarning(w io.Writer, format string, args ...any) { statusWarning.print(w, format, args...) }
func printInfo(w io.Writer, format string, args ...any)    { statusInfo.print(w, format, args...) }

// printDetail prints an indented, muted line under a status message.
func printDetail(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, "  "+StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints the path of a written file under a status message.
func printFile(w io.Writer, path string) {
	fmt.Fprintln(w, "  "+StyleDim.Render("→")+" "+StyleValue.Render(path))
}

// =============================================================================
// Errors
// =============================================================================

// PrintError writes err to w in the error style, without error-code prefixes.
func PrintError(w io.Writer, err error) {
	printError(w, "%s", errorMessage(err))
}

// errorMessage keeps causes that carry their own code, such as the move
// error behind a rejected transcript, and drops library detail otherwise.
func errorMessage(err error) string {
	e, ok := err.(*errors.Error)
	if !ok {
		return err.Error()
	}
	if e.Cause != nil && errors.GetCode(e.Cause) != "" {
		return e.Message + ": " + errorMessage(e.Cause)
	}
	return e.Message
}
