package response

import (
	"fmt"
	"hotel/shared/failure"
	"hotel/shared/logger"
	"io"
	"strings"
)

// WithMessage writes a single line of text.
func WithMessage(writer io.Writer, message string) {
	response(writer, message)
}

// WithMessagef writes a single formatted line of text.
func WithMessagef(writer io.Writer, format string, args ...any) {
	response(writer, fmt.Sprintf(format, args...))
}

// WithLines writes a heading followed by indented lines.
func WithLines(writer io.Writer, heading string, lines []string) {
	var builder strings.Builder

	builder.WriteString(heading)

	for _, line := range lines {
		builder.WriteString("\n\t")
		builder.WriteString(line)
	}

	response(writer, builder.String())
}

// WithError writes a failure in a form the front desk can act on.
func WithError(writer io.Writer, err error) {
	switch failure.GetKind(err) {
	case failure.KindNoRoomAvailable:
		response(writer, "Sorry, no room is available for those dates.")
	case failure.KindInvalidInterval:
		response(writer, "Invalid stay: "+err.Error()+".")
	case failure.KindInvalidPattern:
		response(writer, "Invalid guest name pattern: "+err.Error()+".")
	case failure.KindBadRequest:
		response(writer, "Invalid input: "+err.Error()+".")
	default:
		response(writer, "Something went wrong, please try again.")
	}
}

func response(writer io.Writer, text string) {
	if _, err := fmt.Fprintln(writer, "\n"+text); err != nil {
		logger.ErrorWithStack(err)
	}
}
