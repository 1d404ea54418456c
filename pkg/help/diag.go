package help

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Diag writes one-line parse diagnostics to a sink. The "error:"
// prefix is painted red when the sink is a terminal, plain otherwise.
// It satisfies the parse.ErrorSink interface.
type Diag struct {
	out   io.Writer
	paint *color.Color
}

// NewDiag creates a diagnostic sink on w, detecting terminal support
// for color automatically.
func NewDiag(w io.Writer) *Diag {
	paint := color.New(color.FgRed, color.Bold)
	if !writerIsTerminal(w) {
		paint.DisableColor()
	}
	return &Diag{out: w, paint: paint}
}

// ParseError writes the diagnostic line for a parse failure.
func (d *Diag) ParseError(err error) {
	fmt.Fprintf(d.out, "%s %v\n", d.paint.Sprint("error:"), err)
}

func writerIsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
