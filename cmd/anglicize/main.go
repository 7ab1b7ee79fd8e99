// Command anglicize is a filter: it reads UTF-8 text from its input files
// or from standard input and writes the English transcription to standard
// output (or to a file given with -o).
package main

import (
	"bufio"
	"io"
	"log"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ad/anglicize"
)

var CLI struct {
	Output string   `name:"output" short:"o" help:"Write output to a file instead of stdout." type:"path"`
	Files  []string `arg:"" optional:"" help:"Input files; stdin when omitted." type:"existingfile"`
}

func main() {
	kong.Parse(&CLI,
		kong.Name("anglicize"),
		kong.Description("Convert UTF-8 text to its English transcription."))

	if err := run(os.Stdin); err != nil {
		log.Fatal(err)
	}
}

func run(stdin io.Reader) (err error) {
	out := os.Stdout
	if CLI.Output != "" {
		f, cerr := os.Create(CLI.Output)
		if cerr != nil {
			return cerr
		}
		out = f

		// Do not leave a partial transcription behind on failure.
		defer func() {
			f.Close()
			if err != nil {
				os.Remove(CLI.Output)
			}
		}()
	}

	w := bufio.NewWriter(out)
	a := anglicize.New()

	// All inputs are one logical stream; the engine state carries over
	// file boundaries and is flushed once at the end.
	if len(CLI.Files) == 0 {
		if err := pump(w, stdin, a); err != nil {
			return err
		}
	}
	for _, name := range CLI.Files {
		f, err := os.Open(name)
		if err != nil {
			return err
		}

		err = pump(w, f, a)
		f.Close()
		if err != nil {
			return err
		}
	}

	if _, err := w.Write(a.Finalize()); err != nil {
		return err
	}

	return w.Flush()
}

func pump(w io.Writer, r io.Reader, a *anglicize.Anglicize) error {
	buf := make([]byte, 4096)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			if _, werr := w.Write(a.Process(buf[:n])); werr != nil {
				return werr
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
