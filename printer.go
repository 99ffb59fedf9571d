package main

import (
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"

	"github.com/9seconds/geolookup/geolib"
)

type consolePrinter struct {
	out io.Writer
	au  aurora.Aurora
}

func (c consolePrinter) Print(section geolib.Section) {
	fmt.Fprintf(c.out, "\n%s\n%s\n", c.au.Cyan(section.Header()), geolib.Separator)

	for _, line := range section.Lines() {
		fmt.Fprintln(c.out, line)
	}
}

func (c consolePrinter) Error(message string) {
	fmt.Fprintf(c.out, "%s %s\n", c.au.Red("[ERROR]"), message)
}

func newConsolePrinter(out io.Writer, colors bool) consolePrinter {
	return consolePrinter{
		out: out,
		au:  aurora.NewAurora(colors),
	}
}
