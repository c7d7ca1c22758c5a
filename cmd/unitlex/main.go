package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/zephyrtronium/units"
)

func main() {
	log.SetFlags(0)
	var (
		inname string
		spans  bool
		strict bool
	)
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.BoolVar(&spans, "spans", false, "print byte spans of tokens")
	flag.BoolVar(&strict, "strict", false, "exit with status 1 if any input has lexical errors")
	flag.Parse()

	var srcs []string
	src, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	if src != "" {
		srcs = append(srcs, src)
	}
	srcs = append(srcs, flag.Args()...)

	bad := false
	for _, src := range srcs {
		for _, tok := range units.Tokens(src) {
			if err := tok.Err(); err != nil {
				log.Println(err)
				bad = true
				continue
			}
			var b strings.Builder
			b.WriteString(tok.Kind.String())
			switch tok.Kind {
			case units.TokenUnit:
				b.WriteString(" " + tok.Text)
			case units.TokenNum:
				b.WriteString(" " + tok.Num.Text('f'))
			}
			if spans {
				b.WriteString(" @" + tok.Span.String())
			}
			fmt.Println(b.String())
		}
	}
	if bad && strict {
		os.Exit(1)
	}
}

func infile(inname string, std bool) (string, error) {
	var f *os.File
	switch {
	case inname != "" && inname != "-":
		in, err := os.Open(inname)
		if err != nil {
			return "", err
		}
		defer in.Close()
		f = in
	case inname == "-", std:
		f = os.Stdin
	}
	if f == nil {
		return "", nil
	}
	b, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
