package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// interactiveTerminal reports whether both ends of the conversation are a
// real terminal, so prompts won't hang a piped or scripted invocation.
func interactiveTerminal() bool {
	return isTerminal(os.Stdin) && isTerminal(os.Stdout)
}

func isTerminal(file *os.File) bool {
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// promptLine asks a question and returns the trimmed answer, or fallback when
// the user just presses enter.
func promptLine(in *bufio.Reader, out io.Writer, question, fallback string) string {
	fmt.Fprintf(out, "%s [%s]: ", question, fallback)
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return fallback
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return fallback
	}
	return line
}

// confirm asks a yes/no question and defaults to no.
func confirm(in *bufio.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", question)
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
