package session

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"
)

var red = color.New(color.FgRed)

const slash = "----------------------------------------------"

type prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
	err     io.Writer
}

func newPrompter(in io.Reader, out, errOut io.Writer) *prompter {
	return &prompter{
		scanner: bufio.NewScanner(in),
		out:     out,
		err:     errOut,
	}
}

func (p *prompter) println(a ...any) {
	fmt.Fprintln(p.out, a...)
}

func (p *prompter) printf(format string, a ...any) {
	fmt.Fprintf(p.out, format, a...)
}

func (p *prompter) errorf(format string, a ...any) {
	red.Fprintf(p.err, format+"\n", a...)
}

// readLine prints the prompt and returns the next input line. It returns
// io.EOF at the end of the input.
func (p *prompter) readLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimRight(p.scanner.Text(), "\r"), nil
}

// readDecimal reads an amount, asking again until the input parses.
func (p *prompter) readDecimal(prompt string) (decimal.Decimal, error) {
	for {
		s, err := p.readLine(prompt)
		if err != nil {
			return decimal.Zero, err
		}
		d, err := decimal.NewFromString(strings.TrimSpace(s))
		if err == nil {
			return d, nil
		}
		p.errorf("Bad entry.")
		prompt = "Please try again: "
	}
}

// readInt reads an integer, asking again until the input parses.
func (p *prompter) readInt(prompt string) (int, error) {
	for {
		s, err := p.readLine(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err == nil {
			return n, nil
		}
		p.errorf("Bad entry.")
		prompt = "Please try again: "
	}
}

func (p *prompter) pause() error {
	_, err := p.readLine("Press Enter to continue.")
	p.println()
	return err
}

// choose prints a menu and returns the selected option.
func (p *prompter) choose(title string, options []string, exit string) (string, error) {
	p.println(slash)
	p.println(title)
	p.println(slash)
	p.println()
	for i, o := range options {
		p.printf("%d. %s\n", i+1, o)
	}
	p.printf("Any key else: %s\n", exit)
	p.println()
	p.println(slash)
	s, err := p.readLine("Choose your option: ")
	return trim(s), err
}

func trim(s string) string {
	return strings.TrimSpace(s)
}
