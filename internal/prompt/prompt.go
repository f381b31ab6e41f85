package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"golang.org/x/term"
)

// ErrAborted is returned when the user interrupts a prompt.
var ErrAborted = errors.New("prompt aborted")

// Driver asks the user to choose or type a value.
type Driver interface {
	Select(ctx context.Context, message string, options []string) (int, error)
	Input(ctx context.Context, message string, validate func(string) error) (string, error)
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

type surveyDriver struct{}

// NewSurveyDriver returns a Driver that renders interactive terminal prompts.
func NewSurveyDriver() Driver {
	return surveyDriver{}
}

func (surveyDriver) Select(ctx context.Context, message string, options []string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if len(options) == 0 {
		return 0, fmt.Errorf("nothing to select for %q", message)
	}
	var out string
	p := &survey.Select{
		Message: message,
		Options: options,
	}
	if err := survey.AskOne(p, &out); err != nil {
		return 0, translateSurveyErr(err)
	}
	for i, option := range options {
		if option == out {
			return i, nil
		}
	}
	return 0, fmt.Errorf("selection %q is not an option", out)
}

func (surveyDriver) Input(ctx context.Context, message string, validate func(string) error) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	var opts []survey.AskOpt
	if validate != nil {
		opts = append(opts, survey.WithValidator(func(ans interface{}) error {
			s, _ := ans.(string)
			return validate(s)
		}))
	}
	if err := survey.AskOne(&survey.Input{Message: message}, &out, opts...); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}

// LineDriver reads answers one line at a time and renders numbered menus.
type LineDriver struct {
	reader *bufio.Reader
	w      io.Writer
}

// NewLineDriver returns a Driver reading from r and writing prompts to w.
func NewLineDriver(r io.Reader, w io.Writer) *LineDriver {
	return &LineDriver{reader: bufio.NewReader(r), w: w}
}

// Select prints options as a numbered list and reads a 1-based choice.
func (d *LineDriver) Select(ctx context.Context, message string, options []string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if len(options) == 0 {
		return 0, fmt.Errorf("nothing to select for %q", message)
	}

	fmt.Fprintf(d.w, "\n%s\n", message)
	for i, item := range options {
		fmt.Fprintf(d.w, "  %d) %s\n", i+1, item)
	}
	fmt.Fprintf(d.w, "Enter number [1-%d]: ", len(options))

	line, err := d.readLine()
	if err != nil {
		return 0, fmt.Errorf("reading selection: %w", err)
	}

	num, err := strconv.Atoi(line)
	if err != nil || num < 1 || num > len(options) {
		return 0, fmt.Errorf("invalid selection %q: choose 1-%d", line, len(options))
	}

	return num - 1, nil
}

// Input prints message and reads one line, applying validate if set.
func (d *LineDriver) Input(ctx context.Context, message string, validate func(string) error) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fmt.Fprintf(d.w, "\n%s ", message)
	line, err := d.readLine()
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	if validate != nil {
		if err := validate(line); err != nil {
			return "", err
		}
	}
	return line, nil
}

// readLine returns the next trimmed line. A final line without a newline is
// accepted.
func (d *LineDriver) readLine() (string, error) {
	line, err := d.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
