package mini

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/anisan-cli/streamkit/color"
	"github.com/anisan-cli/streamkit/icon"
	"github.com/anisan-cli/streamkit/query"
	"github.com/anisan-cli/streamkit/style"
	"github.com/anisan-cli/streamkit/util"
)

// bind is a menu entry that is not an item, like "back" or "quit".
type bind struct {
	label string
}

func (b *bind) String() string {
	return b.label
}

func (b *bind) eq(other *bind) bool {
	return b == other
}

var (
	quit   = &bind{"Quit"}
	back   = &bind{"Back"}
	search = &bind{"Search"}
	next   = &bind{"Next episode"}
	prev   = &bind{"Previous episode"}
	replay = &bind{"Replay"}
)

// menu asks for one of items or binds. Exactly one of the returned bind and item is set.
func menu[T fmt.Stringer](items []T, binds ...*bind) (*bind, T, error) {
	var zero T

	binds = append(binds, quit)
	options := make([]string, 0, len(items)+len(binds))
	for i, item := range items {
		options = append(options, fmt.Sprintf("%d. %s", i+1, style.Truncate(truncateAt)(item.String())))
	}
	for _, b := range binds {
		options = append(options, style.Faint(b.label))
	}

	var choice int
	err := survey.AskOne(&survey.Select{
		Message:  "Choose",
		Options:  options,
		PageSize: min(len(options), 15),
	}, &choice, survey.WithIcons(icons))
	if err != nil {
		return nil, zero, err
	}

	if choice < len(items) {
		return nil, items[choice], nil
	}
	return binds[choice-len(items)], zero, nil
}

type input struct {
	value string
}

// getInput reads a line, re-asking until validate accepts it.
// Remembered queries are offered as completions.
func getInput(validate func(string) bool) (*input, error) {
	var response string
	err := survey.AskOne(&survey.Input{
		Message: ">",
		Suggest: query.SuggestMany,
	}, &response, survey.WithValidator(func(ans any) error {
		s, _ := ans.(string)
		if !validate(s) {
			return errors.New("invalid input")
		}
		return nil
	}), survey.WithIcons(icons))
	if err != nil {
		return nil, err
	}

	return &input{value: response}, nil
}

func icons(set *survey.IconSet) {
	set.Question.Text = icon.Get(icon.Search)
	set.Question.Format = "magenta+b"
	set.SelectFocus.Text = icon.Get(icon.Mark)
}

func title(t string) {
	fmt.Println(style.Tag(color.Black, color.Purple)(t))
}

func fail(t string) {
	fmt.Println(style.Fg(color.Red)(icon.Get(icon.Fail) + " " + t))
}

func progress(t string) (eraser func()) {
	return util.PrintErasable(fmt.Sprintf("%s %s", icon.Get(icon.Progress), style.Faint(t)))
}
