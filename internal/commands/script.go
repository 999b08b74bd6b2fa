package commands

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/colonyops/dayplan/internal/core/todo"
)

// Script executes line commands against a list:
//
//	add <text>
//	edit <n> <text>
//	toggle <n>
//	remove <n>
//	list
//
// <n> is the 1-based position in the list at the time the line runs. Blank
// lines and lines starting with # are skipped.
type Script struct {
	list   *todo.List
	onList func([]todo.Item) error
	log    zerolog.Logger
}

// NewScript creates a Script over list. onList is called for each list
// command and may be nil.
func NewScript(list *todo.List, onList func([]todo.Item) error, log zerolog.Logger) *Script {
	if onList == nil {
		onList = func([]todo.Item) error { return nil }
	}
	return &Script{list: list, onList: onList, log: log}
}

// Run executes every line of r and stops at the first error.
func (s *Script) Run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if err := s.exec(scanner.Text()); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	return nil
}

func (s *Script) exec(line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}

	verb, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch verb {
	case "add":
		if item, ok := s.list.Add(rest); ok {
			s.log.Debug().Stringer("id", item.ID).Msg("script add")
		}
		return nil

	case "edit":
		pos, text, _ := strings.Cut(rest, " ")
		item, err := s.at(pos)
		if err != nil {
			return err
		}
		s.list.Update(item.ID, todo.Item{Text: strings.TrimSpace(text), IsComplete: item.IsComplete})
		return nil

	case "toggle":
		item, err := s.at(rest)
		if err != nil {
			return err
		}
		s.list.ToggleComplete(item.ID)
		return nil

	case "remove":
		item, err := s.at(rest)
		if err != nil {
			return err
		}
		s.list.Remove(item.ID)
		return nil

	case "list":
		if rest != "" {
			return fmt.Errorf("list takes no arguments")
		}
		return s.onList(s.list.Items())

	default:
		return fmt.Errorf("unknown command %q", verb)
	}
}

func (s *Script) at(pos string) (todo.Item, error) {
	if pos == "" {
		return todo.Item{}, fmt.Errorf("missing position")
	}

	n, err := strconv.Atoi(pos)
	if err != nil {
		return todo.Item{}, fmt.Errorf("invalid position %q", pos)
	}

	items := s.list.Items()
	if n < 1 || n > len(items) {
		return todo.Item{}, fmt.Errorf("position %d out of range (%d items)", n, len(items))
	}
	return items[n-1], nil
}
