package cli

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/listbot/internal/engine"
	"github.com/dmitrijs2005/listbot/internal/models"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// executor is the part of the engine the REPL drives.
type executor interface {
	Execute(ctx context.Context, cmd engine.Command) engine.Reply
}

// session is the owner the REPL currently acts as.
type session struct {
	owner int64
	name  string
}

func (s *session) status() string {
	switch {
	case s.owner == 0:
		return "nobody"
	case s.name != "":
		return fmt.Sprintf("%s (%d)", s.name, s.owner)
	default:
		return strconv.FormatInt(s.owner, 10)
	}
}

// runREPL reads commands line by line and runs them against the engine.
//
// Commands:
//
//	as <owner> [name]          act as the given owner
//	<function>[:list] [param]  run a list command, optionally on an explicit list
//	exit | quit                leave the program
//
// The prompt is only printed when prompt is true, so piped input produces
// nothing but replies.
func runREPL(ctx context.Context, exec executor, scanner *bufio.Scanner, prompt bool) {
	s := &session{}
	for {
		if prompt {
			printlnFn(fmt.Sprintf("listbot> %s > ", s.status()))
		}
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		word, rest, _ := strings.Cut(line, " ")
		rest = strings.TrimSpace(rest)

		switch strings.ToLower(word) {
		case "exit", "quit":
			printlnFn("Bye!")
			return

		case "as":
			if err := s.switchOwner(rest); err != nil {
				printlnFn(err.Error())
				continue
			}
			printlnFn("Acting as", s.status())

		default:
			if s.owner == 0 {
				printlnFn("Choose an owner first: as <owner> [name]")
				continue
			}
			function, listID, _ := strings.Cut(word, ":")
			reply := exec.Execute(ctx, engine.Command{
				Function:    function,
				Parameter:   rest,
				Owner:       s.owner,
				DisplayName: s.name,
				ListID:      listID,
			})
			printReply(reply)
		}
	}
}

func (s *session) switchOwner(args string) error {
	idText, name, _ := strings.Cut(args, " ")
	id, err := strconv.ParseInt(idText, 10, 64)
	if err != nil || id <= 0 {
		return fmt.Errorf("usage: as <owner> [name]")
	}
	s.owner = id
	s.name = strings.TrimSpace(name)
	return nil
}

func printReply(r engine.Reply) {
	if r.Message != "" {
		printlnFn(r.Message)
	}
	for _, p := range r.Pages {
		printlnFn(formatPage(p))
	}
}

func formatPage(p models.Page) string {
	var b strings.Builder
	b.WriteString("== " + p.Title + " ==\n")
	if p.ThumbnailURL != "" {
		b.WriteString("[" + p.ThumbnailURL + "]\n")
	}
	b.WriteString(p.Body)
	b.WriteString("\n-- " + p.Footer)
	return b.String()
}
