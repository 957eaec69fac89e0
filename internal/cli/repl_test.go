package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/dmitrijs2005/listbot/internal/engine"
	"github.com/dmitrijs2005/listbot/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	calls []engine.Command
	reply engine.Reply
}

func (f *fakeExec) Execute(_ context.Context, cmd engine.Command) engine.Reply {
	f.calls = append(f.calls, cmd)
	return f.reply
}

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var out []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		out = append(out, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &out
}

func run(exec executor, input string, prompt bool) {
	runREPL(context.Background(), exec, bufio.NewScanner(strings.NewReader(input)), prompt)
}

func TestRunREPL_RequiresOwner(t *testing.T) {
	out := captureOutput(t)
	exec := &fakeExec{}

	run(exec, "add Frieren\nexit\n", false)

	assert.Empty(t, exec.calls)
	assert.Equal(t, []string{"Choose an owner first: as <owner> [name]", "Bye!"}, *out)
}

func TestRunREPL_BuildsCommands(t *testing.T) {
	captureOutput(t)
	exec := &fakeExec{}

	run(exec, strings.Join([]string{
		"as 42 Mika Kagehira",
		"add [2] Frieren",
		"",
		"CLEAR:anime",
		"show bestgirl <@7>",
		"static",
	}, "\n"), false)

	require.Len(t, exec.calls, 4)
	assert.Equal(t, engine.Command{Function: "add", Parameter: "[2] Frieren", Owner: 42, DisplayName: "Mika Kagehira"}, exec.calls[0])
	assert.Equal(t, engine.Command{Function: "CLEAR", Owner: 42, DisplayName: "Mika Kagehira", ListID: "anime"}, exec.calls[1])
	assert.Equal(t, "bestgirl <@7>", exec.calls[2].Parameter)
	assert.Equal(t, "static", exec.calls[3].Function)
}

func TestRunREPL_BadOwner(t *testing.T) {
	out := captureOutput(t)
	exec := &fakeExec{}

	run(exec, "as\nas -3\nas abc\nquit\n", false)

	assert.Empty(t, exec.calls)
	assert.Equal(t, []string{
		"usage: as <owner> [name]",
		"usage: as <owner> [name]",
		"usage: as <owner> [name]",
		"Bye!",
	}, *out)
}

func TestRunREPL_PromptShowsOwner(t *testing.T) {
	out := captureOutput(t)

	run(&fakeExec{}, "as 5\n", true)

	assert.Equal(t, []string{
		"listbot> nobody > ",
		"Acting as 5",
		"listbot> 5 > ",
	}, *out)
}

func TestRunREPL_PrintsReply(t *testing.T) {
	out := captureOutput(t)
	exec := &fakeExec{reply: engine.Reply{
		Message: "Added.",
		Pages: []models.Page{{
			Title:        "anime",
			Body:         "1. Frieren",
			ThumbnailURL: "https://example.com/f.png",
			Footer:       "10/2048",
		}},
	}}

	run(exec, "as 1\nadd Frieren\n", false)

	assert.Equal(t, []string{
		"Acting as 1",
		"Added.",
		"== anime ==\n[https://example.com/f.png]\n1. Frieren\n-- 10/2048",
	}, *out)
}
