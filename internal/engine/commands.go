package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/listbot/internal/common"
	"github.com/dmitrijs2005/listbot/internal/lists"
	"github.com/dmitrijs2005/listbot/internal/parse"
)

// target is the explicitly named list, or the active one.
func (e *Engine) target(cmd Command) (*lists.List, error) {
	if strings.TrimSpace(cmd.ListID) != "" {
		return e.dir.Get(cmd.Owner, cmd.ListID)
	}
	return e.dir.Active(cmd.Owner)
}

func view(l *lists.List, cmd Command, message string) Reply {
	return Reply{Message: message, Pages: l.Pages(cmd.DisplayName)}
}

func (e *Engine) add(ctx context.Context, cmd Command) (Reply, error) {
	l, err := e.target(cmd)
	if err != nil {
		return Reply{}, err
	}
	r, err := parse.Element(cmd.Parameter)
	if err != nil {
		return Reply{}, err
	}
	if err := lists.ValidateElement(r.Text); err != nil {
		return Reply{}, err
	}
	pos := l.Len()
	if r.HasRank {
		// an explicit [0] is out of range, not "append"
		if r.Rank < 1 {
			return Reply{}, l.ValidateRank(r.Rank)
		}
		if err := l.ValidateInsertRank(r.Rank); err != nil {
			return Reply{}, err
		}
		pos = r.Rank - 1
	}

	if err := e.store.Insert(ctx, l.Key(), pos, r.Text); err != nil {
		return Reply{}, err
	}
	at, err := l.Add(r.Text, r.Rank)
	if err != nil {
		return Reply{}, err
	}
	return view(l, cmd, fmt.Sprintf("Added %q at rank %d.", r.Text, at)), nil
}

func (e *Engine) multiadd(ctx context.Context, cmd Command) (Reply, error) {
	l, err := e.target(cmd)
	if err != nil {
		return Reply{}, err
	}
	elements := parse.Elements(cmd.Parameter)
	if len(elements) == 0 {
		return Reply{}, common.ErrEmptyElement
	}
	for _, el := range elements {
		if err := lists.ValidateElement(el); err != nil {
			return Reply{}, err
		}
	}

	if err := e.store.Append(ctx, l.Key(), l.Len(), elements); err != nil {
		return Reply{}, err
	}
	for _, el := range elements {
		if _, err := l.Add(el, 0); err != nil {
			return Reply{}, err
		}
	}
	return view(l, cmd, fmt.Sprintf("Added %d elements.", len(elements))), nil
}

func (e *Engine) remove(ctx context.Context, cmd Command) (Reply, error) {
	l, err := e.target(cmd)
	if err != nil {
		return Reply{}, err
	}
	ranks, err := parse.RankSet(cmd.Parameter)
	if err != nil {
		return Reply{}, err
	}
	stored := make([]int, len(ranks))
	for i, rank := range ranks {
		if err := l.ValidateRank(rank); err != nil {
			return Reply{}, err
		}
		stored[i] = rank - 1
	}

	if err := e.store.Remove(ctx, l.Key(), stored); err != nil {
		return Reply{}, err
	}
	removed := make([]string, len(ranks))
	for i, rank := range ranks {
		el, err := l.Remove(rank)
		if err != nil {
			return Reply{}, err
		}
		// ranks run highest first, report them lowest first
		removed[len(ranks)-1-i] = fmt.Sprintf("%q", el)
	}
	return view(l, cmd, "Removed "+strings.Join(removed, ", ")+"."), nil
}

func (e *Engine) replace(ctx context.Context, cmd Command) (Reply, error) {
	l, err := e.target(cmd)
	if err != nil {
		return Reply{}, err
	}
	r, err := parse.RankedElement(cmd.Parameter)
	if err != nil {
		return Reply{}, err
	}
	if err := lists.ValidateElement(r.Text); err != nil {
		return Reply{}, err
	}
	if err := l.ValidateRank(r.Rank); err != nil {
		return Reply{}, err
	}

	if err := e.store.Replace(ctx, l.Key(), r.Rank-1, r.Text); err != nil {
		return Reply{}, err
	}
	old, err := l.Replace(r.Text, r.Rank)
	if err != nil {
		return Reply{}, err
	}
	return view(l, cmd, fmt.Sprintf("Replaced %q with %q at rank %d.", old, r.Text, r.Rank)), nil
}

func (e *Engine) move(ctx context.Context, cmd Command) (Reply, error) {
	l, err := e.target(cmd)
	if err != nil {
		return Reply{}, err
	}
	from, to, err := parse.RankPair(cmd.Parameter)
	if err != nil {
		return Reply{}, err
	}
	if err := l.ValidateRank(from); err != nil {
		return Reply{}, err
	}
	if err := l.ValidateRank(to); err != nil {
		return Reply{}, err
	}
	element, err := l.Get(from)
	if err != nil {
		return Reply{}, err
	}

	if err := e.store.Move(ctx, l.Key(), from-1, to-1, element); err != nil {
		return Reply{}, err
	}
	if err := l.Move(from, to); err != nil {
		return Reply{}, err
	}
	return view(l, cmd, fmt.Sprintf("Moved %q to rank %d.", element, to)), nil
}

func (e *Engine) swap(ctx context.Context, cmd Command) (Reply, error) {
	l, err := e.target(cmd)
	if err != nil {
		return Reply{}, err
	}
	a, b, err := parse.RankPair(cmd.Parameter)
	if err != nil {
		return Reply{}, err
	}
	if err := l.ValidateRank(a); err != nil {
		return Reply{}, err
	}
	if err := l.ValidateRank(b); err != nil {
		return Reply{}, err
	}

	if err := e.store.Swap(ctx, l.Key(), a-1, b-1); err != nil {
		return Reply{}, err
	}
	atA, atB, err := l.Swap(a, b)
	if err != nil {
		return Reply{}, err
	}
	return view(l, cmd, fmt.Sprintf("Swapped %q and %q.", atB, atA)), nil
}

func (e *Engine) clear(ctx context.Context, cmd Command) (Reply, error) {
	l, err := e.target(cmd)
	if err != nil {
		return Reply{}, err
	}
	if err := e.store.Clear(ctx, l.Key()); err != nil {
		return Reply{}, err
	}
	l.Clear()
	return view(l, cmd, "Cleared."), nil
}

func (e *Engine) title(ctx context.Context, cmd Command) (Reply, error) {
	l, err := e.target(cmd)
	if err != nil {
		return Reply{}, err
	}
	title := strings.TrimSpace(cmd.Parameter)
	if err := lists.ValidateTitle(title); err != nil {
		return Reply{}, err
	}
	if err := e.store.SetTitle(ctx, l.Key(), title); err != nil {
		return Reply{}, err
	}
	if err := l.SetTitle(title); err != nil {
		return Reply{}, err
	}
	return view(l, cmd, "Title updated."), nil
}

func (e *Engine) thumbnail(ctx context.Context, cmd Command) (Reply, error) {
	l, err := e.target(cmd)
	if err != nil {
		return Reply{}, err
	}
	url := strings.TrimSpace(cmd.Parameter)
	if err := lists.ValidateThumbnail(url); err != nil {
		return Reply{}, err
	}
	if err := e.store.SetThumbnail(ctx, l.Key(), url); err != nil {
		return Reply{}, err
	}
	if err := l.SetThumbnail(url); err != nil {
		return Reply{}, err
	}
	return view(l, cmd, "Thumbnail updated."), nil
}

func (e *Engine) create(ctx context.Context, cmd Command) (Reply, error) {
	l, err := e.dir.Create(ctx, cmd.Owner, cmd.Parameter)
	if err != nil {
		return Reply{}, err
	}
	return view(l, cmd, fmt.Sprintf("Created list %q and started using it.", l.Key().ListID)), nil
}

func (e *Engine) drop(ctx context.Context, cmd Command) (Reply, error) {
	if err := e.dir.Drop(ctx, cmd.Owner, cmd.Parameter); err != nil {
		return Reply{}, err
	}
	return Reply{Message: fmt.Sprintf("Dropped list %q.", lists.NormalizeID(cmd.Parameter))}, nil
}

func (e *Engine) use(ctx context.Context, cmd Command) (Reply, error) {
	l, err := e.dir.Select(cmd.Owner, cmd.Parameter)
	if err != nil {
		return Reply{}, err
	}
	return view(l, cmd, fmt.Sprintf("Now using %q.", l.Key().ListID)), nil
}

func (e *Engine) static(ctx context.Context, cmd Command) (Reply, error) {
	l, err := e.target(cmd)
	if err != nil {
		return Reply{}, err
	}
	return view(l, cmd, ""), nil
}

func (e *Engine) help(ctx context.Context, cmd Command) (Reply, error) {
	return Reply{Message: helpText}, nil
}

// show lists the owner's lists, or shows one of them. The reserved list of
// another owner can be shown by mentioning that owner.
func (e *Engine) show(ctx context.Context, cmd Command) (Reply, error) {
	head, _, _ := strings.Cut(strings.TrimSpace(cmd.Parameter), " ")
	id := lists.NormalizeID(head)
	if id == "" {
		return Reply{Message: e.listing(cmd.Owner)}, nil
	}

	owner, name := cmd.Owner, cmd.DisplayName
	if id == e.dir.ReservedID() && hasMention(cmd) {
		other, err := mentionedOwner(cmd)
		if err != nil {
			return Reply{}, err
		}
		if other != cmd.Owner {
			owner, name = other, ""
		}
	}
	l, err := e.dir.Get(owner, id)
	if err != nil {
		return Reply{}, err
	}
	return Reply{Pages: l.Pages(name)}, nil
}

func (e *Engine) listing(owner int64) string {
	summaries := e.dir.Summaries(owner)
	if len(summaries) == 0 {
		return "You have no lists yet. Start one with `create <name>`."
	}
	var b strings.Builder
	b.WriteString("Your lists:")
	for _, s := range summaries {
		fmt.Fprintf(&b, "\n%s (%d)", s.ListID, s.Count)
		if s.Active {
			b.WriteString(" [in use]")
		}
	}
	return b.String()
}

// mentionRaw is the mention given in the command, or the text that follows
// the list id in the parameter.
func mentionRaw(cmd Command) string {
	if m := strings.TrimSpace(cmd.Mention); m != "" {
		return m
	}
	_, rest, _ := strings.Cut(strings.TrimSpace(cmd.Parameter), " ")
	return strings.TrimSpace(rest)
}

func hasMention(cmd Command) bool {
	return mentionRaw(cmd) != ""
}

func mentionedOwner(cmd Command) (int64, error) {
	raw := mentionRaw(cmd)
	if raw == "" {
		return 0, common.ErrMissingMention
	}
	return parse.Mention(raw)
}
