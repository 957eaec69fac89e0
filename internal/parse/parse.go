// Package parse turns command parameters into typed values. Every list
// command reads its ranks through this package so "[3] text", "3 text" and
// "3; 5; 7" are understood the same way everywhere.
package parse

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/listbot/internal/common"
	"github.com/dmitrijs2005/listbot/internal/lists"
)

// Ranked is an element optionally prefixed with a rank.
type Ranked struct {
	Text    string
	Rank    int
	HasRank bool
}

// Element parses "[rank] text" or plain "text". A leading bare number is part
// of the text, so "86 Eighty-Six" is added verbatim.
func Element(s string) (Ranked, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "[") {
		return Ranked{Text: lists.NormalizeElement(s)}, nil
	}
	end := strings.IndexByte(s, ']')
	if end < 0 {
		return Ranked{}, fmt.Errorf("%w: unclosed bracket in %q", common.ErrMalformedRank, s)
	}
	rank, err := number(s[1:end])
	if err != nil {
		return Ranked{}, err
	}
	return Ranked{Text: lists.NormalizeElement(s[end+1:]), Rank: rank, HasRank: true}, nil
}

// RankedElement parses an element that must carry a rank, either bracketed
// or as a bare leading number: "[2] Satsuki" or "2 Satsuki".
func RankedElement(s string) (Ranked, error) {
	r, err := Element(s)
	if err != nil {
		return Ranked{}, err
	}
	if r.HasRank {
		return r, nil
	}
	head, tail, _ := strings.Cut(strings.TrimSpace(s), " ")
	if head == "" {
		return Ranked{}, common.ErrMissingRank
	}
	rank, err := strconv.Atoi(head)
	if err != nil {
		return Ranked{}, fmt.Errorf("%w: expected a rank before the text", common.ErrMissingRank)
	}
	return Ranked{Text: lists.NormalizeElement(tail), Rank: rank, HasRank: true}, nil
}

// Rank parses a single rank, bracketed or bare.
func Rank(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, common.ErrMissingRank
	}
	if strings.HasPrefix(s, "[") {
		if !strings.HasSuffix(s, "]") {
			return 0, fmt.Errorf("%w: unclosed bracket in %q", common.ErrMalformedRank, s)
		}
		s = s[1 : len(s)-1]
	}
	return number(s)
}

// RankPair parses the two ranks of move and swap, separated by spaces,
// commas or semicolons.
func RankPair(s string) (int, int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ',' || r == ';'
	})
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: expected two ranks, got %d", common.ErrMissingRank, len(fields))
	}
	a, err := Rank(fields[0])
	if err != nil {
		return 0, 0, err
	}
	b, err := Rank(fields[1])
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

// RankSet parses a semicolon separated set of ranks and returns them sorted
// from highest to lowest, the order in which they can be removed without
// shifting ranks that are still to be removed. Duplicates are rejected.
func RankSet(s string) ([]int, error) {
	var ranks []int
	seen := make(map[int]struct{})
	for _, part := range strings.Split(s, ";") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		rank, err := Rank(part)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[rank]; dup {
			return nil, fmt.Errorf("%w: %d", common.ErrDuplicateRank, rank)
		}
		seen[rank] = struct{}{}
		ranks = append(ranks, rank)
	}
	if len(ranks) == 0 {
		return nil, common.ErrMissingRank
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ranks)))
	return ranks, nil
}

// Elements splits a semicolon separated list of elements, trimming each one
// and dropping the empty ones.
func Elements(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ";") {
		if e := lists.NormalizeElement(part); e != "" {
			out = append(out, e)
		}
	}
	return out
}

// Mention parses an owner id given as "123" or as a chat mention "<@123>"
// or "<@!123>".
func Mention(s string) (int64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "<@")
	s = strings.TrimPrefix(s, "!")
	s = strings.TrimSuffix(s, ">")
	if s == "" {
		return 0, common.ErrMissingMention
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q is not an account", common.ErrMissingMention, s)
	}
	return id, nil
}

func number(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", common.ErrMalformedRank, strings.TrimSpace(s))
	}
	return n, nil
}
