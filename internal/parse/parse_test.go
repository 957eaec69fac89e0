package parse

import (
	"testing"

	"github.com/dmitrijs2005/listbot/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElement(t *testing.T) {
	tests := []struct {
		in      string
		want    Ranked
		wantErr error
	}{
		{in: "Ryuko", want: Ranked{Text: "Ryuko"}},
		{in: "  Satsuki  ", want: Ranked{Text: "Satsuki"}},
		{in: "[2] Mako", want: Ranked{Text: "Mako", Rank: 2, HasRank: true}},
		{in: "[ 3 ]Nui", want: Ranked{Text: "Nui", Rank: 3, HasRank: true}},
		{in: "86 Eighty-Six", want: Ranked{Text: "86 Eighty-Six"}},
		{in: "[x] Mako", wantErr: common.ErrMalformedRank},
		{in: "[2 Mako", wantErr: common.ErrMalformedRank},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Element(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRankedElement(t *testing.T) {
	got, err := RankedElement("[2] Satsuki")
	require.NoError(t, err)
	assert.Equal(t, Ranked{Text: "Satsuki", Rank: 2, HasRank: true}, got)

	got, err = RankedElement("3 Mako Mankanshoku")
	require.NoError(t, err)
	assert.Equal(t, Ranked{Text: "Mako Mankanshoku", Rank: 3, HasRank: true}, got)

	_, err = RankedElement("Mako")
	assert.ErrorIs(t, err, common.ErrMissingRank)

	_, err = RankedElement("")
	assert.ErrorIs(t, err, common.ErrMissingRank)
}

func TestRank(t *testing.T) {
	n, err := Rank(" 4 ")
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	n, err = Rank("[7]")
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	_, err = Rank("")
	assert.ErrorIs(t, err, common.ErrMissingRank)
	_, err = Rank("four")
	assert.ErrorIs(t, err, common.ErrMalformedRank)
	_, err = Rank("[4")
	assert.ErrorIs(t, err, common.ErrMalformedRank)
}

func TestRankPair(t *testing.T) {
	for _, in := range []string{"1 3", "1,3", "[1] [3]", " 1 ; 3 "} {
		a, b, err := RankPair(in)
		require.NoError(t, err, in)
		assert.Equal(t, 1, a, in)
		assert.Equal(t, 3, b, in)
	}

	_, _, err := RankPair("1")
	assert.ErrorIs(t, err, common.ErrMissingRank)
	_, _, err = RankPair("1 2 3")
	assert.ErrorIs(t, err, common.ErrMissingRank)
	_, _, err = RankPair("1 b")
	assert.ErrorIs(t, err, common.ErrMalformedRank)
}

func TestRankSet(t *testing.T) {
	got, err := RankSet("2; 5;1;;")
	require.NoError(t, err)
	assert.Equal(t, []int{5, 2, 1}, got)

	_, err = RankSet("2;2")
	assert.ErrorIs(t, err, common.ErrDuplicateRank)

	_, err = RankSet("2;x")
	assert.ErrorIs(t, err, common.ErrMalformedRank)

	_, err = RankSet(" ; ")
	assert.ErrorIs(t, err, common.ErrMissingRank)
}

func TestElements(t *testing.T) {
	assert.Equal(t, []string{"A", "B", "C"}, Elements("A; ; B;  C "))
	assert.Nil(t, Elements(" ; ;"))
}

func TestMention(t *testing.T) {
	for _, in := range []string{"123", "<@123>", "<@!123>"} {
		id, err := Mention(in)
		require.NoError(t, err, in)
		assert.Equal(t, int64(123), id)
	}
	_, err := Mention("")
	assert.ErrorIs(t, err, common.ErrMissingMention)
	_, err = Mention("@someone")
	assert.ErrorIs(t, err, common.ErrMissingMention)
}
