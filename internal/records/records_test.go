package records_test

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KasperOmsK/lazysort/internal/records"
)

func TestRead_WholeLine(t *testing.T) {
	recs, err := records.Read(strings.NewReader("pear\napple\n\nfig"), records.WholeLine())
	require.NoError(t, err)

	require.Len(t, recs, 4)
	require.Equal(t, records.Record{Line: 1, Text: "pear", Key: "pear"}, recs[0])
	require.Equal(t, "", recs[2].Key)
	require.Equal(t, 4, recs[3].Line)
}

func TestRead_ParsesNumbers(t *testing.T) {
	recs, err := records.Read(strings.NewReader(" 12.5\nabc\nNaN\n-3"), records.WholeLine())
	require.NoError(t, err)

	require.True(t, recs[0].Numeric)
	require.Equal(t, 12.5, recs[0].Num)
	require.True(t, recs[0].Orderable())

	require.False(t, recs[1].Numeric)
	require.False(t, recs[1].Orderable())

	require.True(t, recs[2].Numeric)
	require.False(t, recs[2].Orderable())

	require.Equal(t, -3.0, recs[3].Num)
}

func TestField(t *testing.T) {
	key := records.Field(2)

	k, err := key("alice  31   berlin")
	require.NoError(t, err)
	require.Equal(t, "31", k)

	k, err = key("bob")
	require.NoError(t, err)
	require.Equal(t, "", k)

	k, err = records.Field(0)("whole line")
	require.NoError(t, err)
	require.Equal(t, "whole line", k)
}

func TestJSONPath(t *testing.T) {
	key := records.JSONPath("user.age")

	k, err := key(`{"user":{"name":"ann","age":41}}`)
	require.NoError(t, err)
	require.Equal(t, "41", k)

	k, err = key(`{"user":{"name":"ann"}}`)
	require.NoError(t, err)
	require.Equal(t, "", k)

	_, err = key(`{"user":`)
	require.ErrorIs(t, err, records.ErrInvalidJSON)
}

func TestRead_ReportsLineOfBadJSON(t *testing.T) {
	input := "{\"n\":1}\n{\"n\":2}\nnot json\n"

	_, err := records.Read(strings.NewReader(input), records.JSONPath("n"))

	require.ErrorIs(t, err, records.ErrInvalidJSON)
	require.ErrorContains(t, err, "line 3")
}

func TestRead_LineTooLong(t *testing.T) {
	input := strings.Repeat("x", 2<<20)

	_, err := records.Read(strings.NewReader(input), records.WholeLine())

	require.ErrorIs(t, err, bufio.ErrTooLong)
}

func keys(recs []records.Record) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Key
	}
	return out
}

func TestSort_Text(t *testing.T) {
	recs, err := records.Read(strings.NewReader("pear\napple\nfig\nbanana"), records.WholeLine())
	require.NoError(t, err)

	got := records.Sort(recs, records.Options{}).Collect()
	require.Equal(t, []string{"apple", "banana", "fig", "pear"}, keys(got))

	got = records.Sort(recs, records.Options{Reverse: true}).Take(2)
	require.Equal(t, []string{"pear", "fig"}, keys(got))
}

func TestSort_Numeric(t *testing.T) {
	input := "10\nn/a\n9\n-1\nNaN\n100"
	recs, err := records.Read(strings.NewReader(input), records.WholeLine())
	require.NoError(t, err)

	for _, tc := range []struct {
		name string
		opts records.Options
		head []string
		tail []string
	}{
		{
			name: "unparseable last",
			opts: records.Options{Numeric: true},
			head: []string{"-1", "9", "10", "100"},
			tail: []string{"n/a", "NaN"},
		},
		{
			name: "unparseable first",
			opts: records.Options{Numeric: true, NaNFirst: true},
			head: []string{"n/a", "NaN"},
			tail: []string{"-1", "9", "10", "100"},
		},
		{
			name: "reverse keeps unparseable last",
			opts: records.Options{Numeric: true, Reverse: true},
			head: []string{"100", "10", "9", "-1"},
			tail: []string{"n/a", "NaN"},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got := keys(records.Sort(recs, tc.opts).Collect())
			require.Len(t, got, 6)

			head, tail := got[:len(tc.head)], got[len(tc.head):]
			if len(tc.head) == 2 {
				require.ElementsMatch(t, tc.head, head)
				require.Equal(t, tc.tail, tail)
			} else {
				require.Equal(t, tc.head, head)
				require.ElementsMatch(t, tc.tail, tail)
			}
		})
	}
}

func TestSort_DoesNotReorderInput(t *testing.T) {
	recs, err := records.Read(strings.NewReader("3\n1\n2"), records.WholeLine())
	require.NoError(t, err)

	records.Sort(recs, records.Options{Numeric: true}).Collect()

	require.Equal(t, []string{"3", "1", "2"}, keys(recs))
}
