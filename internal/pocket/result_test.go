package pocket

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

const twoArticles = `{
	"status": 1,
	"complete": 1,
	"since": 1700000000,
	"search_meta": {"search_type": "normal"},
	"list": {
		"229279690": {
			"item_id": "229279690",
			"resolved_title": "The Go Memory Model",
			"resolved_url": "https://go.dev/ref/mem",
			"word_count": "4820",
			"favorite": "0"
		},
		"1049934471": {
			"item_id": "1049934471",
			"resolved_title": "",
			"resolved_url": "https://example.com/untitled",
			"tags": {"go": {"item_id": "1049934471", "tag": "go"}}
		}
	}
}`

func TestParseListResultIgnoresUnknownFields(t *testing.T) {
	r, err := ParseListResult([]byte(twoArticles))
	require.NoError(t, err)
	require.Equal(t, 1, r.Status)
	require.Equal(t, 1, r.Complete)
	require.Len(t, r.List, 2)
	require.Equal(t, "The Go Memory Model", r.List["229279690"].ResolvedTitle)
	require.Equal(t, "", r.List["1049934471"].ResolvedTitle)
}

func TestParseListResultEmptyArrayList(t *testing.T) {
	r, err := ParseListResult([]byte(`{"status":1,"complete":1,"list":[]}`))
	require.NoError(t, err)
	require.NotNil(t, r.List)
	require.Empty(t, r.List)
}

func TestParseListResultRejectsNonEmptyArrayList(t *testing.T) {
	raw := `{"status":1,"list":[{"item_id":"1","resolved_title":"A"},{"item_id":"1","resolved_title":"B"}]}`
	_, err := ParseListResult([]byte(raw))
	require.ErrorIs(t, err, ErrParseResponse)
	require.Contains(t, err.Error(), "array of 2 items")
}

func TestParseListResultMissingList(t *testing.T) {
	r, err := ParseListResult([]byte(`{"status":0}`))
	require.NoError(t, err)
	require.Empty(t, r.List)
	require.Equal(t, RemoteFailure, r.Outcome().Kind)
}

func TestParseListResultFillsItemIDFromKey(t *testing.T) {
	r, err := ParseListResult([]byte(`{"status":1,"list":{"42":{"resolved_title":"T","resolved_url":"https://t.example"}}}`))
	require.NoError(t, err)
	require.Equal(t, "42", r.List["42"].ItemID)
}

func TestParseListResultMalformed(t *testing.T) {
	for _, raw := range []string{"{not json", `{"status":"one"}`, `{"status":1,"list":"nope"}`, ""} {
		_, err := ParseListResult([]byte(raw))
		require.ErrorIs(t, err, ErrParseResponse, "input %q", raw)
	}
}

func TestOutcomeSuccessSortsByID(t *testing.T) {
	r, err := ParseListResult([]byte(twoArticles))
	require.NoError(t, err)

	got := r.Outcome()
	want := Outcome{
		Kind:   Success,
		Status: 1,
		Articles: []Article{
			{ItemID: "1049934471", ResolvedURL: "https://example.com/untitled"},
			{ItemID: "229279690", ResolvedTitle: "The Go Memory Model", ResolvedURL: "https://go.dev/ref/mem"},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("outcome mismatch (-want +got):\n%s", diff)
	}
}

func TestOutcomeRemoteFailure(t *testing.T) {
	r, err := ParseListResult([]byte(`{"status":2,"complete":0,"list":{"1":{"item_id":"1"}}}`))
	require.NoError(t, err)

	got := r.Outcome()
	require.Equal(t, RemoteFailure, got.Kind)
	require.Equal(t, 2, got.Status)
	require.Empty(t, got.Articles)
}
