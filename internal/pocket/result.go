package pocket

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// Article is a saved item as returned by /v3/get. Only the fields the human
// view needs are decoded.
type Article struct {
	ItemID        string `json:"item_id"`
	ResolvedTitle string `json:"resolved_title"`
	ResolvedURL   string `json:"resolved_url"`
}

// ListResult is the decoded /v3/get reply. Status 1 means success.
type ListResult struct {
	Status   int                `json:"status"`
	Complete int                `json:"complete"`
	List     map[string]Article `json:"list"`
}

func (r *ListResult) UnmarshalJSON(data []byte) error {
	var raw struct {
		Status   int             `json:"status"`
		Complete int             `json:"complete"`
		List     json.RawMessage `json:"list"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.Status = raw.Status
	r.Complete = raw.Complete
	r.List = map[string]Article{}

	list := bytes.TrimSpace(raw.List)
	switch {
	case len(list) == 0 || bytes.Equal(list, []byte("null")):
	case list[0] == '[':
		// Pocket sends [] instead of {} when nothing matches. Any other array
		// has no ids to key articles by.
		var items []json.RawMessage
		if err := json.Unmarshal(list, &items); err != nil {
			return err
		}
		if len(items) > 0 {
			return fmt.Errorf("list: expected an object keyed by item id, got an array of %d items", len(items))
		}
	default:
		if err := json.Unmarshal(list, &r.List); err != nil {
			return err
		}
		for id, a := range r.List {
			if a.ItemID == "" {
				a.ItemID = id
				r.List[id] = a
			}
		}
	}
	return nil
}

// ParseListResult decodes a raw /v3/get reply. Unknown fields are ignored.
func ParseListResult(raw []byte) (*ListResult, error) {
	var r ListResult
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseResponse, err)
	}
	return &r, nil
}

type OutcomeKind int

const (
	Success OutcomeKind = iota
	RemoteFailure
)

// Outcome separates a successful listing from a soft failure reported by
// Pocket inside an otherwise valid reply. Neither is an error.
type Outcome struct {
	Kind     OutcomeKind
	Articles []Article
	Status   int
}

// Outcome returns the articles sorted by item id on success.
func (r *ListResult) Outcome() Outcome {
	if r.Status != 1 {
		return Outcome{Kind: RemoteFailure, Status: r.Status}
	}
	articles := make([]Article, 0, len(r.List))
	for _, a := range r.List {
		articles = append(articles, a)
	}
	sort.Slice(articles, func(i, j int) bool {
		return articles[i].ItemID < articles[j].ItemID
	})
	return Outcome{Kind: Success, Articles: articles, Status: r.Status}
}
