package pocket

import (
	"encoding/json"
	"fmt"
)

// State selects which articles Pocket returns.
type State int

const (
	StateUnread State = iota
	StateArchive
	StateAll
)

func (s State) String() string {
	switch s {
	case StateArchive:
		return "archive"
	case StateAll:
		return "all"
	default:
		return "unread"
	}
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Sort is the order Pocket returns articles in.
type Sort int

const (
	SortNewest Sort = iota
	SortOldest
	SortTitle
	SortSite
)

func (s Sort) String() string {
	switch s {
	case SortOldest:
		return "oldest"
	case SortTitle:
		return "title"
	case SortSite:
		return "site"
	default:
		return "newest"
	}
}

func (s Sort) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// DetailType controls how much metadata Pocket returns per article.
type DetailType int

const (
	DetailSimple DetailType = iota
	DetailComplete
)

func (d DetailType) String() string {
	if d == DetailComplete {
		return "complete"
	}
	return "simple"
}

func (d DetailType) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Optional marks a request field that may be absent. An absent field is
// left out of the payload entirely; Pocket treats a missing key differently
// from an empty one.
type Optional[T any] struct {
	value T
	set   bool
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}

func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

func (o Optional[T]) IsSet() bool {
	return o.set
}

// IsZero makes encoding/json's omitzero drop unset values.
func (o Optional[T]) IsZero() bool {
	return !o.set
}

func (o Optional[T]) String() string {
	if !o.set {
		return "<unset>"
	}
	return fmt.Sprint(o.value)
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.set {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

// Query is the payload of a Pocket /v3/get call. It is built once per
// invocation by NewQuery and not modified afterwards.
type Query struct {
	consumerKey string
	accessToken string
	state       Optional[State]
	tag         Optional[string]
	sort        Optional[Sort]
	detailType  DetailType
	search      Optional[string]
}

type wireQuery struct {
	ConsumerKey string           `json:"consumer_key"`
	AccessToken string           `json:"access_token"`
	State       Optional[State]  `json:"state,omitzero"`
	Tag         Optional[string] `json:"tag,omitzero"`
	Sort        Optional[Sort]   `json:"sort,omitzero"`
	DetailType  DetailType       `json:"detailType"`
	Search      Optional[string] `json:"search,omitzero"`
}

// NewQuery builds a request from credentials and raw list options. It fails
// without touching the network when a credential is missing.
func NewQuery(consumerKey, accessToken string, opts ListOptions) (*Query, error) {
	if accessToken == "" {
		return nil, ErrMissingAccessToken
	}
	if consumerKey == "" {
		return nil, ErrMissingConsumerKey
	}
	q := &Query{
		consumerKey: consumerKey,
		accessToken: accessToken,
	}
	opts.apply(q)
	return q, nil
}

func (q *Query) State() Optional[State]   { return q.state }
func (q *Query) Tag() Optional[string]    { return q.tag }
func (q *Query) Sort() Optional[Sort]     { return q.sort }
func (q *Query) DetailType() DetailType   { return q.detailType }
func (q *Query) Search() Optional[string] { return q.search }

func (q *Query) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireQuery{
		ConsumerKey: q.consumerKey,
		AccessToken: q.accessToken,
		State:       q.state,
		Tag:         q.tag,
		Sort:        q.sort,
		DetailType:  q.detailType,
		Search:      q.search,
	})
}

// Encode serializes the query to the request body.
func (q *Query) Encode() ([]byte, error) {
	body, err := json.Marshal(q)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeRequest, err)
	}
	return body, nil
}
