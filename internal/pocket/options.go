package pocket

// ListOptions holds the raw, user-supplied filters for a list call.
type ListOptions struct {
	State   string
	Sort    string
	Details bool
	Tag     Optional[string]
	Search  Optional[string]
}

// ParseState never fails: anything other than "archive" or "all" is unread.
func ParseState(s string) State {
	switch s {
	case "archive":
		return StateArchive
	case "all":
		return StateAll
	default:
		return StateUnread
	}
}

// ParseSort never fails: unknown values fall back to newest.
func ParseSort(s string) Sort {
	switch s {
	case "oldest":
		return SortOldest
	case "title":
		return SortTitle
	case "site":
		return SortSite
	default:
		return SortNewest
	}
}

func DetailTypeFor(details bool) DetailType {
	if details {
		return DetailComplete
	}
	return DetailSimple
}

func (o ListOptions) apply(q *Query) {
	q.state = Some(ParseState(o.State))
	q.sort = Some(ParseSort(o.Sort))
	q.detailType = DetailTypeFor(o.Details)
	q.tag = o.Tag
	q.search = o.Search
}
