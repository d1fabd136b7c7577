package domain

// Turn is one role-tagged message in a session's history. Immutable once
// appended; order is the only relationship that matters.
type Turn struct {
	Role Role
	Text string
}

// Session represents one guided interview: the ordered conversation plus a
// counter of completed user/assistant exchanges. History always starts with
// exactly one system turn, so after n successful non-final exchanges
// len(History) == 2n+1.
type Session struct {
	ID        SessionID
	History   []Turn
	Turn      int
	CreatedAt Timestamp
	UpdatedAt Timestamp
}
