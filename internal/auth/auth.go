package auth

// Static is a fixed credential: the simplest implementation of the
// authentication signal and token source the data layer consumes. A real
// application swaps in its session-backed provider here.
type Static struct {
	token  string
	userID string
}

func NewStatic(token, userID string) *Static {
	return &Static{token: token, userID: userID}
}

func (s *Static) IsAuthenticated() bool {
	return s.token != ""
}

func (s *Static) UserID() string {
	return s.userID
}

func (s *Static) Token() string {
	return s.token
}
