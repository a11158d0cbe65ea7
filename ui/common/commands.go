package common

type SessionState uint

const (
	LoginView SessionState = iota
	HomeView
)

func (s SessionState) String() string {
	switch s {
	case LoginView:
		return "login"
	case HomeView:
		return "home"
	default:
		return "unknown"
	}
}

// LoggedInMsg is emitted by the login form once it has been confirmed.
type LoggedInMsg struct {
	Instance string
	Username string
}
