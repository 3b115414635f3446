package model

import "time"

// Stargazer is one entry of a repository's time-ordered stargazer list.
// A zero StarredAt means the upstream record carried no timestamp.
type Stargazer struct {
	Login     string
	StarredAt time.Time
}
