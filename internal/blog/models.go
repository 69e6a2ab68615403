package blog

import "time"

type Post struct {
	ID        string
	UserID    string
	Title     string
	Text      string
	Photos    []string
	Videos    []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Comment struct {
	ID        string
	PostID    string
	UserID    string
	Text      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Like struct {
	ID        string
	PostID    string
	UserID    string
	CreatedAt time.Time
}
