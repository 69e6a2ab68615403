package blog

import (
	"context"
	"database/sql"

	"github.com/Kr0n4k/blog-project/internal/db"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type SQLStore struct {
	db *db.DB
}

func NewSQLStore(db *db.DB) *SQLStore {
	return &SQLStore{db: db}
}

const postColumns = `
	id, user_id, title, text, photos, videos, created_at, updated_at
`

func scanPost(row interface{ Scan(...any) error }) (*Post, error) {
	var p Post
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.Title,
		&p.Text,
		pq.Array(&p.Photos),
		pq.Array(&p.Videos),
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

type CreatePostParams struct {
	UserID string
	Title  string
	Text   string
	Photos []string
	Videos []string
}

func (s *SQLStore) CreatePost(ctx context.Context, p CreatePostParams) (*Post, error) {
	if p.Photos == nil {
		p.Photos = []string{}
	}
	if p.Videos == nil {
		p.Videos = []string{}
	}

	row := s.db.QueryRowContext(ctx, `
		INSERT INTO posts (id, user_id, title, text, photos, videos)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+postColumns+`
	`, uuid.NewString(), p.UserID, p.Title, p.Text, pq.Array(p.Photos), pq.Array(p.Videos))

	return scanPost(row)
}

func (s *SQLStore) PostByID(ctx context.Context, id string) (*Post, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+postColumns+` FROM posts WHERE id = $1
	`, id)

	p, err := scanPost(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *SQLStore) PostsByUser(ctx context.Context, userID string) ([]Post, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+postColumns+`
		FROM posts
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPosts(rows)
}

func (s *SQLStore) RecentPosts(ctx context.Context, limit int) ([]Post, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+postColumns+`
		FROM posts
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPosts(rows)
}

func (s *SQLStore) SearchPosts(ctx context.Context, query string, limit, offset int) ([]Post, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+postColumns+`
		FROM posts
		WHERE title ILIKE '%' || $1 || '%'
		   OR text ILIKE '%' || $1 || '%'
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPosts(rows)
}

type UpdatePostParams struct {
	Title  *string
	Text   *string
	Photos []string
	Videos []string
}

// UpdatePost modifies a post owned by userID. Returns (nil, nil) when the
// post does not exist or belongs to someone else.
func (s *SQLStore) UpdatePost(ctx context.Context, id, userID string, p UpdatePostParams) (*Post, error) {
	row := s.db.QueryRowContext(ctx, `
		UPDATE posts
		SET title = COALESCE($3, title),
		    text = COALESCE($4, text),
		    photos = COALESCE($5, photos),
		    videos = COALESCE($6, videos),
		    updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING `+postColumns+`
	`, id, userID, p.Title, p.Text, pq.Array(p.Photos), pq.Array(p.Videos))

	post, err := scanPost(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return post, nil
}

func (s *SQLStore) DeletePost(ctx context.Context, id, userID string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM posts WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return false, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

const commentColumns = `
	id, post_id, user_id, text, created_at, updated_at
`

func scanComment(row interface{ Scan(...any) error }) (*Comment, error) {
	var c Comment
	err := row.Scan(
		&c.ID,
		&c.PostID,
		&c.UserID,
		&c.Text,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *SQLStore) CreateComment(ctx context.Context, postID, userID, text string) (*Comment, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO comments (id, post_id, user_id, text)
		VALUES ($1, $2, $3, $4)
		RETURNING `+commentColumns+`
	`, uuid.NewString(), postID, userID, text)

	return scanComment(row)
}

// UpdateComment modifies a comment owned by userID. Returns (nil, nil)
// when the comment does not exist or belongs to someone else.
func (s *SQLStore) UpdateComment(ctx context.Context, id, userID, text string) (*Comment, error) {
	row := s.db.QueryRowContext(ctx, `
		UPDATE comments
		SET text = $3, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING `+commentColumns+`
	`, id, userID, text)

	c, err := scanComment(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *SQLStore) DeleteComment(ctx context.Context, id, userID string) (*Comment, error) {
	row := s.db.QueryRowContext(ctx, `
		DELETE FROM comments
		WHERE id = $1 AND user_id = $2
		RETURNING `+commentColumns+`
	`, id, userID)

	c, err := scanComment(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *SQLStore) CommentsByPost(ctx context.Context, postID string) ([]Comment, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+commentColumns+`
		FROM comments
		WHERE post_id = $1
		ORDER BY created_at ASC
	`, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []Comment
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, *c)
	}
	return comments, rows.Err()
}

func (s *SQLStore) CreateLike(ctx context.Context, postID, userID string) (*Like, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM likes WHERE post_id = $1 AND user_id = $2
		)
	`, postID, userID).Scan(&exists)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyLiked
	}

	var l Like
	err = s.db.QueryRowContext(ctx, `
		INSERT INTO likes (id, post_id, user_id)
		VALUES ($1, $2, $3)
		RETURNING id, post_id, user_id, created_at
	`, uuid.NewString(), postID, userID).Scan(&l.ID, &l.PostID, &l.UserID, &l.CreatedAt)
	if err != nil {
		return nil, err
	}

	return &l, nil
}

func (s *SQLStore) LikesByPost(ctx context.Context, postID string) ([]Like, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, post_id, user_id, created_at
		FROM likes
		WHERE post_id = $1
		ORDER BY created_at ASC
	`, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var likes []Like
	for rows.Next() {
		var l Like
		if err := rows.Scan(&l.ID, &l.PostID, &l.UserID, &l.CreatedAt); err != nil {
			return nil, err
		}
		likes = append(likes, l)
	}
	return likes, rows.Err()
}

func collectPosts(rows *sql.Rows) ([]Post, error) {
	var posts []Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, *p)
	}
	return posts, rows.Err()
}
