// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import sq "github.com/Masterminds/squirrel"

const (
	createUser = `INSERT INTO users (email, username, password_hash, bio)
    VALUES ($1, $2, $3, $4)
    RETURNING user_id, email, username, password_hash, bio, created_at, updated_at;`

	findUserByEmail = `SELECT user_id, email, username, password_hash, bio, created_at, updated_at
    FROM users
    WHERE email = $1;`

	findUserByUsername = `SELECT user_id, email, username, password_hash, bio, created_at, updated_at
    FROM users
    WHERE username = $1;`

	findUserByID = `SELECT user_id, email, username, password_hash, bio, created_at, updated_at
    FROM users
    WHERE user_id = $1;`

	createTweet = `INSERT INTO tweets (user_id, text)
    VALUES ($1, $2)
    RETURNING tweet_id, user_id, text, created_at;`

	countTweets = `SELECT COUNT(*) FROM tweets;`

	insertLike = `INSERT INTO likes (user_id, tweet_id)
    VALUES ($1, $2);`

	deleteLike = `DELETE FROM likes
    WHERE user_id = $1 AND tweet_id = $2;`

	isLiked = `SELECT EXISTS (
        SELECT 1 FROM likes WHERE user_id = $1 AND tweet_id = $2
    );`

	countLikes = `SELECT COUNT(*) FROM likes WHERE tweet_id = $1;`

	createResponse = `INSERT INTO responses (tweet_id, user_id, text)
    VALUES ($1, $2, $3)
    RETURNING response_id, tweet_id, user_id, text, created_at;`

	listResponsesByTweet = `SELECT r.response_id, r.tweet_id, r.user_id, r.text, r.created_at, u.username
    FROM responses r
    JOIN users u ON u.user_id = r.user_id
    WHERE r.tweet_id = $1
    ORDER BY r.created_at DESC, r.response_id DESC;`
)

// feedSelect is the shared SELECT for feed reads: tweets joined with their
// author plus like and reply counters computed at query time. Each caller
// narrows it with its own WHERE / LIMIT clauses.
func feedSelect() sq.SelectBuilder {
	return sq.Select(
		"t.tweet_id",
		"t.user_id",
		"t.text",
		"t.created_at",
		"u.username",
		"(SELECT COUNT(*) FROM likes l WHERE l.tweet_id = t.tweet_id) AS like_count",
		"(SELECT COUNT(*) FROM responses r WHERE r.tweet_id = t.tweet_id) AS response_count",
	).
		From("tweets t").
		Join("users u ON u.user_id = t.user_id").
		PlaceholderFormat(sq.Dollar)
}

// buildListTweetsQuery produces the newest-first feed page query.
func buildListTweetsQuery(limit, offset int) (string, []any, error) {
	return feedSelect().
		OrderBy("t.created_at DESC", "t.tweet_id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
}

// buildGetTweetQuery produces the single-tweet detail query.
func buildGetTweetQuery(tweetID int64) (string, []any, error) {
	return feedSelect().
		Where(sq.Eq{"t.tweet_id": tweetID}).
		ToSql()
}
