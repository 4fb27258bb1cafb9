// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	createCacheSchema = `
		CREATE TABLE IF NOT EXISTS cached_tweets (
			tweet_id       INTEGER PRIMARY KEY,
			user_id        INTEGER NOT NULL,
			username       TEXT    NOT NULL,
			text           TEXT    NOT NULL,
			like_count     INTEGER NOT NULL DEFAULT 0,
			response_count INTEGER NOT NULL DEFAULT 0,
			created_at     TIMESTAMP NOT NULL
		);

		CREATE TABLE IF NOT EXISTS cached_responses (
			response_id INTEGER PRIMARY KEY,
			tweet_id    INTEGER NOT NULL,
			user_id     INTEGER NOT NULL,
			username    TEXT    NOT NULL,
			text        TEXT    NOT NULL,
			created_at  TIMESTAMP NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_cached_responses_tweet
			ON cached_responses (tweet_id, created_at);`

	upsertCachedTweet = `
		INSERT INTO cached_tweets (
			tweet_id,
			user_id,
			username,
			text,
			like_count,
			response_count,
			created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (tweet_id) DO UPDATE SET
			username       = excluded.username,
			text           = excluded.text,
			like_count     = excluded.like_count,
			response_count = excluded.response_count;`

	listCachedFeed = `
		SELECT
			tweet_id,
			user_id,
			username,
			text,
			like_count,
			response_count,
			created_at
		FROM cached_tweets
		ORDER BY created_at DESC, tweet_id DESC
		LIMIT $1 OFFSET $2;`

	getCachedTweet = `
		SELECT
			tweet_id,
			user_id,
			username,
			text,
			like_count,
			response_count,
			created_at
		FROM cached_tweets
		WHERE tweet_id = $1;`

	upsertCachedResponse = `
		INSERT INTO cached_responses (
			response_id,
			tweet_id,
			user_id,
			username,
			text,
			created_at
		) VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (response_id) DO UPDATE SET
			username = excluded.username,
			text     = excluded.text;`

	listCachedResponses = `
		SELECT
			response_id,
			tweet_id,
			user_id,
			username,
			text,
			created_at
		FROM cached_responses
		WHERE tweet_id = $1
		ORDER BY created_at DESC, response_id DESC;`
)
