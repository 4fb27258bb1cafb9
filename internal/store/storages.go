package store

import "github.com/MKhiriev/go-feed-board/internal/logger"

type Storages struct {
	UserRepository     UserRepository
	TweetRepository    TweetRepository
	LikeRepository     LikeRepository
	ResponseRepository ResponseRepository
}

func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:     NewUserRepository(db, log),
		TweetRepository:    NewTweetRepository(db, log),
		LikeRepository:     NewLikeRepository(db, log),
		ResponseRepository: NewResponseRepository(db, log),
	}
}
