package usecase

import "errors"

var errSourceMissing = errors.New("article source is not configured")
