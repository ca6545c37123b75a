package domain

import "errors"

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrDishNotFound     = errors.New("dish not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrUnsupportedMedia = errors.New("invalid file type, only JPEG, PNG, GIF, WebP allowed")
)
