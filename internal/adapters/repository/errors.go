package repository

import "errors"

// Sentinel kinds for store errors.
var (
	ErrOpen   = errors.New("store open failed")
	ErrQuery  = errors.New("store query failed")
	ErrRecord = errors.New("store record failed")
)
