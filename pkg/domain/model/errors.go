package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for domain operations
var (
	ErrMissingSetting = goerr.New("required setting is missing")
)
