package aitask

import "errors"

// Structural-failure sentinels. These never escape Parse: any of them routes
// the call to the rule-based fallback parser.
var (
	ErrMalformedOutput = errors.New("model output is not a recognized task shape")
	ErrEmptyTaskList   = errors.New("model returned an empty task list")
)
