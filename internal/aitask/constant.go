package aitask

// MaxTasksPerParse caps how many tasks a single parse may return.
// Model replies beyond the cap are truncated, not rejected.
const MaxTasksPerParse = 10
