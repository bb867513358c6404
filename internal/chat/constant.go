package chat

// MaxHistoryTurns caps how many prior turns are forwarded to the model.
const MaxHistoryTurns = 5

// ErrorReplyPrefix opens the degraded message reply produced when the model
// call fails.
const ErrorReplyPrefix = "抱歉，我遇到了一些问题："
