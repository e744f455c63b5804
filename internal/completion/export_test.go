package completion

// WithChatCompleter exposes the unexported injection option for tests.
var WithChatCompleter = withChatCompleter
