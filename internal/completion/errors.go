package completion

import "errors"

// ErrNoAPIKey indicates the completion service is unconfigured. This is
// fatal for the request; callers surface it without retrying.
var ErrNoAPIKey = errors.New("OPENAI_API_KEY is not configured")

// ErrMalformedResponse indicates the model reply could not be parsed as
// JSON despite the JSON response format being requested.
var ErrMalformedResponse = errors.New("malformed model response")

// ErrEmptyResponse indicates the model returned no choices.
var ErrEmptyResponse = errors.New("empty model response")
