package emails

import "errors"

// The closed set of failure kinds a generation attempt can end in. Callers
// branch with errors.Is; causes within a kind are not distinguished.
var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrCredentialAbsent = errors.New("no api key provided")
	ErrExtractionFailed = errors.New("resume text extraction failed")
	ErrRemoteCall       = errors.New("email generation failed")
)
