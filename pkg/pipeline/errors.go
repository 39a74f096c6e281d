package pipeline

import (
	"context"
	"errors"

	"github.com/matzehuels/scholarnet/pkg/coauthor"
	apperr "github.com/matzehuels/scholarnet/pkg/errors"
	"github.com/matzehuels/scholarnet/pkg/integrations"
	"github.com/matzehuels/scholarnet/pkg/integrations/dblp"
)

// ErrorCode classifies an error returned by a [Runner] so the CLI and the
// server can pick an exit status or HTTP status. Coded errors keep their
// code; stage errors are mapped by their sentinel or type.
func ErrorCode(err error) apperr.Code {
	if err == nil {
		return ""
	}
	if code := apperr.GetCode(err); code != "" {
		return code
	}
	var parseErr *dblp.ParseError
	switch {
	case errors.Is(err, coauthor.ErrNotFound), errors.Is(err, integrations.ErrNotFound):
		return apperr.ErrCodeAuthorNotFound
	case errors.Is(err, integrations.ErrRateLimited):
		return apperr.ErrCodeRateLimited
	case errors.Is(err, integrations.ErrNetwork),
		errors.Is(err, context.DeadlineExceeded):
		return apperr.ErrCodeNetwork
	case errors.As(err, &parseErr):
		return apperr.ErrCodeParse
	default:
		return apperr.ErrCodeInternal
	}
}
