package depot

import (
	"context"
	"fmt"

	"github.com/gobwas/glob"

	"github.com/octohelm/courier/pkg/statuserror"

	"github.com/octohelm/depotkit/pkg/depot"
)

func depotFromContext(ctx context.Context) (depot.Depot, error) {
	if d, ok := depot.FromContext(ctx); ok {
		return d, nil
	}
	return nil, &ErrDepotUnavailable{}
}

type ErrDepotUnavailable struct {
	statuserror.InternalServerError
}

func (ErrDepotUnavailable) ErrCode() string {
	return "DEPOT_UNAVAILABLE"
}

func (err *ErrDepotUnavailable) Error() string {
	return "depot is not configured"
}

type ErrFilterInvalid struct {
	statuserror.BadRequest

	Pattern string
	Reason  error
}

func (ErrFilterInvalid) ErrCode() string {
	return "FILTER_INVALID"
}

func (err *ErrFilterInvalid) Error() string {
	return fmt.Sprintf("filter %q invalid: %v", err.Pattern, err.Reason)
}

func filterIdents(idents []depot.Ident, pattern string) ([]depot.Ident, error) {
	if pattern == "" {
		return idents, nil
	}

	g, err := glob.Compile(pattern, '/')
	if err != nil {
		return nil, &ErrFilterInvalid{Pattern: pattern, Reason: err}
	}

	matched := make([]depot.Ident, 0, len(idents))
	for _, ident := range idents {
		if g.Match(ident.String()) {
			matched = append(matched, ident)
		}
	}
	return matched, nil
}
