package analyses

import "context"

// Repo defines persistence operations for analyses. Put is called once per
// analysis, right after the model reply parses; GetByID backs shared links.
type Repo interface {
	Put(ctx context.Context, analysis Analysis) error
	GetByID(ctx context.Context, id string) (Analysis, error)
}
