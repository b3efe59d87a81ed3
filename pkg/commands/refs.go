package commands

import (
	"fmt"

	"tableflip.dev/planner/pkg/model"
	"tableflip.dev/planner/pkg/planner"
)

// resolveSubject maps a --subject value to an id. Empty stays empty.
func resolveSubject(p *planner.Planner, ref string) (model.ID, error) {
	if ref == "" {
		return "", nil
	}
	s, ok := model.LookupSubject(p.Subjects(), ref)
	if !ok {
		return "", fmt.Errorf("%w: no subject named %q", planner.ErrNotFound, ref)
	}
	return s.ID, nil
}
