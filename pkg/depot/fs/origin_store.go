package fs

import (
	"context"
	"os"
	"slices"
	"sort"
	"sync"

	"github.com/go-json-experiment/json"

	"github.com/octohelm/depotkit/pkg/depot"
)

var _ depot.OriginService = &originStore{}

type originStore struct {
	workspace  *workspace
	authorizer depot.Authorizer

	// serializes membership read-modify-write cycles; the record store
	// only guarantees per-key atomicity, not get-then-put
	mu sync.Mutex
}

func (s *originStore) authorize(ctx context.Context, action depot.Action, resource string) error {
	principal, _ := depot.PrincipalFromContext(ctx)
	return s.authorizer.Authorize(ctx, principal, action, resource)
}

func (s *originStore) Create(ctx context.Context, name string, owner depot.Principal) error {
	if err := s.authorize(ctx, depot.ActionOriginCreate, name); err != nil {
		return err
	}

	origin := &depot.Origin{Name: name, Members: []string{}}
	if owner != "" {
		origin.Members = append(origin.Members, string(owner))
	}

	raw, err := json.Marshal(origin)
	if err != nil {
		return err
	}

	if err := s.workspace.PutContentExcl(ctx, s.workspace.layout.OriginRecordPath(name), raw); err != nil {
		if os.IsExist(err) {
			return &depot.ErrOriginExists{Name: name}
		}
		return err
	}

	return nil
}

// Delete removes the origin record only. Packages and keys belonging to
// the origin are deliberately left in place.
func (s *originStore) Delete(ctx context.Context, name string) error {
	if err := s.authorize(ctx, depot.ActionOriginDelete, name); err != nil {
		return err
	}

	recordPath := s.workspace.layout.OriginRecordPath(name)

	if exists, err := s.workspace.Exists(ctx, recordPath); err != nil {
		return err
	} else if !exists {
		return &depot.ErrOriginUnknown{Name: name}
	}

	return s.workspace.Delete(ctx, recordPath)
}

func (s *originStore) Get(ctx context.Context, name string) (*depot.Origin, error) {
	raw, err := s.workspace.GetContent(ctx, s.workspace.layout.OriginRecordPath(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &depot.ErrOriginUnknown{Name: name}
		}
		return nil, err
	}

	origin := &depot.Origin{}
	if err := json.Unmarshal(raw, origin); err != nil {
		return nil, err
	}
	return origin, nil
}

func (s *originStore) AddMember(ctx context.Context, name string, user string) error {
	if err := s.authorize(ctx, depot.ActionMemberAdd, name); err != nil {
		return err
	}

	return s.updateMembers(ctx, name, func(members []string) []string {
		if slices.Contains(members, user) {
			return members
		}
		members = append(members, user)
		sort.Strings(members)
		return members
	})
}

func (s *originStore) RemoveMember(ctx context.Context, name string, user string) error {
	if err := s.authorize(ctx, depot.ActionMemberRemove, name); err != nil {
		return err
	}

	return s.updateMembers(ctx, name, func(members []string) []string {
		return slices.DeleteFunc(members, func(m string) bool {
			return m == user
		})
	})
}

func (s *originStore) updateMembers(ctx context.Context, name string, update func(members []string) []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	origin, err := s.Get(ctx, name)
	if err != nil {
		return err
	}

	origin.Members = update(origin.Members)

	raw, err := json.Marshal(origin)
	if err != nil {
		return err
	}
	return s.workspace.PutContent(ctx, s.workspace.layout.OriginRecordPath(name), raw)
}
