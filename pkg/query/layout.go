package query

import (
	"fmt"
	"slices"
)

// Registration is one view and the role its clause plays.
type Registration struct {
	View View
	Role Role
}

// Builder collects registrations during startup. Errors are kept and
// reported by Build so registration code can stay linear.
type Builder struct {
	regs []Registration
	errs []error
}

func NewBuilder() *Builder {
	return &Builder{}
}

// Score registers a scoring view. An empty role defaults to should.
func (b *Builder) Score(v View, role Role) *Builder {
	if role == "" {
		role = RoleShould
	}
	if role == RoleFilter {
		b.errs = append(b.errs, fmt.Errorf("%w: score view #%d cannot use role %q", ErrInvalidRole, len(b.regs), role))
		return b
	}
	return b.add(v, role)
}

// Filter registers a non-scoring view.
func (b *Builder) Filter(v View) *Builder {
	return b.add(v, RoleFilter)
}

func (b *Builder) add(v View, role Role) *Builder {
	if v == nil {
		b.errs = append(b.errs, fmt.Errorf("%w: registration #%d", ErrNilView, len(b.regs)))
		return b
	}
	if !role.valid() {
		b.errs = append(b.errs, fmt.Errorf("%w: %q at registration #%d", ErrInvalidRole, role, len(b.regs)))
		return b
	}
	b.regs = append(b.regs, Registration{View: v, Role: role})
	return b
}

// Build returns the immutable layout or the first registration error.
func (b *Builder) Build() (*Layout, error) {
	if len(b.errs) > 0 {
		return nil, b.errs[0]
	}
	return &Layout{regs: slices.Clone(b.regs)}, nil
}

// Layout is a fixed, ordered set of registered views. It is safe for
// concurrent use by any number of goroutines.
type Layout struct {
	regs []Registration
}

// Registrations returns a copy of the registered views in order.
func (l *Layout) Registrations() []Registration {
	return slices.Clone(l.regs)
}

// Render evaluates every view in registration order and groups the clauses
// by role. A panicking view is reported as ErrRenderFault.
func (l *Layout) Render(vs Reader) (body Body, err error) {
	idx := -1
	defer func() {
		if r := recover(); r != nil {
			body = Body{}
			err = fmt.Errorf("%w: view #%d: %v", ErrRenderFault, idx, r)
		}
	}()

	var b Bool
	var filters []Clause
	for i, reg := range l.regs {
		idx = i
		c := reg.View.Render(vs)
		if c == nil {
			continue
		}
		switch reg.Role {
		case RoleMust:
			b.Must = append(b.Must, c)
		case RoleShould:
			b.Should = append(b.Should, c)
		case RoleFilter:
			filters = append(filters, c)
		}
	}
	if len(filters) > 0 {
		b.Filter = &Filter{Bool: FilterBool{Must: filters}}
	}

	body.Query = BoolQuery{Bool: b}
	body.Size, _ = vs.Get("size")
	body.TrackScores, _ = vs.Get("track_scores")
	return body, nil
}
