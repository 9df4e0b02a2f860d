package query

// Clause is one fragment of a backend query. The layout does not look inside.
type Clause map[string]any

// View renders zero or one clause from a variable context. A nil Clause
// means the view does not apply. Views must not keep state between calls.
type View interface {
	Render(vs Reader) Clause
}

// ViewFunc adapts a plain function to View.
type ViewFunc func(vs Reader) Clause

func (f ViewFunc) Render(vs Reader) Clause {
	return f(vs)
}

// Role says where a rendered clause is placed in the boolean query.
type Role string

const (
	RoleMust   Role = "must"
	RoleShould Role = "should"
	RoleFilter Role = "filter"
)

func (r Role) valid() bool {
	switch r {
	case RoleMust, RoleShould, RoleFilter:
		return true
	}
	return false
}
