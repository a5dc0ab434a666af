package infra

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

// ModelText grants by role; g lines give role inheritance so a MANAGER holds
// every EMPLOYEE permission.
const ModelText = `[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

type Policy struct {
	Role     string
	Resource string
	Action   string
}

type Inheritance struct {
	Role   string
	Parent string
}

var DefaultPolicies = []Policy{
	{"EMPLOYEE", "leave", "apply"},
	{"EMPLOYEE", "leave", "read"},
	{"EMPLOYEE", "holiday", "read"},
	{"EMPLOYEE", "settings", "read"},
	{"MANAGER", "leave", "review"},
	{"HR", "leave", "review"},
	{"HR", "holiday", "manage"},
	{"ADMIN", "leave", "admin"},
	{"ADMIN", "settings", "update"},
}

var DefaultInheritance = []Inheritance{
	{"MANAGER", "EMPLOYEE"},
	{"HR", "EMPLOYEE"},
	{"ADMIN", "HR"},
}

// NewEnforcer builds an in-memory enforcer seeded with the given policies.
func NewEnforcer(policies []Policy, inheritance []Inheritance) (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(ModelText)
	if err != nil {
		return nil, err
	}

	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	for _, p := range policies {
		if _, err := e.AddPolicy(p.Role, p.Resource, p.Action); err != nil {
			return nil, err
		}
	}
	for _, g := range inheritance {
		if _, err := e.AddGroupingPolicy(g.Role, g.Parent); err != nil {
			return nil, err
		}
	}
	return e, nil
}

func NewDefaultEnforcer() (*casbin.Enforcer, error) {
	return NewEnforcer(DefaultPolicies, DefaultInheritance)
}
