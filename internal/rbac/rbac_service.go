package rbac

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && (r.obj == p.obj || p.obj == "*") && (r.act == p.act || p.act == "*")
`

// Roles. A single office, so policy lives in code instead of per-tenant
// database rows.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleViewer  = "viewer"
)

var defaultPolicies = [][]string{
	{RoleAdmin, "*", "*"},

	{RoleManager, "department", "read"},
	{RoleManager, "department", "create"},
	{RoleManager, "department", "update"},
	{RoleManager, "employee", "read"},
	{RoleManager, "employee", "create"},
	{RoleManager, "employee", "update"},
	{RoleManager, "site", "read"},
	{RoleManager, "site", "create"},
	{RoleManager, "site", "update"},
	{RoleManager, "assignment", "read"},
	{RoleManager, "assignment", "create"},
	{RoleManager, "assignment", "update"},
	{RoleManager, "assignment", "delete"},
	{RoleManager, "skill", "read"},
	{RoleManager, "skill", "create"},
	{RoleManager, "server", "read"},
	{RoleManager, "ai_report", "read"},
	{RoleManager, "ai_report", "create"},

	{RoleViewer, "department", "read"},
	{RoleViewer, "employee", "read"},
	{RoleViewer, "site", "read"},
	{RoleViewer, "assignment", "read"},
	{RoleViewer, "skill", "read"},
	{RoleViewer, "server", "read"},
	{RoleViewer, "ai_report", "read"},
}

type Service interface {
	Enforce(role, resource, action string) (bool, error)
}

type service struct {
	enforcer *casbin.Enforcer
}

func NewService() (Service, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, err
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	for _, p := range defaultPolicies {
		if _, err := enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, err
		}
	}

	return &service{enforcer: enforcer}, nil
}

func (s *service) Enforce(role, resource, action string) (bool, error) {
	return s.enforcer.Enforce(role, resource, action)
}
