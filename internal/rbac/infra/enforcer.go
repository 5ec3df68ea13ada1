package infra

import (
	"go-attendo/internal/domain"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

// roles inherit through g; subjects are role names, not employee ids
const modelText = `
[request_definition]
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

var policies = [][]string{
	{domain.RoleEmployee, domain.ResourceAttendanceSelf, domain.ActionCreate},
	{domain.RoleEmployee, domain.ResourceAttendanceSelf, domain.ActionRead},
	{domain.RoleEmployee, domain.ResourceDashboardSelf, domain.ActionRead},
	{domain.RoleEmployee, domain.ResourceProfile, domain.ActionRead},

	{domain.RoleManager, domain.ResourceAttendanceTeam, domain.ActionRead},
	{domain.RoleManager, domain.ResourceAttendanceTeam, domain.ActionExport},
	{domain.RoleManager, domain.ResourceDashboardTeam, domain.ActionRead},
	{domain.RoleManager, domain.ResourceEmployee, domain.ActionRead},
	{domain.RoleManager, domain.ResourceEmployee, domain.ActionDelete},
	{domain.RoleManager, domain.ResourceDepartment, domain.ActionRead},
}

var groupings = [][]string{
	{domain.RoleManager, domain.RoleEmployee},
}

// NewEnforcer builds an in-memory enforcer with the built-in role policy.
func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}

	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	if _, err := e.AddPolicies(policies); err != nil {
		return nil, err
	}
	if _, err := e.AddGroupingPolicies(groupings); err != nil {
		return nil, err
	}
	return e, nil
}
