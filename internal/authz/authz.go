package authz

import (
	"github.com/casbin/casbin/v2"
)

// Service is the single authorization capability. Every operation entry
// point asks it one question: may this role perform this action on this
// resource? Role-to-permission policy lives in policy.csv; admin inherits
// everything hr may do.
type Service interface {
	Can(role, resource, action string) (bool, error)
}

type service struct {
	enforcer *casbin.Enforcer
}

func NewService(modelPath, policyPath string) (Service, error) {
	enforcer, err := casbin.NewEnforcer(modelPath, policyPath)
	if err != nil {
		return nil, err
	}
	return &service{enforcer: enforcer}, nil
}

func (s *service) Can(role, resource, action string) (bool, error) {
	return s.enforcer.Enforce(role, resource, action)
}
