// Package authz holds the single access policy for every resource operation.
package authz

import (
	"fmt"

	"portfolio/internal/domain/models"
)

type Resource string

const (
	Blog     Resource = "blog"
	Projects Resource = "projects"
	Gallery  Resource = "gallery"
	Contact  Resource = "contact"
	Upload   Resource = "upload"
	Users    Resource = "users"
)

type Operation string

const (
	List   Operation = "list"
	Get    Operation = "get"
	Create Operation = "create"
	Update Operation = "update"
	Delete Operation = "delete"
	Toggle Operation = "toggle"
)

type Access int

const (
	// Deny is the zero value so unknown pairs are refused.
	Deny Access = iota
	Public
	Authenticated
	Admin
)

func (a Access) String() string {
	switch a {
	case Public:
		return "public"
	case Authenticated:
		return "authenticated"
	case Admin:
		return "admin"
	default:
		return "deny"
	}
}

type key struct {
	resource  Resource
	operation Operation
}

var policy = map[key]Access{
	{Blog, List}:   Public,
	{Blog, Get}:    Public,
	{Blog, Create}: Admin,
	{Blog, Update}: Admin,
	{Blog, Delete}: Admin,
	{Blog, Toggle}: Admin,

	{Projects, List}:   Public,
	{Projects, Get}:    Public,
	{Projects, Create}: Admin,
	{Projects, Update}: Admin,
	{Projects, Delete}: Admin,

	{Gallery, List}:   Public,
	{Gallery, Get}:    Public,
	{Gallery, Create}: Admin,
	{Gallery, Update}: Admin,
	{Gallery, Delete}: Admin,

	{Contact, Create}: Public,
	{Contact, List}:   Admin,
	{Contact, Get}:    Admin,
	{Contact, Toggle}: Admin,
	{Contact, Delete}: Admin,

	{Upload, Create}: Admin,

	{Users, Create}: Public,
	{Users, Get}:    Authenticated,
}

// Required returns the access level configured for the pair, Deny if none.
func Required(resource Resource, op Operation) Access {
	return policy[key{resource, op}]
}

// Decide returns models.ErrUnauthorized unless session satisfies the policy
// for the pair. A nil session is an anonymous caller.
func Decide(resource Resource, op Operation, session *models.Session) error {
	switch Required(resource, op) {
	case Public:
		return nil
	case Authenticated:
		if session != nil {
			return nil
		}
	case Admin:
		if session.IsAdmin() {
			return nil
		}
	}

	return fmt.Errorf("%s %s: %w", op, resource, models.ErrUnauthorized)
}

// Rule is one row of the policy, used by the docs and tests.
type Rule struct {
	Resource  Resource
	Operation Operation
	Access    Access
}

func Rules() []Rule {
	rules := make([]Rule, 0, len(policy))
	for k, v := range policy {
		rules = append(rules, Rule{Resource: k.resource, Operation: k.operation, Access: v})
	}
	return rules
}
