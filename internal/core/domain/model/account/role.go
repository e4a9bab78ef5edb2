package account

import "haulix/internal/pkg/errs"

// Role distinguishes regular customers from back-office administrators.
type Role int

const (
	RoleUnknown Role = iota
	RoleCustomer
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "unknown",
		RoleCustomer: "customer",
		RoleAdmin:    "admin",
	}
}

func getValidRoleStrings() map[Role]string {
	return map[Role]string{
		RoleCustomer: "customer",
		RoleAdmin:    "admin",
	}
}

// RoleFromString parses the wire representation of a role.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if s == str {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidError("role")
}

// Validate checks that the role is a member of the valid set.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidError("role")
	}
	return nil
}

// String returns the wire representation of the role.
func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return getRoleStrings()[RoleUnknown]
}
