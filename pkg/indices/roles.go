package indices

import "fmt"

// Role identifies one of the five index arrays held by a TensorIndex.
type Role int

const (
	Prognostic Role = iota
	Diagnostic
	Forcing
	Targets
	Full
)

var roleNames = map[Role]string{
	Prognostic: "prognostic",
	Diagnostic: "diagnostic",
	Forcing:    "forcing",
	Targets:    "targets",
	Full:       "full",
}

func (r Role) String() string {
	name, ok := roleNames[r]
	if !ok {
		return fmt.Sprintf("Role(%d)", int(r))
	}
	return name
}

// RoleFromString resolves a role by its lowercase name, as used in dict
// exports and on the command line.
func RoleFromString(name string) (Role, error) {
	for role, roleName := range roleNames {
		if roleName == name {
			return role, nil
		}
	}
	return 0, fmt.Errorf("unknown role %q", name)
}

// RoleLists carries the variable-name lists of the four semantic roles.
// Lists may overlap and may reference names absent from the tensor mapping;
// such names are dropped from the produced index arrays.
type RoleLists struct {
	Prognostic []string
	Diagnostic []string
	Forcing    []string
	Targets    []string
}
