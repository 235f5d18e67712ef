package models

type UserRole string

const (
	UserRoleAdmin     UserRole = "ADMIN"
	UserRoleCandidate UserRole = "CANDIDATE"
	UserRoleRBT       UserRole = "RBT"
)

var roleHumanName = map[UserRole]string{
	UserRoleAdmin:     "Administrator",
	UserRoleCandidate: "Candidate",
	UserRoleRBT:       "Registered Behavior Technician",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

const SystemUser = "System"
