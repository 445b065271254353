package domain

import "strings"

// Role is the authorization role reported by the backend for a user.
type Role string

const (
	RoleUnknown  Role = ""
	RoleCustomer Role = "customer"
	RoleStaff    Role = "staff"
	RoleAdmin    Role = "admin"
)

// ParseRole maps a backend role string onto a Role. Anything unrecognised
// becomes RoleUnknown, which carries no capabilities.
func ParseRole(s string) Role {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleCustomer:
		return RoleCustomer
	case RoleStaff:
		return RoleStaff
	case RoleAdmin:
		return RoleAdmin
	default:
		return RoleUnknown
	}
}

func (r Role) String() string {
	if r == RoleUnknown {
		return "unknown"
	}
	return string(r)
}

// CanOpenAdminMenu reports whether the admin side menu toggle is shown.
func (r Role) CanOpenAdminMenu() bool {
	return r == RoleStaff || r == RoleAdmin
}

// CanManageCatalog gates product and discount management.
func (r Role) CanManageCatalog() bool {
	return r == RoleAdmin
}

// CanManageUsers gates user administration.
func (r Role) CanManageUsers() bool {
	return r == RoleAdmin
}

// Capability is a predicate over roles used by the route guard.
type Capability func(Role) bool

var (
	CapAdminMenu     Capability = Role.CanOpenAdminMenu
	CapManageCatalog Capability = Role.CanManageCatalog
	CapManageUsers   Capability = Role.CanManageUsers
)

// User is the profile returned by the backend. Role is authoritative only as
// returned by the backend; it is never set or upgraded locally.
type User struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	Role        Role   `json:"role"`
	Name        string `json:"name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
	Email       string `json:"email,omitempty"`
	NationalID  string `json:"national_id,omitempty"`
	Address     string `json:"address,omitempty"`
	State       string `json:"state,omitempty"`
	City        string `json:"city,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

// UnmarshalText keeps Role decoding strict: unknown strings stay unknown.
func (r *Role) UnmarshalText(b []byte) error {
	*r = ParseRole(string(b))
	return nil
}

// DisplayName is the name shown next to the logout control.
func (u *User) DisplayName() string {
	if u == nil {
		return ""
	}
	first := u.Name
	if first == "" {
		first = u.Username
	}
	return strings.TrimSpace(first + " " + u.LastName)
}

// UserInput is the body sent when registering or updating a user.
type UserInput struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password,omitempty"`
	Name        string `json:"name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
	NationalID  string `json:"national_id,omitempty"`
	Address     string `json:"address,omitempty"`
	State       string `json:"state,omitempty"`
	City        string `json:"city,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Role        string `json:"role,omitempty"`
}

// UserSearchField names one of the backend's user search endpoints.
type UserSearchField string

const (
	SearchByUsername    UserSearchField = "username"
	SearchByEmail       UserSearchField = "email"
	SearchByNationalID  UserSearchField = "national_id"
	SearchByName        UserSearchField = "name"
	SearchByPhoneNumber UserSearchField = "phone_number"
)

// ParseUserSearchField falls back to username search, like the admin screen.
func ParseUserSearchField(s string) UserSearchField {
	switch f := UserSearchField(s); f {
	case SearchByEmail, SearchByNationalID, SearchByName, SearchByPhoneNumber:
		return f
	default:
		return SearchByUsername
	}
}

// UsersByRole groups users for the admin users screen.
type UsersByRole struct {
	Admin    []User `json:"admin"`
	Staff    []User `json:"staff"`
	Customer []User `json:"customer"`
}

// GroupUsersByRole buckets users by role. Users with an unknown role are dropped.
func GroupUsersByRole(users []User) UsersByRole {
	g := UsersByRole{Admin: []User{}, Staff: []User{}, Customer: []User{}}
	for _, u := range users {
		switch u.Role {
		case RoleAdmin:
			g.Admin = append(g.Admin, u)
		case RoleStaff:
			g.Staff = append(g.Staff, u)
		case RoleCustomer:
			g.Customer = append(g.Customer, u)
		}
	}
	return g
}
