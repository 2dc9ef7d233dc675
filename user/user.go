package user

const (
	RoleUser          = "user"
	RoleFacilityOwner = "facility_owner"
	RoleAdmin         = "admin"
)

type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Role     string `json:"role"` // user, facility_owner, admin
	IsActive bool   `json:"isActive"`
	IsBanned bool   `json:"isBanned"`
}
