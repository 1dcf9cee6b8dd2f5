package domain

// User is the identity resolution this core trusts. Authentication itself is
// an external collaborator; the bid and approval paths only look at the
// resolved fields below.
type User struct {
	ID        string
	FullName  string
	Email     string
	Phone     string
	Role      string
	Suspended bool
}

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type UserDirectory interface {
	GetUserByID(userID string) (*User, error)
}
