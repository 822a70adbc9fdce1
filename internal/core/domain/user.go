package domain

// Role names stored on identity records. The professional record's role is
// copied onto the mirror when login details are provisioned.
type Role string

const (
	RoleSuperAdmin Role = "superAdmin"
	RoleAdmin      Role = "admin"
	RoleEmployee   Role = "employee"
)

// UserRecord mirrors a provider identity into the `users` collection, keyed
// by the provider uid. The credential is stored as a bcrypt hash; it mirrors
// but does not synchronize automatically with GeneralInfo.loginDetails.
type UserRecord struct {
	UID          string `firestore:"uid" json:"uid"`
	Email        string `firestore:"email" json:"email"`
	DisplayName  string `firestore:"displayName" json:"displayName"`
	Role         Role   `firestore:"role" json:"role"`
	PasswordHash string `firestore:"passwordHash" json:"-"`
	LoginEnable  bool   `firestore:"loginEnable" json:"loginEnable"`
	AccLocked    bool   `firestore:"accLocked" json:"accLocked"`
	CreatedAt    string `firestore:"createdAt" json:"createdAt"`
}
