package model

import "time"

// Roles stored in users.role.  CUSTOMER accounts are approved on
// registration; BOAT_OWNER accounts start in PENDING approval and
// are reviewed by an admin before their boats become bookable.
const (
	RoleCustomer  = "CUSTOMER"
	RoleBoatOwner = "BOAT_OWNER"
	RoleAdmin     = "ADMIN"
)

// Owner approval states stored in users.approval_status.
const (
	ApprovalPending  = "PENDING"
	ApprovalApproved = "APPROVED"
	ApprovalRejected = "REJECTED"
)

// User represents an application user record as stored in the `users`
// table.  Each field corresponds to a column in the database.  Handlers
// define separate response types with appropriate JSON tags; these
// structs are used internally by the repository layer.
//
// Fields:
//  ID             – primary key identifier of the user.
//  Email          – unique email address.
//  PhoneNumber    – unique phone number (required at registration).
//  PasswordHash   – bcrypt hashed password.
//  Name           – display name.
//  Role           – CUSTOMER, BOAT_OWNER or ADMIN.
//  ApprovalStatus – owner account approval state.
//  IsActive       – whether the account is active.
//  CreatedAt      – timestamp of creation.
//  UpdatedAt      – timestamp of last update.
type User struct {
	ID             uint64    // users.id
	Email          string    // users.email
	PhoneNumber    string    // users.phone_number
	PasswordHash   string    // users.password_hash
	Name           string    // users.name
	Role           string    // users.role
	ApprovalStatus string    // users.approval_status
	IsActive       bool      // users.is_active
	CreatedAt      time.Time // users.created_at
	UpdatedAt      time.Time // users.updated_at
}

// RefreshToken models an entry in the `refresh_tokens` table.  Each
// refresh token belongs to a user and contains metadata for expiry
// and revocation.  The plain token is not stored; only its SHA-256 hash.
type RefreshToken struct {
	ID        uint64     // refresh_tokens.id
	UserID    uint64     // refresh_tokens.user_id
	TokenHash string     // refresh_tokens.token_hash
	ExpiresAt time.Time  // refresh_tokens.expires_at
	RevokedAt *time.Time // refresh_tokens.revoked_at (nullable)
	CreatedAt time.Time  // refresh_tokens.created_at
}
