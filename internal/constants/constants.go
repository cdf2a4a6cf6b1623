package constants

import "time"

// Session and context keys
const (
	SessionCookieName  = "hostel_session"
	ContextKeyUserID   = "user_id"
	ContextKeyUsername = "username"
	ContextKeyRole     = "role"
)

// Business rules
const (
	// MaxWorkerTaskCount caps how many open issues a worker can hold.
	MaxWorkerTaskCount = 8

	// OverdueAfter is how long an assigned issue may sit before the
	// admin dashboard flags it.
	OverdueAfter = 48 * time.Hour

	MinPasswordLength = 3
)

// Seed data layout
const (
	SeedFloors         = 3
	SeedRoomsPerFloor  = 15
	SeedMembersPerRoom = 3
	SeedUsernamePrefix = "2026HOSTEL"
	SeedAdminUsername  = "admin"
	SeedAdminPassword  = "123"
)

// Pagination limits
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)
