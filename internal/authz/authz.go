// Package authz holds the per-route authorization table.
//
// Every (resource, operation) pair the API exposes has exactly one Rule.
// Anonymous callers are represented by an empty caller id.
package authz

import (
	"github.com/tribertmuto/alx-travel-app-0x01/internal/domain"
)

type Resource string

const (
	Listing Resource = "listing"
	Booking Resource = "booking"
	Account Resource = "account"
)

type Operation string

const (
	List          Operation = "list"
	Create        Operation = "create"
	Retrieve      Operation = "retrieve"
	Update        Operation = "update"
	PartialUpdate Operation = "partial_update"
	Delete        Operation = "delete"
	Available     Operation = "available"
	ByLocation    Operation = "by_location"
	Reviews       Operation = "reviews"
	Cancel        Operation = "cancel"
	Confirm       Operation = "confirm"
	MyBookings    Operation = "my_bookings"
	Review        Operation = "review"
	Register      Operation = "register"
	Login         Operation = "login"
	Logout        Operation = "logout"
	Me            Operation = "me"
)

// Target describes the ownership of the record an operation acts on.
type Target struct {
	HostID  string
	GuestID string
}

// Rule decides whether caller may act on target. Authenticated rules reject
// anonymous callers before Allow is consulted.
type Rule struct {
	Authenticated bool
	Allow         func(caller string, t Target) bool
}

func anyone(string, Target) bool { return true }

func host(caller string, t Target) bool { return t.HostID != "" && caller == t.HostID }

func guest(caller string, t Target) bool { return t.GuestID != "" && caller == t.GuestID }

func guestOrHost(caller string, t Target) bool { return guest(caller, t) || host(caller, t) }

var (
	public        = Rule{Allow: anyone}
	authenticated = Rule{Authenticated: true, Allow: anyone}
	hostOnly      = Rule{Authenticated: true, Allow: host}
	guestOnly     = Rule{Authenticated: true, Allow: guest}
	participant   = Rule{Authenticated: true, Allow: guestOrHost}
)

type key struct {
	res Resource
	op  Operation
}

var rules = map[key]Rule{
	{Listing, List}:          public,
	{Listing, Retrieve}:      public,
	{Listing, Available}:     public,
	{Listing, ByLocation}:    public,
	{Listing, Reviews}:       public,
	{Listing, Create}:        authenticated,
	{Listing, Update}:        hostOnly,
	{Listing, PartialUpdate}: hostOnly,
	{Listing, Delete}:        hostOnly,

	{Booking, List}:          authenticated,
	{Booking, Create}:        authenticated,
	{Booking, MyBookings}:    authenticated,
	{Booking, Retrieve}:      guestOnly,
	{Booking, Update}:        guestOnly,
	{Booking, PartialUpdate}: guestOnly,
	{Booking, Delete}:        guestOnly,
	{Booking, Review}:        guestOnly,
	{Booking, Cancel}:        participant,
	{Booking, Confirm}:       hostOnly,

	{Account, Register}: public,
	{Account, Login}:    public,
	{Account, Logout}:   authenticated,
	{Account, Me}:       authenticated,
}

// Lookup returns the rule for res/op. Unknown pairs get a rule that denies everyone.
func Lookup(res Resource, op Operation) Rule {
	if r, ok := rules[key{res, op}]; ok {
		return r
	}
	return Rule{Authenticated: true, Allow: func(string, Target) bool { return false }}
}

// RequiresAuth reports whether res/op rejects anonymous callers.
func RequiresAuth(res Resource, op Operation) bool {
	return Lookup(res, op).Authenticated
}

// Check returns nil when caller may perform op on t, domain.ErrUnauthenticated
// for an anonymous caller on a protected operation and domain.ErrPermissionDenied otherwise.
func Check(caller string, res Resource, op Operation, t Target) error {
	r := Lookup(res, op)
	if r.Authenticated && caller == "" {
		return domain.ErrUnauthenticated
	}
	if !r.Allow(caller, t) {
		return domain.ErrPermissionDenied
	}
	return nil
}
