package gym

// Record is the slice of a stored gym document that role assignment needs:
// identity, current owner and the member list.
type Record struct {
	ID        string
	Name      string
	OwnerID   string
	MemberIDs []string
}

// HasMember reports whether uid is already in the gym's member list.
func (r *Record) HasMember(uid string) bool {
	for _, id := range r.MemberIDs {
		if id == uid {
			return true
		}
	}
	return false
}
