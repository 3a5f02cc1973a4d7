package domain

// AdminIdentity is the authenticated console administrator handed to handlers.
type AdminIdentity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// ClientIdentity is the staff identity embedded in stateless client tokens.
// The store membership arrays are parallel: StoreNames[i] names StoreIDs[i].
type ClientIdentity struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Role       StaffRole `json:"role"`
	StoreIDs   []string  `json:"storeIds"`
	StoreNames []string  `json:"storeNames"`
}

// MemberOf reports whether the identity belongs to the given store.
func (c ClientIdentity) MemberOf(storeID string) bool {
	for _, id := range c.StoreIDs {
		if id == storeID {
			return true
		}
	}
	return false
}

// IsManager reports whether the identity carries the manager role.
func (c ClientIdentity) IsManager() bool {
	return c.Role == StaffRoleManager
}
