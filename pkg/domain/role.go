package domain

// Role identifies the party that drove a transition, or the party a
// transaction is being viewed as. The set is closed: the backend only ever
// records these four actors.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleProvider Role = "provider"
	RoleOperator Role = "operator"
	RoleSystem   Role = "system"
)

// Valid reports whether r is one of the four known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleProvider, RoleOperator, RoleSystem:
		return true
	}
	return false
}

// RoleOf classifies a user relative to a transaction by identity comparison.
// A transaction has exactly one customer and one provider; any other user has
// no role and gets ErrNoRole.
func RoleOf(userID string, tx *Transaction) (Role, error) {
	switch {
	case userID != "" && userID == tx.CustomerID:
		return RoleCustomer, nil
	case userID != "" && userID == tx.ProviderID:
		return RoleProvider, nil
	}
	return "", ErrNoRole
}
