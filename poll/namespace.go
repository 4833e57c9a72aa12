package poll

// Namespace integer ids, per spec §6.
const (
	NamespaceUserMessages      = 0
	NamespaceClosedGroup       = 1
	NamespaceConvoInfoVolatile = 2
	NamespaceUserContacts      = 3
	NamespaceUserProfile       = 4
	NamespaceUserGroups        = 5
)

// DefaultNamespaces is the namespace set a poller covers unless overridden,
// per spec §4.L.
var DefaultNamespaces = []int{
	NamespaceUserMessages,
	NamespaceConvoInfoVolatile,
	NamespaceUserContacts,
	NamespaceUserGroups,
	NamespaceUserProfile,
}
