package registry

import (
	"github.com/textops/textops/pkg/types"
)

// Global registry of text operations, populated by the operation
// packages' init() functions.
var operationRegistry Registry[types.Operation]

func init() {
	operationRegistry = New[types.Operation]()
}

// RegisterOperation registers a text operation under its name.
func RegisterOperation(op types.Operation) error {
	return operationRegistry.Register(op.Name, op)
}

// MustRegisterOperation registers an operation and panics on conflict.
// Registration conflicts are programming errors, so init() callers use
// this form.
func MustRegisterOperation(op types.Operation) {
	MustRegister(operationRegistry, op.Name, op)
}

// GetOperation retrieves a registered operation by name.
func GetOperation(name string) (types.Operation, error) {
	return operationRegistry.Get(name)
}

// ListOperations returns the names of all registered operations whose
// name starts with prefix, sorted. An empty prefix lists everything.
func ListOperations(prefix string) []string {
	return operationRegistry.ListPrefix(prefix)
}

// HasOperation checks whether an operation is registered.
func HasOperation(name string) bool {
	return operationRegistry.Has(name)
}
