// Package fsdb implements the repository ports against Firestore. Collection
// names follow the live database; multi-document invariants are kept with
// WriteBatch (atomic batched writes) and RunTransaction (read-modify-write).
package fsdb

import (
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/peoplenest/payroll-backend/internal/apperrors"
	portsrepo "github.com/peoplenest/payroll-backend/internal/core/ports/repositories"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	generalCollection      = "general"
	professionalCollection = "professional"
	employeeCollection     = "employees"
	bankDetailsCollection  = "bankDetails"
	pfCollection           = "pfDetails"
	loanCollection         = "loanDetails"
	previousJobsCollection = "previousJobs"
	resourcesCollection    = "resources"
	usersCollection        = "users"
	sequenceCollection     = "sequenceNumbers"
	countersCollection     = "counters"
)

// maxBatchOps is Firestore's per-batch operation ceiling.
const maxBatchOps = 500

// NewProvider builds the repository provider over one Firestore client.
func NewProvider(client *firestore.Client) portsrepo.Provider {
	return portsrepo.Provider{
		Employee: NewEmployeeRepository(client),
		Loan:     NewLoanRepository(client),
		User:     NewUserRepository(client),
		Sequence: NewSequenceRepository(client),
	}
}

// notFound translates the store's NOT_FOUND status into the application
// sentinel so services and handlers can branch with errors.Is.
func notFound(err error, what, id string) error {
	if isNotFound(err) {
		return fmt.Errorf("%s %s: %w", what, id, apperrors.ErrNotFound)
	}
	return err
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}
