package services

import (
	"github.com/peoplenest/payroll-backend/internal/core/ports/providers"
	portsrepo "github.com/peoplenest/payroll-backend/internal/core/ports/repositories"
	portssvc "github.com/peoplenest/payroll-backend/internal/core/ports/services"
)

// NewServiceContainer wires the service facades over the repository
// provider and the identity adapter.
func NewServiceContainer(repos portsrepo.Provider, identity providers.Identity) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Employee: NewEmployeeService(repos.Employee, repos.Loan, repos.User, identity),
		Loan:     NewLoanService(repos.Loan, repos.Employee),
		Auth:     NewAuthService(repos.User, identity),
		Sequence: NewSequenceService(repos.Sequence),
	}
}

// Compile-time facade checks.
var (
	_ portssvc.EmployeeSvcFacade = (*employeeService)(nil)
	_ portssvc.LoanSvcFacade     = (*loanService)(nil)
	_ portssvc.AuthSvcFacade     = (*authService)(nil)
	_ portssvc.SequenceSvcFacade = (*sequenceService)(nil)
)
