package repositories

// Provider bundles the repository implementations handed to the service
// container.
type Provider struct {
	Employee EmployeeRepository
	Loan     LoanRepository
	User     UserRepository
	Sequence SequenceRepository
}
