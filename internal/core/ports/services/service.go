package services

// ServiceContainer bundles the service facades handed to the HTTP layer.
type ServiceContainer struct {
	Employee EmployeeSvcFacade
	Loan     LoanSvcFacade
	Auth     AuthSvcFacade
	Sequence SequenceSvcFacade
}
