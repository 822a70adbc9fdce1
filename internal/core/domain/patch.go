package domain

// Patch types list every updatable field explicitly as an optional pointer,
// so partial updates are applied as field-level store updates instead of an
// untyped recursive merge. A nil field is left untouched.

// GeneralPatch updates GeneralInfo. Name and phone parts map to nested paths.
type GeneralPatch struct {
	Title        *string
	FirstName    *string
	LastName     *string
	PrimaryEmail *string
	Gender       *string
	PhoneCode    *string
	PhoneNum     *string
	Status       *string
}

// IsEmpty reports whether no field is set.
func (p GeneralPatch) IsEmpty() bool {
	return p.Title == nil && p.FirstName == nil && p.LastName == nil &&
		p.PrimaryEmail == nil && p.Gender == nil && p.PhoneCode == nil &&
		p.PhoneNum == nil && p.Status == nil
}

// ProfessionalPatch updates ProfessionalInfo.
type ProfessionalPatch struct {
	JoiningDate      *string
	Department       *string
	Designation      *string
	Location         *string
	ReportingManager *string
	WorkWeek         *string
	HolidayGroup     *string
	CTCAnnual        *string
	PayslipComponent *string
	Role             *string
}

func (p ProfessionalPatch) IsEmpty() bool {
	return p.JoiningDate == nil && p.Department == nil && p.Designation == nil &&
		p.Location == nil && p.ReportingManager == nil && p.WorkWeek == nil &&
		p.HolidayGroup == nil && p.CTCAnnual == nil && p.PayslipComponent == nil &&
		p.Role == nil
}

// BankPatch updates BankDetails.
type BankPatch struct {
	AccountType *string
	AccountName *string
	AccountNum  *string
	IFSCCode    *string
	BankName    *string
	BranchName  *string
}

func (p BankPatch) IsEmpty() bool {
	return p.AccountType == nil && p.AccountName == nil && p.AccountNum == nil &&
		p.IFSCCode == nil && p.BankName == nil && p.BranchName == nil
}

// LoginPatch updates the loginDetails sub-object and the mirrored identity
// record. The password travels in clear to the service, which hashes it
// before it reaches the mirror.
type LoginPatch struct {
	Password    *string
	LoginEnable *bool
	AccLocked   *bool
}

func (p LoginPatch) IsEmpty() bool {
	return p.Password == nil && p.LoginEnable == nil && p.AccLocked == nil
}

// PreviousJobPatch updates a PreviousJob record.
type PreviousJobPatch struct {
	CompanyName *string
	Designation *string
	FromDate    *string
	ToDate      *string
	Location    *string
}

func (p PreviousJobPatch) IsEmpty() bool {
	return p.CompanyName == nil && p.Designation == nil && p.FromDate == nil &&
		p.ToDate == nil && p.Location == nil
}
