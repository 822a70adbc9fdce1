package domain

// Title is the honorific carried on an employee's name.
type Title string

const (
	TitleMr  Title = "Mr."
	TitleMs  Title = "Ms."
	TitleMrs Title = "Mrs."
	TitleDr  Title = "Dr."
)

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// Status is the employee lifecycle state stored on GeneralInfo.
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
	StatusOnNotice Status = "ON_NOTICE"
)

// Name is the structured employee name embedded in GeneralInfo.
type Name struct {
	Title Title  `firestore:"title" json:"title"`
	First string `firestore:"first" json:"first"`
	Last  string `firestore:"last" json:"last"`
}

// Phone is a country-code qualified phone number.
type Phone struct {
	Code string `firestore:"code" json:"code"`
	Num  string `firestore:"num" json:"num"`
}

// LoginDetails is the optional credential sub-object embedded in GeneralInfo.
type LoginDetails struct {
	Username    string `firestore:"username" json:"username"`
	Password    string `firestore:"password" json:"password"`
	LoginEnable bool   `firestore:"loginEnable" json:"loginEnable"`
	AccLocked   bool   `firestore:"accLocked" json:"accLocked"`
}

// GeneralInfo is one document in the `general` collection.
// EmpCode is globally unique and immutable once assigned.
type GeneralInfo struct {
	ID           string        `firestore:"id" json:"id"`
	EmpCode      string        `firestore:"empCode" json:"empCode"`
	Name         Name          `firestore:"name" json:"name"`
	PrimaryEmail string        `firestore:"primaryEmail" json:"primaryEmail"`
	Gender       Gender        `firestore:"gender" json:"gender"`
	PhoneNum     Phone         `firestore:"phoneNum" json:"phoneNum"`
	Status       Status        `firestore:"status" json:"status"`
	LoginDetails *LoginDetails `firestore:"loginDetails,omitempty" json:"loginDetails,omitempty"`
}

// ProfessionalInfo is one document in the `professional` collection,
// one-to-one with GeneralInfo via the owning EmployeeIndex.
type ProfessionalInfo struct {
	ID               string `firestore:"id" json:"id"`
	JoiningDate      string `firestore:"joiningDate" json:"joiningDate"`
	Department       string `firestore:"department" json:"department"`
	Designation      string `firestore:"designation" json:"designation"`
	Location         string `firestore:"location" json:"location"`
	ReportingManager string `firestore:"reportingManager" json:"reportingManager"`
	WorkWeek         string `firestore:"workWeek" json:"workWeek"`
	HolidayGroup     string `firestore:"holidayGroup" json:"holidayGroup"`
	CTCAnnual        string `firestore:"ctcAnnual" json:"ctcAnnual"`
	PayslipComponent string `firestore:"payslipComponent" json:"payslipComponent"`
	Role             string `firestore:"role" json:"role"`
}

// EmployeeIndex is the aggregate root (`employees` collection). Its document id
// is the externally visible employee id. GeneralID and ProfessionalID never
// change after creation; the optional ids are linked in as sub-records appear.
type EmployeeIndex struct {
	ID             string   `firestore:"-" json:"employeeId"`
	GeneralID      string   `firestore:"generalId" json:"generalId"`
	ProfessionalID string   `firestore:"professionalId" json:"professionalId"`
	BankDetailID   string   `firestore:"bankDetailId,omitempty" json:"bankDetailId,omitempty"`
	PFID           string   `firestore:"pfId,omitempty" json:"pfId,omitempty"`
	LoanIDs        []string `firestore:"loanId,omitempty" json:"loanId,omitempty"`
	PreviousJobIDs []string `firestore:"previousJobId,omitempty" json:"previousJobId,omitempty"`
	ProjectIDs     []string `firestore:"projectId,omitempty" json:"projectId,omitempty"`
	IsDeleted      bool     `firestore:"isDeleted" json:"isDeleted"`
}

// BankDetails is one document in `bankDetails`; at most one per employee.
type BankDetails struct {
	ID          string `firestore:"id" json:"id"`
	AccountType string `firestore:"accountType" json:"accountType"`
	AccountName string `firestore:"accountName" json:"accountName"`
	AccountNum  string `firestore:"accountNum" json:"accountNum"`
	IFSCCode    string `firestore:"ifscCode" json:"ifscCode"`
	BankName    string `firestore:"bankName" json:"bankName"`
	BranchName  string `firestore:"branchName" json:"branchName"`
}

// PFDetails is read through the aggregation reader only; this service never
// writes the `pfDetails` collection.
type PFDetails struct {
	EmployeePFEnable  bool    `firestore:"employeePfEnable" json:"employeePfEnable"`
	PFNum             *string `firestore:"pfNum" json:"pfNum"`
	EmployeerPFEnable bool    `firestore:"employeerPfEnable" json:"employeerPfEnable"`
	UANNum            *string `firestore:"uanNum" json:"uanNum"`
	ESIEnable         bool    `firestore:"esiEnable" json:"esiEnable"`
	ESINum            *string `firestore:"esiNum" json:"esiNum"`
	ProfessionalTax   bool    `firestore:"professionalTax" json:"professionalTax"`
	LabourWelfare     bool    `firestore:"labourWelfare" json:"labourWelfare"`
}

// PreviousJob is a free-form prior-employment record in `previousJobs`.
type PreviousJob struct {
	ID          string `firestore:"id" json:"id"`
	CompanyName string `firestore:"companyName" json:"companyName"`
	Designation string `firestore:"designation" json:"designation"`
	FromDate    string `firestore:"fromDate" json:"fromDate"`
	ToDate      string `firestore:"toDate" json:"toDate"`
	Location    string `firestore:"location" json:"location"`
}

// Project is a document in the `resources` collection, tagged with the
// employee code it is assigned to.
type Project struct {
	ID         string `firestore:"-" json:"id"`
	Name       string `firestore:"name" json:"name"`
	EmpCode    string `firestore:"empCode" json:"empCode"`
	Allocation string `firestore:"allocation,omitempty" json:"allocation,omitempty"`
	IsDeleted  bool   `firestore:"isDeleted" json:"isDeleted"`
}

// EmployeeSummary is the row shape returned by the employee listing and by
// the change-status operation.
type EmployeeSummary struct {
	ID               string `json:"id"`
	EmployeeCode     string `json:"employeeCode"`
	EmployeeName     string `json:"employeeName"`
	JoiningDate      string `json:"joiningDate"`
	Designation      string `json:"designation"`
	Department       string `json:"department"`
	Location         string `json:"location"`
	Gender           Gender `json:"gender"`
	Status           Status `json:"status"`
	PayslipComponent string `json:"payslipComponent"`
}

// CompleteEmployee is the cross-collection aggregate assembled by code lookup.
// Loans and PreviousJobs are position-preserving: a missing referenced
// document stays in place as a nil entry.
type CompleteEmployee struct {
	General      GeneralInfo
	Professional *ProfessionalInfo
	Bank         *BankDetails
	PF           *PFDetails
	Loans        []*Loan
	PreviousJobs []*PreviousJob
	Projects     []Project
}
