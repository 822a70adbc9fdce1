package dto

import (
	"strings"

	"github.com/peoplenest/payroll-backend/internal/core/domain"
)

// defaultPhoneCode is applied when the client omits the country code.
const defaultPhoneCode = "+91"

// CreateEmployeeRequest carries the flat onboarding payload. The handler
// splits it into the general and professional halves of the aggregate.
type CreateEmployeeRequest struct {
	Title            string `json:"title" binding:"required,oneof=Mr. Ms. Mrs. Dr."`
	FirstName        string `json:"firstName" binding:"required"`
	LastName         string `json:"lastName"`
	PrimaryEmail     string `json:"primaryEmail" binding:"required,email"`
	Gender           string `json:"gender" binding:"required,oneof=Male Female Other"`
	PhoneCode        string `json:"phoneCode"`
	PhoneNum         string `json:"phoneNum" binding:"required"`
	JoiningDate      string `json:"joiningDate" binding:"required"`
	Department       string `json:"department" binding:"required"`
	Designation      string `json:"designation" binding:"required"`
	Location         string `json:"location" binding:"required"`
	ReportingManager string `json:"reportingManager" binding:"required"`
	WorkWeek         string `json:"workWeek" binding:"required"`
	HolidayGroup     string `json:"holidayGroup" binding:"required"`
	CTCAnnual        string `json:"ctcAnnual" binding:"required"`
	PayslipComponent string `json:"payslipComponent" binding:"required"`
	Role             string `json:"role" binding:"required"`
}

// ToDomain splits the request into the two aggregate halves. A missing phone
// code defaults to the local country code; a missing last name repeats the
// first name.
func (r CreateEmployeeRequest) ToDomain() (domain.GeneralInfo, domain.ProfessionalInfo) {
	code := strings.TrimSpace(r.PhoneCode)
	if code == "" {
		code = defaultPhoneCode
	}
	last := strings.TrimSpace(r.LastName)
	if last == "" {
		last = strings.TrimSpace(r.FirstName)
	}
	general := domain.GeneralInfo{
		Name: domain.Name{
			Title: domain.Title(r.Title),
			First: strings.TrimSpace(r.FirstName),
			Last:  last,
		},
		PrimaryEmail: r.PrimaryEmail,
		Gender:       domain.Gender(r.Gender),
		PhoneNum:     domain.Phone{Code: code, Num: r.PhoneNum},
	}
	professional := domain.ProfessionalInfo{
		JoiningDate:      r.JoiningDate,
		Department:       r.Department,
		Designation:      r.Designation,
		Location:         r.Location,
		ReportingManager: r.ReportingManager,
		WorkWeek:         r.WorkWeek,
		HolidayGroup:     r.HolidayGroup,
		CTCAnnual:        r.CTCAnnual,
		PayslipComponent: r.PayslipComponent,
		Role:             r.Role,
	}
	return general, professional
}

// EmployeeRootResponse is the created aggregate's id set.
type EmployeeRootResponse struct {
	EmployeeID     string `json:"employeeId"`
	EmpCode        string `json:"empCode"`
	GeneralID      string `json:"generalId"`
	ProfessionalID string `json:"professionalId"`
}

// ToEmployeeRootResponse flattens the index and the assigned code.
func ToEmployeeRootResponse(index *domain.EmployeeIndex, general *domain.GeneralInfo) EmployeeRootResponse {
	return EmployeeRootResponse{
		EmployeeID:     index.ID,
		EmpCode:        general.EmpCode,
		GeneralID:      index.GeneralID,
		ProfessionalID: index.ProfessionalID,
	}
}

// ListEmployeesParams defines query parameters for the employee listing.
type ListEmployeesParams struct {
	Limit int `form:"limit,default=10"`
	Page  int `form:"page,default=1"`
}

// ChangeStatusRequest flips the employee lifecycle state.
type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=ACTIVE INACTIVE ON_NOTICE"`
}

// EditGeneralRequest defines the data allowed for updating general info.
// Use pointers to distinguish between zero-value updates and fields not provided.
type EditGeneralRequest struct {
	Title        *string `json:"title"`
	FirstName    *string `json:"firstName"`
	LastName     *string `json:"lastName"`
	PrimaryEmail *string `json:"primaryEmail"`
	Gender       *string `json:"gender"`
	PhoneCode    *string `json:"phoneCode"`
	PhoneNum     *string `json:"phoneNum"`
	Status       *string `json:"status"`
}

func (r EditGeneralRequest) ToPatch() domain.GeneralPatch {
	return domain.GeneralPatch{
		Title:        r.Title,
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		PrimaryEmail: r.PrimaryEmail,
		Gender:       r.Gender,
		PhoneCode:    r.PhoneCode,
		PhoneNum:     r.PhoneNum,
		Status:       r.Status,
	}
}

// EditProfessionalRequest defines the data allowed for updating professional info.
type EditProfessionalRequest struct {
	JoiningDate      *string `json:"joiningDate"`
	Department       *string `json:"department"`
	Designation      *string `json:"designation"`
	Location         *string `json:"location"`
	ReportingManager *string `json:"reportingManager"`
	WorkWeek         *string `json:"workWeek"`
	HolidayGroup     *string `json:"holidayGroup"`
	CTCAnnual        *string `json:"ctcAnnual"`
	PayslipComponent *string `json:"payslipComponent"`
	Role             *string `json:"role"`
}

func (r EditProfessionalRequest) ToPatch() domain.ProfessionalPatch {
	return domain.ProfessionalPatch{
		JoiningDate:      r.JoiningDate,
		Department:       r.Department,
		Designation:      r.Designation,
		Location:         r.Location,
		ReportingManager: r.ReportingManager,
		WorkWeek:         r.WorkWeek,
		HolidayGroup:     r.HolidayGroup,
		CTCAnnual:        r.CTCAnnual,
		PayslipComponent: r.PayslipComponent,
		Role:             r.Role,
	}
}

// AddLoginDetailsRequest provisions portal credentials for an employee.
type AddLoginDetailsRequest struct {
	Username    string `json:"username" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	LoginEnable bool   `json:"loginEnable"`
	AccLocked   bool   `json:"accLocked"`
}

func (r AddLoginDetailsRequest) ToDomain() domain.LoginDetails {
	return domain.LoginDetails{
		Username:    r.Username,
		Password:    r.Password,
		LoginEnable: r.LoginEnable,
		AccLocked:   r.AccLocked,
	}
}

// EditLoginDetailsRequest updates credential flags and optionally the password.
type EditLoginDetailsRequest struct {
	Password    *string `json:"password"`
	LoginEnable *bool   `json:"loginEnable"`
	AccLocked   *bool   `json:"accLocked"`
}

func (r EditLoginDetailsRequest) ToPatch() domain.LoginPatch {
	return domain.LoginPatch{
		Password:    r.Password,
		LoginEnable: r.LoginEnable,
		AccLocked:   r.AccLocked,
	}
}

// AddBankDetailsRequest carries the employee's payout account.
type AddBankDetailsRequest struct {
	AccountType string `json:"accountType" binding:"required"`
	AccountName string `json:"accountName" binding:"required"`
	AccountNum  string `json:"accountNum" binding:"required"`
	IFSCCode    string `json:"ifscCode" binding:"required"`
	BankName    string `json:"bankName" binding:"required"`
	BranchName  string `json:"branchName" binding:"required"`
}

func (r AddBankDetailsRequest) ToDomain() domain.BankDetails {
	return domain.BankDetails{
		AccountType: r.AccountType,
		AccountName: r.AccountName,
		AccountNum:  r.AccountNum,
		IFSCCode:    r.IFSCCode,
		BankName:    r.BankName,
		BranchName:  r.BranchName,
	}
}

// EditBankDetailsRequest defines the data allowed for updating bank details.
type EditBankDetailsRequest struct {
	AccountType *string `json:"accountType"`
	AccountName *string `json:"accountName"`
	AccountNum  *string `json:"accountNum"`
	IFSCCode    *string `json:"ifscCode"`
	BankName    *string `json:"bankName"`
	BranchName  *string `json:"branchName"`
}

func (r EditBankDetailsRequest) ToPatch() domain.BankPatch {
	return domain.BankPatch{
		AccountType: r.AccountType,
		AccountName: r.AccountName,
		AccountNum:  r.AccountNum,
		IFSCCode:    r.IFSCCode,
		BankName:    r.BankName,
		BranchName:  r.BranchName,
	}
}

// AddPreviousJobRequest records a prior employment entry.
type AddPreviousJobRequest struct {
	CompanyName string `json:"companyName" binding:"required"`
	Designation string `json:"designation" binding:"required"`
	FromDate    string `json:"fromDate" binding:"required"`
	ToDate      string `json:"toDate" binding:"required"`
	Location    string `json:"location"`
}

func (r AddPreviousJobRequest) ToDomain() domain.PreviousJob {
	return domain.PreviousJob{
		CompanyName: r.CompanyName,
		Designation: r.Designation,
		FromDate:    r.FromDate,
		ToDate:      r.ToDate,
		Location:    r.Location,
	}
}

// EditPreviousJobRequest defines the data allowed for updating a prior job.
type EditPreviousJobRequest struct {
	CompanyName *string `json:"companyName"`
	Designation *string `json:"designation"`
	FromDate    *string `json:"fromDate"`
	ToDate      *string `json:"toDate"`
	Location    *string `json:"location"`
}

func (r EditPreviousJobRequest) ToPatch() domain.PreviousJobPatch {
	return domain.PreviousJobPatch{
		CompanyName: r.CompanyName,
		Designation: r.Designation,
		FromDate:    r.FromDate,
		ToDate:      r.ToDate,
		Location:    r.Location,
	}
}

// BankDetailsResponse renders the bank record with explicit nulls when the
// employee has none, so clients see a stable shape.
type BankDetailsResponse struct {
	ID          *string `json:"id"`
	AccountType *string `json:"accountType"`
	AccountName *string `json:"accountName"`
	AccountNum  *string `json:"accountNum"`
	IFSCCode    *string `json:"ifscCode"`
	BankName    *string `json:"bankName"`
	BranchName  *string `json:"branchName"`
}

// ToBankDetailsResponse converts the bank record; a nil record yields the
// all-null shape.
func ToBankDetailsResponse(bank *domain.BankDetails) BankDetailsResponse {
	if bank == nil {
		return BankDetailsResponse{}
	}
	return BankDetailsResponse{
		ID:          &bank.ID,
		AccountType: &bank.AccountType,
		AccountName: &bank.AccountName,
		AccountNum:  &bank.AccountNum,
		IFSCCode:    &bank.IFSCCode,
		BankName:    &bank.BankName,
		BranchName:  &bank.BranchName,
	}
}

// PFResponse renders the statutory record with disabled-flag defaults when
// the employee has none.
type PFResponse struct {
	EmployeePFEnable  bool    `json:"employeePfEnable"`
	PFNum             *string `json:"pfNum"`
	EmployeerPFEnable bool    `json:"employeerPfEnable"`
	UANNum            *string `json:"uanNum"`
	ESIEnable         bool    `json:"esiEnable"`
	ESINum            *string `json:"esiNum"`
	ProfessionalTax   bool    `json:"professionalTax"`
	LabourWelfare     bool    `json:"labourWelfare"`
}

// ToPFResponse converts the statutory record; a nil record yields the
// everything-disabled shape.
func ToPFResponse(pf *domain.PFDetails) PFResponse {
	if pf == nil {
		return PFResponse{}
	}
	return PFResponse{
		EmployeePFEnable:  pf.EmployeePFEnable,
		PFNum:             pf.PFNum,
		EmployeerPFEnable: pf.EmployeerPFEnable,
		UANNum:            pf.UANNum,
		ESIEnable:         pf.ESIEnable,
		ESINum:            pf.ESINum,
		ProfessionalTax:   pf.ProfessionalTax,
		LabourWelfare:     pf.LabourWelfare,
	}
}

// CompleteEmployeeResponse is the full cross-collection view keyed by
// employee code. The credential password never leaves the service.
type CompleteEmployeeResponse struct {
	General      domain.GeneralInfo       `json:"general"`
	Professional *domain.ProfessionalInfo `json:"professional"`
	BankDetails  BankDetailsResponse      `json:"bankDetails"`
	PFDetails    PFResponse               `json:"pfDetails"`
	Loans        []*domain.Loan           `json:"loans"`
	PreviousJobs []*domain.PreviousJob    `json:"previousJobs"`
	Projects     []domain.Project         `json:"projects"`
}

// ToCompleteEmployeeResponse converts the aggregate, redacting the stored
// credential password.
func ToCompleteEmployeeResponse(emp *domain.CompleteEmployee) CompleteEmployeeResponse {
	general := emp.General
	if general.LoginDetails != nil {
		redacted := *general.LoginDetails
		redacted.Password = ""
		general.LoginDetails = &redacted
	}
	return CompleteEmployeeResponse{
		General:      general,
		Professional: emp.Professional,
		BankDetails:  ToBankDetailsResponse(emp.Bank),
		PFDetails:    ToPFResponse(emp.PF),
		Loans:        emp.Loans,
		PreviousJobs: emp.PreviousJobs,
		Projects:     emp.Projects,
	}
}
