package domain

// LoanStatus is the loan lifecycle state. A loan starts PENDING and moves to
// APPROVED or DECLINED; there is no transition back.
type LoanStatus string

const (
	LoanPending  LoanStatus = "PENDING"
	LoanApproved LoanStatus = "APPROVED"
	LoanDeclined LoanStatus = "DECLINED"
)

// PaybackTerm is the repayment schedule attached to an approved loan.
// Amounts stay as strings on the wire and in the store; numeric validation
// happens at approval time.
type PaybackTerm struct {
	Installment string `firestore:"installment" json:"installment"`
	Date        string `firestore:"date" json:"date"`
	Remaining   string `firestore:"remaining" json:"remaining"`
}

// Loan is one document in the `loanDetails` collection. EmpName is a
// denormalized display name, not a reference. Activity is an append-only log
// of human-readable timestamped entries.
type Loan struct {
	ID           string      `firestore:"id" json:"id"`
	EmpName      string      `firestore:"empName" json:"empName"`
	ReqDate      string      `firestore:"reqDate" json:"reqDate"`
	Status       LoanStatus  `firestore:"status" json:"status"`
	AmountReq    string      `firestore:"amountReq" json:"amountReq"`
	AmountApp    string      `firestore:"amountApp" json:"amountApp"`
	Balance      string      `firestore:"balance" json:"balance"`
	PaybackTerm  PaybackTerm `firestore:"paybackTerm" json:"paybackTerm"`
	ApprovedBy   string      `firestore:"approvedBy" json:"approvedBy"`
	StaffNote    string      `firestore:"staffNote" json:"staffNote"`
	Note         string      `firestore:"note" json:"note"`
	Activity     []string    `firestore:"activity" json:"activity"`
	CancelReason string      `firestore:"cancelReason,omitempty" json:"cancelReason,omitempty"`
}

// LoanApproval carries the validated approval fields written in one update.
type LoanApproval struct {
	AmountApp   string
	Installment string
	Date        string
	StaffNote   string
}

// LoanPatch is a sparse loan edit; installment and date address the nested
// payback term.
type LoanPatch struct {
	AmountApp   *string
	StaffNote   *string
	Installment *string
	Date        *string
}

func (p LoanPatch) IsEmpty() bool {
	return p.AmountApp == nil && p.StaffNote == nil && p.Installment == nil && p.Date == nil
}

// LoanFilter narrows the loan listing: membership over statuses and an
// inclusive range over the payback date. Zero values mean no filtering.
type LoanFilter struct {
	Statuses  []LoanStatus
	StartDate string
	EndDate   string
}

// LoanSummary is the row shape of the loan listing, with empty-string
// defaults for unset fields.
type LoanSummary struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	AmountReq   string     `json:"amountReq"`
	Status      LoanStatus `json:"status"`
	AmountApp   string     `json:"amountApp"`
	Installment string     `json:"installment"`
	Balance     string     `json:"balance"`
}
