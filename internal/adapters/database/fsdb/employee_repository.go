package fsdb

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/peoplenest/payroll-backend/internal/apperrors"
	"github.com/peoplenest/payroll-backend/internal/core/domain"
)

type employeeRepository struct {
	client *firestore.Client
}

// NewEmployeeRepository creates the Firestore-backed employee aggregate store.
func NewEmployeeRepository(client *firestore.Client) *employeeRepository {
	return &employeeRepository{client: client}
}

// CreateAggregate allocates the next code for the department prefix and
// writes the three aggregate documents transactionally. The per-prefix
// counter document lives in `counters` and holds the next unissued number;
// reading and bumping it inside the same transaction keeps codes unique
// under concurrent creation.
func (r *employeeRepository) CreateAggregate(ctx context.Context, prefix string, general domain.GeneralInfo, professional domain.ProfessionalInfo) (*domain.EmployeeIndex, *domain.GeneralInfo, error) {
	generalRef := r.client.Collection(generalCollection).NewDoc()
	professionalRef := r.client.Collection(professionalCollection).NewDoc()
	indexRef := r.client.Collection(employeeCollection).NewDoc()
	counterRef := r.client.Collection(countersCollection).Doc(prefix)

	index := domain.EmployeeIndex{
		GeneralID:      generalRef.ID,
		ProfessionalID: professionalRef.ID,
	}
	general.ID = generalRef.ID
	professional.ID = professionalRef.ID

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		next := int64(1)
		snap, err := tx.Get(counterRef)
		switch {
		case err == nil:
			v, err := snap.DataAt("next")
			if err != nil {
				return err
			}
			if n, ok := v.(int64); ok && n > 0 {
				next = n
			}
		case isNotFound(err):
			// first employee for this prefix
		default:
			return err
		}

		general.EmpCode = domain.FormatEmployeeCode(prefix, int(next))

		if err := tx.Set(counterRef, map[string]interface{}{"next": next + 1}); err != nil {
			return err
		}
		if err := tx.Create(generalRef, general); err != nil {
			return err
		}
		if err := tx.Create(professionalRef, professional); err != nil {
			return err
		}
		return tx.Create(indexRef, index)
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create employee aggregate: %w", err)
	}

	index.ID = indexRef.ID
	return &index, &general, nil
}

func (r *employeeRepository) FindIndexByID(ctx context.Context, id string) (*domain.EmployeeIndex, error) {
	snap, err := r.client.Collection(employeeCollection).Doc(id).Get(ctx)
	if err != nil {
		return nil, notFound(err, "employee", id)
	}
	var index domain.EmployeeIndex
	if err := snap.DataTo(&index); err != nil {
		return nil, err
	}
	index.ID = snap.Ref.ID
	return &index, nil
}

func (r *employeeRepository) FindIndexByGeneralID(ctx context.Context, generalID string) (*domain.EmployeeIndex, error) {
	snaps, err := r.client.Collection(employeeCollection).
		Where("generalId", "==", generalID).
		Limit(1).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	if len(snaps) == 0 {
		return nil, fmt.Errorf("employee for general %s: %w", generalID, apperrors.ErrNotFound)
	}
	var index domain.EmployeeIndex
	if err := snaps[0].DataTo(&index); err != nil {
		return nil, err
	}
	index.ID = snaps[0].Ref.ID
	return &index, nil
}

func (r *employeeRepository) FindGeneralByID(ctx context.Context, id string) (*domain.GeneralInfo, error) {
	snap, err := r.client.Collection(generalCollection).Doc(id).Get(ctx)
	if err != nil {
		return nil, notFound(err, "general record", id)
	}
	var general domain.GeneralInfo
	if err := snap.DataTo(&general); err != nil {
		return nil, err
	}
	general.ID = snap.Ref.ID
	return &general, nil
}

func (r *employeeRepository) FindGeneralByCode(ctx context.Context, empCode string) (*domain.GeneralInfo, error) {
	snaps, err := r.client.Collection(generalCollection).
		Where("empCode", "==", empCode).
		Limit(1).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	if len(snaps) == 0 {
		return nil, fmt.Errorf("employee code %s: %w", empCode, apperrors.ErrNotFound)
	}
	var general domain.GeneralInfo
	if err := snaps[0].DataTo(&general); err != nil {
		return nil, err
	}
	general.ID = snaps[0].Ref.ID
	return &general, nil
}

func (r *employeeRepository) FindProfessionalByID(ctx context.Context, id string) (*domain.ProfessionalInfo, error) {
	snap, err := r.client.Collection(professionalCollection).Doc(id).Get(ctx)
	if err != nil {
		return nil, notFound(err, "professional record", id)
	}
	var professional domain.ProfessionalInfo
	if err := snap.DataTo(&professional); err != nil {
		return nil, err
	}
	professional.ID = snap.Ref.ID
	return &professional, nil
}

func (r *employeeRepository) ListIndexPage(ctx context.Context, limit, page int) ([]domain.EmployeeIndex, error) {
	q := r.client.Collection(employeeCollection).
		Where("isDeleted", "==", false).
		OrderBy(firestore.DocumentID, firestore.Asc)
	snaps, err := paginatedDocs(ctx, q, limit, page)
	if err != nil {
		return nil, err
	}
	rows := make([]domain.EmployeeIndex, 0, len(snaps))
	for _, snap := range snaps {
		var index domain.EmployeeIndex
		if err := snap.DataTo(&index); err != nil {
			return nil, err
		}
		index.ID = snap.Ref.ID
		rows = append(rows, index)
	}
	return rows, nil
}

func (r *employeeRepository) UpdateGeneral(ctx context.Context, id string, patch domain.GeneralPatch) error {
	var ups []firestore.Update
	if patch.Title != nil {
		ups = append(ups, firestore.Update{Path: "name.title", Value: *patch.Title})
	}
	if patch.FirstName != nil {
		ups = append(ups, firestore.Update{Path: "name.first", Value: *patch.FirstName})
	}
	if patch.LastName != nil {
		ups = append(ups, firestore.Update{Path: "name.last", Value: *patch.LastName})
	}
	if patch.PrimaryEmail != nil {
		ups = append(ups, firestore.Update{Path: "primaryEmail", Value: *patch.PrimaryEmail})
	}
	if patch.Gender != nil {
		ups = append(ups, firestore.Update{Path: "gender", Value: *patch.Gender})
	}
	if patch.PhoneCode != nil {
		ups = append(ups, firestore.Update{Path: "phoneNum.code", Value: *patch.PhoneCode})
	}
	if patch.PhoneNum != nil {
		ups = append(ups, firestore.Update{Path: "phoneNum.num", Value: *patch.PhoneNum})
	}
	if patch.Status != nil {
		ups = append(ups, firestore.Update{Path: "status", Value: *patch.Status})
	}
	if len(ups) == 0 {
		return nil
	}
	_, err := r.client.Collection(generalCollection).Doc(id).Update(ctx, ups)
	return notFound(err, "general record", id)
}

func (r *employeeRepository) UpdateProfessional(ctx context.Context, id string, patch domain.ProfessionalPatch) error {
	paths := []struct {
		path  string
		value *string
	}{
		{"joiningDate", patch.JoiningDate},
		{"department", patch.Department},
		{"designation", patch.Designation},
		{"location", patch.Location},
		{"reportingManager", patch.ReportingManager},
		{"workWeek", patch.WorkWeek},
		{"holidayGroup", patch.HolidayGroup},
		{"ctcAnnual", patch.CTCAnnual},
		{"payslipComponent", patch.PayslipComponent},
		{"role", patch.Role},
	}
	var ups []firestore.Update
	for _, p := range paths {
		if p.value != nil {
			ups = append(ups, firestore.Update{Path: p.path, Value: *p.value})
		}
	}
	if len(ups) == 0 {
		return nil
	}
	_, err := r.client.Collection(professionalCollection).Doc(id).Update(ctx, ups)
	return notFound(err, "professional record", id)
}

func (r *employeeRepository) MergeLoginDetails(ctx context.Context, generalID string, details domain.LoginDetails) error {
	_, err := r.client.Collection(generalCollection).Doc(generalID).
		Set(ctx, map[string]interface{}{"loginDetails": details}, firestore.MergeAll)
	return notFound(err, "general record", generalID)
}

func (r *employeeRepository) UpdateLoginDetails(ctx context.Context, generalID string, patch domain.LoginPatch) error {
	var ups []firestore.Update
	if patch.Password != nil {
		ups = append(ups, firestore.Update{Path: "loginDetails.password", Value: *patch.Password})
	}
	if patch.LoginEnable != nil {
		ups = append(ups, firestore.Update{Path: "loginDetails.loginEnable", Value: *patch.LoginEnable})
	}
	if patch.AccLocked != nil {
		ups = append(ups, firestore.Update{Path: "loginDetails.accLocked", Value: *patch.AccLocked})
	}
	if len(ups) == 0 {
		return nil
	}
	_, err := r.client.Collection(generalCollection).Doc(generalID).Update(ctx, ups)
	return notFound(err, "general record", generalID)
}

func (r *employeeRepository) SetStatus(ctx context.Context, generalID string, status domain.Status) error {
	_, err := r.client.Collection(generalCollection).Doc(generalID).
		Update(ctx, []firestore.Update{{Path: "status", Value: status}})
	return notFound(err, "general record", generalID)
}

// SoftDeleteAggregate flips isDeleted on the index row and on every resource
// assignment carrying the employee code. Writes go out in atomic batches
// chunked under the per-batch operation ceiling; the index flip rides in the
// first chunk.
func (r *employeeRepository) SoftDeleteAggregate(ctx context.Context, indexID, empCode string) (int, error) {
	snaps, err := r.client.Collection(resourcesCollection).
		Where("empCode", "==", empCode).
		Documents(ctx).GetAll()
	if err != nil {
		return 0, err
	}

	flagDeleted := []firestore.Update{{Path: "isDeleted", Value: true}}
	refs := make([]*firestore.DocumentRef, 0, len(snaps)+1)
	refs = append(refs, r.client.Collection(employeeCollection).Doc(indexID))
	for _, snap := range snaps {
		refs = append(refs, snap.Ref)
	}

	for len(refs) > 0 {
		n := len(refs)
		if n > maxBatchOps {
			n = maxBatchOps
		}
		batch := r.client.Batch()
		for _, ref := range refs[:n] {
			batch.Update(ref, flagDeleted)
		}
		if _, err := batch.Commit(ctx); err != nil {
			return 0, notFound(err, "employee", indexID)
		}
		refs = refs[n:]
	}
	return len(snaps), nil
}

func (r *employeeRepository) CreateBankDetails(ctx context.Context, indexID string, bank domain.BankDetails) (string, error) {
	bankRef := r.client.Collection(bankDetailsCollection).NewDoc()
	bank.ID = bankRef.ID

	batch := r.client.Batch()
	batch.Set(bankRef, bank)
	batch.Update(r.client.Collection(employeeCollection).Doc(indexID),
		[]firestore.Update{{Path: "bankDetailId", Value: bankRef.ID}})
	if _, err := batch.Commit(ctx); err != nil {
		return "", notFound(err, "employee", indexID)
	}
	return bankRef.ID, nil
}

func (r *employeeRepository) UpdateBankDetails(ctx context.Context, bankID string, patch domain.BankPatch) error {
	paths := []struct {
		path  string
		value *string
	}{
		{"accountType", patch.AccountType},
		{"accountName", patch.AccountName},
		{"accountNum", patch.AccountNum},
		{"ifscCode", patch.IFSCCode},
		{"bankName", patch.BankName},
		{"branchName", patch.BranchName},
	}
	var ups []firestore.Update
	for _, p := range paths {
		if p.value != nil {
			ups = append(ups, firestore.Update{Path: p.path, Value: *p.value})
		}
	}
	if len(ups) == 0 {
		return nil
	}
	_, err := r.client.Collection(bankDetailsCollection).Doc(bankID).Update(ctx, ups)
	return notFound(err, "bank details", bankID)
}

func (r *employeeRepository) FindBankByID(ctx context.Context, id string) (*domain.BankDetails, error) {
	snap, err := r.client.Collection(bankDetailsCollection).Doc(id).Get(ctx)
	if err != nil {
		return nil, notFound(err, "bank details", id)
	}
	var bank domain.BankDetails
	if err := snap.DataTo(&bank); err != nil {
		return nil, err
	}
	bank.ID = snap.Ref.ID
	return &bank, nil
}

func (r *employeeRepository) FindPFByID(ctx context.Context, id string) (*domain.PFDetails, error) {
	snap, err := r.client.Collection(pfCollection).Doc(id).Get(ctx)
	if err != nil {
		return nil, notFound(err, "pf details", id)
	}
	var pf domain.PFDetails
	if err := snap.DataTo(&pf); err != nil {
		return nil, err
	}
	return &pf, nil
}

func (r *employeeRepository) CreatePreviousJob(ctx context.Context, indexID string, job domain.PreviousJob) (*domain.PreviousJob, error) {
	jobRef := r.client.Collection(previousJobsCollection).NewDoc()
	job.ID = jobRef.ID

	batch := r.client.Batch()
	batch.Set(jobRef, job)
	batch.Update(r.client.Collection(employeeCollection).Doc(indexID),
		[]firestore.Update{{Path: "previousJobId", Value: firestore.ArrayUnion(jobRef.ID)}})
	if _, err := batch.Commit(ctx); err != nil {
		return nil, notFound(err, "employee", indexID)
	}
	return &job, nil
}

func (r *employeeRepository) UpdatePreviousJob(ctx context.Context, jobID string, patch domain.PreviousJobPatch) error {
	paths := []struct {
		path  string
		value *string
	}{
		{"companyName", patch.CompanyName},
		{"designation", patch.Designation},
		{"fromDate", patch.FromDate},
		{"toDate", patch.ToDate},
		{"location", patch.Location},
	}
	var ups []firestore.Update
	for _, p := range paths {
		if p.value != nil {
			ups = append(ups, firestore.Update{Path: p.path, Value: *p.value})
		}
	}
	if len(ups) == 0 {
		return nil
	}
	_, err := r.client.Collection(previousJobsCollection).Doc(jobID).Update(ctx, ups)
	return notFound(err, "previous job", jobID)
}

// FindPreviousJobsByIDs batch-reads jobs preserving list order; a missing
// document leaves a nil hole so the caller can see which reference dangled.
func (r *employeeRepository) FindPreviousJobsByIDs(ctx context.Context, ids []string) ([]*domain.PreviousJob, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	refs := make([]*firestore.DocumentRef, len(ids))
	for i, id := range ids {
		refs[i] = r.client.Collection(previousJobsCollection).Doc(id)
	}
	snaps, err := r.client.GetAll(ctx, refs)
	if err != nil {
		return nil, err
	}
	jobs := make([]*domain.PreviousJob, len(snaps))
	for i, snap := range snaps {
		if !snap.Exists() {
			continue
		}
		var job domain.PreviousJob
		if err := snap.DataTo(&job); err != nil {
			return nil, err
		}
		job.ID = snap.Ref.ID
		jobs[i] = &job
	}
	return jobs, nil
}

// FindProjectsByIDs batch-reads resource assignments, dropping missing and
// soft-deleted ones.
func (r *employeeRepository) FindProjectsByIDs(ctx context.Context, ids []string) ([]domain.Project, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	refs := make([]*firestore.DocumentRef, len(ids))
	for i, id := range ids {
		refs[i] = r.client.Collection(resourcesCollection).Doc(id)
	}
	snaps, err := r.client.GetAll(ctx, refs)
	if err != nil {
		return nil, err
	}
	projects := make([]domain.Project, 0, len(snaps))
	for _, snap := range snaps {
		if !snap.Exists() {
			continue
		}
		var project domain.Project
		if err := snap.DataTo(&project); err != nil {
			return nil, err
		}
		if project.IsDeleted {
			continue
		}
		project.ID = snap.Ref.ID
		projects = append(projects, project)
	}
	return projects, nil
}
