package store

import (
	"sort"
	"time"

	"chaicraft_back_end/internal/models"

	"github.com/gocql/gocql"
)

func (s *Store) CreateJob(j *models.Job) error {
	session, err := s.db.UsersSession()
	if err != nil {
		return err
	}

	if j.ID == (gocql.UUID{}) {
		j.ID = gocql.TimeUUID()
	}
	if j.Status == "" {
		j.Status = models.JobOpen
	}
	j.CreatedAt = time.Now()

	return session.Query(`INSERT INTO ks_users.jobs (job_id, role, description, location, type, salary, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		j.ID, j.Role, j.Description, j.Location, j.Type, j.Salary, j.Status, j.CreatedAt).Exec()
}

func (s *Store) GetJob(id gocql.UUID) (*models.Job, error) {
	session, err := s.db.UsersSession()
	if err != nil {
		return nil, err
	}

	var j models.Job
	if err := session.Query(`SELECT job_id, role, description, location, type, salary, status, created_at
		FROM ks_users.jobs WHERE job_id = ?`, id).Scan(
		&j.ID, &j.Role, &j.Description, &j.Location, &j.Type, &j.Salary, &j.Status, &j.CreatedAt); err != nil {
		return nil, notFound(err)
	}
	return &j, nil
}

func (s *Store) GetJobs() ([]models.Job, error) {
	session, err := s.db.UsersSession()
	if err != nil {
		return nil, err
	}

	iter := session.Query(`SELECT job_id, role, description, location, type, salary, status, created_at FROM ks_users.jobs`).Iter()

	var jobs []models.Job
	var j models.Job
	for iter.Scan(&j.ID, &j.Role, &j.Description, &j.Location, &j.Type, &j.Salary, &j.Status, &j.CreatedAt) {
		jobs = append(jobs, j)
		j = models.Job{}
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}

	sort.Slice(jobs, func(i, k int) bool { return jobs[i].CreatedAt.After(jobs[k].CreatedAt) })
	return jobs, nil
}

func (s *Store) UpdateJobStatus(id gocql.UUID, status models.JobStatus) error {
	session, err := s.db.UsersSession()
	if err != nil {
		return err
	}
	return session.Query(`UPDATE ks_users.jobs SET status = ? WHERE job_id = ?`, status, id).Exec()
}

func (s *Store) DeleteJob(id gocql.UUID) error {
	session, err := s.db.UsersSession()
	if err != nil {
		return err
	}
	return session.Query(`DELETE FROM ks_users.jobs WHERE job_id = ?`, id).Exec()
}

// =============================================
// JOB APPLICATIONS
// =============================================

func (s *Store) CreateJobApplication(a *models.JobApplication) error {
	session, err := s.db.UsersSession()
	if err != nil {
		return err
	}

	if a.ID == (gocql.UUID{}) {
		a.ID = gocql.TimeUUID()
	}
	if a.Status == "" {
		a.Status = models.ApplicationPending
	}
	a.CreatedAt = time.Now()

	return session.Query(`INSERT INTO ks_users.job_applications (application_id, job_id, user_id, name, email, phone, answers, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.JobID, a.UserID, a.Name, a.Email, a.Phone, a.Answers, a.Status, a.CreatedAt).Exec()
}

func (s *Store) GetJobApplication(id gocql.UUID) (*models.JobApplication, error) {
	session, err := s.db.UsersSession()
	if err != nil {
		return nil, err
	}

	var a models.JobApplication
	if err := session.Query(`SELECT application_id, job_id, user_id, name, email, phone, answers, status, created_at
		FROM ks_users.job_applications WHERE application_id = ?`, id).Scan(
		&a.ID, &a.JobID, &a.UserID, &a.Name, &a.Email, &a.Phone, &a.Answers, &a.Status, &a.CreatedAt); err != nil {
		return nil, notFound(err)
	}
	return &a, nil
}

// GetJobApplications lists applications, optionally restricted to one user.
// Full scan with an in-memory filter; application volume is tiny.
func (s *Store) GetJobApplications(userID *gocql.UUID) ([]models.JobApplication, error) {
	session, err := s.db.UsersSession()
	if err != nil {
		return nil, err
	}

	iter := session.Query(`SELECT application_id, job_id, user_id, name, email, phone, answers, status, created_at
		FROM ks_users.job_applications`).Iter()

	var apps []models.JobApplication
	var a models.JobApplication
	for iter.Scan(&a.ID, &a.JobID, &a.UserID, &a.Name, &a.Email, &a.Phone, &a.Answers, &a.Status, &a.CreatedAt) {
		if userID == nil || (a.UserID != nil && *a.UserID == *userID) {
			apps = append(apps, a)
		}
		a = models.JobApplication{}
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}

	sort.Slice(apps, func(i, k int) bool { return apps[i].CreatedAt.After(apps[k].CreatedAt) })
	return apps, nil
}

func (s *Store) UpdateJobApplicationStatus(id gocql.UUID, status models.ApplicationStatus) error {
	session, err := s.db.UsersSession()
	if err != nil {
		return err
	}
	return session.Query(`UPDATE ks_users.job_applications SET status = ? WHERE application_id = ?`, status, id).Exec()
}

func (s *Store) DeleteJobApplication(id gocql.UUID) error {
	session, err := s.db.UsersSession()
	if err != nil {
		return err
	}
	return session.Query(`DELETE FROM ks_users.job_applications WHERE application_id = ?`, id).Exec()
}
