package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"chaicraft_back_end/internal/models"
	"chaicraft_back_end/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
)

func (a *API) GetJobs(c *gin.Context) {
	jobs, err := a.Store.GetJobs()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to load job openings"})
		return
	}
	c.JSON(http.StatusOK, jobs)
}

type jobInput struct {
	Role        string `json:"role" binding:"required"`
	Description string `json:"description" binding:"required"`
	Location    string `json:"location" binding:"required"`
	Type        string `json:"type" binding:"required"`
	Salary      string `json:"salary"`
}

func (a *API) CreateJob(c *gin.Context) {
	var input jobInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job payload"})
		return
	}

	job := models.Job{
		ID:          gocql.TimeUUID(),
		Role:        input.Role,
		Description: input.Description,
		Location:    input.Location,
		Type:        input.Type,
		Salary:      input.Salary,
		Status:      models.JobOpen,
		CreatedAt:   time.Now(),
	}
	if err := a.Store.CreateJob(&job); err != nil {
		log.Println("❌ Failed to create job:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to create job opening"})
		return
	}

	log.Println("✅ Job opening created:", job.Role)
	c.JSON(http.StatusCreated, job)
}

type jobStatusInput struct {
	Status models.JobStatus `json:"status" binding:"required"`
}

func (a *API) UpdateJobStatus(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var input jobStatusInput
	if err := c.ShouldBindJSON(&input); err != nil || !input.Status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status must be open or closed"})
		return
	}

	job, err := a.Store.GetJob(id)
	if err != nil {
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to load job"})
		return
	}

	if err := a.Store.UpdateJobStatus(id, input.Status); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to update job"})
		return
	}
	job.Status = input.Status
	c.JSON(http.StatusOK, job)
}

func (a *API) DeleteJob(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if _, err := a.Store.GetJob(id); err != nil {
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to load job"})
		return
	}

	if err := a.Store.DeleteJob(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to delete job"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job deleted"})
}

type applicationInput struct {
	JobID   gocql.UUID        `json:"jobId" binding:"required"`
	Name    string            `json:"name" binding:"required"`
	Email   string            `json:"email" binding:"required,email"`
	Phone   string            `json:"phone"`
	Answers map[string]string `json:"answers"`
}

// CreateJobApplication accepts guest applicants too; when a token is present
// the application is linked to the account so it shows in their history.
func (a *API) CreateJobApplication(c *gin.Context) {
	var input applicationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application payload"})
		return
	}

	job, err := a.Store.GetJob(input.JobID)
	if err != nil {
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to load job"})
		return
	}
	if job.Status != models.JobOpen {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "This position is no longer accepting applications"})
		return
	}

	app := models.JobApplication{
		ID:        gocql.TimeUUID(),
		JobID:     input.JobID,
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Answers:   input.Answers,
		Status:    models.ApplicationPending,
		CreatedAt: time.Now(),
	}
	if userID, ok := currentUserID(c); ok {
		app.UserID = &userID
	}

	if err := a.Store.CreateJobApplication(&app); err != nil {
		log.Println("❌ Failed to create job application:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to submit application"})
		return
	}

	log.Printf("✅ Application received for %s from %s", job.Role, app.Email)
	c.JSON(http.StatusCreated, app)
}

func (a *API) GetJobApplications(c *gin.Context) {
	apps, err := a.Store.GetJobApplications(nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to load applications"})
		return
	}
	c.JSON(http.StatusOK, apps)
}

func (a *API) GetMyApplications(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	apps, err := a.Store.GetJobApplications(&userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to load applications"})
		return
	}
	c.JSON(http.StatusOK, apps)
}

type applicationStatusInput struct {
	Status models.ApplicationStatus `json:"status" binding:"required"`
}

func (a *API) UpdateJobApplicationStatus(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var input applicationStatusInput
	if err := c.ShouldBindJSON(&input); err != nil || !input.Status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown application status"})
		return
	}

	app, err := a.Store.GetJobApplication(id)
	if err != nil {
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to load application"})
		return
	}

	if !app.Status.CanTransitionTo(input.Status) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": fmt.Sprintf("Cannot move application from %s to %s", app.Status, input.Status),
		})
		return
	}

	if err := a.Store.UpdateJobApplicationStatus(id, input.Status); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to update application"})
		return
	}
	app.Status = input.Status

	jobRole := ""
	if job, err := a.Store.GetJob(app.JobID); err == nil {
		jobRole = job.Role
	}
	a.Notifier.ApplicationStatusChanged(*app, jobRole)

	c.JSON(http.StatusOK, app)
}

// WithdrawJobApplication lets an applicant pull their own application back,
// but only while it is still pending review.
func (a *API) WithdrawJobApplication(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	app, err := a.Store.GetJobApplication(id)
	if err != nil {
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to load application"})
		return
	}
	if app.UserID == nil || *app.UserID != userID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		return
	}
	if !app.Status.Withdrawable() {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Only pending applications can be withdrawn"})
		return
	}

	if err := a.Store.DeleteJobApplication(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to withdraw application"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Application withdrawn"})
}
