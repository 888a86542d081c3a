package repository

import (
	"sync"

	"github.com/ptit-dev/qldsv-api/internal/models"
)

// Dataset is the seeded in-memory state behind every domain repository
// method. It is rebuilt from fixtures on startup; nothing in it survives a
// restart, matching the mock-data semantics of the application it serves.
type Dataset struct {
	mu sync.RWMutex

	accounts      []models.Account
	departments   []models.Department
	adminClasses  []models.AdministrativeClass
	subjects      []models.Subject
	creditClasses []models.CreditClass
	enrollments   []models.Enrollment
	grades        []models.Grade
	notifications []models.Notification
}

// NewDataset returns a dataset populated with the demo fixtures.
func NewDataset() *Dataset {
	d := &Dataset{}
	d.seed()
	return d
}

func floatPtr(v float64) *float64 { return &v }
