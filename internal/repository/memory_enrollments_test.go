package repository

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ptit-dev/qldsv-api/internal/models"
)

func newEnrollmentDataset(maxStudents, currentStudents int) *Dataset {
	return &Dataset{
		creditClasses: []models.CreditClass{
			{ID: "cc1", Code: "IT3020.001", Name: "Lập trình hướng đối tượng", MaxStudents: maxStudents, CurrentStudents: currentStudents},
		},
	}
}

func TestCreateEnrollmentTakesSeat(t *testing.T) {
	d := newEnrollmentDataset(50, 45)

	require.NoError(t, d.CreateEnrollment(models.Enrollment{ID: "e1", StudentID: "s1", CreditClassID: "cc1"}))

	class, err := d.FindCreditClassByID("cc1")
	require.NoError(t, err)
	assert.Equal(t, 46, class.CurrentStudents)
	assert.Len(t, d.ListEnrollments(models.EnrollmentFilter{}), 1)
}

func TestCreateEnrollmentDuplicatePair(t *testing.T) {
	d := newEnrollmentDataset(50, 45)

	require.NoError(t, d.CreateEnrollment(models.Enrollment{ID: "e1", StudentID: "s1", CreditClassID: "cc1"}))
	err := d.CreateEnrollment(models.Enrollment{ID: "e2", StudentID: "s1", CreditClassID: "cc1"})
	assert.ErrorIs(t, err, ErrEnrollmentExists)
}

func TestCreateEnrollmentConcurrentSamePair(t *testing.T) {
	d := newEnrollmentDataset(50, 0)

	const attempts = 16
	errs := make([]error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = d.CreateEnrollment(models.Enrollment{ID: fmt.Sprintf("e%d", i), StudentID: "s1", CreditClassID: "cc1"})
		}(i)
	}
	wg.Wait()

	accepted := 0
	for _, err := range errs {
		if err == nil {
			accepted++
		} else {
			assert.ErrorIs(t, err, ErrEnrollmentExists)
		}
	}
	assert.Equal(t, 1, accepted, "the pair rule must hold under concurrency")
	assert.Len(t, d.ListEnrollments(models.EnrollmentFilter{}), 1)
}

func TestCreateEnrollmentConcurrentCapacity(t *testing.T) {
	d := newEnrollmentDataset(2, 0)

	const attempts = 8
	errs := make([]error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = d.CreateEnrollment(models.Enrollment{ID: fmt.Sprintf("e%d", i), StudentID: fmt.Sprintf("s%d", i), CreditClassID: "cc1"})
		}(i)
	}
	wg.Wait()

	accepted := 0
	for _, err := range errs {
		if err == nil {
			accepted++
		} else {
			assert.ErrorIs(t, err, ErrClassFull)
		}
	}
	assert.Equal(t, 2, accepted, "no seats may be oversold under concurrency")

	class, err := d.FindCreditClassByID("cc1")
	require.NoError(t, err)
	assert.Equal(t, 2, class.CurrentStudents)
}

func TestDeleteEnrollmentReleasesSeat(t *testing.T) {
	d := newEnrollmentDataset(50, 0)
	require.NoError(t, d.CreateEnrollment(models.Enrollment{ID: "e1", StudentID: "s1", CreditClassID: "cc1"}))

	removed, err := d.DeleteEnrollment("e1")
	require.NoError(t, err)
	assert.Equal(t, "cc1", removed.CreditClassID)

	class, err := d.FindCreditClassByID("cc1")
	require.NoError(t, err)
	assert.Equal(t, 0, class.CurrentStudents)
	assert.Empty(t, d.ListEnrollments(models.EnrollmentFilter{}))
}

func TestCreateEnrollmentUnknownClass(t *testing.T) {
	d := newEnrollmentDataset(50, 0)

	err := d.CreateEnrollment(models.Enrollment{ID: "e1", StudentID: "s1", CreditClassID: "missing"})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrEnrollmentExists)
	assert.NotErrorIs(t, err, ErrClassFull)
}
