// File: services/workflow/draft.go
package workflow

import (
	"time"

	"hopehealth/models"
)

// DefaultReason fills the reason stage when the admin leaves it blank.
const DefaultReason = "Any Reason"

// PartyRef is the minimal identity a draft keeps for a chosen patient or
// doctor: enough to submit the booking and to label the selection.
type PartyRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Draft is one in-progress booking. Stages are filled strictly in order:
// patient, specialization, doctor, date, time, reason. The option slices
// capture what the backends offered at each stage so that later selections
// can be checked for membership without refetching.
type Draft struct {
	ID             string          `json:"id"`
	Patient        PartyRef        `json:"patient"`
	Specialization string          `json:"specialization"`
	DoctorOptions  []models.Doctor `json:"doctorOptions,omitempty"`
	Doctor         PartyRef        `json:"doctor"`
	AvailableDates []string        `json:"availableDates,omitempty"`
	SelectedDate   string          `json:"selectedDate"`
	AvailableSlots []string        `json:"availableSlots,omitempty"`
	SelectedTime   string          `json:"selectedTime"`
	Reason         string          `json:"reason"`
	CreatedBy      string          `json:"createdBy"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// clearFromSpecialization resets the specialization stage and everything
// after it. Changing an upstream choice invalidates all downstream ones.
func (d *Draft) clearFromSpecialization() {
	d.Specialization = ""
	d.clearFromDoctor()
}

func (d *Draft) clearFromDoctor() {
	d.DoctorOptions = nil
	d.Doctor = PartyRef{}
	d.clearFromDate()
}

func (d *Draft) clearFromDate() {
	d.AvailableDates = nil
	d.SelectedDate = ""
	d.clearFromTime()
}

func (d *Draft) clearFromTime() {
	d.AvailableSlots = nil
	d.SelectedTime = ""
}

// hasDoctorOption reports whether doctorID was among the doctors offered
// for the chosen specialization.
func (d *Draft) hasDoctorOption(doctorID string) (models.Doctor, bool) {
	for _, doc := range d.DoctorOptions {
		if doc.DoctorID == doctorID {
			return doc, true
		}
	}
	return models.Doctor{}, false
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

// missingFields lists the stages still empty, in stage order. A draft with
// no missing fields is ready to submit.
func (d *Draft) missingFields() []string {
	var missing []string
	if d.Patient.ID == "" || d.Patient.Name == "" {
		missing = append(missing, "patient")
	}
	if d.Specialization == "" {
		missing = append(missing, "specialization")
	}
	if d.Doctor.ID == "" || d.Doctor.Name == "" {
		missing = append(missing, "doctor")
	}
	if d.SelectedDate == "" {
		missing = append(missing, "date")
	}
	if d.SelectedTime == "" {
		missing = append(missing, "time")
	}
	if d.Reason == "" {
		missing = append(missing, "reason")
	}
	return missing
}
