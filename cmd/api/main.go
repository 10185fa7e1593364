package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"clinic-assignment/internal/assignment"
	"clinic-assignment/internal/middleware"
	"clinic-assignment/internal/models"
	"clinic-assignment/internal/queue"
	"clinic-assignment/internal/triage"
)

var (
	// In-memory clinic state. The production deployment (cmd/engine)
	// uses the Postgres store instead; this binary is the
	// self-contained front desk UI.
	cliniciansMu sync.RWMutex
	clinicians   = []*models.Clinician{
		{ID: "doc-chen", FirstName: "Wei", LastName: "Chen", Department: "cardiology", Specialties: []string{"internal-medicine"}, Status: "active"},
		{ID: "doc-patel", FirstName: "Asha", LastName: "Patel", Department: "internal-medicine", Status: "active"},
		{ID: "doc-okafor", FirstName: "Ngozi", LastName: "Okafor", Department: "pulmonology", Specialties: []string{"emergency"}, Status: "active"},
		{ID: "doc-silva", FirstName: "Marco", LastName: "Silva", Department: "orthopedics", Status: "active"},
		{ID: "doc-weiss", FirstName: "Hanna", LastName: "Weiss", Department: "dermatology", Status: "inactive"},
	}

	queueMu      sync.RWMutex
	queueEntries []*models.QueueEntry

	appointmentsMu sync.RWMutex
	appointments   = []*models.Appointment{
		{ID: uuid.NewString(), PatientID: "pat-100", DoctorID: "doc-patel", AppointmentDate: time.Now(), Status: "scheduled"},
		{ID: uuid.NewString(), PatientID: "pat-101", DoctorID: "doc-patel", AppointmentDate: time.Now(), Status: "scheduled"},
	}

	configMu sync.RWMutex
	refData  = &models.ReferenceData{
		Departments: []models.Department{
			{Code: "cardiology", Name: "Cardiology"},
			{Code: "pulmonology", Name: "Pulmonology"},
			{Code: "neurology", Name: "Neurology"},
			{Code: "gastroenterology", Name: "Gastroenterology"},
			{Code: "orthopedics", Name: "Orthopedics"},
			{Code: "dermatology", Name: "Dermatology"},
			{Code: "ent", Name: "Ear, Nose & Throat"},
			{Code: "internal-medicine", Name: "Internal Medicine"},
			{Code: "emergency", Name: "Emergency"},
		},
	}

	sequencer = queue.NewSequencer()
	engine    *assignment.Engine
)

// InMemoryStore implements assignment.DataStore and
// assignment.Directory over the globals above.
type InMemoryStore struct{}

func (s *InMemoryStore) LookupBySpecialties(ctx context.Context, specialties []string) ([]*models.Clinician, error) {
	cliniciansMu.RLock()
	defer cliniciansMu.RUnlock()

	var result []*models.Clinician
	for _, c := range clinicians {
		if !c.IsActive() {
			continue
		}
		if c.Department == triage.DefaultSpecialty || hasOverlap(c, specialties) {
			result = append(result, c)
		}
	}
	return result, nil
}

func hasOverlap(c *models.Clinician, specialties []string) bool {
	for _, tag := range specialties {
		if c.HasSpecialty(tag) {
			return true
		}
	}
	return false
}

func (s *InMemoryStore) CountActiveQueueEntries(ctx context.Context, doctorID string) (int, error) {
	queueMu.RLock()
	defer queueMu.RUnlock()
	count := 0
	for _, e := range queueEntries {
		if e.DoctorID == doctorID && e.Status == "waiting" {
			count++
		}
	}
	return count, nil
}

func (s *InMemoryStore) CountSameDayAppointments(ctx context.Context, doctorID string, day time.Time) (int, error) {
	appointmentsMu.RLock()
	defer appointmentsMu.RUnlock()
	count := 0
	for _, a := range appointments {
		if a.DoctorID == doctorID && a.Status == "scheduled" && sameDay(a.AppointmentDate, day) {
			count++
		}
	}
	return count, nil
}

func sameDay(a, b time.Time) bool {
	return a.Format(queue.DayFormat) == b.Format(queue.DayFormat)
}

func (s *InMemoryStore) SaveQueueEntry(ctx context.Context, entry *models.QueueEntry) (string, error) {
	queueMu.Lock()
	defer queueMu.Unlock()
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	queueEntries = append(queueEntries, entry)
	return entry.ID, nil
}

// Page data structs.
type DashboardData struct {
	WaitingCount     int
	ActiveClinicians int
	LastPosition     int
	RecentEntries    []*models.QueueEntry
}

type QueueData struct {
	Entries []*models.QueueEntry
}

type CliniciansData struct {
	Clinicians  []*models.Clinician
	Departments []models.Department
}

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	store := &InMemoryStore{}
	engine = assignment.NewEngine(store, store, sequencer)

	http.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir("ui/static"))))
	http.HandleFunc("/", middleware.CSRF(handleDashboard))
	http.HandleFunc("/api/checkin", middleware.CSRF(handleCheckin))
	http.HandleFunc("/api/classify", handleClassify)

	http.HandleFunc("/queue", middleware.CSRF(handleQueue))
	http.HandleFunc("/queue/feed", handleQueueFeed)

	http.HandleFunc("/clinicians", middleware.CSRF(handleClinicians))
	http.HandleFunc("/api/clinicians", middleware.CSRF(handleAPIClinicians))
	http.HandleFunc("/api/clinicians/edit", middleware.CSRF(handleEditClinician))
	http.HandleFunc("/api/clinicians/delete", middleware.CSRF(handleDeleteClinician))

	http.HandleFunc("/api/departments", middleware.CSRF(handleAPIDepartments))
	http.HandleFunc("/api/departments/delete", middleware.CSRF(handleDeleteDepartment))

	http.HandleFunc("/active_search", handleActiveSearch)

	log.Printf("Check-in server started on :%s", port)
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func resolveTemplatePath(path string) string {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		// Tests run from cmd/api; go up two levels.
		p2 := "../../" + path
		if _, err := os.Stat(p2); err == nil {
			return p2
		}
	}
	return path
}

func render(w http.ResponseWriter, r *http.Request, data interface{}, files ...string) {
	allFiles := []string{resolveTemplatePath("ui/templates/layout.html")}
	for _, f := range files {
		allFiles = append(allFiles, resolveTemplatePath(f))
	}

	tmpl, err := template.ParseFiles(allFiles...)
	if err != nil {
		http.Error(w, "Template Parse Error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	token, _ := r.Context().Value(middleware.CSRFTokenKey).(string)
	wrapper := struct {
		Data      interface{}
		CSRFToken string
	}{
		Data:      data,
		CSRFToken: token,
	}

	if err := tmpl.ExecuteTemplate(w, "layout", wrapper); err != nil {
		http.Error(w, "Template Execute Error: "+err.Error(), http.StatusInternalServerError)
	}
}

func handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	queueMu.RLock()
	waiting := 0
	for _, e := range queueEntries {
		if e.Status == "waiting" {
			waiting++
		}
	}
	limit := 20
	l := limit
	if l > len(queueEntries) {
		l = len(queueEntries)
	}
	recent := make([]*models.QueueEntry, l)
	copy(recent, queueEntries[len(queueEntries)-l:])
	for i, j := 0, len(recent)-1; i < j; i, j = i+1, j-1 {
		recent[i], recent[j] = recent[j], recent[i]
	}
	queueMu.RUnlock()

	cliniciansMu.RLock()
	active := 0
	for _, c := range clinicians {
		if c.IsActive() {
			active++
		}
	}
	cliniciansMu.RUnlock()

	data := DashboardData{
		WaitingCount:     waiting,
		ActiveClinicians: active,
		LastPosition:     sequencer.Current(time.Now()),
		RecentEntries:    recent,
	}
	render(w, r, data, "ui/templates/dashboard.html")
}

// handleCheckin runs the full assignment for a walk-in patient and
// persists the queue entry on success. Assignment failure never blocks
// check-in: the entry is queued unassigned for manual triage.
func handleCheckin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	patientID := r.FormValue("patient_id")
	symptoms := r.FormValue("symptoms")
	if patientID == "" {
		http.Error(w, "patient_id is required", http.StatusBadRequest)
		return
	}

	store := &InMemoryStore{}
	record, err := engine.AssignDoctor(r.Context(), patientID, symptoms)
	if err != nil {
		log.Printf("assignment failed for %s: %v", patientID, err)
		analysis := engine.Classify(symptoms)
		entry := &models.QueueEntry{
			PatientID:   patientID,
			Urgency:     analysis.Urgency,
			SymptomText: symptoms,
			Status:      "waiting",
			CreatedAt:   time.Now(),
		}
		if _, saveErr := store.SaveQueueEntry(r.Context(), entry); saveErr != nil {
			http.Error(w, "Check-in failed", http.StatusInternalServerError)
			return
		}
		if errors.Is(err, assignment.ErrNoAvailableClinician) {
			fmt.Fprintf(w, "Checked in for manual triage: no clinician is currently available")
			return
		}
		fmt.Fprintf(w, "Checked in for manual triage: assignment unavailable")
		return
	}

	entry := &models.QueueEntry{
		PatientID:      record.PatientID,
		DoctorID:       record.DoctorID,
		SequenceNumber: record.Slot.DaySequenceNumber,
		Urgency:        record.Analysis.Urgency,
		SymptomText:    symptoms,
		Status:         "waiting",
		CreatedAt:      record.CreatedAt,
	}
	if _, err := store.SaveQueueEntry(r.Context(), entry); err != nil {
		http.Error(w, "Check-in failed", http.StatusInternalServerError)
		return
	}

	fmt.Fprintf(w, "Assigned to %s, queue position %d, estimated wait %d minutes",
		record.DoctorID, record.Slot.DaySequenceNumber, record.EstimatedWaitMinutes)
}

// handleClassify previews the symptom analysis without queueing.
func handleClassify(w http.ResponseWriter, r *http.Request) {
	symptoms := r.URL.Query().Get("symptoms")
	analysis := engine.Classify(symptoms)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(analysis)
}

func handleQueue(w http.ResponseWriter, r *http.Request) {
	queueMu.RLock()
	var waiting []*models.QueueEntry
	for _, e := range queueEntries {
		if e.Status == "waiting" {
			waiting = append(waiting, e)
		}
	}
	queueMu.RUnlock()

	sort.Slice(waiting, func(i, j int) bool {
		return waiting[i].SequenceNumber < waiting[j].SequenceNumber
	})

	render(w, r, QueueData{Entries: waiting}, "ui/templates/queue.html")
}

func handleClinicians(w http.ResponseWriter, r *http.Request) {
	cliniciansMu.RLock()
	configMu.RLock()
	data := CliniciansData{
		Clinicians:  clinicians,
		Departments: refData.Departments,
	}
	configMu.RUnlock()
	cliniciansMu.RUnlock()

	render(w, r, data, "ui/templates/clinicians.html")
}

func handleAPIClinicians(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	id := r.FormValue("id")
	if id == "" {
		id = "doc-" + strings.ToLower(r.FormValue("last_name"))
	}

	cliniciansMu.Lock()
	clinicians = append(clinicians, &models.Clinician{
		ID:          id,
		FirstName:   r.FormValue("first_name"),
		LastName:    r.FormValue("last_name"),
		Department:  r.FormValue("department"),
		Specialties: r.Form["specialties"],
		Status:      "active",
		CreatedAt:   time.Now(),
	})
	cliniciansMu.Unlock()

	http.Redirect(w, r, "/clinicians", http.StatusSeeOther)
}

func handleEditClinician(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	id := r.FormValue("id")

	cliniciansMu.Lock()
	for _, c := range clinicians {
		if c.ID == id {
			if v := r.FormValue("first_name"); v != "" {
				c.FirstName = v
			}
			if v := r.FormValue("last_name"); v != "" {
				c.LastName = v
			}
			if v := r.FormValue("department"); v != "" {
				c.Department = v
			}
			if v := r.FormValue("status"); v != "" {
				c.Status = v
			}
			if _, ok := r.Form["specialties"]; ok {
				c.Specialties = r.Form["specialties"]
			}
			c.UpdatedAt = time.Now()
			break
		}
	}
	cliniciansMu.Unlock()

	http.Redirect(w, r, "/clinicians", http.StatusSeeOther)
}

func handleDeleteClinician(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	id := r.FormValue("id")

	cliniciansMu.Lock()
	var kept []*models.Clinician
	for _, c := range clinicians {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	clinicians = kept
	cliniciansMu.Unlock()

	http.Redirect(w, r, "/clinicians", http.StatusSeeOther)
}

func handleAPIDepartments(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	code := r.FormValue("code")
	name := r.FormValue("name")

	configMu.Lock()
	refData.Departments = append(refData.Departments, models.Department{Code: code, Name: name})
	configMu.Unlock()

	http.Redirect(w, r, "/clinicians", http.StatusSeeOther)
}

func handleDeleteDepartment(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	code := r.FormValue("code")

	configMu.Lock()
	var kept []models.Department
	for _, d := range refData.Departments {
		if d.Code != code {
			kept = append(kept, d)
		}
	}
	refData.Departments = kept
	configMu.Unlock()

	http.Redirect(w, r, "/clinicians", http.StatusSeeOther)
}
