package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"clinic-assignment/internal/models"
)

func TestLevenshtein(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"chen", "chen", 0},
		{"chen", "chan", 1},
		{"patel", "", 5},
		{"okafor", "okafro", 2},
	}
	for _, c := range cases {
		if got := Levenshtein(c.a, c.b); got != c.want {
			t.Errorf("Levenshtein(%q, %q) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestHandleActiveSearch_Exact(t *testing.T) {
	resetState(t)

	signals := map[string]string{"clinicianSearch": "chen"}
	signalsJSON, _ := json.Marshal(signals)
	query := url.Values{}
	query.Set("datastar", string(signalsJSON))

	req := httptest.NewRequest("GET", "/active_search?"+query.Encode(), nil)
	rr := httptest.NewRecorder()

	handleActiveSearch(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Wei Chen") {
		t.Errorf("Expected Wei Chen in results, got: %s", rr.Body.String())
	}
}

func TestHandleActiveSearch_Fuzzy(t *testing.T) {
	resetState(t)

	signals := map[string]string{"clinicianSearch": "patellle"}
	signalsJSON, _ := json.Marshal(signals)
	query := url.Values{}
	query.Set("datastar", string(signalsJSON))

	req := httptest.NewRequest("GET", "/active_search?"+query.Encode(), nil)
	rr := httptest.NewRecorder()

	handleActiveSearch(rr, req)

	if !strings.Contains(rr.Body.String(), "Asha Patel") {
		t.Errorf("Expected fuzzy match on Patel, got: %s", rr.Body.String())
	}
}

func TestHandleActiveSearch_NoResults(t *testing.T) {
	resetState(t)

	signals := map[string]string{"clinicianSearch": "zzzzzzzzzzzz"}
	signalsJSON, _ := json.Marshal(signals)
	query := url.Values{}
	query.Set("datastar", string(signalsJSON))

	req := httptest.NewRequest("GET", "/active_search?"+query.Encode(), nil)
	rr := httptest.NewRecorder()

	handleActiveSearch(rr, req)

	if !strings.Contains(rr.Body.String(), "No results found") {
		t.Errorf("Expected empty result message, got: %s", rr.Body.String())
	}
}

func TestWaitingListFragment_Ordering(t *testing.T) {
	resetState(t)

	queueMu.Lock()
	queueEntries = []*models.QueueEntry{
		{ID: "e2", PatientID: "pat-b", DoctorID: "doc-patel", SequenceNumber: 2, Urgency: models.UrgencyLow, Status: "waiting", CreatedAt: time.Now()},
		{ID: "e1", PatientID: "pat-a", DoctorID: "doc-chen", SequenceNumber: 1, Urgency: models.UrgencyEmergency, Status: "waiting", CreatedAt: time.Now()},
		{ID: "e3", PatientID: "pat-c", SequenceNumber: 3, Urgency: models.UrgencyLow, Status: "completed", CreatedAt: time.Now()},
	}
	queueMu.Unlock()

	fragment := waitingListFragment()

	first := strings.Index(fragment, "pat-a")
	second := strings.Index(fragment, "pat-b")
	if first == -1 || second == -1 || first > second {
		t.Errorf("Expected pat-a before pat-b, got: %s", fragment)
	}
	if strings.Contains(fragment, "pat-c") {
		t.Errorf("Completed entries must not appear on the board: %s", fragment)
	}
}

func TestWaitingListFragment_Empty(t *testing.T) {
	resetState(t)

	fragment := waitingListFragment()
	if !strings.Contains(fragment, "Queue is empty") {
		t.Errorf("Expected empty queue message, got: %s", fragment)
	}
}
