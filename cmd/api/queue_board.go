package main

import (
	"fmt"
	"html"
	"net/http"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/starfederation/datastar-go/datastar"

	"clinic-assignment/internal/models"
)

type ActiveSearchSignals struct {
	ClinicianSearch string `json:"clinicianSearch"`
}

// Levenshtein calculates the edit distance between two strings, used
// for fuzzy clinician lookup at the front desk.
func Levenshtein(s1, s2 string) int {
	r1, r2 := []rune(s1), []rune(s2)
	n, m := len(r1), len(r2)
	if n > m {
		r1, r2 = r2, r1
		n, m = m, n
	}

	currentRow := make([]int, n+1)
	for i := 0; i <= n; i++ {
		currentRow[i] = i
	}

	for i := 1; i <= m; i++ {
		previousRow := currentRow
		currentRow = make([]int, n+1)
		currentRow[0] = i
		for j := 1; j <= n; j++ {
			add, del, change := previousRow[j]+1, currentRow[j-1]+1, previousRow[j-1]
			if r1[j-1] != r2[i-1] {
				change++
			}
			currentRow[j] = min(add, min(del, change))
		}
	}
	return currentRow[n]
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func handleActiveSearch(w http.ResponseWriter, r *http.Request) {
	signals := &ActiveSearchSignals{}
	if err := datastar.ReadSignals(r, signals); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	query := strings.ToLower(strings.TrimSpace(signals.ClinicianSearch))
	sse := datastar.NewSSE(w, r)
	patchClinicianResults(sse, query)
}

func patchClinicianResults(sse *datastar.ServerSentEventGenerator, query string) {
	type ScoredClinician struct {
		ID         string
		FirstName  string
		LastName   string
		Department string
		Score      int
	}

	var results []ScoredClinician

	cliniciansMu.RLock()
	for _, c := range clinicians {
		if query == "" {
			results = append(results, ScoredClinician{
				ID: c.ID, FirstName: c.FirstName, LastName: c.LastName,
				Department: c.Department,
			})
			continue
		}

		fn := strings.ToLower(c.FirstName)
		ln := strings.ToLower(c.LastName)
		id := strings.ToLower(c.ID)

		score := 1000
		if strings.Contains(fn, query) || strings.Contains(ln, query) || strings.Contains(id, query) {
			score = 0
		} else {
			dist := min(Levenshtein(query, fn), min(Levenshtein(query, ln), Levenshtein(query, id)))
			if dist < 5 {
				score = dist
			}
		}

		if score < 1000 {
			results = append(results, ScoredClinician{
				ID: c.ID, FirstName: c.FirstName, LastName: c.LastName,
				Department: c.Department, Score: score,
			})
		}
	}
	cliniciansMu.RUnlock()

	slices.SortFunc(results, func(a, b ScoredClinician) int {
		return a.Score - b.Score
	})
	if len(results) > 15 {
		results = results[:15]
	}

	var sb strings.Builder
	sb.WriteString(`<div id="clinician-results" class="list">`)
	for _, res := range results {
		sb.WriteString(fmt.Sprintf(`
			<div class="row">
				<span>%s %s</span>
				<label>%s · %s</label>
			</div>`,
			html.EscapeString(res.FirstName), html.EscapeString(res.LastName),
			html.EscapeString(res.ID), html.EscapeString(res.Department)))
	}
	if len(results) == 0 {
		sb.WriteString(`<div class="padding">No results found</div>`)
	}
	sb.WriteString("</div>")

	sse.PatchElements(sb.String())
}

// handleQueueFeed streams the waiting list to the queue board screen,
// patching the fragment on a short interval until the client drops.
func handleQueueFeed(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	if err := sse.PatchElements(waitingListFragment()); err != nil {
		return
	}

	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-ticker.C:
			if err := sse.PatchElements(waitingListFragment()); err != nil {
				return
			}
		}
	}
}

func waitingListFragment() string {
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

	var sb strings.Builder
	sb.WriteString(`<div id="queue-board" class="list">`)
	for _, e := range waiting {
		doctor := e.DoctorID
		if doctor == "" {
			doctor = "unassigned"
		}
		sb.WriteString(fmt.Sprintf(`
			<div class="row urgency-%s">
				<span class="position">#%d</span>
				<span>%s</span>
				<label>%s · %s</label>
			</div>`,
			e.Urgency, e.SequenceNumber,
			html.EscapeString(e.PatientID), html.EscapeString(doctor), e.Urgency))
	}
	if len(waiting) == 0 {
		sb.WriteString(`<div class="padding">Queue is empty</div>`)
	}
	sb.WriteString("</div>")
	return sb.String()
}
