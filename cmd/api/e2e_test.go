package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/chromedp/chromedp"

	"clinic-assignment/internal/middleware"
)

func TestE2E(t *testing.T) {
	resetState(t)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/":
			middleware.CSRF(handleDashboard)(w, r)
		case "/api/checkin":
			middleware.CSRF(handleCheckin)(w, r)
		case "/queue":
			middleware.CSRF(handleQueue)(w, r)
		case "/queue/feed":
			handleQueueFeed(w, r)
		case "/clinicians":
			middleware.CSRF(handleClinicians)(w, r)
		case "/active_search":
			handleActiveSearch(w, r)
		default:
			if strings.HasPrefix(r.URL.Path, "/static/") {
				http.StripPrefix("/static/", http.FileServer(http.Dir(resolveTemplatePath("ui/static")))).ServeHTTP(w, r)
				return
			}
			http.NotFound(w, r)
		}
	}))
	defer ts.Close()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)

	allocCtx, cancel := chromedp.NewExecAllocator(context.Background(), opts...)
	defer cancel()

	ctx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	ctx, cancel = context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	t.Run("CheckinFlow", func(t *testing.T) {
		var result string

		err := chromedp.Run(ctx,
			chromedp.Navigate(ts.URL+"/"),
			chromedp.WaitVisible(`#dashboard-title`, chromedp.ByQuery),
			chromedp.SendKeys(`#patient_id`, "pat-e2e", chromedp.ByQuery),
			chromedp.SendKeys(`#symptoms`, "chest pain", chromedp.ByQuery),
			chromedp.Click(`#checkin-submit`, chromedp.ByQuery),
			chromedp.Text(`body`, &result, chromedp.ByQuery),
		)
		if err != nil {
			t.Fatalf("Failed check-in flow: %v", err)
		}
		if !strings.Contains(result, "queue position 1") {
			t.Errorf("Expected queue position 1, got: %s", result)
		}
	})

	t.Run("QueueBoardShowsPatient", func(t *testing.T) {
		var board string

		err := chromedp.Run(ctx,
			chromedp.Navigate(ts.URL+"/queue"),
			chromedp.WaitVisible(`#queue-board`, chromedp.ByQuery),
			chromedp.Text(`#queue-board`, &board, chromedp.ByQuery),
		)
		if err != nil {
			t.Fatalf("Failed queue board: %v", err)
		}
		if !strings.Contains(board, "pat-e2e") {
			t.Errorf("Expected checked-in patient on board, got: %s", board)
		}
	})

	t.Run("CliniciansPage", func(t *testing.T) {
		var table string

		err := chromedp.Run(ctx,
			chromedp.Navigate(ts.URL+"/clinicians"),
			chromedp.WaitVisible(`#clinician-table`, chromedp.ByQuery),
			chromedp.Text(`#clinician-table`, &table, chromedp.ByQuery),
		)
		if err != nil {
			t.Fatalf("Failed clinicians page: %v", err)
		}
		if !strings.Contains(table, "Wei Chen") {
			t.Errorf("Expected seeded clinician, got: %s", table)
		}
	})
}
