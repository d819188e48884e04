package services

import (
	"fmt"
	"os"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jarodreyes/prize-survey/internal/models"
	"github.com/jarodreyes/prize-survey/internal/realtime"
)

// setupTestDB opens the test database, skipping when none is reachable so
// the suite still passes on machines without postgres.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		dsn = "host=localhost port=5432 user=postgres password=postgres dbname=prizesurvey_test sslmode=disable"
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Discard,
	})
	if err != nil {
		t.Skipf("test database unavailable: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Session{},
		&models.Participant{},
		&models.Response{},
		&models.ActivityEntry{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	for _, table := range []string{"activity", "responses", "participants", "sessions"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			t.Fatalf("clean %s: %v", table, err)
		}
	}
	return db
}

func submitRequestFor(code string, n int) SubmitRequest {
	return SubmitRequest{
		SessionCode: code,
		Identity: Identity{
			ID:    fmt.Sprintf("user-%d", n),
			Name:  fmt.Sprintf("Attendee Number%d", n),
			Email: fmt.Sprintf("attendee%d@example.com", n),
		},
		Title:              "Backend Engineer",
		PreferredLlm:       "Claude 3 Opus",
		PreferredFramework: "React",
		Location:           "Seattle, WA",
		JobHunting:         n%2 == 0,
		FunAnswers: map[string]string{
			"editor":      "Neovim",
			"indentation": "Tabs",
			"darkmode":    "Always",
		},
	}
}

func TestSessionLifecycle(t *testing.T) {
	db := setupTestDB(t)
	sessions := NewSessionService(db, realtime.NoopSink{})

	session, err := sessions.Create("octocat")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(session.Code) != 6 {
		t.Errorf("code = %q, want 6 characters", session.Code)
	}
	if !session.Active {
		t.Error("new session is not active")
	}

	byCode, err := sessions.GetByCode(session.Code)
	if err != nil {
		t.Fatalf("GetByCode: %v", err)
	}
	if byCode.ID != session.ID {
		t.Errorf("GetByCode returned %s, want %s", byCode.ID, session.ID)
	}

	if _, err := sessions.GetByCode("ZZZZZZ"); err != ErrSessionNotFound {
		t.Errorf("unknown code: err = %v, want ErrSessionNotFound", err)
	}

	ended, err := sessions.End(session.ID)
	if err != nil {
		t.Fatalf("End: %v", err)
	}
	if ended.Active {
		t.Error("ended session still active")
	}

	// Ending twice is a no-op.
	if _, err := sessions.End(session.ID); err != nil {
		t.Errorf("second End: %v", err)
	}
}

func TestSubmitFlow(t *testing.T) {
	db := setupTestDB(t)
	sessions := NewSessionService(db, realtime.NoopSink{})
	submissions := NewSubmissionService(db, realtime.NoopSink{})
	activity := NewActivityService(db)

	session, err := sessions.Create("")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	req := submitRequestFor(session.Code, 1)
	participant, err := submissions.Submit(req)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if participant.SessionID != session.ID {
		t.Errorf("participant session = %s, want %s", participant.SessionID, session.ID)
	}

	count, err := submissions.ResponseCount(session.ID)
	if err != nil {
		t.Fatalf("ResponseCount: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}

	entries, err := activity.Feed(session.ID, 0)
	if err != nil {
		t.Fatalf("Feed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("feed entries = %d, want 1", len(entries))
	}
	if want := "Attendee N. submitted!"; entries[0].Message != want {
		t.Errorf("message = %q, want %q", entries[0].Message, want)
	}

	// Same identity again is a duplicate.
	if _, err := submissions.Submit(submitRequestFor(session.Code, 1)); err != ErrDuplicateSubmission {
		t.Errorf("duplicate submit: err = %v, want ErrDuplicateSubmission", err)
	}
	if count, _ := submissions.ResponseCount(session.ID); count != 1 {
		t.Errorf("count after duplicate = %d, want 1", count)
	}
}

func TestSubmitRejections(t *testing.T) {
	db := setupTestDB(t)
	sessions := NewSessionService(db, realtime.NoopSink{})
	submissions := NewSubmissionService(db, realtime.NoopSink{})

	if _, err := submissions.Submit(submitRequestFor("NOSUCH", 1)); err != ErrSessionNotFound {
		t.Errorf("unknown code: err = %v, want ErrSessionNotFound", err)
	}

	session, err := sessions.Create("")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := sessions.End(session.ID); err != nil {
		t.Fatalf("End: %v", err)
	}
	if _, err := submissions.Submit(submitRequestFor(session.Code, 1)); err != ErrSessionInactive {
		t.Errorf("ended session: err = %v, want ErrSessionInactive", err)
	}
}

func TestSubmitPublishesEvents(t *testing.T) {
	db := setupTestDB(t)
	hub := realtime.NewHub()
	sessions := NewSessionService(db, hub)
	submissions := NewSubmissionService(db, hub)

	session, err := sessions.Create("")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	events := map[string]int{}
	unsubscribe := hub.Subscribe(realtime.SessionChannel(session.ID), func(event string, _ interface{}) {
		events[event]++
	})
	defer unsubscribe()

	if _, err := submissions.Submit(submitRequestFor(session.Code, 1)); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	for _, event := range []string{"response_submitted", "counter_updated", "results_updated"} {
		if events[event] != 1 {
			t.Errorf("%s published %d times, want 1", event, events[event])
		}
	}
}

func TestRaffleThresholds(t *testing.T) {
	db := setupTestDB(t)
	sessions := NewSessionService(db, realtime.NoopSink{})
	submissions := NewSubmissionService(db, realtime.NoopSink{})
	raffle := NewRaffleService(db, NewPrizeService())

	session, err := sessions.Create("")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	for n := 1; n <= 14; n++ {
		if _, err := submissions.Submit(submitRequestFor(session.Code, n)); err != nil {
			t.Fatalf("Submit %d: %v", n, err)
		}
	}

	result, err := raffle.Draw(session.ID)
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if result.ResponseCount != 14 {
		t.Errorf("responseCount = %d, want 14", result.ResponseCount)
	}
	if len(result.Winners) != 0 {
		t.Errorf("winners below threshold = %d, want 0", len(result.Winners))
	}
	if want := "Need 15 responses to unlock first prize. Currently have 14."; result.Message != want {
		t.Errorf("message = %q, want %q", result.Message, want)
	}

	if _, err := submissions.Submit(submitRequestFor(session.Code, 15)); err != nil {
		t.Fatalf("Submit 15: %v", err)
	}

	result, err = raffle.Draw(session.ID)
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if len(result.Winners) != 1 {
		t.Fatalf("winners at threshold = %d, want 1", len(result.Winners))
	}
	if result.Winners[0].PrizeID != "tier1" {
		t.Errorf("prize = %s, want tier1", result.Winners[0].PrizeID)
	}
	if len(result.UnlockedPrizes) != 1 {
		t.Errorf("unlocked prizes = %d, want 1", len(result.UnlockedPrizes))
	}

	if _, err := raffle.Draw("00000000-0000-0000-0000-000000000000"); err != ErrSessionNotFound {
		t.Errorf("unknown session: err = %v, want ErrSessionNotFound", err)
	}
}

func TestResultsAggregate(t *testing.T) {
	db := setupTestDB(t)
	sessions := NewSessionService(db, realtime.NoopSink{})
	submissions := NewSubmissionService(db, realtime.NoopSink{})
	results := NewResultsService(db)

	session, err := sessions.Create("")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	for n := 1; n <= 3; n++ {
		req := submitRequestFor(session.Code, n)
		if n == 3 {
			req.PreferredLlm = "Mistral"
			req.FunAnswers["darkmode"] = "Never"
		}
		if _, err := submissions.Submit(req); err != nil {
			t.Fatalf("Submit %d: %v", n, err)
		}
	}

	agg, err := results.Aggregate(session.ID)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if agg.ResponseCount != 3 {
		t.Errorf("responseCount = %d, want 3", agg.ResponseCount)
	}
	if len(agg.PreferredLlm) != 2 {
		t.Fatalf("llm options = %d, want 2", len(agg.PreferredLlm))
	}
	// Ordered by count descending.
	if agg.PreferredLlm[0].Option != "Claude 3 Opus" || agg.PreferredLlm[0].Count != 2 {
		t.Errorf("top llm = %+v", agg.PreferredLlm[0])
	}
	if agg.FunQuestions["darkmode"]["Always"] != 2 || agg.FunQuestions["darkmode"]["Never"] != 1 {
		t.Errorf("darkmode tallies = %v", agg.FunQuestions["darkmode"])
	}

	jobHunting := map[string]int{}
	for _, oc := range agg.JobHunting {
		jobHunting[oc.Option] = oc.Count
	}
	if jobHunting["Yes"] != 1 || jobHunting["No"] != 2 {
		t.Errorf("jobHunting = %v", jobHunting)
	}

	if _, err := results.Aggregate("00000000-0000-0000-0000-000000000000"); err != ErrSessionNotFound {
		t.Errorf("unknown session: err = %v, want ErrSessionNotFound", err)
	}
}

func TestResultsExport(t *testing.T) {
	db := setupTestDB(t)
	sessions := NewSessionService(db, realtime.NoopSink{})
	submissions := NewSubmissionService(db, realtime.NoopSink{})
	results := NewResultsService(db)

	session, err := sessions.Create("")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	for n := 1; n <= 2; n++ {
		if _, err := submissions.Submit(submitRequestFor(session.Code, n)); err != nil {
			t.Fatalf("Submit %d: %v", n, err)
		}
	}

	rows, err := results.Export(session.ID)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0].Name != "Attendee Number1" || rows[0].Email != "attendee1@example.com" {
		t.Errorf("first row identity = %q %q", rows[0].Name, rows[0].Email)
	}
	if rows[0].FunAnswers["editor"] != "Neovim" {
		t.Errorf("funAnswers = %v", rows[0].FunAnswers)
	}
	if rows[1].CreatedAt.Before(rows[0].CreatedAt) {
		t.Error("rows not ordered oldest first")
	}
}

func TestActivityFeedOrderAndLimit(t *testing.T) {
	db := setupTestDB(t)
	sessions := NewSessionService(db, realtime.NoopSink{})
	submissions := NewSubmissionService(db, realtime.NoopSink{})
	activity := NewActivityService(db)

	session, err := sessions.Create("")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	for n := 1; n <= 5; n++ {
		if _, err := submissions.Submit(submitRequestFor(session.Code, n)); err != nil {
			t.Fatalf("Submit %d: %v", n, err)
		}
	}

	entries, err := activity.Feed(session.ID, 3)
	if err != nil {
		t.Fatalf("Feed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("entries = %d, want 3", len(entries))
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].CreatedAt.After(entries[i-1].CreatedAt) {
			t.Error("feed not ordered newest first")
		}
	}

	// A huge limit is capped rather than honored.
	entries, err = activity.Feed(session.ID, 500)
	if err != nil {
		t.Fatalf("Feed: %v", err)
	}
	if len(entries) != 5 {
		t.Errorf("entries = %d, want 5", len(entries))
	}
}
