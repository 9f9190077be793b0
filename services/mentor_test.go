package services

import (
	"testing"
)

func TestParseRoadmap_PlainJSON(t *testing.T) {
	steps := parseRoadmap(`[{"order":2,"title":"Learn Postgres"},{"order":1,"title":"Learn Go"}]`)
	if len(steps) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(steps))
	}
	if steps[0].Title != "Learn Go" || steps[1].Title != "Learn Postgres" {
		t.Errorf("expected steps sorted by order, got %q then %q", steps[0].Title, steps[1].Title)
	}
}

func TestParseRoadmap_StripsCodeFences(t *testing.T) {
	raw := "```json\n[{\"order\":1,\"title\":\"Learn Go\"}]\n```"
	steps := parseRoadmap(raw)
	if len(steps) != 1 {
		t.Fatalf("expected 1 step, got %d", len(steps))
	}
	if steps[0].Title != "Learn Go" {
		t.Errorf("unexpected title %q", steps[0].Title)
	}
}

func TestParseRoadmap_BackfillsMissingOrder(t *testing.T) {
	steps := parseRoadmap(`[{"title":"Learn Go"},{"title":"Learn Postgres"}]`)
	if len(steps) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(steps))
	}
	if steps[0].Order != 1 || steps[1].Order != 2 {
		t.Errorf("expected orders backfilled as 1,2, got %d,%d", steps[0].Order, steps[1].Order)
	}
}

func TestParseRoadmap_ProseIsNotASteps(t *testing.T) {
	if steps := parseRoadmap("Here is your roadmap: first learn Go, then Postgres."); steps != nil {
		t.Errorf("expected nil steps for prose output, got %v", steps)
	}
}
