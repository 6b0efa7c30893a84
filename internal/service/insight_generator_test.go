package service

import (
	"testing"
	"time"

	"github.com/pulsewell/health-insights-api/internal/domain"
)

func findCard(cards []domain.InsightCard, id string) *domain.InsightCard {
	for i := range cards {
		if cards[i].ID == id {
			return &cards[i]
		}
	}
	return nil
}

func TestGenerateInsights_AtRiskProfile(t *testing.T) {
	now := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	cards := GenerateInsights(atRiskData(now), now)

	bp := findCard(cards, "bp-alert")
	if bp == nil {
		t.Fatal("expected bp-alert card for hypertensive averages")
	}
	if bp.Type != domain.InsightAlert || bp.Priority != domain.PriorityHigh {
		t.Errorf("bp-alert type/priority = %s/%s, want alert/high", bp.Type, bp.Priority)
	}

	hr := findCard(cards, "hr-alert")
	if hr == nil {
		t.Fatal("expected hr-alert card for 110 bpm average")
	}
	if hr.Type != domain.InsightAlert || hr.Priority != domain.PriorityHigh {
		t.Errorf("hr-alert type/priority = %s/%s, want alert/high", hr.Type, hr.Priority)
	}

	if findCard(cards, "sleep-alert") == nil {
		t.Error("expected sleep-alert card for 4 hour average")
	}
	if findCard(cards, "stress-alert") == nil {
		t.Error("expected stress-alert card for 9/10 average")
	}
	if findCard(cards, "exercise-none") == nil {
		t.Error("expected exercise-none card when nothing is logged")
	}
}

func TestGenerateInsights_HealthyProfile(t *testing.T) {
	now := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	cards := GenerateInsights(healthyData(now), now)

	for _, id := range []string{"bp-positive", "hr-positive", "sleep-positive", "exercise-positive", "stress-positive"} {
		if findCard(cards, id) == nil {
			t.Errorf("expected %s card", id)
		}
	}
	for _, card := range cards {
		if card.Type == domain.InsightAlert || card.Type == domain.InsightWarning {
			t.Errorf("unexpected %s card %s for healthy profile", card.Type, card.ID)
		}
	}
}

func TestGenerateInsights_PriorityOrdering(t *testing.T) {
	now := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	cards := GenerateInsights(atRiskData(now), now)

	for i := 1; i < len(cards); i++ {
		if cards[i-1].Priority.Rank() > cards[i].Priority.Rank() {
			t.Fatalf("cards not sorted by priority: %s (%s) before %s (%s)",
				cards[i-1].ID, cards[i-1].Priority, cards[i].ID, cards[i].Priority)
		}
	}
}

func TestGenerateInsights_EmptyData(t *testing.T) {
	now := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	cards := GenerateInsights(&domain.HealthData{}, now)

	// Only the exercise analyzer emits without data.
	if len(cards) != 1 {
		t.Fatalf("cards = %d, want 1", len(cards))
	}
	if cards[0].ID != "exercise-none" {
		t.Errorf("card ID = %s, want exercise-none", cards[0].ID)
	}
}

func TestGenerateInsights_MiddleBandsEmitNothing(t *testing.T) {
	// Averages in the gap between positive and warning bands produce no
	// card for that metric.
	now := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	data := &domain.HealthData{
		Vitals: []domain.VitalSignSample{
			{SystolicBP: intPtr(125), DiastolicBP: intPtr(82), HeartRate: intPtr(45), RecordedAt: now},
		},
		Sleep:  []domain.SleepSample{{Date: now, DurationHours: 6.5}},
		Stress: []domain.StressSample{{Date: now, Level: 4}},
	}

	cards := GenerateInsights(data, now)
	for _, metric := range []string{"bp", "sleep", "stress"} {
		for _, suffix := range []string{"-alert", "-warning", "-positive"} {
			if findCard(cards, metric+suffix) != nil {
				t.Errorf("unexpected card %s for in-between average", metric+suffix)
			}
		}
	}
	// 45 bpm is in the warning band.
	if findCard(cards, "hr-warning") == nil {
		t.Error("expected hr-warning card for 45 bpm")
	}
}

func TestAnalyzeExercise_Tiers(t *testing.T) {
	now := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	week := func(minutesPerDay int) []domain.ExerciseSample {
		var samples []domain.ExerciseSample
		for i := 0; i < 7; i++ {
			samples = append(samples, domain.ExerciseSample{
				Date:            now.AddDate(0, 0, -i),
				Type:            "walking",
				DurationMinutes: minutesPerDay,
			})
		}
		return samples
	}

	tests := []struct {
		name     string
		exercise []domain.ExerciseSample
		wantID   string
	}{
		{"nothing logged", nil, "exercise-none"},
		{"meets target", week(30), "exercise-positive"},
		{"moderate", week(10), "exercise-info"},
		{"low", week(5), "exercise-warning"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := analyzeExercise(&domain.HealthData{Exercise: tt.exercise}, now)
			if card.ID != tt.wantID {
				t.Errorf("card ID = %s, want %s", card.ID, tt.wantID)
			}
		})
	}
}
