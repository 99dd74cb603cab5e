package extractor

import "testing"

func TestDetectKnownCategories(t *testing.T) {
	detector := NewCategoryDetector()

	tests := []struct {
		name   string
		window string
		want   string
	}{
		{"uppercase heading", "ECONOMY", "Economy"},
		{"spelled out conjunction", "Science and Technology", "Science & Technology"},
		{"ampersand heading", "POLITY & GOVERNANCE", "Polity & Governance"},
		{"plural awards", "Awards and Honours", "Awards & Honours"},
		{"legal updates", "Legal Updates", "Legal Updates"},
		{"sports", "yesterday in Sports news", "Sports"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := detector.Detect(tt.window); got != tt.want {
				t.Errorf("Detect(%q) = %q, want %q", tt.window, got, tt.want)
			}
		})
	}
}

func TestDetectFallsBackToGeneralKnowledge(t *testing.T) {
	detector := NewCategoryDetector()

	for _, window := range []string{"", "nothing relevant here", "12345"} {
		if got := detector.Detect(window); got != DefaultCategory {
			t.Errorf("Detect(%q) = %q, want %q", window, got, DefaultCategory)
		}
	}
}

func TestDetectMostRecentHeadingWins(t *testing.T) {
	detector := NewCategoryDetector()

	window := "Sports\nsome discussion of the match\nEconomy\nfiscal numbers follow"
	if got := detector.Detect(window); got != "Economy" {
		t.Errorf("Detect() = %q, want the later heading %q", got, "Economy")
	}

	// Reversed order flips the winner
	window = "Economy\nfiscal numbers\nSports\nmatch report"
	if got := detector.Detect(window); got != "Sports" {
		t.Errorf("Detect() = %q, want the later heading %q", got, "Sports")
	}
}
