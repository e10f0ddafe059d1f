package recommend

import (
	"fmt"
	"math"
	"strings"

	"beaconia/domain"
)

var energyClauses = map[string]string{
	domain.EnergyLow:    "düşük enerji seviyenize uygun",
	domain.EnergyMedium: "orta enerji seviyenize uygun",
	domain.EnergyHigh:   "yüksek enerji seviyenize uygun",
}

var locationClauses = map[string]string{
	domain.LocationHome:    "evde yapılabilir",
	domain.LocationOutdoor: "dışarıda yapılabilir",
	domain.LocationAny:     "her yerde yapılabilir",
}

var moodClauses = map[string]string{
	"stressed":  "stres atmanıza yardımcı olabilir",
	"bored":     "sıkıntınızı giderebilir",
	"anxious":   "kaygınızı azaltabilir",
	"tired":     "yorgunluğunuza iyi gelebilir",
	"happy":     "mutluluğunuzu artırabilir",
	"creative":  "yaratıcılığınızı tetikleyebilir",
	"social":    "sosyalleşme ihtiyacınıza uygun",
	"energetic": "enerjinizi kanalize edebilir",
}

var categoryFirstSteps = map[string]string{
	"fitness":       "Spor kıyafetlerini giy ve hazırlan.",
	"wellness":      "Rahat bir pozisyon bul ve başla.",
	"entertainment": "Kendine rahat bir köşe ayır.",
	"education":     "Not defterini hazırla.",
	"social":        "Arkadaşlarını ara veya mesaj at.",
	"cooking":       "Mutfağa geç ve malzemeleri hazırla.",
	"outdoor":       "Rahat ayakkabılarını giy.",
	"art":           "Malzemelerini hazırla.",
	"music":         "Enstrümanını al.",
}

const (
	defaultFirstStep = "Hadi başla!"
	maxReasonClauses = 2
)

// GenerateReason explains a selection from the clauses that apply to it.
// Only the first two applicable clauses are used.
func GenerateReason(a domain.Activity, req domain.RecommendationRequest) string {
	clauses := make([]string, 0, 4)

	if a.EnergyLevel == req.Energy {
		if text, ok := energyClauses[a.EnergyLevel]; ok {
			clauses = append(clauses, text)
		}
	}

	if a.Location == req.Location || a.Location == domain.LocationAny {
		if text, ok := locationClauses[a.Location]; ok {
			clauses = append(clauses, text)
		}
	}

	if req.Mood != "" && a.HasMood(req.Mood) {
		text, ok := moodClauses[req.Mood]
		if !ok {
			text = fmt.Sprintf("\"%s\" modunuza uygun", req.Mood)
		}
		clauses = append(clauses, text)
	}

	clauses = append(clauses, fmt.Sprintf("yaklaşık %d dakika sürer", int(math.Round(a.DurationMid()))))

	return composeReason(a.Title, clauses)
}

func composeReason(title string, clauses []string) string {
	if len(clauses) == 0 {
		return fmt.Sprintf("%s şu an için harika bir seçim olabilir!", title)
	}
	if len(clauses) > maxReasonClauses {
		clauses = clauses[:maxReasonClauses]
	}
	return "Bu aktivite " + strings.Join(clauses, " ve ") + "."
}

// GenerateFirstStep returns the activity's first instruction as stored,
// falling back to a per-category phrase when there are no steps.
func GenerateFirstStep(a domain.Activity) string {
	if len(a.Steps) > 0 {
		return a.Steps[0]
	}
	if step, ok := categoryFirstSteps[a.Category]; ok {
		return step
	}
	return defaultFirstStep
}
