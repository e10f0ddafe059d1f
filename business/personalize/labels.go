package personalize

// Turkish display labels used in the prompt. Unknown values are shown as-is.
var (
	energyLabels = map[string]string{
		"low":    "düşük",
		"medium": "orta",
		"high":   "yüksek",
	}
	locationLabels = map[string]string{
		"home":    "evde",
		"outdoor": "dışarıda",
		"any":     "fark etmez",
	}
	costLabels = map[string]string{
		"free":   "bedava",
		"low":    "ekonomik",
		"medium": "orta bütçe",
	}
	socialLabels = map[string]string{
		"solo":    "yalnız",
		"friends": "arkadaşlarla",
		"both":    "fark etmez",
	}
	moodLabels = map[string]string{
		"happy":     "mutlu",
		"motivated": "motive",
		"excited":   "heyecanlı",
		"sad":       "üzgün",
		"stressed":  "stresli",
		"bored":     "sıkılmış",
		"anxious":   "kaygılı",
		"tired":     "yorgun",
		"creative":  "yaratıcı",
		"energetic": "enerjik",
	}
)

func label(table map[string]string, value string) string {
	if l, ok := table[value]; ok {
		return l
	}
	return value
}
