package personalize

import (
	"fmt"
	"strings"

	"beaconia/domain"
)

const promptHeader = `Sen Beaconia uygulamasının yapay zeka asistanısın. Kullanıcının ruh haline ve tercihlerine göre en uygun aktiviteyi seçip, sıcak ve samimi bir dille Türkçe açıklama yapmalısın.`

const promptTask = `GÖREV:
1. Kullanıcının durumuna en uygun aktiviteyi seç (selectedId).
2. Alternatif olarak bir Plan B seç (planBId). Eğer tek aday varsa null yaz.
3. "reason" alanında kullanıcıya neden bu aktiviteyi önerdiğini samimi, kişisel ve motive edici bir dille açıkla (2-3 cümle, Türkçe).
4. "firstStep" alanında kullanıcının hemen başlayabileceği somut bir ilk adım yaz (1 cümle, Türkçe).

ZORUNLU: Sadece aşağıdaki JSON formatında yanıt ver, başka hiçbir şey yazma:
{"selectedId": "...", "planBId": "..." veya null, "reason": "...", "firstStep": "..."}`

// BuildPrompt embeds the user's context and every shortlist candidate,
// including its id, into a single prompt.
func BuildPrompt(req domain.RecommendationRequest, candidates []domain.Activity) string {
	var b strings.Builder

	b.WriteString(promptHeader)
	b.WriteString("\n\nKULLANICI BİLGİLERİ:\n")
	fmt.Fprintf(&b, "- Boş zamanı: %d dakika\n", req.Duration)
	fmt.Fprintf(&b, "- Enerji seviyesi: %s\n", label(energyLabels, req.Energy))
	mood := "belirtilmedi"
	if req.Mood != "" {
		mood = label(moodLabels, req.Mood)
	}
	fmt.Fprintf(&b, "- Ruh hali: %s\n", mood)
	fmt.Fprintf(&b, "- Konum: %s\n", label(locationLabels, req.Location))
	fmt.Fprintf(&b, "- Bütçe: %s\n", label(costLabels, req.Cost))
	fmt.Fprintf(&b, "- Sosyal tercih: %s\n", label(socialLabels, req.Social))

	b.WriteString("\nADAY AKTİVİTELER:\n")
	for i, a := range candidates {
		fmt.Fprintf(&b, "%d. [ID: %s] %s (Kategori: %s, Süre: %d-%ddk, Enerji: %s, Konum: %s, Maliyet: %s, Sosyal: %s, Mood: %s)\n",
			i+1, a.ID, a.Title, a.Category, a.DurationMin, a.DurationMax,
			a.EnergyLevel, a.Location, a.Cost, a.Social, strings.Join(a.MoodTags, ", "))
	}

	b.WriteString("\n")
	b.WriteString(promptTask)

	return b.String()
}
