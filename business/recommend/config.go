package recommend

// Config holds the ranking weights and bounds of the engine.
type Config struct {
	// catalog query cap and shortlist size handed to personalization
	CandidateLimit int
	ShortlistSize  int

	BaseScore float64

	// points lost per minute between the activity midpoint and the request
	DurationPenalty float64

	EnergyMatch      float64
	LocationMatch    float64
	LocationFlexible float64
	CostMatch        float64
	SocialMatch      float64
	SocialFlexible   float64
	MoodMatch        float64

	// jitter is drawn uniformly from [-JitterAmplitude, +JitterAmplitude)
	JitterAmplitude float64
}

const (
	defaultCandidateLimit   = 50
	defaultShortlistSize    = 5
	defaultBaseScore        = 100
	defaultDurationPenalty  = 0.5
	defaultEnergyMatch      = 20
	defaultLocationMatch    = 15
	defaultLocationFlexible = 5
	defaultCostMatch        = 15
	defaultSocialMatch      = 15
	defaultSocialFlexible   = 5
	defaultMoodMatch        = 30
	defaultJitterAmplitude  = 5
)

func DefaultConfig() Config {
	return Config{
		CandidateLimit:   defaultCandidateLimit,
		ShortlistSize:    defaultShortlistSize,
		BaseScore:        defaultBaseScore,
		DurationPenalty:  defaultDurationPenalty,
		EnergyMatch:      defaultEnergyMatch,
		LocationMatch:    defaultLocationMatch,
		LocationFlexible: defaultLocationFlexible,
		CostMatch:        defaultCostMatch,
		SocialMatch:      defaultSocialMatch,
		SocialFlexible:   defaultSocialFlexible,
		MoodMatch:        defaultMoodMatch,
		JitterAmplitude:  defaultJitterAmplitude,
	}
}
