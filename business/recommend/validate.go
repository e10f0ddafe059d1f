package recommend

import (
	"fmt"

	"beaconia/domain"
)

const (
	MinDuration   = 5
	MaxDuration   = 480
	MaxExcludeIDs = 100
)

var (
	validEnergy   = []string{domain.EnergyLow, domain.EnergyMedium, domain.EnergyHigh}
	validLocation = []string{domain.LocationHome, domain.LocationOutdoor, domain.LocationAny}
	validCost     = []string{domain.CostFree, domain.CostLow, domain.CostMedium}
	validSocial   = []string{domain.SocialSolo, domain.SocialFriends, domain.SocialBoth}
)

// ValidateRequest checks bounds and enums. The HTTP layer validates the same
// rules with struct tags; this protects non-HTTP callers.
func ValidateRequest(req domain.RecommendationRequest) error {
	if req.Duration < MinDuration || req.Duration > MaxDuration {
		return fmt.Errorf("%w: duration must be between %d and %d minutes", domain.ErrValidation, MinDuration, MaxDuration)
	}
	if err := oneOf("energy", req.Energy, validEnergy); err != nil {
		return err
	}
	if err := oneOf("location", req.Location, validLocation); err != nil {
		return err
	}
	if err := oneOf("cost", req.Cost, validCost); err != nil {
		return err
	}
	if err := oneOf("social", req.Social, validSocial); err != nil {
		return err
	}
	if len(req.ExcludeIDs) > MaxExcludeIDs {
		return fmt.Errorf("%w: at most %d excludeIds are allowed", domain.ErrValidation, MaxExcludeIDs)
	}
	return nil
}

func oneOf(field, value string, allowed []string) error {
	for _, v := range allowed {
		if v == value {
			return nil
		}
	}
	return fmt.Errorf("%w: %s must be one of %v", domain.ErrValidation, field, allowed)
}
