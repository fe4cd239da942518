package enums

// MembershipTier buckets users by loyalty level. New accounts start bronze.
type MembershipTier string

const (
	MembershipTierBronze MembershipTier = "bronze"
	MembershipTierSilver MembershipTier = "silver"
	MembershipTierGold   MembershipTier = "gold"
)

// IsValid reports whether the tier is one of the canonical values.
func (m MembershipTier) IsValid() bool {
	switch m {
	case MembershipTierBronze, MembershipTierSilver, MembershipTierGold:
		return true
	}
	return false
}
