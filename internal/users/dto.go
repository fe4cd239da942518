package users

import "encoding/json"

// ProfilePatch enumerates the user fields a profile update may touch.
// Nil means "leave unchanged"; nothing else on the user row is reachable
// through this type.
type ProfilePatch struct {
	Phone             *string
	CulturalInterests *[]string
}

// Updates renders the patch as a column→value map for persistence.
// The interests slice is marshalled up front since map-based updates
// bypass GORM's field serializers.
func (p ProfilePatch) Updates() map[string]any {
	updates := map[string]any{}
	if p.Phone != nil {
		updates["phone"] = *p.Phone
	}
	if p.CulturalInterests != nil {
		raw, err := json.Marshal(*p.CulturalInterests)
		if err == nil {
			updates["cultural_interests"] = string(raw)
		}
	}
	return updates
}
