package script

import "github.com/rpggio/storyboard/internal/domain/scene"

// UserTier gates access to generation features.
type UserTier string

const (
	TierFree       UserTier = "free"
	TierPro        UserTier = "pro"
	TierEnterprise UserTier = "enterprise"
)

// Valid reports whether t is a known tier.
func (t UserTier) Valid() bool {
	switch t {
	case TierFree, TierPro, TierEnterprise:
		return true
	}
	return false
}

// GenerateRequest describes a script generation request.
type GenerateRequest struct {
	Prompt   string
	Genre    string
	Tone     string
	Duration int
	Tier     UserTier
}

// GenerateResponse carries the generated screenplay and its scene breakdown.
type GenerateResponse struct {
	Script            string        `json:"script"`
	Scenes            []scene.Draft `json:"scenes"`
	EstimatedDuration int           `json:"estimated_duration"`
}
