package script

import (
	"context"
	"fmt"
	"strings"

	"github.com/rpggio/storyboard/internal/domain/scene"
)

// Generator turns a free-form prompt into scene drafts.
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
}

// ValidateRequest checks the prompt and the caller's tier.
func ValidateRequest(req GenerateRequest) error {
	if strings.TrimSpace(req.Prompt) == "" {
		return fmt.Errorf("%w: prompt is required", ErrInvalidInput)
	}
	if req.Duration < 0 {
		return fmt.Errorf("%w: duration cannot be negative", ErrInvalidInput)
	}
	if !req.Tier.Valid() {
		return fmt.Errorf("%w: unknown tier %q", ErrInvalidInput, req.Tier)
	}
	if req.Tier == TierFree {
		return ErrTierRestricted
	}
	return nil
}

// TemplateGenerator produces a fixed three-shot breakdown. It stands in for a
// model-backed generator and is deterministic.
type TemplateGenerator struct{}

// NewTemplateGenerator creates a template generator.
func NewTemplateGenerator() *TemplateGenerator {
	return &TemplateGenerator{}
}

// Generate implements Generator.
func (g *TemplateGenerator) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	if err := ValidateRequest(req); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	drafts := templateScenes()
	if req.Duration > 0 {
		scaleDurations(drafts, req.Duration)
	}

	total := 0
	for _, d := range drafts {
		total += d.Duration
	}

	return &GenerateResponse{
		Script:            renderScript(req),
		Scenes:            drafts,
		EstimatedDuration: total,
	}, nil
}

func templateScenes() []scene.Draft {
	return []scene.Draft{
		{
			Title:          "Opening Scene",
			Description:    "A dramatic wide shot of the mountain landscape at dawn, with mist rolling through the valleys.",
			Duration:       5,
			ShotType:       scene.ShotWide,
			CameraMovement: scene.CameraStatic,
			Lighting:       scene.LightingNatural,
			Notes:          "Golden hour lighting preferred",
		},
		{
			Title:          "Character Introduction",
			Description:    "Close-up of the protagonist looking determined, with the mountain in the background.",
			Duration:       3,
			ShotType:       scene.ShotClose,
			CameraMovement: scene.CameraStatic,
			Lighting:       scene.LightingNatural,
			Notes:          "Focus on facial expressions",
		},
		{
			Title:          "Journey Begins",
			Description:    "Medium shot of the character walking along the forest path, camera following.",
			Duration:       4,
			ShotType:       scene.ShotMedium,
			CameraMovement: scene.CameraTracking,
			Lighting:       scene.LightingSoft,
			Notes:          "Steady cam for smooth movement",
		},
	}
}

// scaleDurations rescales drafts proportionally so they sum to target. Every
// draft keeps at least one second; the last draft absorbs rounding.
func scaleDurations(drafts []scene.Draft, target int) {
	if len(drafts) == 0 {
		return
	}
	if target < len(drafts) {
		target = len(drafts)
	}
	base := 0
	for _, d := range drafts {
		base += d.Duration
	}

	assigned := 0
	for i := range drafts[:len(drafts)-1] {
		scaled := max(drafts[i].Duration*target/base, 1)
		remaining := len(drafts) - 1 - i
		scaled = min(scaled, target-assigned-remaining)
		drafts[i].Duration = scaled
		assigned += scaled
	}
	drafts[len(drafts)-1].Duration = target - assigned
}

func renderScript(req GenerateRequest) string {
	var b strings.Builder
	if req.Genre != "" || req.Tone != "" {
		fmt.Fprintf(&b, "GENRE: %s\nTONE: %s\n\n", valueOr(req.Genre, "unspecified"), valueOr(req.Tone, "unspecified"))
	}
	fmt.Fprintf(&b, "PREMISE: %s\n\n", strings.TrimSpace(req.Prompt))
	b.WriteString(`FADE IN:

EXT. MOUNTAIN LANDSCAPE - DAWN

A breathtaking vista unfolds as the first rays of sunlight pierce through the morning mist. The camera captures the raw beauty of untouched wilderness.

The PROTAGONIST stands at the edge of a cliff, silhouetted against the rising sun. Determination etched in their posture.

PROTAGONIST
(whispered)
This is where it all begins.

The journey into the unknown starts here, with each step carrying the weight of destiny.

CUT TO:

EXT. FOREST PATH - MORNING

The protagonist moves with purpose through the ancient forest. Shafts of golden light filter through the canopy above.

FADE OUT.
`)
	return b.String()
}

func valueOr(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}
