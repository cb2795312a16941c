package project

import "fmt"

// minSlotWidth keeps short scenes visible on the timeline.
const minSlotWidth = 10.0

// Timeline lays the project's scenes out end to end. Width is the share of the
// total duration in percent, floored at minSlotWidth.
func Timeline(p Project) []TimelineSlot {
	slots := make([]TimelineSlot, 0, len(p.Scenes))
	start := 0
	for i, s := range p.Scenes {
		width := 100.0
		if p.TotalDuration > 0 {
			width = max(float64(s.Duration)/float64(p.TotalDuration)*100, minSlotWidth)
		}
		slots = append(slots, TimelineSlot{
			SceneID:  s.ID,
			Index:    i,
			Title:    s.Title,
			Start:    start,
			Duration: s.Duration,
			Width:    width,
		})
		start += s.Duration
	}
	return slots
}

// FormatDuration renders seconds as m:ss.
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
