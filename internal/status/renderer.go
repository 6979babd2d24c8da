package status

import (
	"context"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Rendered is a display artifact produced by a Renderer
type Rendered struct {
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// Renderer turns a snapshot into something a chat platform can show.
// Image renderers live outside this module and plug in here.
type Renderer interface {
	RenderStatus(ctx context.Context, snap Snapshot, ownerDisplayName string) (Rendered, error)
}

// TextRenderer renders a plain-text status card with locale-aware numbers
type TextRenderer struct {
	tag language.Tag
}

// NewTextRenderer creates a TextRenderer for the given locale.
// An unparsable locale falls back to English.
func NewTextRenderer(locale string) *TextRenderer {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &TextRenderer{tag: tag}
}

func (r *TextRenderer) RenderStatus(_ context.Context, snap Snapshot, ownerDisplayName string) (Rendered, error) {
	if strings.TrimSpace(ownerDisplayName) == "" {
		ownerDisplayName = DefaultOwnerName
	}
	p := message.NewPrinter(r.tag)
	title := cases.Title(r.tag)

	lines := []string{
		p.Sprintf(LineFmtTitle, snap.Name),
		p.Sprintf(LineFmtOwner, ownerDisplayName),
		p.Sprintf(LineFmtSpecies, snap.StageName, snap.SpeciesID, title.String(string(snap.Attribute))),
		p.Sprintf(LineFmtLevel, snap.Level),
		p.Sprintf(LineFmtExp, snap.Experience, snap.ExpThreshold, expBar(snap.ExpRatio())),
		p.Sprintf(LineFmtCombat, snap.Attack, snap.Defense),
		p.Sprintf(LineFmtMood, snap.Mood),
		p.Sprintf(LineFmtSatiety, snap.Satiety),
		p.Sprintf(LineFmtMoney, snap.Money),
	}
	if snap.FinalForm || snap.EvolveLevel == nil {
		lines = append(lines, LineFinalForm)
	} else {
		lines = append(lines, p.Sprintf(LineFmtEvolveAt, *snap.EvolveLevel))
	}
	lines = append(lines,
		cooldownLine(p, title.String("explore"), snap.ExploreReadyIn),
		cooldownLine(p, title.String("duel"), snap.DuelReadyIn),
	)

	return Rendered{
		ContentType: ContentTypeText,
		Body:        []byte(strings.Join(lines, "\n")),
	}, nil
}

func cooldownLine(p *message.Printer, action string, left time.Duration) string {
	if left <= 0 {
		return p.Sprintf(LineFmtReady, action)
	}
	return p.Sprintf(LineFmtWaiting, action, displayedWait(left))
}

func expBar(ratio float64) string {
	filled := int(ratio * ExpBarWidth)
	return strings.Repeat(ExpBarFilled, filled) + strings.Repeat(ExpBarEmpty, ExpBarWidth-filled)
}
