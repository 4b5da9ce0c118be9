package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"
	"unicode/utf8"

	"legal-office-management/internal/model"
	"legal-office-management/internal/prazo"
	"legal-office-management/pkg/gcalendar"
	pkgKafka "legal-office-management/pkg/kafka"
)

const maxTitleRunes = 80

// civilDate keeps only the calendar date of t as seen in the office timezone.
func (uc *implUseCase) civilDate(t time.Time) time.Time {
	local := t.In(uc.dateMath.Location())
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// deriveTitle builds "Prazo: <first line>" from an intimação text.
func deriveTitle(tipo, descricao string) string {
	line := strings.TrimSpace(descricao)
	if i := strings.IndexAny(line, "\n."); i > 0 {
		line = line[:i]
	}
	if line == "" {
		line = strings.TrimSpace(tipo)
	}
	if line == "" {
		return "Prazo"
	}
	if utf8.RuneCountInString(line) > maxTitleRunes {
		line = string([]rune(line)[:maxTitleRunes-1]) + "…"
	}
	return "Prazo: " + line
}

// trySyncCalendar mirrors p to the agenda. Returns the event id, or "" on failure.
func (uc *implUseCase) trySyncCalendar(ctx context.Context, p model.Prazo) string {
	if uc.cfg.Calendar == nil {
		return ""
	}

	event, err := uc.cfg.Calendar.CreateAllDayEvent(ctx, gcalendar.AllDayEventRequest{
		CalendarID:      uc.cfg.CalendarID,
		Summary:         p.Title,
		Description:     p.Description,
		Date:            p.Date,
		ReminderMinutes: uc.cfg.ReminderMinutes,
		PrivateProps:    map[string]string{"prazo_id": p.ID, "project_id": p.ProjectID},
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.trySyncCalendar: prazo=%s: %v", p.ID, err)
		return ""
	}

	if err := uc.repo.SetCalendarEventID(ctx, p.ID, event.ID); err != nil {
		uc.l.Warnf(ctx, "uc.trySyncCalendar SetCalendarEventID: prazo=%s event=%s: %v", p.ID, event.ID, err)
	}
	return event.ID
}

func (uc *implUseCase) tryPublishCreated(ctx context.Context, p model.Prazo) {
	if uc.cfg.Publisher == nil {
		return
	}

	payload, err := json.Marshal(prazo.CreatedEvent{
		Type:       eventPrazoCreated,
		Prazo:      p,
		OccurredAt: uc.clock().UTC(),
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.tryPublishCreated marshal: %v", err)
		return
	}

	if err := uc.cfg.Publisher.Publish(ctx, uc.cfg.Topic, pkgKafka.Message{Key: p.ProjectID, Value: payload}); err != nil {
		uc.l.Warnf(ctx, "uc.tryPublishCreated: prazo=%s: %v", p.ID, err)
	}
}
