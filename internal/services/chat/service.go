package chat

import (
	"context"
	"errors"
	"log/slog"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"

	"batepapo/internal/dependencies/clock"
	"batepapo/internal/dependencies/ident"
	"batepapo/internal/model"
	"batepapo/internal/sanitize"
	"batepapo/internal/storage"
)

// Service orchestrates participant registration, presence heartbeats and
// message operations over the two stores. Identities are caller-asserted
// names; they are sanitized before any lookup so a name and its
// markup-wrapped form refer to the same participant.
type Service struct {
	storage  storage.Storage
	clock    clock.Clock
	ident    ident.Generator
	validate *validator.Validate
	logger   *slog.Logger
}

// New creates a new chat service
func New(store storage.Storage, clk clock.Clock, gen ident.Generator, logger *slog.Logger) *Service {
	v := validator.New()
	// Report violations under the wire field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	return &Service{
		storage:  store,
		clock:    clk,
		ident:    gen,
		validate: v,
		logger:   logger,
	}
}

// postPayload is the schema for posted messages. Senders cannot post the
// status kind directly; those are system-generated.
type postPayload struct {
	From string     `json:"from" validate:"required"`
	To   string     `json:"to" validate:"required"`
	Text string     `json:"text" validate:"required"`
	Kind model.Kind `json:"type" validate:"required,oneof=message private_message"`
}

// editPayload is the schema for message edits
type editPayload struct {
	To   string     `json:"to" validate:"required"`
	Text string     `json:"text" validate:"required"`
	Kind model.Kind `json:"type" validate:"required,oneof=message private_message"`
}

// checkSchema runs struct validation and converts the result into a
// ValidationError naming every violated field
func (s *Service) checkSchema(payload any) error {
	err := s.validate.Struct(payload)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return &model.ValidationError{Fields: fields}
}

// Register creates a participant from a raw display name and appends the
// arrival notice. The two writes are a best-effort pair: if the notice
// insert fails the registration is reported as failed and the orphan
// participant is left for the sweeper to evict.
func (s *Service) Register(ctx context.Context, rawName string) (*model.Participant, error) {
	name := sanitize.Clean(rawName)
	if name == "" {
		return nil, model.NewValidationError("name")
	}

	// Best-effort uniqueness: check-then-insert, last write wins on a race
	_, err := s.storage.GetParticipant(ctx, name)
	if err == nil {
		return nil, model.ErrNameTaken
	}
	if !errors.Is(err, model.ErrParticipantNotFound) {
		return nil, err
	}

	now := s.clock.Now()
	p := &model.Participant{Name: name, LastSeen: now}
	if err := s.storage.SaveParticipant(ctx, p); err != nil {
		return nil, err
	}

	notice := model.NewStatusMessage(s.ident.NewMessageID(), name, model.ArrivalText, now)
	if err := s.storage.InsertMessage(ctx, notice); err != nil {
		s.logger.Error("arrival notice write failed after participant insert",
			slog.String("participant", name),
			slog.String("error", err.Error()))
		return nil, err
	}

	return p, nil
}

// Participants returns all active participants, sorted by name
func (s *Service) Participants(ctx context.Context) ([]*model.Participant, error) {
	participants, err := s.storage.ListParticipants(ctx)
	if err != nil {
		return nil, err
	}
	slices.SortFunc(participants, func(a, b *model.Participant) int {
		return strings.Compare(a.Name, b.Name)
	})
	return participants, nil
}

// Heartbeat refreshes the asserted identity's last-seen timestamp.
// No message is generated.
func (s *Service) Heartbeat(ctx context.Context, rawName string) error {
	name := sanitize.Clean(rawName)
	if name == "" {
		return model.ErrParticipantNotFound
	}

	p, err := s.storage.GetParticipant(ctx, name)
	if err != nil {
		return err
	}

	p.LastSeen = s.clock.Now()
	return s.storage.SaveParticipant(ctx, p)
}

// Post appends a message from the asserted sender. The check order is part
// of the contract: unknown sender, then unknown private recipient, then
// schema violations.
func (s *Service) Post(ctx context.Context, rawFrom, to, text string, kind model.Kind) (*model.Message, error) {
	from := sanitize.Clean(rawFrom)
	if _, err := s.storage.GetParticipant(ctx, from); err != nil {
		return nil, err
	}

	// Public broadcasts go to the reserved recipient and skip this check
	if kind == model.KindPrivate {
		if _, err := s.storage.GetParticipant(ctx, sanitize.Clean(to)); err != nil {
			if errors.Is(err, model.ErrParticipantNotFound) {
				return nil, model.ErrRecipientNotFound
			}
			return nil, err
		}
	}

	if err := s.checkSchema(postPayload{From: from, To: to, Text: text, Kind: kind}); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	msg := &model.Message{
		ID:   s.ident.NewMessageID(),
		From: from,
		To:   sanitize.Clean(to),
		Text: sanitize.Clean(text),
		Kind: kind,
		Time: now.Format(model.DisplayTimeLayout),
	}

	if err := s.storage.InsertMessage(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// Messages returns the messages visible to the asserted viewer in insertion
// order. An empty viewer is an anonymous reader who sees no private
// messages. A positive limit keeps only the last limit visible messages.
func (s *Service) Messages(ctx context.Context, rawViewer string, limit int) ([]*model.Message, error) {
	viewer := sanitize.Clean(rawViewer)

	all, err := s.storage.ListMessages(ctx)
	if err != nil {
		return nil, err
	}

	visible := make([]*model.Message, 0, len(all))
	for _, m := range all {
		if m.VisibleTo(viewer) {
			visible = append(visible, m)
		}
	}

	if limit > 0 && len(visible) > limit {
		visible = visible[len(visible)-limit:]
	}
	return visible, nil
}

// Edit replaces a message's to/text/kind and refreshes its display time.
// Only the original sender may edit; id and from are immutable.
func (s *Service) Edit(ctx context.Context, rawID, rawEditor, to, text string, kind model.Kind) (*model.Message, error) {
	if !model.ValidMessageID(rawID) {
		return nil, model.ErrInvalidMessageID
	}

	if err := s.checkSchema(editPayload{To: to, Text: text, Kind: kind}); err != nil {
		return nil, err
	}

	editor := sanitize.Clean(rawEditor)
	if _, err := s.storage.GetParticipant(ctx, editor); err != nil {
		return nil, err
	}

	msg, err := s.storage.GetMessage(ctx, model.MessageID(rawID))
	if err != nil {
		return nil, err
	}

	if msg.From != editor {
		return nil, model.ErrNotMessageOwner
	}

	msg.To = sanitize.Clean(to)
	msg.Text = sanitize.Clean(text)
	msg.Kind = kind
	msg.Time = s.clock.Now().Format(model.DisplayTimeLayout)

	if err := s.storage.UpdateMessage(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// Delete permanently removes a message. Only the original sender may delete.
func (s *Service) Delete(ctx context.Context, rawID, rawDeleter string) error {
	if !model.ValidMessageID(rawID) {
		return model.ErrInvalidMessageID
	}

	deleter := sanitize.Clean(rawDeleter)
	if _, err := s.storage.GetParticipant(ctx, deleter); err != nil {
		return err
	}

	msg, err := s.storage.GetMessage(ctx, model.MessageID(rawID))
	if err != nil {
		return err
	}

	if msg.From != deleter {
		return model.ErrNotMessageOwner
	}

	return s.storage.DeleteMessage(ctx, msg.ID)
}
