package portfolio

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio/internal/application/service"
	domain "github.com/khoahotran/portfolio/internal/domain/portfolio"
	"github.com/khoahotran/portfolio/pkg/apperror"
	"github.com/khoahotran/portfolio/pkg/logger"
	"github.com/khoahotran/portfolio/pkg/metrics"
)

var ErrNotLoaded = errors.New("portfolio store has not been loaded")

var tracer = otel.Tracer("portfolio_store")

// Store is the single owner of the multi-profile document. Every write clones
// the current snapshot, applies the change, persists the whole document and
// only then swaps the snapshot in. A failed write leaves the previous
// snapshot untouched.
type Store struct {
	storage   domain.Storage
	publisher service.EventPublisher
	logger    logger.Logger

	mu     sync.Mutex
	doc    domain.AllProfilesData
	loaded bool
	ids    *idSource
	now    func() time.Time
	// active memoizes the resolved active profile until the next commit.
	active *domain.DomainProfile
}

type Option func(*Store)

// WithClock overrides time.Now for id generation and event timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func NewStore(storage domain.Storage, publisher service.EventPublisher, log logger.Logger, opts ...Option) *Store {
	s := &Store{
		storage:   storage,
		publisher: publisher,
		logger:    log,
		doc:       domain.DefaultDocument(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.ids = newIDSource(s.now)
	return s
}

// Load reads the persisted document, falling back to the legacy slot and then
// to the built-in defaults, and writes the result back under the current slot.
// It must complete before any other operation.
func (s *Store) Load(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "Load")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.readDocument(ctx)
	if err != nil {
		span.RecordError(err)
		return err
	}
	doc = domain.Normalize(doc)
	if err := s.persist(ctx, doc); err != nil {
		span.RecordError(err)
		return err
	}

	s.doc = doc
	s.active = nil
	s.loaded = true
	s.logger.Info("Portfolio store loaded",
		zap.Int("profiles", len(doc.Profiles)),
		zap.String("active_profile_id", doc.ActiveProfileID),
		zap.String("storage", s.storage.Name()),
	)
	return nil
}

func (s *Store) readDocument(ctx context.Context) (domain.AllProfilesData, error) {
	raw, err := s.storage.Get(ctx, domain.SlotAllProfiles)
	switch {
	case err == nil:
		doc, from, derr := domain.DecodeDocument([]byte(raw))
		if derr != nil {
			s.quarantine(ctx, raw, derr)
			return domain.DefaultDocument(), nil
		}
		if from != domain.CurrentSchemaVersion {
			s.logger.Info("Migrated portfolio document",
				zap.String("slot", domain.SlotAllProfiles),
				zap.Int("schema_version", from),
				zap.Int("target_version", domain.CurrentSchemaVersion),
			)
		}
		return doc, nil
	case !errors.Is(err, domain.ErrSlotNotFound):
		return domain.AllProfilesData{}, fmt.Errorf("read slot %s: %w", domain.SlotAllProfiles, err)
	}

	legacy, err := s.storage.Get(ctx, domain.SlotLegacy)
	switch {
	case errors.Is(err, domain.ErrSlotNotFound):
		s.logger.Info("No persisted portfolio found, starting from defaults")
		return domain.DefaultDocument(), nil
	case err != nil:
		return domain.AllProfilesData{}, fmt.Errorf("read slot %s: %w", domain.SlotLegacy, err)
	}

	doc, from, err := domain.DecodeDocument([]byte(legacy))
	if err != nil {
		s.logger.Warn("Legacy portfolio document is unreadable, starting from defaults",
			zap.String("slot", domain.SlotLegacy), zap.Error(err))
		return domain.DefaultDocument(), nil
	}
	s.logger.Info("Migrated legacy portfolio document",
		zap.String("slot", domain.SlotLegacy),
		zap.Int("schema_version", from),
	)
	return doc, nil
}

// quarantine keeps an undecodable document so that the defaults written next
// do not destroy the only copy.
func (s *Store) quarantine(ctx context.Context, raw string, cause error) {
	s.logger.Warn("Persisted portfolio document is unreadable, starting from defaults",
		zap.String("slot", domain.SlotAllProfiles),
		zap.String("quarantine_slot", domain.SlotQuarantine),
		zap.Error(cause),
	)
	if err := s.storage.Set(ctx, domain.SlotQuarantine, raw); err != nil {
		s.logger.Error("Failed to quarantine unreadable document", err, zap.String("slot", domain.SlotQuarantine))
	}
}

func (s *Store) persist(ctx context.Context, doc domain.AllProfilesData) error {
	started := time.Now()
	payload, err := domain.EncodeDocument(doc)
	if err != nil {
		return apperror.NewInternal("failed to encode portfolio", err)
	}
	if err := s.storage.Set(ctx, domain.SlotAllProfiles, string(payload)); err != nil {
		return apperror.NewInternal("failed to persist portfolio", err)
	}
	metrics.ObservePersist(s.storage.Name(), started, len(payload))
	return nil
}

// mutation edits doc in place and reports the affected profile id and
// whether anything changed.
type mutation func(doc *domain.AllProfilesData) (profileID string, changed bool)

func (s *Store) commit(ctx context.Context, op, eventType string, fn mutation) error {
	ctx, span := tracer.Start(ctx, op)
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		metrics.ObserveStoreOp(op, metrics.ResultError)
		span.RecordError(ErrNotLoaded)
		return ErrNotLoaded
	}

	next := s.doc.Clone()
	profileID, changed := fn(&next)
	span.SetAttributes(
		attribute.String("profile_id", profileID),
		attribute.Bool("changed", changed),
	)
	if !changed {
		metrics.ObserveStoreOp(op, metrics.ResultNoop)
		return nil
	}
	// Normalize also detaches any slices the caller passed in.
	next = domain.Normalize(next)

	if err := s.persist(ctx, next); err != nil {
		span.RecordError(err)
		metrics.ObserveStoreOp(op, metrics.ResultError)
		s.logger.Error("Failed to persist portfolio change", err,
			zap.String("op", op), zap.String("profile_id", profileID))
		return err
	}

	s.doc = next
	s.active = nil
	metrics.ObserveStoreOp(op, metrics.ResultOK)
	s.publish(service.ChangeEvent{
		ID:              uuid.NewString(),
		Type:            eventType,
		Op:              op,
		ProfileID:       profileID,
		ActiveProfileID: next.ActiveProfileID,
		At:              s.now().UTC(),
	})
	return nil
}

// updateActive runs fn against the active profile only. Other profiles and
// the active pointer are never touched.
func (s *Store) updateActive(ctx context.Context, op string, fn func(p *domain.DomainProfile) bool) error {
	return s.commit(ctx, op, service.EventTypeUpdated, func(doc *domain.AllProfilesData) (string, bool) {
		for i := range doc.Profiles {
			if doc.Profiles[i].ID == doc.ActiveProfileID {
				return doc.ActiveProfileID, fn(&doc.Profiles[i])
			}
		}
		return doc.ActiveProfileID, false
	})
}

func (s *Store) publish(evt service.ChangeEvent) {
	if s.publisher == nil {
		return
	}
	go func() {
		if err := s.publisher.Publish(context.Background(), evt); err != nil {
			s.logger.Warn("Failed to publish portfolio event",
				zap.String("op", evt.Op), zap.String("event_id", evt.ID), zap.Error(err))
		}
	}()
}

// State returns a deep copy of the whole document.
func (s *Store) State() domain.AllProfilesData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

func (s *Store) ActiveProfileID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.ActiveProfileID
}

// ActiveProfile returns the active profile, or the built-in default profile
// when the active id does not resolve.
func (s *Store) ActiveProfile() domain.DomainProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resolveActive().Clone()
}

// ActiveView is the flat projection of the active profile.
func (s *Store) ActiveView() domain.PortfolioData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resolveActive().View()
}

func (s *Store) resolveActive() *domain.DomainProfile {
	if s.active != nil {
		return s.active
	}
	p, ok := s.doc.Find(s.doc.ActiveProfileID)
	if !ok {
		s.logger.Warn("Active profile does not resolve, serving defaults",
			zap.String("active_profile_id", s.doc.ActiveProfileID))
		p = domain.DefaultProfile()
	}
	s.active = &p
	return s.active
}
